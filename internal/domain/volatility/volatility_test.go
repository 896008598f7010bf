package volatility

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateJobVolatility(t *testing.T) {
	cases := []struct {
		name   string
		labels []string
		want   Result
	}{
		{name: "empty", labels: nil, want: Result{VolatilityIndex: 0, StabilityScore: 1.0, RiskLevel: Unknown}},
		{name: "single label", labels: []string{"High"}, want: Result{VolatilityIndex: 0, StabilityScore: 1.0, RiskLevel: Unknown}},
		{name: "only unknown labels", labels: []string{"Very High", "n/a"}, want: Result{VolatilityIndex: 0, StabilityScore: 1.0, RiskLevel: Unknown}},
		{name: "constant", labels: []string{"Medium", "Medium", "Medium"}, want: Result{VolatilityIndex: 0, StabilityScore: 1.0, RiskLevel: LowRisk}},
		{name: "full swing", labels: []string{"Low", "Medium", "High"}, want: Result{VolatilityIndex: 1, StabilityScore: 0.5, RiskLevel: HighRisk}},
		{name: "two extremes", labels: []string{"Low", "High"}, want: Result{VolatilityIndex: 1.41, StabilityScore: 0.41, RiskLevel: HighRisk}},
		{name: "mostly stable", labels: []string{"High", "High", "High", "Medium"}, want: Result{VolatilityIndex: 0.5, StabilityScore: 0.67, RiskLevel: MediumRisk}},
		{name: "unknown labels ignored", labels: []string{"High", "garbage", "High", "High", "Medium"}, want: Result{VolatilityIndex: 0.5, StabilityScore: 0.67, RiskLevel: MediumRisk}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CalculateJobVolatility(tc.labels))
		})
	}
}

func TestLevelBoundaries(t *testing.T) {
	require.Equal(t, HighRisk, levelFor(0.8))
	require.Equal(t, MediumRisk, levelFor(0.79))
	require.Equal(t, MediumRisk, levelFor(0.4))
	require.Equal(t, LowRisk, levelFor(0.39))
}
