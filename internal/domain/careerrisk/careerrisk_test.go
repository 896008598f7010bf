package careerrisk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCareerRisk_AIEngineer(t *testing.T) {
	profile := CalculateCareerRisk("High", 0.5, "AI Engineer")

	require.Equal(t, 47.0, profile.RiskScore)
	require.Equal(t, MediumRisk, profile.RiskCategory)
	require.Equal(t, Breakdown{DemandRisk: 20, VolatilityRisk: 50, SkillRisk: 70}, profile.Breakdown)
}

func TestCalculateCareerRisk_Table(t *testing.T) {
	cases := []struct {
		name     string
		demand   string
		vol      float64
		role     string
		score    float64
		category string
	}{
		{name: "low demand volatile role", demand: "Low", vol: 2, role: "Data Scientist", score: 85, category: HighRisk},
		{name: "stable high demand", demand: "High", vol: 0, role: "Nurse", score: 18, category: LowRisk},
		{name: "unknown demand uses medium", demand: "Extreme", vol: 0.2, role: "Librarian", score: 35, category: LowRisk},
		{name: "role match is case sensitive", demand: "High", vol: 0.5, role: "ai engineer", score: 38, category: LowRisk},
		{name: "boundary seventy", demand: "Low", vol: 0.6, role: "Cloud Engineer", score: 69, category: MediumRisk},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := CalculateCareerRisk(tc.demand, tc.vol, tc.role)
			assert.InDelta(t, tc.score, profile.RiskScore, 1e-9)
			require.Equal(t, tc.category, profile.RiskCategory)
		})
	}
}

func TestCalculateCareerRisk_Bounds(t *testing.T) {
	for _, demand := range []string{"High", "Medium", "Low", ""} {
		for _, vol := range []float64{0, 0.33, 0.8, 1, 5} {
			for _, role := range []string{"AI Engineer", "Plumber"} {
				p := CalculateCareerRisk(demand, vol, role)
				require.GreaterOrEqual(t, p.RiskScore, 0.0)
				require.LessOrEqual(t, p.RiskScore, 100.0)
				require.LessOrEqual(t, p.Breakdown.VolatilityRisk, 100.0)
			}
		}
	}
}

func TestCategoryBoundaries(t *testing.T) {
	require.Equal(t, HighRisk, categoryFor(70))
	require.Equal(t, MediumRisk, categoryFor(69.9))
	require.Equal(t, MediumRisk, categoryFor(40))
	require.Equal(t, LowRisk, categoryFor(39.9))
}

func TestCalculateOverallJobRisk(t *testing.T) {
	assert.InDelta(t, 0.4, CalculateOverallJobRisk(0.5, 0.6, 0.2), 1e-9)
	assert.InDelta(t, 0.4, CalculateOverallJobRisk(0, 0, 0), 1e-9)
	assert.InDelta(t, 1.0, CalculateOverallJobRisk(1, 0, 1), 1e-9)
	assert.InDelta(t, 0.0, CalculateOverallJobRisk(0, 1, 0), 1e-9)
}

func TestRiskLabel(t *testing.T) {
	require.Equal(t, "Low", RiskLabel(0.29))
	require.Equal(t, "Medium", RiskLabel(0.3))
	require.Equal(t, "Medium", RiskLabel(0.59))
	require.Equal(t, "High", RiskLabel(0.6))
}

func TestIsHighRiskRole(t *testing.T) {
	require.True(t, IsHighRiskRole("ML Engineer"))
	require.False(t, IsHighRiskRole("ml engineer"))
}
