package decision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCareerDecision(t *testing.T) {
	current := RoleMetrics{SalaryMax: 1200000, Demand: "Medium", RiskLevel: "Medium Risk", SkillMatch: 80}

	t.Run("everything favourable", func(t *testing.T) {
		v := CareerDecision("Data Analyst", "Data Engineer", current, RoleMetrics{
			SalaryMax: 1800000, Demand: "High", RiskLevel: "Low Risk", SkillMatch: 65,
		})
		require.Equal(t, SafeToSwitch, v.Verdict)
		require.Equal(t, 7, v.Score)
		require.Equal(t, []string{
			"Target role offers higher salary potential",
			"Target role has strong market demand",
			"Target role is more market-stable",
			"Your skills are reasonably aligned",
		}, v.Reasons)
	})

	t.Run("salary and skills only", func(t *testing.T) {
		v := CareerDecision("a", "b", current, RoleMetrics{SalaryMax: 1300000, Demand: "Medium", RiskLevel: "High Risk", SkillMatch: 60})
		require.Equal(t, SwitchWithPreparation, v.Verdict)
		require.Equal(t, 3, v.Score)
		require.Equal(t, []string{"Target role offers higher salary potential", "Your skills are reasonably aligned"}, v.Reasons)
	})

	t.Run("missing skill match counts as zero", func(t *testing.T) {
		v := CareerDecision("a", "b", current, RoleMetrics{SalaryMax: 1000000, Demand: "High"})
		require.Equal(t, NotRecommendedNow, v.Verdict)
		require.Equal(t, 2, v.Score)
		require.Equal(t, []string{"Target role has strong market demand"}, v.Reasons)
	})

	t.Run("equal salary is not higher", func(t *testing.T) {
		v := CareerDecision("a", "b", current, RoleMetrics{SalaryMax: 1200000})
		require.Equal(t, 0, v.Score)
		require.Empty(t, v.Reasons)
		require.NotNil(t, v.Reasons)
		require.Equal(t, NotRecommendedNow, v.Verdict)
	})

	t.Run("labels are case sensitive", func(t *testing.T) {
		v := CareerDecision("a", "b", current, RoleMetrics{Demand: "high", RiskLevel: "low risk"})
		require.Equal(t, 0, v.Score)
	})
}

func TestVerdictBoundaries(t *testing.T) {
	require.Equal(t, SafeToSwitch, verdictFor(5))
	require.Equal(t, SwitchWithPreparation, verdictFor(4))
	require.Equal(t, SwitchWithPreparation, verdictFor(3))
	require.Equal(t, NotRecommendedNow, verdictFor(2))
}
