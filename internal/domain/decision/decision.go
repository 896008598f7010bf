// Package decision scores whether a role switch is advisable.
package decision

// Verdicts.
const (
	SafeToSwitch          = "Safe to Switch"
	SwitchWithPreparation = "Switch with Preparation"
	NotRecommendedNow     = "Not Recommended Now"
)

// RoleMetrics describes one side of a comparison. SkillMatch is a percentage;
// zero stands in for an unknown match.
type RoleMetrics struct {
	SalaryMax  float64 `json:"salaryMax"`
	Demand     string  `json:"demand"`
	RiskLevel  string  `json:"riskLevel"`
	SkillMatch float64 `json:"skillMatch"`
}

// Verdict is the output of CareerDecision.
type Verdict struct {
	Verdict string   `json:"verdict"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// CareerDecision compares target against current. The role names are kept
// for callers that label the comparison and do not affect the score.
func CareerDecision(currentRole, targetRole string, current, target RoleMetrics) Verdict {
	score := 0
	reasons := make([]string, 0, 4)

	if target.SalaryMax > current.SalaryMax {
		score += 2
		reasons = append(reasons, "Target role offers higher salary potential")
	}
	if target.Demand == "High" {
		score += 2
		reasons = append(reasons, "Target role has strong market demand")
	}
	if target.RiskLevel == "Low Risk" {
		score += 2
		reasons = append(reasons, "Target role is more market-stable")
	}
	if target.SkillMatch >= 60 {
		score++
		reasons = append(reasons, "Your skills are reasonably aligned")
	}

	return Verdict{Verdict: verdictFor(score), Score: score, Reasons: reasons}
}

func verdictFor(score int) string {
	switch {
	case score >= 5:
		return SafeToSwitch
	case score >= 3:
		return SwitchWithPreparation
	default:
		return NotRecommendedNow
	}
}
