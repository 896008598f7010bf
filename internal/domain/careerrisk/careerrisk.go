// Package careerrisk combines demand, volatility and skill exposure into a
// weighted career risk score.
package careerrisk

import (
	"math"

	"github.com/yanqian/career-radar/pkg/util"
)

// Risk categories shared with the demand engine labels.
const (
	LowRisk    = "Low Risk"
	MediumRisk = "Medium Risk"
	HighRisk   = "High Risk"
)

const (
	demandWeight     = 0.3
	volatilityWeight = 0.4
	skillWeight      = 0.3

	highRiskSkill = 70
	baseSkillRisk = 40
)

var demandRisk = map[string]float64{
	"High":   20,
	"Medium": 50,
	"Low":    80,
}

// Role names are matched exactly, so "ai engineer" is not a high-risk role.
var highRiskRoles = map[string]struct{}{
	"AI Engineer":           {},
	"Data Scientist":        {},
	"ML Engineer":           {},
	"Blockchain Consultant": {},
	"Cloud Engineer":        {},
}

// Breakdown lists the three components before weighting.
type Breakdown struct {
	DemandRisk     float64 `json:"demandRisk"`
	VolatilityRisk float64 `json:"volatilityRisk"`
	SkillRisk      float64 `json:"skillRisk"`
}

// RiskProfile is the output of CalculateCareerRisk.
type RiskProfile struct {
	RiskScore    float64   `json:"riskScore"`
	RiskCategory string    `json:"riskCategory"`
	Breakdown    Breakdown `json:"breakdown"`
}

// CalculateCareerRisk scores a demand label, a volatility index and a role.
// Unknown demand labels fall back to the medium component.
func CalculateCareerRisk(demand string, volatilityIndex float64, role string) RiskProfile {
	d, ok := demandRisk[demand]
	if !ok {
		d = demandRisk["Medium"]
	}
	v := math.Min(volatilityIndex*100, 100)
	s := float64(baseSkillRisk)
	if _, ok := highRiskRoles[role]; ok {
		s = highRiskSkill
	}

	score := util.Round(demandWeight*d+volatilityWeight*v+skillWeight*s, 1)
	return RiskProfile{
		RiskScore:    score,
		RiskCategory: categoryFor(score),
		Breakdown: Breakdown{
			DemandRisk:     d,
			VolatilityRisk: util.Round(v, 1),
			SkillRisk:      s,
		},
	}
}

func categoryFor(score float64) string {
	switch {
	case score >= 70:
		return HighRisk
	case score >= 40:
		return MediumRisk
	default:
		return LowRisk
	}
}

// IsHighRiskRole reports whether role is in the exact-match skill risk set.
func IsHighRiskRole(role string) bool {
	_, ok := highRiskRoles[role]
	return ok
}
