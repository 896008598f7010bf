package careerrisk

import "github.com/yanqian/career-radar/pkg/util"

// CalculateOverallJobRisk blends normalised volatility, the inverse of the
// trend score and the automation shock into a value in [0, 1] for inputs in
// [0, 1].
func CalculateOverallJobRisk(volatility, trendScore, shockImpact float64) float64 {
	return util.Round(volatility*0.4+(1-trendScore)*0.4+shockImpact*0.2, 2)
}

// RiskLabel labels an overall job risk score.
func RiskLabel(score float64) string {
	switch {
	case score < 0.3:
		return "Low"
	case score < 0.6:
		return "Medium"
	default:
		return "High"
	}
}
