// Package volatility measures how much recent demand labels swing.
package volatility

import (
	"math"

	"github.com/yanqian/career-radar/pkg/util"
)

// Risk levels.
const (
	LowRisk    = "Low Risk"
	MediumRisk = "Medium Risk"
	HighRisk   = "High Risk"
	Unknown    = "Unknown"
)

var labelScore = map[string]float64{
	"Low":    1,
	"Medium": 2,
	"High":   3,
}

// Result is the output of CalculateJobVolatility.
type Result struct {
	VolatilityIndex float64 `json:"volatilityIndex"`
	StabilityScore  float64 `json:"stabilityScore"`
	RiskLevel       string  `json:"riskLevel"`
}

// CalculateJobVolatility computes the sample standard deviation of the
// numeric demand scores. Unrecognised labels are skipped; fewer than two
// recognised labels yield the Unknown result.
func CalculateJobVolatility(labels []string) Result {
	scores := make([]float64, 0, len(labels))
	for _, label := range labels {
		if v, ok := labelScore[label]; ok {
			scores = append(scores, v)
		}
	}
	if len(scores) < 2 {
		return Result{VolatilityIndex: 0, StabilityScore: 1.0, RiskLevel: Unknown}
	}

	index := util.Round(sampleStdDev(scores), 2)
	return Result{
		VolatilityIndex: index,
		StabilityScore:  util.Round(1/(index+1), 2),
		RiskLevel:       levelFor(index),
	}
}

func sampleStdDev(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)-1))
}

func levelFor(index float64) string {
	switch {
	case index >= 0.8:
		return HighRisk
	case index >= 0.4:
		return MediumRisk
	default:
		return LowRisk
	}
}
