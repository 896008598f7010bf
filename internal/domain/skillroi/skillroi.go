// Package skillroi scores the return on investment of learning a skill.
package skillroi

import (
	"errors"
	"math"

	apperrors "github.com/yanqian/career-radar/pkg/errors"
	"github.com/yanqian/career-radar/pkg/util"
)

// ErrDivisionByZero is returned (wrapped) when the current salary is zero.
var ErrDivisionByZero = errors.New("division by zero")

// CodeArithmeticFault marks computations rejected for a zero baseline.
const CodeArithmeticFault = "arithmetic_fault"

// Recommendation labels.
const (
	HighlyRecommended = "Highly Recommended"
	WorthLearning     = "Worth Learning"
	LowPriority       = "Low Priority"
)

// Result is the output of CalculateSkillROI.
type Result struct {
	Skill              string  `json:"skill"`
	ROIScore           float64 `json:"roiScore"`
	SalaryBoostPercent float64 `json:"salaryBoostPercent"`
	RiskReduction      float64 `json:"riskReduction"`
	LearningMonths     float64 `json:"learningMonths"`
	Decision           string  `json:"decision"`
}

// CalculateSkillROI weighs salary growth and risk reduction against learning
// time. A zero current salary fails with ErrDivisionByZero.
func CalculateSkillROI(skill string, currentSalary, futureSalary, learningMonths, currentRisk, futureRisk float64) (Result, error) {
	if currentSalary == 0 {
		return Result{}, apperrors.Wrap(CodeArithmeticFault, "current salary must be non-zero", ErrDivisionByZero)
	}

	boost := (futureSalary - currentSalary) / currentSalary * 100
	reduction := currentRisk - futureRisk

	salaryScore := math.Min(boost/10, 10)
	riskScore := math.Min(reduction/10, 10)
	timePenalty := math.Min(learningMonths, 12) / 12 * 10

	roi := math.Max(0, util.Round(0.4*salaryScore+0.4*riskScore-0.2*timePenalty, 2))

	return Result{
		Skill:              skill,
		ROIScore:           roi,
		SalaryBoostPercent: util.Round(boost, 1),
		RiskReduction:      util.Round(reduction, 1),
		LearningMonths:     learningMonths,
		Decision:           decisionFor(roi),
	}, nil
}

func decisionFor(roi float64) string {
	switch {
	case roi >= 7:
		return HighlyRecommended
	case roi >= 4:
		return WorthLearning
	default:
		return LowPriority
	}
}

// NormalizedSkillSafety maps an ROI score onto [0, 1] for the overall risk view.
func NormalizedSkillSafety(roiScore float64) float64 {
	return util.Round(math.Min(roiScore/10, 1), 2)
}
