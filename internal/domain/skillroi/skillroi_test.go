package skillroi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/career-radar/pkg/errors"
)

func TestCalculateSkillROI_AWS(t *testing.T) {
	res, err := CalculateSkillROI("AWS", 50000, 60000, 6, 70, 40)
	require.NoError(t, err)

	require.Equal(t, Result{
		Skill:              "AWS",
		ROIScore:           1.0,
		SalaryBoostPercent: 20.0,
		RiskReduction:      30.0,
		LearningMonths:     6,
		Decision:           LowPriority,
	}, res)
}

func TestCalculateSkillROI_Decisions(t *testing.T) {
	cases := []struct {
		name     string
		cur, fut float64
		months   float64
		cr, fr   float64
		roi      float64
		decision string
	}{
		{name: "large boost and risk cut", cur: 10000, fut: 100000, months: 0, cr: 100, fr: 0, roi: 8, decision: HighlyRecommended},
		{name: "worth learning", cur: 10000, fut: 15000, months: 3, cr: 80, fr: 10, roi: 4.3, decision: WorthLearning},
		{name: "negative roi clamps to zero", cur: 50000, fut: 40000, months: 24, cr: 30, fr: 50, roi: 0, decision: LowPriority},
		{name: "months cap at twelve", cur: 10000, fut: 10000, months: 60, cr: 0, fr: 0, roi: 0, decision: LowPriority},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := CalculateSkillROI("skill", tc.cur, tc.fut, tc.months, tc.cr, tc.fr)
			require.NoError(t, err)
			assert.InDelta(t, tc.roi, res.ROIScore, 1e-9)
			require.Equal(t, tc.decision, res.Decision)
			require.GreaterOrEqual(t, res.ROIScore, 0.0)
			require.LessOrEqual(t, res.ROIScore, 10.0)
		})
	}
}

func TestCalculateSkillROI_ZeroSalary(t *testing.T) {
	_, err := CalculateSkillROI("Go", 0, 60000, 6, 70, 40)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDivisionByZero))
	require.True(t, apperrors.IsCode(err, CodeArithmeticFault))
}

func TestDecisionBoundaries(t *testing.T) {
	require.Equal(t, HighlyRecommended, decisionFor(7))
	require.Equal(t, WorthLearning, decisionFor(6.99))
	require.Equal(t, WorthLearning, decisionFor(4))
	require.Equal(t, LowPriority, decisionFor(3.99))
}

func TestNormalizedSkillSafety(t *testing.T) {
	require.Equal(t, 0.1, NormalizedSkillSafety(1))
	require.Equal(t, 0.83, NormalizedSkillSafety(8.3))
	require.Equal(t, 1.0, NormalizedSkillSafety(10))
	require.Equal(t, 1.0, NormalizedSkillSafety(42))
	require.Equal(t, 0.0, NormalizedSkillSafety(0))
}
