package jobshock

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/career-radar/pkg/errors"
)

func TestSimulateJobShock_DataAnalyst(t *testing.T) {
	res, err := SimulateJobShock("Data Analyst", 100, 50000, 30)
	require.NoError(t, err)
	require.Len(t, res, 3)

	require.Equal(t, Impact{
		DemandChangePercent: -40.0,
		SalaryChangePercent: -20.0,
		RiskChange:          25,
		ResilienceScore:     45,
		AutomationShock:     0.6,
	}, res[AIAutomation])

	rec := res[Recession]
	assert.InDelta(t, -30.0, rec.DemandChangePercent, 1e-9)
	assert.InDelta(t, -15.0, rec.SalaryChangePercent, 1e-9)
	require.Equal(t, 50.0, rec.ResilienceScore)

	layoffs := res[MassLayoffs]
	assert.InDelta(t, -25.0, layoffs.DemandChangePercent, 1e-9)
	assert.InDelta(t, -10.0, layoffs.SalaryChangePercent, 1e-9)
	require.Equal(t, 55.0, layoffs.ResilienceScore)
}

func TestSimulateJobShock_OtherRoleMilderAutomation(t *testing.T) {
	res, err := SimulateJobShock("data analyst", 80, 1000, 0)
	require.NoError(t, err)
	assert.InDelta(t, -10.0, res[AIAutomation].DemandChangePercent, 1e-9)
}

func TestSimulateJobShock_RiskCapped(t *testing.T) {
	res, err := SimulateJobShock("QA Engineer", 50, 1000, 95)
	require.NoError(t, err)
	for _, name := range Scenarios() {
		require.Equal(t, 0.0, res[name].ResilienceScore, name)
	}
}

func TestSimulateJobShock_ZeroBaseline(t *testing.T) {
	_, err := SimulateJobShock("Data Analyst", 0, 50000, 30)
	require.True(t, errors.Is(err, ErrDivisionByZero))
	require.True(t, apperrors.IsCode(err, CodeArithmeticFault))

	_, err = SimulateJobShock("Data Analyst", 60, 0, 30)
	require.True(t, errors.Is(err, ErrDivisionByZero))
}

func TestExtractAutomationShock(t *testing.T) {
	res, err := SimulateJobShock("Software Engineer", 60, 800000, 50)
	require.NoError(t, err)
	require.Equal(t, 0.6, ExtractAutomationShock(res))
	require.Equal(t, 0.3, ExtractAutomationShock(Result{}))
	require.Equal(t, 0.3, ExtractAutomationShock(nil))
}
