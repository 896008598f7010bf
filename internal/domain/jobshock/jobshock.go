// Package jobshock simulates fixed external shocks against a career baseline.
package jobshock

import (
	"errors"
	"math"

	apperrors "github.com/yanqian/career-radar/pkg/errors"
	"github.com/yanqian/career-radar/pkg/util"
)

// Scenario names.
const (
	Recession    = "Recession"
	AIAutomation = "AI Automation"
	MassLayoffs  = "Mass Layoffs"
)

// CodeArithmeticFault marks a zero demand or salary baseline.
const CodeArithmeticFault = "arithmetic_fault"

// ErrDivisionByZero is wrapped when a baseline is zero.
var ErrDivisionByZero = errors.New("division by zero")

const defaultAutomationShock = 0.3

// Roles whose demand collapses harder under automation.
var automationSensitiveRoles = map[string]struct{}{
	"QA Engineer":  {},
	"Data Analyst": {},
}

type shock struct {
	name            string
	demandFactor    float64
	salaryFactor    float64
	riskIncrease    float64
	automationShock float64
}

// Impact is the simulated effect of one scenario.
type Impact struct {
	DemandChangePercent float64 `json:"demandChangePercent"`
	SalaryChangePercent float64 `json:"salaryChangePercent"`
	RiskChange          float64 `json:"riskChange"`
	ResilienceScore     float64 `json:"resilienceScore"`
	AutomationShock     float64 `json:"automationShock"`
}

// Result maps scenario name to its impact.
type Result map[string]Impact

// Scenarios returns the scenario names in simulation order.
func Scenarios() []string {
	return []string{Recession, AIAutomation, MassLayoffs}
}

func shocksFor(role string) []shock {
	aiDemand := 0.9
	if _, ok := automationSensitiveRoles[role]; ok {
		aiDemand = 0.6
	}
	return []shock{
		{name: Recession, demandFactor: 0.7, salaryFactor: 0.85, riskIncrease: 20, automationShock: 0.1},
		{name: AIAutomation, demandFactor: aiDemand, salaryFactor: 0.8, riskIncrease: 25, automationShock: 0.6},
		{name: MassLayoffs, demandFactor: 0.75, salaryFactor: 0.9, riskIncrease: 15, automationShock: 0.3},
	}
}

// SimulateJobShock applies every scenario to the baseline. Role matching for
// the automation scenario is exact.
func SimulateJobShock(role string, baseDemand, baseSalary, baseRisk float64) (Result, error) {
	if baseDemand == 0 {
		return nil, apperrors.Wrap(CodeArithmeticFault, "base demand must be non-zero", ErrDivisionByZero)
	}
	if baseSalary == 0 {
		return nil, apperrors.Wrap(CodeArithmeticFault, "base salary must be non-zero", ErrDivisionByZero)
	}

	shocks := shocksFor(role)
	out := make(Result, len(shocks))
	for _, s := range shocks {
		newDemand := baseDemand * s.demandFactor
		newSalary := baseSalary * s.salaryFactor
		newRisk := math.Min(baseRisk+s.riskIncrease, 100)

		out[s.name] = Impact{
			DemandChangePercent: util.Round((newDemand-baseDemand)/baseDemand*100, 1),
			SalaryChangePercent: util.Round((newSalary-baseSalary)/baseSalary*100, 1),
			RiskChange:          s.riskIncrease,
			ResilienceScore:     math.Max(0, 100-newRisk),
			AutomationShock:     s.automationShock,
		}
	}
	return out, nil
}

// ExtractAutomationShock reads the automation scenario's shock, defaulting to
// 0.3 when the scenario is missing.
func ExtractAutomationShock(result Result) float64 {
	impact, ok := result[AIAutomation]
	if !ok {
		return defaultAutomationShock
	}
	return util.Round(impact.AutomationShock, 2)
}
