package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/yanqian/career-radar/internal/domain/careerrisk"
	"github.com/yanqian/career-radar/internal/domain/jobshock"
	"github.com/yanqian/career-radar/internal/domain/skillroi"
)

var roiCmd = &cobra.Command{
	Use:   "roi",
	Short: "Estimate the return of learning a skill",
	RunE:  runROI,
}

var shockCmd = &cobra.Command{
	Use:   "shock",
	Short: "Simulate market shocks for a role",
	RunE:  runShock,
}

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Compute the career risk profile of a role",
	RunE:  runRisk,
}

var (
	roiSkill    string
	roiCurrent  float64
	roiFuture   float64
	roiMonths   float64
	roiCurRisk  float64
	roiFutRisk  float64
	shockRole   string
	shockDemand float64
	shockSalary float64
	shockRisk   float64
	riskDemand  string
	riskVol     float64
	riskRole    string
)

func init() {
	roiCmd.Flags().StringVar(&roiSkill, "skill", "", "Skill name")
	roiCmd.Flags().Float64Var(&roiCurrent, "current-salary", 0, "Current salary")
	roiCmd.Flags().Float64Var(&roiFuture, "future-salary", 0, "Expected salary after learning")
	roiCmd.Flags().Float64Var(&roiMonths, "months", 0, "Learning time in months")
	roiCmd.Flags().Float64Var(&roiCurRisk, "current-risk", 0, "Current risk score (0-100)")
	roiCmd.Flags().Float64Var(&roiFutRisk, "future-risk", 0, "Risk score after learning (0-100)")

	shockCmd.Flags().StringVar(&shockRole, "role", "", "Role name")
	shockCmd.Flags().Float64Var(&shockDemand, "demand", 0, "Baseline demand (confidence)")
	shockCmd.Flags().Float64Var(&shockSalary, "salary", 0, "Baseline salary")
	shockCmd.Flags().Float64Var(&shockRisk, "risk", 0, "Baseline risk score")

	riskCmd.Flags().StringVar(&riskDemand, "demand", "", "Demand label: High, Medium or Low")
	riskCmd.Flags().Float64Var(&riskVol, "volatility", 0, "Volatility index")
	riskCmd.Flags().StringVar(&riskRole, "role", "", "Role name")

	rootCmd.AddCommand(roiCmd, shockCmd, riskCmd)
}

func runROI(cmd *cobra.Command, _ []string) error {
	res, err := skillroi.CalculateSkillROI(roiSkill, roiCurrent, roiFuture, roiMonths, roiCurRisk, roiFutRisk)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), map[string]any{
		"result":      res,
		"skillSafety": skillroi.NormalizedSkillSafety(res.ROIScore),
	})
}

func runShock(cmd *cobra.Command, _ []string) error {
	res, err := jobshock.SimulateJobShock(shockRole, shockDemand, shockSalary, shockRisk)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), map[string]any{
		"scenarios":       res,
		"automationShock": jobshock.ExtractAutomationShock(res),
	})
}

func runRisk(cmd *cobra.Command, _ []string) error {
	return printJSON(cmd.OutOrStdout(), careerrisk.CalculateCareerRisk(riskDemand, riskVol, riskRole))
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
