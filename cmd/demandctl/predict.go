package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanqian/career-radar/internal/domain/demand"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict demand for one job profile",
	Long:  "Scores a job profile given by flags, or prompts for profiles on stdin with --interactive until the job title is 'exit'.",
	RunE:  runPredict,
}

var (
	predictTitle       string
	predictLocation    string
	predictExperience  string
	predictIndustry    string
	predictSkills      string
	predictInteractive bool
)

func init() {
	predictCmd.Flags().StringVarP(&predictTitle, "title", "t", "", "Job title")
	predictCmd.Flags().StringVarP(&predictLocation, "location", "l", "", "Location")
	predictCmd.Flags().StringVarP(&predictExperience, "experience", "e", "", "Experience level, e.g. '2-5 years'")
	predictCmd.Flags().StringVar(&predictIndustry, "industry", "", "Industry")
	predictCmd.Flags().StringVarP(&predictSkills, "skills", "s", "", "Comma separated skills")
	predictCmd.Flags().BoolVarP(&predictInteractive, "interactive", "i", false, "Prompt for profiles on stdin")

	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if predictInteractive {
		return interactivePredict(cmd.InOrStdin(), out)
	}
	if strings.TrimSpace(predictTitle) == "" {
		return fmt.Errorf("--title is required unless --interactive is set")
	}
	res := demand.PredictJobDemand(predictTitle, predictLocation, predictExperience, predictIndustry, predictSkills)
	printPrediction(out, res)
	return nil
}

func interactivePredict(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	ask := func(prompt string) (string, bool) {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}

	fmt.Fprintln(out, "Interactive mode (type 'exit' as the job title to stop)")
	for {
		title, ok := ask("\nJob Title: ")
		if !ok || strings.EqualFold(strings.TrimSpace(title), "exit") {
			break
		}
		location, _ := ask("Location: ")
		experience, _ := ask("Experience Level: ")
		industry, _ := ask("Industry: ")
		skills, _ := ask("Skills (comma separated): ")

		res := demand.PredictJobDemand(title, location, experience, industry, skills)
		fmt.Fprintln(out)
		printPrediction(out, res)
	}
	return scanner.Err()
}

func printPrediction(out io.Writer, res demand.Result) {
	fmt.Fprintf(out, "Predicted Demand   : %s\n", res.Demand)
	fmt.Fprintf(out, "Confidence Score   : %g%%\n", res.Confidence)
	fmt.Fprintf(out, "Career Risk Level  : %s\n", res.CareerRisk)
	fmt.Fprintf(out, "AI Exposure Chance : %g%%\n", res.AIProbability)
}
