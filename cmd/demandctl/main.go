// Package main provides demandctl, an offline CLI over the career-radar analyzers.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "demandctl",
	Short:         "Job demand and career risk analyzers from the command line",
	Long:          "demandctl scores job profiles, replays CSV batches and runs the risk, ROI and shock analyzers without starting the HTTP API.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
