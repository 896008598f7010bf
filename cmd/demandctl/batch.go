package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/yanqian/career-radar/internal/domain/demand"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file.csv>",
	Short: "Score every row of a CSV file",
	Long: "Reads rows of job_title,location,experience_level,industry,required_skills[,expected] " +
		"and prints one prediction per row. When an expected column is present a pass count is printed.",
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

var batchWorkers int

func init() {
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", runtime.NumCPU(), "Concurrent scoring workers")
	rootCmd.AddCommand(batchCmd)
}

type batchRow struct {
	Line     int
	Title    string
	Location string
	Exp      string
	Industry string
	Skills   string
	Expected string
}

type batchResult struct {
	Row    batchRow
	Result demand.Result
}

// Passed reports whether the prediction matched the expected label.
// Rows without an expectation never pass or fail.
func (r batchResult) Passed() (bool, bool) {
	if r.Row.Expected == "" {
		return false, false
	}
	return strings.EqualFold(string(r.Result.Demand), r.Row.Expected), true
}

func runBatch(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open batch file: %w", err)
	}
	defer f.Close()

	rows, err := parseBatchCSV(f)
	if err != nil {
		return err
	}
	results, err := scoreBatch(cmd.Context(), rows, batchWorkers)
	if err != nil {
		return err
	}
	writeBatchReport(cmd.OutOrStdout(), results)
	return nil
}

func parseBatchCSV(r io.Reader) ([]batchRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []batchRow
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read batch csv: %w", err)
		}
		line++
		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "job_title") {
			continue
		}
		if len(record) < 5 {
			return nil, fmt.Errorf("line %d: want at least 5 columns, got %d", line, len(record))
		}
		row := batchRow{
			Line:     line,
			Title:    record[0],
			Location: record[1],
			Exp:      record[2],
			Industry: record[3],
			Skills:   record[4],
		}
		if len(record) > 5 {
			row.Expected = strings.TrimSpace(record[5])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// scoreBatch scores rows concurrently; results keep the input order.
func scoreBatch(ctx context.Context, rows []batchRow, workers int) ([]batchResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]batchResult, len(rows))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, row := range rows {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := demand.PredictJobDemand(row.Title, row.Location, row.Exp, row.Industry, row.Skills)
			results[i] = batchResult{Row: row, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeBatchReport(out io.Writer, results []batchResult) {
	passed, checked := 0, 0
	for _, r := range results {
		fmt.Fprintf(out, "%-32s %-6s %5g%%  %s", r.Row.Title, r.Result.Demand, r.Result.Confidence, r.Result.CareerRisk)
		if ok, has := r.Passed(); has {
			checked++
			status := "FAIL"
			if ok {
				passed++
				status = "PASS"
			}
			fmt.Fprintf(out, "  expected=%s %s", r.Row.Expected, status)
		}
		fmt.Fprintln(out)
	}
	if checked > 0 {
		fmt.Fprintf(out, "\npassed %d/%d\n", passed, checked)
	}
}
