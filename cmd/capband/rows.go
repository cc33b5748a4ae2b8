package main

import (
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/paybench/capband/internal/output"
	"github.com/paybench/capband/internal/progress"
	"github.com/paybench/capband/pkg/dataset"
	"github.com/paybench/capband/pkg/models"
	"github.com/paybench/capband/pkg/stats"
)

func rowsCmd() *cli.Command {
	return &cli.Command{
		Name:      "rows",
		Usage:     "List dataset rows with derived spread ratios",
		ArgsUsage: "[dataset.csv]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "selected",
				Usage: "Show only the rows the configured targets select",
			},
			&cli.BoolFlag{
				Name:  "sort-ratio",
				Usage: "Sort rows by sigma/mu ratio instead of dataset order",
			},
		},
		Action: runRows,
	}
}

func runRows(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	spinner := progress.NewSpinner("Loading dataset...")
	ds, err := dataset.Load(datasetPath(c))
	if err != nil {
		spinner.Fail(err)
		return err
	}
	spinner.Finish()

	rows := ds.Rows
	selectedDupes := 0
	if c.Bool("selected") {
		bands, err := dataset.Select(ds.Rows, cfg.SpreadTargets())
		if err != nil {
			return err
		}
		seen := make(map[int]bool)
		rows = rows[:0:0]
		for _, band := range bands {
			if seen[band.RowIndex] {
				selectedDupes++
				continue
			}
			seen[band.RowIndex] = true
			rows = append(rows, band.Row)
		}
	}

	if c.Bool("sort-ratio") {
		sorted := make([]models.SalaryRow, len(rows))
		copy(sorted, rows)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].SigmaRatio() < sorted[j].SigmaRatio()
		})
		rows = sorted
	}

	formatter, err := output.NewFormatter(output.ParseFormat(c.String("format")), c.String("output"), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if selectedDupes > 0 {
		formatter.Warning("%d targets share a nearest row", selectedDupes)
	}

	var tableRows [][]string
	for _, row := range rows {
		tableRows = append(tableRows, []string{
			row.Title,
			output.Money(row.Mu),
			output.Money(row.Sigma),
			fmt.Sprintf("%.1f%%", row.SigmaRatio()*100),
			output.Money(row.P65),
		})
	}

	summary := stats.SummarizeRatios(rows)
	table := output.NewTable(
		"Dataset Rows",
		[]string{"Title", "Mu", "Sigma", "Ratio", "P65"},
		tableRows,
		[]string{
			fmt.Sprintf("Rows: %d", len(rows)),
			fmt.Sprintf("Fingerprint: %s", shortFingerprint(ds.Info.Fingerprint)),
			"",
			fmt.Sprintf("Mean: %.1f%%", summary.Mean*100),
			fmt.Sprintf("Median: %.1f%%", summary.Median*100),
		},
		rows,
	)

	if err := formatter.Output(table); err != nil {
		return err
	}

	if formatter.Format() == output.FormatText && (c.Bool("verbose") || cfg.Output.Verbose) {
		fmt.Fprintf(formatter.Writer(), "Ratio range: %.1f%% to %.1f%%\n", summary.Min*100, summary.Max*100)
	}
	return nil
}
