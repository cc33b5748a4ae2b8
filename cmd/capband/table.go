package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/paybench/capband/internal/output"
	"github.com/paybench/capband/pkg/models"
)

func tableCmd() *cli.Command {
	return &cli.Command{
		Name:      "table",
		Aliases:   []string{"t"},
		Usage:     "Print percentile ranks at each configured cut ratio",
		ArgsUsage: "[dataset.csv]",
		Action:    runTable,
	}
}

func runTable(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	analysis, _, err := runAnalysis(c, cfg)
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(output.ParseFormat(c.String("format")), c.String("output"), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	colored := formatter.Format() == output.FormatText && formatter.Colored()
	return formatter.Output(buildCutTable(analysis, colored))
}

// buildCutTable tabulates the percentile rank and drop at every cut ratio
// for every selected band.
func buildCutTable(analysis *models.Analysis, colored bool) *output.Table {
	var rows [][]string
	for _, band := range analysis.Bands {
		for _, cut := range band.Cuts {
			rows = append(rows, []string{
				band.Band.Label,
				band.Band.Row.Title,
				fmt.Sprintf("%.1f%%", band.Band.Row.SigmaRatio()*100),
				fmt.Sprintf("%.0f%%", cut.Ratio*100),
				output.Money(cut.Salary),
				output.Percentile(cut.Percentile),
				output.DropString(cut.Drop, colored),
			})
		}
	}

	return output.NewTable(
		"Percentile Rank at Cap Ratios",
		[]string{"Band", "Title", "Spread", "Cap", "Cap Salary", "Percentile", "Drop"},
		rows,
		[]string{
			fmt.Sprintf("Bands: %d", len(analysis.Bands)),
			fmt.Sprintf("Dataset rows: %d", analysis.Dataset.Rows),
			fmt.Sprintf("Fingerprint: %s", shortFingerprint(analysis.Dataset.Fingerprint)),
			"", "", "", "",
		},
		analysis,
	)
}

// buildSelectionTable shows which row each spread target resolved to.
func buildSelectionTable(analysis *models.Analysis) *output.Table {
	var rows [][]string
	for _, band := range analysis.Bands {
		row := band.Band.Row
		rows = append(rows, []string{
			band.Band.Label,
			fmt.Sprintf("%.1f%%", band.Band.TargetRatio*100),
			row.Title,
			output.Money(row.Mu),
			output.Money(row.Sigma),
			fmt.Sprintf("%.1f%%", row.SigmaRatio()*100),
			output.Money(row.P65),
			output.Percentile(band.P65Percentile),
		})
	}

	return output.NewTable(
		"Selected Bands",
		[]string{"Band", "Target", "Title", "Mu", "Sigma", "Ratio", "P65 Salary", "P65 Rank"},
		rows,
		nil,
		analysis.Bands,
	)
}
