package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/paybench/capband/internal/output"
	"github.com/paybench/capband/internal/plot"
	"github.com/paybench/capband/pkg/dataset"
	"github.com/paybench/capband/pkg/models"
)

func reportCmd() *cli.Command {
	return &cli.Command{
		Name:      "report",
		Aliases:   []string{"r"},
		Usage:     "Full report: selection, percentile table, and density plot",
		ArgsUsage: "[dataset.csv]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "plot-output",
				Usage: "Path for the rendered plot HTML (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "no-plot",
				Usage: "Skip rendering the plot artifact",
			},
		},
		Action: runReport,
	}
}

func runReport(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	analysis, manifest, err := runAnalysis(c, cfg)
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(output.ParseFormat(c.String("format")), c.String("output"), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	colored := formatter.Format() == output.FormatText && formatter.Colored()
	report := &output.Report{
		Title: "Salary Cap Percentile Report",
		Parts: []output.Renderable{
			datasetSection(analysis, manifest),
			buildSelectionTable(analysis),
			buildCutTable(analysis, colored),
		},
		Data: analysis,
	}

	if err := formatter.Output(report); err != nil {
		return err
	}

	if c.Bool("no-plot") {
		return nil
	}

	plotPath := c.String("plot-output")
	if plotPath == "" {
		plotPath = cfg.Plot.Output
	}
	if err := plot.New(cfg.Plot.Title).RenderFile(plotPath, analysis); err != nil {
		return fmt.Errorf("render plot: %w", err)
	}
	formatter.Success("Plot written to %s", plotPath)

	return nil
}

func datasetSection(analysis *models.Analysis, manifest *dataset.Manifest) *output.Section {
	content := fmt.Sprintf("%s (%d rows, fingerprint %s)",
		analysis.Dataset.Path, analysis.Dataset.Rows, shortFingerprint(analysis.Dataset.Fingerprint))
	if manifest != nil {
		content += fmt.Sprintf("\nSource: %s, %s, as of %s", manifest.Source, manifest.Currency, manifest.AsOf)
		if manifest.Notes != "" {
			content += "\n" + manifest.Notes
		}
	}
	return &output.Section{Title: "Dataset", Content: content}
}
