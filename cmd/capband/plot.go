package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/paybench/capband/internal/plot"
)

func plotCmd() *cli.Command {
	return &cli.Command{
		Name:      "plot",
		Aliases:   []string{"p"},
		Usage:     "Render density curves with percentile markers to HTML",
		ArgsUsage: "[dataset.csv]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "plot-output",
				Aliases: []string{"p"},
				Usage:   "Path for the rendered HTML (overrides config)",
			},
		},
		Action: runPlot,
	}
}

func runPlot(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	analysis, _, err := runAnalysis(c, cfg)
	if err != nil {
		return err
	}

	path := c.String("plot-output")
	if path == "" {
		path = cfg.Plot.Output
	}

	if err := plot.New(cfg.Plot.Title).RenderFile(path, analysis); err != nil {
		return fmt.Errorf("render plot: %w", err)
	}

	color.Green("Plot written to %s", path)
	return nil
}
