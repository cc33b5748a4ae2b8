package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/paybench/capband/internal/progress"
	"github.com/paybench/capband/pkg/analyzer/compression"
	"github.com/paybench/capband/pkg/config"
	"github.com/paybench/capband/pkg/dataset"
	"github.com/paybench/capband/pkg/models"
)

// runAnalysis loads the dataset and its optional manifest, then computes the
// compression analysis for the configured targets and cuts.
func runAnalysis(c *cli.Context, cfg *config.Config) (*models.Analysis, *dataset.Manifest, error) {
	path := datasetPath(c)

	spinner := progress.NewSpinner("Loading dataset...")
	ds, err := dataset.Load(path)
	if err != nil {
		spinner.Fail(err)
		return nil, nil, err
	}
	manifest, err := dataset.LoadManifest(path)
	if err != nil {
		spinner.Fail(err)
		return nil, nil, err
	}
	spinner.Finish()

	spinner = progress.NewSpinner("Computing percentiles...")
	analyzer := compression.New(
		compression.WithCuts(cfg.Cuts),
		compression.WithSamples(cfg.Plot.Samples),
	)
	analysis, err := analyzer.Analyze(c.Context, ds, cfg.SpreadTargets())
	if err != nil {
		spinner.Fail(err)
		return nil, nil, fmt.Errorf("analysis failed: %w", err)
	}
	spinner.Finish()

	return analysis, manifest, nil
}

// shortFingerprint truncates a dataset fingerprint for table footers.
func shortFingerprint(fp string) string {
	if len(fp) > 12 {
		return fp[:12]
	}
	return fp
}
