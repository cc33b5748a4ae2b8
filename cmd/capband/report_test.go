package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/paybench/capband/pkg/analyzer/compression"
	"github.com/paybench/capband/pkg/config"
	"github.com/paybench/capband/pkg/dataset"
	"github.com/paybench/capband/pkg/models"
)

const testCSV = `title,mu,sigma,p65
Staff Nurse,10000,500,10192
Software Engineer,10000,1000,10385
Sales Director,10000,1800,10693
`

func testAnalysis(t *testing.T) *models.Analysis {
	t.Helper()
	rows, err := dataset.Parse([]byte(testCSV))
	require.NoError(t, err)

	ds := &dataset.Dataset{
		Info: models.DatasetInfo{Path: "test.csv", Fingerprint: dataset.Fingerprint([]byte(testCSV)), Rows: len(rows)},
		Rows: rows,
	}

	analysis, err := compression.New(compression.WithSamples(21)).Analyze(
		context.Background(), ds, dataset.DefaultTargets())
	require.NoError(t, err)
	return analysis
}

func TestBuildCutTable(t *testing.T) {
	table := buildCutTable(testAnalysis(t), false)

	// Three bands, two cuts each.
	require.Len(t, table.Rows, 6)
	assert.Equal(t, []string{"Band", "Title", "Spread", "Cap", "Cap Salary", "Percentile", "Drop"}, table.Headers)

	first := table.Rows[0]
	assert.Equal(t, "narrow", first[0])
	assert.Equal(t, "Staff Nurse", first[1])
	assert.Equal(t, "95%", first[3])
	assert.Equal(t, "9,500", first[4])
	assert.Equal(t, "15.9", first[5])

	// The 90% cut on the narrow band is the deepest drop in the table.
	assert.Equal(t, "2.3", table.Rows[1][5])
	assert.Equal(t, "47.7", table.Rows[1][6])
}

func TestBuildSelectionTable(t *testing.T) {
	table := buildSelectionTable(testAnalysis(t))

	require.Len(t, table.Rows, 3)
	assert.Equal(t, "typical", table.Rows[1][0])
	assert.Equal(t, "Software Engineer", table.Rows[1][2])
	assert.Equal(t, "10.0%", table.Rows[1][5])
}

func TestDatasetSection(t *testing.T) {
	analysis := testAnalysis(t)

	section := datasetSection(analysis, nil)
	assert.Contains(t, section.Content, "test.csv")
	assert.Contains(t, section.Content, "3 rows")

	manifest := &dataset.Manifest{Source: "survey", Currency: "EUR", AsOf: "2026-01-15", Notes: "gross"}
	section = datasetSection(analysis, manifest)
	assert.Contains(t, section.Content, "survey")
	assert.Contains(t, section.Content, "EUR")
	assert.Contains(t, section.Content, "gross")
}

func TestGenerateDefaultConfigRoundTrips(t *testing.T) {
	content, err := generateDefaultConfig()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(content, "# Capband configuration"))

	path := filepath.Join(t.TempDir(), "capband.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestRunInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capband.toml")
	app := &cli.App{Commands: []*cli.Command{initCmd()}}

	require.NoError(t, app.Run([]string{"capband", "init", "-o", path}))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	// A second init without --force refuses to clobber the file.
	err = app.Run([]string{"capband", "init", "-o", path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, app.Run([]string{"capband", "init", "-o", path, "--force"}))
}
