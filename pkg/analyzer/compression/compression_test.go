package compression

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paybench/capband/pkg/dataset"
	"github.com/paybench/capband/pkg/models"
)

func testDataset(rows ...models.SalaryRow) *dataset.Dataset {
	return &dataset.Dataset{
		Info: models.DatasetInfo{Path: "test.csv", Fingerprint: "abc", Rows: len(rows)},
		Rows: rows,
	}
}

func TestAnalyze(t *testing.T) {
	ds := testDataset(
		models.SalaryRow{Title: "Staff Nurse", Mu: 10000, Sigma: 500, P65: 10192},
		models.SalaryRow{Title: "Software Engineer", Mu: 10000, Sigma: 1000, P65: 10385},
		models.SalaryRow{Title: "Sales Director", Mu: 10000, Sigma: 1800, P65: 10693},
	)

	a := New()
	analysis, err := a.Analyze(context.Background(), ds, dataset.DefaultTargets())
	require.NoError(t, err)
	require.Len(t, analysis.Bands, 3)

	// Band order follows target order, not completion order.
	assert.Equal(t, "narrow", analysis.Bands[0].Band.Label)
	assert.Equal(t, "typical", analysis.Bands[1].Band.Label)
	assert.Equal(t, "wide", analysis.Bands[2].Band.Label)

	narrow := analysis.Bands[0]
	require.Len(t, narrow.Cuts, 2)
	assert.Equal(t, 0.95, narrow.Cuts[0].Ratio)
	assert.Equal(t, 9500.0, narrow.Cuts[0].Salary)
	assert.InDelta(t, 15.87, narrow.Cuts[0].Percentile, 0.05)
	assert.InDelta(t, 2.28, narrow.Cuts[1].Percentile, 0.05)
	assert.InDelta(t, 50-2.28, narrow.Cuts[1].Drop, 0.05)

	// p65 salary sits above the median for every band.
	for _, band := range analysis.Bands {
		assert.Greater(t, band.P65Percentile, 50.0, band.Band.Label)
	}

	// Wider spreads soften the drop at the same cut.
	assert.Less(t, analysis.Bands[0].Cuts[1].Percentile, analysis.Bands[1].Cuts[1].Percentile)
	assert.Less(t, analysis.Bands[1].Cuts[1].Percentile, analysis.Bands[2].Cuts[1].Percentile)

	assert.Equal(t, ds.Info, analysis.Dataset)
}

func TestAnalyzeCurve(t *testing.T) {
	ds := testDataset(models.SalaryRow{Title: "Nurse", Mu: 10000, Sigma: 500, P65: 10192})

	a := New(WithSamples(5))
	analysis, err := a.Analyze(context.Background(), ds, []models.SpreadTarget{{Label: "only", Ratio: 0.05}})
	require.NoError(t, err)

	curve := analysis.Bands[0].Curve
	require.Len(t, curve, 5)
	assert.InDelta(t, 8000, curve[0].Salary, 1e-9)   // mu - 4 sigma
	assert.InDelta(t, 12000, curve[4].Salary, 1e-9)  // mu + 4 sigma
	assert.InDelta(t, 10000, curve[2].Salary, 1e-9)  // midpoint sample
	assert.Greater(t, curve[2].Density, curve[0].Density)
}

func TestAnalyzeZeroSigma(t *testing.T) {
	ds := testDataset(models.SalaryRow{Title: "Flat Grade", Mu: 10000, Sigma: 0, P65: 10000})

	a := New()
	_, err := a.Analyze(context.Background(), ds, []models.SpreadTarget{{Label: "only", Ratio: 0.05}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrZeroSigma))
	assert.Contains(t, err.Error(), "Flat Grade")
}

func TestAnalyzeEmptyDataset(t *testing.T) {
	a := New()
	_, err := a.Analyze(context.Background(), testDataset(), dataset.DefaultTargets())
	require.Error(t, err)
	assert.True(t, errors.Is(err, dataset.ErrEmptyDataset))
}

func TestOptions(t *testing.T) {
	a := New(WithCuts([]float64{0.85}), WithSamples(11), WithWorkers(1))
	assert.Equal(t, []float64{0.85}, a.cuts)
	assert.Equal(t, 11, a.samples)
	assert.Equal(t, 1, a.workers)

	// Degenerate values fall back to defaults.
	a = New(WithCuts(nil), WithSamples(1), WithWorkers(0))
	assert.Equal(t, []float64{0.95, 0.90}, a.cuts)
	assert.Equal(t, defaultSamples, a.samples)
	assert.Equal(t, 4, a.workers)
}
