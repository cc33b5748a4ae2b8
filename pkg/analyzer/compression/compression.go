// Package compression computes how salary caps below the market midpoint
// translate into percentile-rank drops for each selected benchmark band.
package compression

import (
	"context"
	"errors"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/paybench/capband/pkg/analyzer/percentile"
	"github.com/paybench/capband/pkg/dataset"
	"github.com/paybench/capband/pkg/models"
)

// ErrZeroSigma is returned when a selected row has no spread; the percentile
// of a cap under a degenerate distribution is undefined.
var ErrZeroSigma = errors.New("row has zero sigma")

const (
	defaultSamples = 241
	curveHalfWidth = 4.0 // curve spans mu +/- 4 sigma
)

// Analyzer computes compression analyses for selected bands.
type Analyzer struct {
	cuts    []float64
	samples int
	workers int
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithCuts sets the cap ratios tabulated per band.
func WithCuts(cuts []float64) Option {
	return func(a *Analyzer) {
		if len(cuts) > 0 {
			a.cuts = cuts
		}
	}
}

// WithSamples sets the number of density samples per curve.
func WithSamples(n int) Option {
	return func(a *Analyzer) {
		if n > 1 {
			a.samples = n
		}
	}
}

// WithWorkers bounds the number of bands analyzed concurrently.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.workers = n
		}
	}
}

// New creates a compression analyzer. Defaults: cuts at 95% and 90% of the
// midpoint, 241 curve samples, 4 workers.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		cuts:    []float64{0.95, 0.90},
		samples: defaultSamples,
		workers: 4,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze selects one band per target and computes its cut points, the rank
// of the statutory p65 salary, and the density curve. Band order follows
// target order regardless of completion order.
func (a *Analyzer) Analyze(ctx context.Context, ds *dataset.Dataset, targets []models.SpreadTarget) (*models.Analysis, error) {
	bands, err := dataset.Select(ds.Rows, targets)
	if err != nil {
		return nil, fmt.Errorf("select bands: %w", err)
	}

	results := make([]models.BandAnalysis, len(bands))

	p := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(a.workers)
	for i, band := range bands {
		p.Go(func(ctx context.Context) error {
			ba, err := a.analyzeBand(band)
			if err != nil {
				return err
			}
			results[i] = ba
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return &models.Analysis{
		Dataset: ds.Info,
		Bands:   results,
	}, nil
}

func (a *Analyzer) analyzeBand(band models.Band) (models.BandAnalysis, error) {
	row := band.Row
	if row.Sigma <= 0 {
		return models.BandAnalysis{}, fmt.Errorf("band %s (%s): %w", band.Label, row.Title, ErrZeroSigma)
	}

	cuts := make([]models.CutPoint, len(a.cuts))
	for i, ratio := range a.cuts {
		rank := percentile.RankAtRatio(ratio, row.Mu, row.Sigma)
		cuts[i] = models.CutPoint{
			Ratio:      ratio,
			Salary:     ratio * row.Mu,
			Percentile: rank,
			Drop:       50 - rank,
		}
	}

	return models.BandAnalysis{
		Band:          band,
		Cuts:          cuts,
		P65Percentile: percentile.Rank(row.P65, row.Mu, row.Sigma),
		Curve:         a.sampleCurve(row),
	}, nil
}

// sampleCurve samples the normal density over [mu-4s, mu+4s] inclusive.
func (a *Analyzer) sampleCurve(row models.SalaryRow) []models.CurvePoint {
	lo := row.Mu - curveHalfWidth*row.Sigma
	step := 2 * curveHalfWidth * row.Sigma / float64(a.samples-1)

	curve := make([]models.CurvePoint, a.samples)
	for i := range curve {
		v := lo + float64(i)*step
		curve[i] = models.CurvePoint{
			Salary:  v,
			Density: percentile.Density(v, row.Mu, row.Sigma),
		}
	}
	return curve
}
