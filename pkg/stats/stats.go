// Package stats provides summary statistics over salary benchmark tables.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/paybench/capband/pkg/models"
)

// RatioSummary describes the distribution of sigma/mu ratios in a dataset.
type RatioSummary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// SummarizeRatios computes ratio statistics across rows.
// Returns zero values for an empty slice.
func SummarizeRatios(rows []models.SalaryRow) RatioSummary {
	if len(rows) == 0 {
		return RatioSummary{}
	}

	ratios := make([]float64, len(rows))
	for i, row := range rows {
		ratios[i] = row.SigmaRatio()
	}
	sort.Float64s(ratios)

	return RatioSummary{
		Mean:   stat.Mean(ratios, nil),
		Median: stat.Quantile(0.5, stat.Empirical, ratios, nil),
		Min:    ratios[0],
		Max:    ratios[len(ratios)-1],
	}
}
