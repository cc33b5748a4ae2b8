package dataset

import (
	"math"

	"github.com/paybench/capband/pkg/models"
)

// DefaultTargets are the illustrative spreads the report selects rows for:
// a tight distribution, a typical one, and a wide one.
func DefaultTargets() []models.SpreadTarget {
	return []models.SpreadTarget{
		{Label: "narrow", Ratio: 0.05},
		{Label: "typical", Ratio: 0.10},
		{Label: "wide", Ratio: 0.18},
	}
}

// Select picks one band per target: the row whose sigma/mu ratio is nearest
// the target ratio, ties broken by first occurrence in dataset order.
// The same row may serve multiple targets.
func Select(rows []models.SalaryRow, targets []models.SpreadTarget) ([]models.Band, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	bands := make([]models.Band, 0, len(targets))
	for _, target := range targets {
		best := 0
		bestDist := math.Abs(rows[0].SigmaRatio() - target.Ratio)
		for i, row := range rows[1:] {
			if d := math.Abs(row.SigmaRatio() - target.Ratio); d < bestDist {
				best = i + 1
				bestDist = d
			}
		}
		bands = append(bands, models.Band{
			Label:       target.Label,
			TargetRatio: target.Ratio,
			RowIndex:    best,
			Row:         rows[best],
		})
	}

	return bands, nil
}
