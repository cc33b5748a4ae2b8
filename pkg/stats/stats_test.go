package stats

import (
	"math"
	"testing"

	"github.com/paybench/capband/pkg/models"
)

func TestSummarizeRatios(t *testing.T) {
	rows := []models.SalaryRow{
		{Title: "A", Mu: 10000, Sigma: 500},  // 0.05
		{Title: "B", Mu: 10000, Sigma: 1000}, // 0.10
		{Title: "C", Mu: 10000, Sigma: 1800}, // 0.18
	}

	s := SummarizeRatios(rows)

	if math.Abs(s.Mean-0.11) > 1e-9 {
		t.Errorf("Mean = %v, want 0.11", s.Mean)
	}
	if math.Abs(s.Median-0.10) > 1e-9 {
		t.Errorf("Median = %v, want 0.10", s.Median)
	}
	if s.Min != 0.05 || s.Max != 0.18 {
		t.Errorf("Min/Max = %v/%v, want 0.05/0.18", s.Min, s.Max)
	}
}

func TestSummarizeRatiosEmpty(t *testing.T) {
	s := SummarizeRatios(nil)
	if s != (RatioSummary{}) {
		t.Errorf("SummarizeRatios(nil) = %+v, want zero value", s)
	}
}
