// Package models defines the data types shared between the dataset loader,
// the analyzers, and the output layers.
package models

// SalaryRow is one market benchmark: a job title with the mean and standard
// deviation of its market salary distribution and the statutory 65th
// percentile salary published alongside it. Rows are immutable once loaded.
type SalaryRow struct {
	Title string  `json:"title"`
	Mu    float64 `json:"mu"`
	Sigma float64 `json:"sigma"`
	P65   float64 `json:"p65"`
}

// SigmaRatio returns sigma/mu, the relative spread of the benchmark.
// Rows are validated for mu > 0 at load time.
func (r SalaryRow) SigmaRatio() float64 {
	return r.Sigma / r.Mu
}

// SpreadTarget names a relative spread the selector should find a
// representative row for.
type SpreadTarget struct {
	Label string  `json:"label"`
	Ratio float64 `json:"ratio"`
}

// Band is a selected row together with the spread target it was chosen for.
// RowIndex identifies the row within the dataset; titles are not required to
// be unique.
type Band struct {
	Label       string    `json:"label"`
	TargetRatio float64   `json:"target_ratio"`
	RowIndex    int       `json:"row_index"`
	Row         SalaryRow `json:"row"`
}

// CutPoint is the percentile rank of a capped salary. Salary is Ratio*Mu and
// Drop is how many percentile points the cap sits below the median.
type CutPoint struct {
	Ratio      float64 `json:"ratio"`
	Salary     float64 `json:"salary"`
	Percentile float64 `json:"percentile"`
	Drop       float64 `json:"drop"`
}

// CurvePoint is one sample of a normal density curve.
type CurvePoint struct {
	Salary  float64 `json:"salary"`
	Density float64 `json:"density"`
}

// BandAnalysis holds everything computed for one band: the cut points for
// the table, the rank of the statutory p65 salary, and the density samples
// consumed by the plot renderer.
type BandAnalysis struct {
	Band          Band         `json:"band"`
	Cuts          []CutPoint   `json:"cuts"`
	P65Percentile float64      `json:"p65_percentile"`
	Curve         []CurvePoint `json:"curve,omitempty"`
}

// DatasetInfo records provenance of the input file so rendered artifacts can
// be traced back to the exact dataset they were computed from.
type DatasetInfo struct {
	Path        string `json:"path"`
	Fingerprint string `json:"fingerprint"`
	Rows        int    `json:"rows"`
}

// Analysis is the complete report for one dataset.
type Analysis struct {
	Dataset DatasetInfo    `json:"dataset"`
	Bands   []BandAnalysis `json:"bands"`
}
