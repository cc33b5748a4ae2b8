// Package plot renders normal density curves with percentile markers as a
// single HTML artifact.
package plot

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/paybench/capband/pkg/models"
)

const (
	chartWidth  = "900px"
	chartHeight = "420px"
)

// Renderer builds the density plot page for an analysis.
type Renderer struct {
	title string
}

// New creates a renderer with the given page title.
func New(title string) *Renderer {
	if title == "" {
		title = "Salary Cap Percentile Drops"
	}
	return &Renderer{title: title}
}

// RenderFile writes the plot page to path.
func (r *Renderer) RenderFile(path string, analysis *models.Analysis) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create plot file: %w", err)
	}
	defer f.Close()

	return r.Render(f, analysis)
}

// Render writes the plot page to w: one chart per band, each showing the
// density curve over [mu-4s, mu+4s] with vertical markers at the median,
// the configured cuts, and the statutory p65 salary.
func (r *Renderer) Render(w io.Writer, analysis *models.Analysis) error {
	if len(analysis.Bands) == 0 {
		return fmt.Errorf("nothing to plot: analysis has no bands")
	}

	page := components.NewPage()
	page.PageTitle = r.title
	page.SetLayout(components.PageCenterLayout)

	for _, band := range analysis.Bands {
		chart, err := bandChart(band)
		if err != nil {
			return err
		}
		page.AddCharts(chart)
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render plot page: %w", err)
	}
	return nil
}

func bandChart(ba models.BandAnalysis) (*charts.Line, error) {
	if len(ba.Curve) == 0 {
		return nil, fmt.Errorf("band %s has no curve samples", ba.Band.Label)
	}

	row := ba.Band.Row

	labels := make([]string, len(ba.Curve))
	data := make([]opts.LineData, len(ba.Curve))
	for i, point := range ba.Curve {
		labels[i] = fmt.Sprintf("%.0f", point.Salary)
		data[i] = opts.LineData{Value: point.Density}
	}

	marks := []opts.MarkLineNameXAxisItem{
		{Name: "P50", XAxis: nearestLabel(ba.Curve, row.Mu)},
		{Name: fmt.Sprintf("p65 (%.1f)", ba.P65Percentile), XAxis: nearestLabel(ba.Curve, row.P65)},
	}
	for _, cut := range ba.Cuts {
		marks = append(marks, opts.MarkLineNameXAxisItem{
			Name:  fmt.Sprintf("%.0f%% of midpoint (%.1f)", cut.Ratio*100, cut.Percentile),
			XAxis: nearestLabel(ba.Curve, cut.Salary),
		})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  chartWidth,
			Height: chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s (%s spread)", row.Title, ba.Band.Label),
			Subtitle: fmt.Sprintf("mu %.0f, sigma %.0f (ratio %.1f%%)",
				row.Mu, row.Sigma, row.SigmaRatio()*100),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Salary"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Density"}),
	)

	line.SetXAxis(labels)
	line.AddSeries("Density", data,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		charts.WithMarkLineNameXAxisItemOpts(marks...),
		charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
			Symbol: []string{"none", "none"},
			Label:  &opts.Label{Show: opts.Bool(true), Formatter: "{b}"},
		}),
	)

	return line, nil
}

// nearestLabel returns the x-axis label of the curve sample closest to
// salary. The x-axis is categorical, so mark lines must land on a sample.
func nearestLabel(curve []models.CurvePoint, salary float64) string {
	best := 0
	bestDist := math.Abs(curve[0].Salary - salary)
	for i, point := range curve[1:] {
		if d := math.Abs(point.Salary - salary); d < bestDist {
			best = i + 1
			bestDist = d
		}
	}
	return fmt.Sprintf("%.0f", curve[best].Salary)
}
