package handler

import (
	"strconv"

	"fx_dashboard/internal/feature/fxrates/usecase"
)

// row is one line of the data table under the chart.
type row struct {
	Date     string
	History  *float64
	Forecast *float64
}

type page struct {
	View     usecase.View
	Summary  string
	Rows     []row
	Forecast bool
	Min, Max int
}

func newPage(v usecase.View) page {
	p := page{
		View:    v,
		Summary: v.Summary(),
		Min:     usecase.MinHorizon,
		Max:     usecase.MaxHorizon,
	}
	if v.Phase != usecase.PhaseChart {
		return p
	}

	p.Forecast = len(v.Chart.Datasets) > 1
	p.Rows = make([]row, len(v.Chart.Labels))
	for i, label := range v.Chart.Labels {
		p.Rows[i].Date = label
		p.Rows[i].History = v.Chart.Datasets[0].Data[i]
		if p.Forecast {
			p.Rows[i].Forecast = v.Chart.Datasets[1].Data[i]
		}
	}
	return p
}

// formatRate prints a rate with four decimals, or "-" for a gap.
func formatRate(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 4, 64)
}
