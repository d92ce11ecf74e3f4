// Package chartpng draws the dashboard chart view as a PNG image.
package chartpng

import (
	"io"

	"fx_dashboard/internal/feature/fxrates/usecase"
	"fx_dashboard/internal/platform/chart"
)

// Renderer renders usecase views with the platform chart package.
type Renderer struct {
	Width  int
	Height int
}

// NewRenderer returns a Renderer of the given size; zero means the chart default.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{Width: width, Height: height}
}

// Render writes the chart of v to w. It returns chart.ErrNothingToPlot when
// no dataset has a value.
func (r *Renderer) Render(w io.Writer, v usecase.View) error {
	return chart.Render(w, PlotFromView(v, r.Width, r.Height))
}

// PlotFromView maps the renderer-neutral chart of v onto a chart.Plot.
func PlotFromView(v usecase.View, width, height int) chart.Plot {
	p := chart.Plot{
		Title:  string(v.Pair),
		Labels: v.Chart.Labels,
		Width:  width,
		Height: height,
	}
	if d := v.Chart.Domain; d != nil {
		lo, hi := d.Min, d.Max
		p.YMin, p.YMax = &lo, &hi
	}
	for _, ds := range v.Chart.Datasets {
		p.Lines = append(p.Lines, chart.Line{
			Name:     ds.Label,
			Values:   ds.Data,
			Color:    ds.Color,
			Dashed:   ds.Dashed,
			SpanGaps: ds.SpanGaps,
		})
	}
	return p
}
