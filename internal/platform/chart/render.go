// Package chart renders dashboard line charts as PNG images.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNothingToPlot is returned when no line has a single non-nil value.
var ErrNothingToPlot = errors.New("nothing to plot")

const (
	DefaultWidth  = 960
	DefaultHeight = 420
	maxXTicks     = 8
)

// Line is one plotted dataset. Values are aligned with Plot.Labels; nil is a gap.
type Line struct {
	Name     string
	Values   []*float64
	Color    string // #rrggbb
	Dashed   bool
	SpanGaps bool
}

// Plot describes a chart over a shared categorical X axis.
type Plot struct {
	Title  string
	Labels []string
	Lines  []Line
	// YMin/YMax fix the Y axis when both are set; otherwise it autoscales.
	YMin, YMax *float64
	Width      int
	Height     int
}

// Render writes p as a PNG to w.
func Render(w io.Writer, p Plot) error {
	var series []gochart.Series
	for _, l := range p.Lines {
		series = append(series, lineSeries(l)...)
	}
	if len(series) == 0 {
		return ErrNothingToPlot
	}

	width, height := p.Width, p.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	ch := gochart.Chart{
		Title:      p.Title,
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Range: &gochart.ContinuousRange{Min: -0.5, Max: float64(len(p.Labels)) - 0.5},
			Ticks: xTicks(p.Labels),
		},
		Series: series,
	}
	if p.YMin != nil && p.YMax != nil && *p.YMin < *p.YMax {
		ch.YAxis.Range = &gochart.ContinuousRange{Min: *p.YMin, Max: *p.YMax}
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	if err := ch.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// lineSeries turns a line into go-chart series. Spanning lines become one
// series over their non-nil points; others are split at every gap.
func lineSeries(l Line) []gochart.Series {
	style := gochart.Style{StrokeWidth: 2}
	// Without a usable colour go-chart picks its default series colour.
	if hex, ok := hexColor(l.Color); ok {
		style.StrokeColor = drawing.ColorFromHex(hex)
	}
	if l.Dashed {
		style.StrokeDashArray = []float64{6, 4}
	}

	var out []gochart.Series
	var xs, ys []float64
	flush := func() {
		if len(xs) == 0 {
			return
		}
		s := style
		if len(xs) == 1 {
			// go-chart needs two points per series; draw a dot instead.
			xs = append(xs, xs[0])
			ys = append(ys, ys[0])
			s.DotWidth = 3
			s.DotColor = style.StrokeColor
		}
		name := ""
		if len(out) == 0 {
			name = l.Name
		}
		out = append(out, gochart.ContinuousSeries{Name: name, XValues: xs, YValues: ys, Style: s})
		xs, ys = nil, nil
	}

	for i, v := range l.Values {
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
			if !l.SpanGaps {
				flush()
			}
			continue
		}
		xs = append(xs, float64(i))
		ys = append(ys, *v)
	}
	flush()
	return out
}

// xTicks picks at most maxXTicks evenly spaced labels, always including the last.
func xTicks(labels []string) []gochart.Tick {
	n := len(labels)
	if n == 0 {
		return nil
	}
	step := (n + maxXTicks - 1) / maxXTicks
	ticks := make([]gochart.Tick, 0, maxXTicks+1)
	for i := 0; i < n; i += step {
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: labels[i]})
	}
	last := n - 1
	if prev := int(ticks[len(ticks)-1].Value); prev != last {
		if len(ticks) > 1 && last-prev < step/2 {
			ticks = ticks[:len(ticks)-1]
		}
		ticks = append(ticks, gochart.Tick{Value: float64(last), Label: labels[last]})
	}
	return ticks
}

// hexColor strips a leading '#' and reports whether the rest is a 3 or 6
// digit hex colour, the only forms drawing.ColorFromHex accepts.
func hexColor(s string) (string, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 3 && len(s) != 6 {
		return "", false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return "", false
		}
	}
	return s, true
}
