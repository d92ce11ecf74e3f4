package chart

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gochart "github.com/wcharczuk/go-chart/v2"
)

func f(v float64) *float64 { return &v }

func TestRender_PNG(t *testing.T) {
	p := Plot{
		Title:  "USD_KRW",
		Labels: []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"},
		Lines: []Line{
			{Name: "Exchange rate", Values: []*float64{f(1300), nil, f(1310), nil}, Color: "#2563eb", SpanGaps: true},
			{Name: "Forecast", Values: []*float64{nil, nil, nil, f(1315)}, Color: "#f59e0b", Dashed: true, SpanGaps: true},
		},
		YMin:   f(1290),
		YMax:   f(1320),
		Width:  320,
		Height: 200,
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, p))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestRender_AutoscaleAndDefaults(t *testing.T) {
	p := Plot{
		Labels: []string{"a", "b"},
		Lines:  []Line{{Name: "x", Values: []*float64{f(1), f(2)}, Color: "#000000"}},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, p))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, img.Bounds().Dx())
}

func TestRender_NothingToPlot(t *testing.T) {
	tests := []struct {
		name string
		p Plot
	}{
		{name: "no lines", p: Plot{Labels: []string{"a"}}},
		{name: "all nil", p: Plot{
			Labels: []string{"a", "b"},
			Lines:  []Line{{Name: "x", Values: []*float64{nil, nil}}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.ErrorIs(t, Render(&buf, tt.p), ErrNothingToPlot)
			assert.Zero(t, buf.Len())
		})
	}
}

func TestLineSeries_Gaps(t *testing.T) {
	values := []*float64{f(1), f(2), nil, f(3), nil, f(4), f(5)}

	spanning := lineSeries(Line{Name: "a", Values: values, SpanGaps: true})
	require.Len(t, spanning, 1)

	split := lineSeries(Line{Name: "a", Values: values})
	require.Len(t, split, 3)
	first := split[0].(gochart.ContinuousSeries)
	lone := split[1].(gochart.ContinuousSeries)
	assert.Equal(t, "a", first.Name)
	assert.Empty(t, lone.Name)
	// The lone point is duplicated so go-chart can draw it.
	assert.Equal(t, []float64{3, 3}, lone.XValues)
	assert.Equal(t, []float64{3, 3}, lone.YValues)
}

func TestXTicks(t *testing.T) {
	labels := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = string(rune('a' + i%26))
		}
		return out
	}

	assert.Nil(t, xTicks(nil))
	assert.Len(t, xTicks(labels(3)), 3)

	for _, n := range []int{1, 8, 9, 17, 30, 64, 365} {
		ticks := xTicks(labels(n))
		assert.LessOrEqual(t, len(ticks), maxXTicks+1, "n=%d", n)
		assert.Equal(t, 0.0, ticks[0].Value, "n=%d", n)
		assert.Equal(t, float64(n-1), ticks[len(ticks)-1].Value, "n=%d", n)
	}
}

func TestRender_ColourlessLine(t *testing.T) {
	p := Plot{
		Labels: []string{"a", "b"},
		Lines:  []Line{{Name: "x", Values: []*float64{f(1), f(1)}}},
		Width:  200,
		Height: 120,
	}

	var buf bytes.Buffer
	require.NotPanics(t, func() {
		require.NoError(t, Render(&buf, p))
	})

	_, err := png.Decode(&buf)
	assert.NoError(t, err)
}

func TestLineSeries_Colour(t *testing.T) {
	tests := []struct {
		name   string
		colour string
		set    bool
	}{
		{name: "six digits", colour: "#2563eb", set: true},
		{name: "three digits", colour: "f00", set: true},
		{name: "empty", colour: ""},
		{name: "too short", colour: "#ab"},
		{name: "not hex", colour: "#zzzzzz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out []gochart.Series
			require.NotPanics(t, func() {
				out = lineSeries(Line{Name: "x", Values: []*float64{f(1), f(2)}, Color: tt.colour})
			})
			require.Len(t, out, 1)
			style := out[0].(gochart.ContinuousSeries).Style
			assert.Equal(t, tt.set, !style.StrokeColor.IsZero())
		})
	}
}
