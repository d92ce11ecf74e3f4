package series_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fx_dashboard/internal/feature/fxrates/domain/entity"
	"fx_dashboard/internal/feature/fxrates/domain/series"
)

func ptr[T any](v T) *T { return &v }

func TestNormalizeDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   *string
		want string
	}{
		{"nil", nil, ""},
		{"empty", ptr(""), ""},
		{"blank", ptr("   "), ""},
		{"plain date", ptr("2024-01-02"), "2024-01-02"},
		{"timestamp", ptr("2024-01-02T15:04:05Z"), "2024-01-02"},
		{"surrounding spaces", ptr("  2024-01-02 00:00:00 "), "2024-01-02"},
		{"short string kept", ptr("2024-1-2"), "2024-1-2"},
		{"no calendar validation", ptr("2024-13-45"), "2024-13-45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, series.NormalizeDate(tt.in))
		})
	}
}

func TestNormalizeDate_Idempotent(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"2024-01-02", "2024-01-02T10:00:00", " 2023-12-31 23:59 ", "20240102123456"} {
		once := series.NormalizeDateString(s)
		assert.Equal(t, once, series.NormalizeDateString(once), "input %q", s)
	}
}

func TestNormalizeValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want *float64
	}{
		{"nil", nil, nil},
		{"float", 1.5, ptr(1.5)},
		{"int", 3, ptr(3.0)},
		{"int64", int64(-7), ptr(-7.0)},
		{"float32", float32(0.5), ptr(0.5)},
		{"NaN", math.NaN(), nil},
		{"+Inf", math.Inf(1), nil},
		{"json number", json.Number("1300.25"), ptr(1300.25)},
		{"thousands separators", "1,234.5", ptr(1234.5)},
		{"surrounding whitespace", " 12 ", ptr(12.0)},
		{"inner whitespace", "1 300.5", ptr(1300.5)},
		{"not a number", "abc", nil},
		{"empty string", "", nil},
		{"blank string is a gap not zero", " \t ", nil},
		{"only separators", " , ", nil},
		{"infinity text", "Infinity", nil},
		{"overflow", "1e400", nil},
		{"exponent", "1.2e3", ptr(1200.0)},
		{"bool", true, nil},
		{"object", map[string]any{"v": 1}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := series.NormalizeValue(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestNormalize_UsdKrwScenario(t *testing.T) {
	t.Parallel()

	raw := []entity.RawPoint{
		{Date: ptr("2023-01-01"), Value: "1,300.5"},
		{Date: ptr("2023-01-02"), Value: nil},
		{Date: ptr("2023-01-03"), Value: json.Number("1310")},
	}

	got := series.Normalize(raw)

	assert.Equal(t, entity.Series{
		{Date: "2023-01-01", Value: ptr(1300.5)},
		{Date: "2023-01-02", Value: nil},
		{Date: "2023-01-03", Value: ptr(1310.0)},
	}, got)
	assert.Equal(t, 2, series.ValidCount(got))
}

func TestNormalize_EmptyInput(t *testing.T) {
	t.Parallel()

	got := series.Normalize(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, 0, series.ValidCount(got))
}

func TestValues_SkipsGaps(t *testing.T) {
	t.Parallel()

	h := entity.Series{{Date: "a", Value: ptr(1.0)}, {Date: "b"}}
	p := entity.Series{{Date: "c", Value: ptr(2.0)}}

	assert.Equal(t, []float64{1, 2}, series.Values(h, p))
	assert.Empty(t, series.Values(entity.Series{{Date: "x"}}))
}
