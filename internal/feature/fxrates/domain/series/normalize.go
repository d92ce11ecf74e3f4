// Package series holds the pure transforms behind the dashboard chart:
// point normalization, history/prediction merging and Y domain estimation.
package series

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"

	"fx_dashboard/internal/feature/fxrates/domain/entity"
)

const dateLen = len("2006-01-02")

// NormalizeDate trims raw and cuts it to the leading YYYY-MM-DD part.
// A nil or blank input yields "".
func NormalizeDate(raw *string) string {
	if raw == nil {
		return ""
	}
	return NormalizeDateString(*raw)
}

// NormalizeDateString is NormalizeDate for a plain string.
func NormalizeDateString(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r := []rune(s)
	if len(r) > dateLen {
		r = r[:dateLen]
	}
	return string(r)
}

// NormalizeValue converts a decoded JSON value into a finite float.
// Anything that is not a finite number, or a string holding one once commas
// and whitespace are removed, yields nil. An empty or blank string is a gap
// (nil), never zero.
func NormalizeValue(raw any) *float64 {
	switch v := raw.(type) {
	case nil:
		return nil
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return finite(float64(v))
	case int32:
		return finite(float64(v))
	case int64:
		return finite(float64(v))
	case json.Number:
		return parse(string(v))
	case string:
		return parse(strings.Map(func(r rune) rune {
			if r == ',' || unicode.IsSpace(r) {
				return -1
			}
			return r
		}, v))
	default:
		return nil
	}
}

func parse(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return finite(f)
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// Normalize maps raw points to canonical ones, keeping order and length.
func Normalize(raw []entity.RawPoint) entity.Series {
	out := make(entity.Series, 0, len(raw))
	for _, p := range raw {
		out = append(out, entity.Point{
			Date:  NormalizeDate(p.Date),
			Value: NormalizeValue(p.Value),
		})
	}
	return out
}

// ValidCount returns how many points of s carry a value.
func ValidCount(s entity.Series) int {
	n := 0
	for _, p := range s {
		if p.Value != nil {
			n++
		}
	}
	return n
}

// Values returns the non-nil values of every given series, in order.
func Values(ss ...entity.Series) []float64 {
	var out []float64
	for _, s := range ss {
		for _, p := range s {
			if p.Value != nil {
				out = append(out, *p.Value)
			}
		}
	}
	return out
}
