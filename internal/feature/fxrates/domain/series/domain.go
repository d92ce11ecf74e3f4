package series

import (
	"math"

	"fx_dashboard/internal/feature/fxrates/domain/entity"
)

const (
	flatExpandRatio = 0.1
	paddingRatio    = 0.05
)

// Domain is a Y axis range. Min is always strictly below Max.
type Domain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// EstimateDomain returns a padded range covering values. It reports false
// when values is empty, leaving the renderer to autoscale.
func EstimateDomain(values []float64) (Domain, bool) {
	if len(values) == 0 {
		return Domain{}, false
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	if lo == hi {
		lo -= widen(lo)
		hi += widen(hi)
	}

	pad := (hi - lo) * paddingRatio
	return Domain{Min: lo - pad, Max: hi + pad}, true
}

// widen is the half-width used for a flat series: 10% of |v|, or 1 at zero.
func widen(v float64) float64 {
	if d := math.Abs(v * flatExpandRatio); d != 0 {
		return d
	}
	return 1
}

// DomainOf estimates the domain over every value of history and prediction.
func DomainOf(history, prediction entity.Series) (Domain, bool) {
	return EstimateDomain(Values(history, prediction))
}
