package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"fx_dashboard/internal/feature/fxrates/domain/entity"
)

// Horizon is a forecast horizon that never fails to bind. Anything that is
// not a number becomes 0, which the use case clamps to the minimum.
type Horizon int

// UnmarshalParam implements gin's form binding.
func (h *Horizon) UnmarshalParam(param string) error {
	*h = parseHorizon(param)
	return nil
}

// UnmarshalJSON accepts a number, a numeric string or anything else as 0.
func (h *Horizon) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*h = parseHorizon(s)
		return nil
	}
	*h = parseHorizon(string(b))
	return nil
}

func parseHorizon(s string) Horizon {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0
	}
	return Horizon(math.Trunc(f))
}

// SelectionRequest is the form or JSON body of the dashboard actions.
type SelectionRequest struct {
	Base    string  `json:"base" form:"base"`
	Target  string  `json:"target" form:"target"`
	Start   string  `json:"start" form:"start"`
	End     string  `json:"end" form:"end"`
	Horizon Horizon `json:"horizon" form:"horizon"`
}

// Selection converts the request into a domain selection.
func (r SelectionRequest) Selection() entity.Selection {
	return entity.Selection{
		Base:    entity.Currency(r.Base),
		Target:  entity.Currency(r.Target),
		Start:   r.Start,
		End:     r.End,
		Horizon: int(r.Horizon),
	}
}
