package usecase

import (
	"time"

	"fx_dashboard/internal/feature/fxrates/domain/entity"
)

const (
	// MinHorizon and MaxHorizon bound the forecast length in days.
	MinHorizon = 1
	MaxHorizon = 30
	// DefaultHorizon is the forecast length shown on first load.
	DefaultHorizon = 7

	dateLayout = "2006-01-02"
)

// Validation messages shown next to the form.
const (
	MsgUnsupportedCurrency = "Unsupported currency."
	MsgSameCurrency        = "Base and target currencies must differ."
	MsgMissingDates        = "Select both a start and an end date."
	MsgStartAfterEnd       = "Start date must not be after the end date."
)

// DefaultSelection is USD to KRW over the year ending on now's UTC date.
func DefaultSelection(now time.Time) entity.Selection {
	end := now.UTC()
	return entity.Selection{
		Base:    entity.USD,
		Target:  entity.KRW,
		Start:   end.AddDate(-1, 0, 0).Format(dateLayout),
		End:     end.Format(dateLayout),
		Horizon: DefaultHorizon,
	}
}

// ClampHorizon maps h into [MinHorizon, MaxHorizon]. Zero, meaning an empty
// or unparseable input, becomes MinHorizon.
func ClampHorizon(h int) int {
	switch {
	case h < MinHorizon:
		return MinHorizon
	case h > MaxHorizon:
		return MaxHorizon
	default:
		return h
	}
}

// ValidateSelection returns the message blocking a history fetch, or "".
// Dates are compared as strings, which is chronological for YYYY-MM-DD.
func ValidateSelection(sel entity.Selection) string {
	if !sel.Base.Valid() || !sel.Target.Valid() {
		return MsgUnsupportedCurrency
	}
	if sel.Base == sel.Target {
		return MsgSameCurrency
	}
	if sel.Start == "" || sel.End == "" {
		return MsgMissingDates
	}
	if sel.Start > sel.End {
		return MsgStartAfterEnd
	}
	return ""
}
