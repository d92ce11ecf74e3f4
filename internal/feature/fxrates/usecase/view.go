package usecase

import (
	"fmt"

	"fx_dashboard/internal/feature/fxrates/domain/entity"
	"fx_dashboard/internal/feature/fxrates/domain/series"
)

// Phase tells the renderer which body to show in place of the chart.
type Phase string

const (
	PhaseLoading     Phase = "loading"
	PhaseEmpty       Phase = "empty"
	PhaseNoValidData Phase = "no-valid-data"
	PhaseChart       Phase = "chart"
)

// Dataset colours and labels.
const (
	ColorHistory  = "#2563eb"
	ColorNoData   = "#dc2626"
	ColorForecast = "#f59e0b"

	LabelHistory       = "Exchange rate"
	LabelHistoryNoData = "Exchange rate (no data)"
	LabelForecast      = "Forecast"
)

// Dataset is one line of the chart.
type Dataset struct {
	Label    string     `json:"label"`
	Data     []*float64 `json:"data"`
	Color    string     `json:"color"`
	Dashed   bool       `json:"dashed"`
	SpanGaps bool       `json:"span_gaps"`
}

// Chart is the renderer-neutral chart description.
type Chart struct {
	Labels   []string       `json:"labels"`
	Datasets []Dataset      `json:"datasets"`
	Domain   *series.Domain `json:"domain,omitempty"` // nil: autoscale
}

// View is everything the dashboard page needs, derived from a State.
type View struct {
	Selection         entity.Selection  `json:"selection"`
	Currencies        []entity.Currency `json:"currencies"`
	Pair              entity.Pair       `json:"pair"`
	ValidationMessage string            `json:"validation_message,omitempty"`
	Error             string            `json:"error,omitempty"`
	Busy              bool              `json:"busy"`
	CanFetchHistory   bool              `json:"can_fetch_history"`
	CanPredict        bool              `json:"can_predict"`
	HistoryCount      int               `json:"history_count"`
	ValidHistoryCount int               `json:"valid_history_count"`
	PredictionCount   int               `json:"prediction_count"`
	Phase             Phase             `json:"phase"`
	Chart             Chart             `json:"chart"`
	History           entity.Series     `json:"history"`
	Prediction        entity.Series     `json:"prediction"`
}

// Summary is the info line under the form, or "" when nothing is loaded.
func (v View) Summary() string {
	if v.HistoryCount == 0 {
		return ""
	}
	s := fmt.Sprintf("%s: %d data points", v.Pair, v.ValidHistoryCount)
	if v.PredictionCount > 0 {
		s += fmt.Sprintf(", %d forecast points", v.PredictionCount)
	}
	return s
}

// BuildView derives the view model from s. It is pure.
func BuildView(s entity.State) View {
	validationMsg := ValidateSelection(s.Selection)
	v := View{
		Selection:         s.Selection,
		Currencies:        entity.Currencies,
		Pair:              s.Selection.Pair(),
		ValidationMessage: validationMsg,
		Error:             s.Error,
		Busy:              s.Busy,
		CanFetchHistory:   validationMsg == "" && !s.Busy,
		CanPredict:        len(s.History) > 0 && !s.Busy,
		HistoryCount:      len(s.History),
		ValidHistoryCount: series.ValidCount(s.History),
		PredictionCount:   len(s.Prediction),
		History:           s.History,
		Prediction:        s.Prediction,
	}

	switch {
	case s.Busy:
		v.Phase = PhaseLoading
	case v.HistoryCount == 0:
		v.Phase = PhaseEmpty
	case v.ValidHistoryCount == 0:
		v.Phase = PhaseNoValidData
	default:
		v.Phase = PhaseChart
	}

	v.Chart = buildChart(s.History, s.Prediction, v.ValidHistoryCount)
	return v
}

func buildChart(history, prediction entity.Series, validHistory int) Chart {
	if len(history) == 0 {
		return Chart{Labels: []string{}, Datasets: []Dataset{}}
	}

	var c Chart
	if d, ok := series.DomainOf(history, prediction); ok {
		c.Domain = &d
	}

	if validHistory == 0 {
		// Prediction is not drawn over an empty history.
		hist := series.Merge(history, nil)
		c.Labels = hist.Labels
		c.Datasets = []Dataset{{
			Label: LabelHistoryNoData,
			Data:  hist.HistoryValues,
			Color: ColorNoData,
		}}
		return c
	}

	axis := series.Merge(history, prediction)
	c.Labels = axis.Labels
	c.Datasets = []Dataset{{
		Label:    LabelHistory,
		Data:     axis.HistoryValues,
		Color:    ColorHistory,
		SpanGaps: true,
	}}
	if axis.HasPrediction {
		c.Datasets = append(c.Datasets, Dataset{
			Label:    LabelForecast,
			Data:     axis.PredictionValues,
			Color:    ColorForecast,
			Dashed:   true,
			SpanGaps: true,
		})
	}
	return c
}
