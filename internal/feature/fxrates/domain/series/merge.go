package series

import (
	"sort"

	"fx_dashboard/internal/feature/fxrates/domain/entity"
)

// MergedAxis aligns history and prediction values on one date axis.
// All three slices always have the same length; nil entries are gaps.
type MergedAxis struct {
	Labels           []string   `json:"labels"`
	HistoryValues    []*float64 `json:"history"`
	PredictionValues []*float64 `json:"prediction"`
	HasPrediction    bool       `json:"has_prediction"`
}

// Merge builds the chart axis for history and prediction.
//
// Without a prediction the axis is history's own dates in received order.
// Once a prediction is present the axis becomes the sorted union of both
// series' dates, and a date repeated within one series keeps its last value.
// Points with an empty date never get a label.
func Merge(history, prediction entity.Series) MergedAxis {
	if len(prediction) == 0 {
		m := MergedAxis{
			Labels:           make([]string, 0, len(history)),
			HistoryValues:    make([]*float64, 0, len(history)),
			PredictionValues: make([]*float64, 0, len(history)),
		}
		for _, p := range history {
			if p.Date == "" {
				continue
			}
			m.Labels = append(m.Labels, p.Date)
			m.HistoryValues = append(m.HistoryValues, p.Value)
			m.PredictionValues = append(m.PredictionValues, nil)
		}
		return m
	}

	hist := byDate(history)
	pred := byDate(prediction)

	labels := make([]string, 0, len(hist)+len(pred))
	for d := range hist {
		labels = append(labels, d)
	}
	for d := range pred {
		if _, ok := hist[d]; !ok {
			labels = append(labels, d)
		}
	}
	sort.Strings(labels)

	m := MergedAxis{
		Labels:           labels,
		HistoryValues:    make([]*float64, len(labels)),
		PredictionValues: make([]*float64, len(labels)),
		HasPrediction:    true,
	}
	for i, d := range labels {
		m.HistoryValues[i] = hist[d]
		m.PredictionValues[i] = pred[d]
	}
	return m
}

func byDate(s entity.Series) map[string]*float64 {
	m := make(map[string]*float64, len(s))
	for _, p := range s {
		if p.Date == "" {
			continue
		}
		m[p.Date] = p.Value
	}
	return m
}
