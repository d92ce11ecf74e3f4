// Package dto defines the data transfer objects of the FX API responses.
package dto

// HistoryPoint is one entry of the history payload. Date and Rate are left
// untyped because the API sends numbers, strings or null for either.
type HistoryPoint struct {
	Date any `json:"date"`
	Rate any     `json:"rate"`
}

// HistoryResponse is the JSON body of GET /api/history.
type HistoryResponse struct {
	Pair string         `json:"pair"`
	Data []HistoryPoint `json:"data"`
}

// PredictPoint is one entry of the forecast payload.
type PredictPoint struct {
	Date  any `json:"date"`
	Value any `json:"value"`
}

// PredictResponse is the JSON body of GET /api/predict.
type PredictResponse struct {
	Pair    string         `json:"pair"`
	Horizon any            `json:"horizon"` // echoed back, unused
	Yhat    []PredictPoint `json:"yhat"`
}
