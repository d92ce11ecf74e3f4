package entity

// RawPoint is a history or prediction point as received from the FX API.
// Date may carry a time suffix; Value may be a number, a thousands-separated
// string, or nil.
type RawPoint struct {
	Date  *string `json:"date"`
	Value any     `json:"value"`
}

// Point is a canonical date/value pair safe for charting.
// Date is at most 10 characters (YYYY-MM-DD); a nil Value means no data.
type Point struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// Series is an ordered sequence of canonical points in the order received.
type Series []Point
