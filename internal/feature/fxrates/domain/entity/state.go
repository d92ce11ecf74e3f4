package entity

// Selection holds the user's form choices.
type Selection struct {
	Base    Currency `json:"base" form:"base"`
	Target  Currency `json:"target" form:"target"`
	Start   string   `json:"start" form:"start"`
	End     string   `json:"end" form:"end"`
	Horizon int      `json:"horizon" form:"horizon"`
}

// Pair returns the upstream pair identifier for the selection.
func (s Selection) Pair() Pair {
	return NewPair(s.Base, s.Target)
}

// State is the whole dashboard view state. It is replaced wholesale on every
// fetch; nothing in it outlives the process.
type State struct {
	Selection  Selection
	History    Series
	Prediction Series
	Error      string
	Busy       bool
}
