// Package entity defines the domain models for the fxrates feature.
package entity

// Currency is a currency code supported by the FX API.
// JPY100 quotes the yen per 100 units.
type Currency string

const (
	USD    Currency = "USD"
	EUR    Currency = "EUR"
	CNY    Currency = "CNY"
	JPY100 Currency = "JPY100"
	ISK    Currency = "ISK"
	RUB    Currency = "RUB"
	KRW    Currency = "KRW"
)

// Currencies lists the selectable codes in display order.
var Currencies = []Currency{USD, EUR, CNY, JPY100, ISK, RUB, KRW}

// Valid reports whether c is one of Currencies.
func (c Currency) Valid() bool {
	for _, x := range Currencies {
		if c == x {
			return true
		}
	}
	return false
}

// Pair is the upstream pair identifier, always "{BASE}_{TARGET}".
type Pair string

// NewPair builds the identifier for base and target.
func NewPair(base, target Currency) Pair {
	return Pair(string(base) + "_" + string(target))
}
