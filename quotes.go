package xirr

import (
	"slices"
	"strings"
)

// Quotes holds the current market price for a set of symbols, stock and
// option alike. Lookup is by exact symbol string only.
type Quotes struct {
	prices map[string]Money
}

// NewQuotes returns a new empty quote table.
func NewQuotes() *Quotes {
	return &Quotes{prices: make(map[string]Money)}
}

// Add records the current price for a symbol, overwriting any previous value.
func (q *Quotes) Add(symbol string, price Money) {
	q.prices[strings.TrimSpace(symbol)] = price
}

// Has reports whether a quote exists for the exact symbol.
func (q *Quotes) Has(symbol string) bool {
	_, ok := q.prices[symbol]
	return ok
}

// Get returns the current price for the exact symbol.
func (q *Quotes) Get(symbol string) (Money, bool) {
	price, ok := q.prices[symbol]
	return price, ok
}

// Len returns the number of quoted symbols.
func (q *Quotes) Len() int { return len(q.prices) }

// Symbols returns all quoted symbols in lexical order, so that resolution
// procedures iterating over the table are deterministic.
func (q *Quotes) Symbols() []string {
	symbols := make([]string, 0, len(q.prices))
	for s := range q.prices {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)
	return symbols
}
