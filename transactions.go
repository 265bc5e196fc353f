package xirr

import (
	"slices"
	"strings"
)

// Transaction is one row of a broker ledger.
//
// Quantity sign encodes direction: for stock, positive means shares acquired;
// for options, positive means net contracts bought and negative net contracts
// sold. CashFlow sign encodes money out (negative) or in (positive) regardless
// of instrument.
type Transaction struct {
	Symbol   string   `json:"symbol"`
	Date     Date     `json:"date"`
	Quantity Quantity `json:"quantity"`
	CashFlow Money    `json:"cashFlow"`
}

// Transactions is a broker ledger: a table of validated transaction rows.
// Rows with unparseable fields never make it into a Transactions value, see
// ImportTransactions.
type Transactions []Transaction

// SortedByDate returns a copy of the table in chronological order. The sort
// is stable so same-day rows keep their ledger order.
func (txs Transactions) SortedByDate() Transactions {
	sorted := slices.Clone(txs)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		return a.Date.DaysSince(b.Date)
	})
	return sorted
}

// Select returns the rows matching the keep predicate, in ledger order.
func (txs Transactions) Select(keep func(Transaction) bool) Transactions {
	var selected Transactions
	for _, tx := range txs {
		if keep(tx) {
			selected = append(selected, tx)
		}
	}
	return selected
}

// Symbols returns all distinct symbols in the table, in lexical order.
func (txs Transactions) Symbols() []string {
	seen := make(map[string]bool)
	var symbols []string
	for _, tx := range txs {
		if !seen[tx.Symbol] {
			seen[tx.Symbol] = true
			symbols = append(symbols, tx.Symbol)
		}
	}
	slices.Sort(symbols)
	return symbols
}

// HasOptionsOn reports whether the table contains option activity rooted at
// the given ticker (string-prefix match, like CombinedReturn).
func (txs Transactions) HasOptionsOn(ticker string) bool {
	for _, tx := range txs {
		if strings.HasPrefix(tx.Symbol, ticker) && IsOption(tx.Symbol) {
			return true
		}
	}
	return false
}
