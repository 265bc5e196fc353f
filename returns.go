package xirr

import "strings"

// contractSize is the standard option multiplier: one contract settles 100
// shares of the underlying.
var contractSize = Q(100)

// StockOnlyReturn builds the cash-flow series for the stock transactions of a
// ticker (option rows excluded) and solves its XIRR.
//
// The series contains one entry per transaction plus, when the ticker is
// quoted and shares remain, a terminal entry valuing the net position at the
// valuation date. When the series has fewer than two entries there is nothing
// to solve and the series itself is withheld (nil). Otherwise the series is
// returned even when the rate is undefined (ok=false).
func StockOnlyReturn(ticker string, txs Transactions, quotes *Quotes, on Date) (Rate, CashFlows, bool) {
	stock := txs.Select(func(tx Transaction) bool {
		return tx.Symbol == ticker && !IsOption(tx.Symbol)
	}).SortedByDate()

	var flows CashFlows
	var totalQty Quantity
	for _, tx := range stock {
		flows = append(flows, CashFlow{Date: tx.Date, Amount: tx.CashFlow})
		totalQty = totalQty.Add(tx.Quantity)
	}

	// A zero quote behaves like a missing quote: no terminal entry.
	if price, ok := quotes.Get(ticker); ok && !price.IsZero() && !totalQty.IsZero() {
		flows = append(flows, CashFlow{Date: on, Amount: price.Mul(totalQty)})
	}

	// The terminal entry is not assumed to be chronologically last; the
	// valuation date may fall inside the transaction range.
	flows = flows.Sorted()
	if len(flows) < 2 {
		return 0, nil, false
	}
	rate, ok := XIRR(flows)
	return rate, flows, ok
}

// CombinedReturn builds the cash-flow series for all activity rooted at a
// ticker, stock and options together, and solves its XIRR.
//
// Rows are selected by string prefix, so the series captures every option
// symbol written on the ticker. A ticker that prefixes another unrelated
// ticker will over-match; accepted limitation of the symbol convention.
//
// Open option positions are valued at the valuation date only when their
// expiry is on or after the real-world current date: an expired contract is
// worth nothing regardless of the valuation date parameter. An option symbol
// whose expiry field cannot be parsed is skipped silently, leaving the series
// without that terminal value rather than failing the whole computation.
func CombinedReturn(ticker string, txs Transactions, quotes *Quotes, on Date) (Rate, CashFlows, bool) {
	selected := txs.Select(func(tx Transaction) bool {
		return strings.HasPrefix(tx.Symbol, ticker)
	}).SortedByDate()

	var flows CashFlows
	var stockQty Quantity
	netQty := make(map[string]Quantity)
	var optionOrder []string // first-seen order keeps terminal entries deterministic

	for _, tx := range selected {
		flows = append(flows, CashFlow{Date: tx.Date, Amount: tx.CashFlow})
		if IsOption(tx.Symbol) {
			if _, seen := netQty[tx.Symbol]; !seen {
				optionOrder = append(optionOrder, tx.Symbol)
			}
			netQty[tx.Symbol] = netQty[tx.Symbol].Add(tx.Quantity)
		} else {
			stockQty = stockQty.Add(tx.Quantity)
		}
	}

	today := Today()
	for _, symbol := range optionOrder {
		qty := netQty[symbol]
		if qty.IsZero() {
			continue
		}
		expiry, err := ExpiryDate(ticker, symbol)
		if err != nil {
			continue // structural fragility of the symbol format: skip this terminal value
		}
		if expiry.Before(today) {
			continue
		}
		if price, ok := quotes.Get(symbol); ok && !price.IsZero() {
			flows = append(flows, CashFlow{Date: on, Amount: price.Mul(qty.Mul(contractSize))})
		}
	}

	if price, ok := quotes.Get(ticker); ok && !price.IsZero() && !stockQty.IsZero() {
		flows = append(flows, CashFlow{Date: on, Amount: price.Mul(stockQty)})
	}

	flows = flows.Sorted()
	if len(flows) < 2 {
		return 0, nil, false
	}
	rate, ok := XIRR(flows)
	return rate, flows, ok
}
