package xirr

// ReturnResult is the outcome of one cash-flow builder run: the series that
// was built, and the solved rate when one is defined.
type ReturnResult struct {
	Rate    Rate      `json:"rate"`
	Defined bool      `json:"defined"`
	Flows   CashFlows `json:"cashflows,omitempty"`
}

// TickerReturn aggregates the stock-only and combined analyses of a single
// underlying ticker. Combined is only populated when the ledger holds option
// activity rooted at the ticker.
type TickerReturn struct {
	Ticker     string       `json:"ticker"`
	StockOnly  ReturnResult `json:"stockOnly"`
	HasOptions bool         `json:"hasOptions"`
	Combined   ReturnResult `json:"combined,omitempty"`
}

// OptionsImpact returns the rate difference the option activity makes,
// combined minus stock-only. It is only meaningful when both rates are
// defined.
func (t TickerReturn) OptionsImpact() (Rate, bool) {
	if !t.HasOptions || !t.StockOnly.Defined || !t.Combined.Defined {
		return 0, false
	}
	return t.Combined.Rate - t.StockOnly.Rate, true
}

// Analyze runs both cash-flow builders for every base ticker detected in the
// transaction table, valuing open positions at the given date. Results come
// back in ticker order. Each per-ticker computation is independent and pure:
// callers wanting parallelism can shard the table by ticker themselves.
func Analyze(txs Transactions, quotes *Quotes, on Date) []TickerReturn {
	var results []TickerReturn
	for _, ticker := range BaseTickers(txs, quotes) {
		results = append(results, AnalyzeTicker(ticker, txs, quotes, on))
	}
	return results
}

// AnalyzeTicker runs both cash-flow builders for one underlying ticker.
func AnalyzeTicker(ticker string, txs Transactions, quotes *Quotes, on Date) TickerReturn {
	result := TickerReturn{Ticker: ticker}

	rate, flows, ok := StockOnlyReturn(ticker, txs, quotes, on)
	result.StockOnly = ReturnResult{Rate: rate, Defined: ok, Flows: flows}

	if txs.HasOptionsOn(ticker) {
		result.HasOptions = true
		rate, flows, ok = CombinedReturn(ticker, txs, quotes, on)
		result.Combined = ReturnResult{Rate: rate, Defined: ok, Flows: flows}
	}
	return result
}
