package xirr

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file fetches current prices from the EODHD API, as a convenience to
// build the quote table without pasting prices by hand.

// FetchQuotes retrieves the current price of every symbol from the EODHD
// real-time endpoint. Responses are cached on disk until the end of day
// unless live is set. A symbol that cannot be quoted (options often cannot)
// is logged and skipped; the batch never fails because of one symbol.
func FetchQuotes(apiKey string, symbols []string, live bool) *Quotes {
	client := quoteClient(live)

	quotes := NewQuotes()
	for _, symbol := range symbols {
		price, err := fetchQuote(client, apiKey, symbol)
		if err != nil {
			log.Printf("skipping %s: %v", symbol, err)
			continue
		}
		quotes.Add(symbol, M(price, LedgerCurrency))
	}
	return quotes
}

// fetchQuote reads the last close for one symbol.
//
//	{
//	    "code": "BKE.US",
//	    "timestamp": 1756150200,
//	    "open": 49.12,
//	    "close": 49.7,
//	    ...
//	}
func fetchQuote(client *http.Client, apiKey, symbol string) (decimal.Decimal, error) {
	ticker := symbol
	if !strings.Contains(ticker, ".") {
		// EODHD tickers carry an exchange suffix; default to the US virtual exchange.
		ticker += ".US"
	}
	addr := fmt.Sprintf("https://eodhd.com/api/real-time/%s?fmt=json&api_token=%s", ticker, apiKey)

	var jobj any
	if err := getJSON(client, addr, &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("error retrieving %q: %w", symbol, err)
	}

	const path = "$.close"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing %q: %q %w", symbol, path, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		// the API returns "NA" for unquoted symbols, and sometimes numbers as strings
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", ".")
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("no numeric close for %q: %q", symbol, v)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("no close value for %q: %v", symbol, jval)
	}
}
