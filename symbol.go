package xirr

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"
)

// This file classifies ledger symbols. The standard option symbol convention
// is <UNDERLYING><YYMMDD><C|P><strike*1000, 8 digits>, e.g. BKE251219C00040000.

// IsOption reports whether a symbol denotes an option contract: longer than
// 10 characters, containing at least one of the letters C or P and at least
// one digit. This is a heuristic over the standard convention; a long ticker
// that happens to contain a digit and a C or P will misclassify. Known,
// accepted limitation.
func IsOption(symbol string) bool {
	s := strings.TrimSpace(symbol)
	if len(s) <= 10 {
		return false
	}
	if !strings.ContainsAny(s, "CP") {
		return false
	}
	return strings.ContainsFunc(s, unicode.IsDigit)
}

// BaseTicker resolves the underlying ticker of a symbol.
//
// A non-option symbol is its own base ticker. For an option symbol the
// resolution has a defined fallback order:
//  1. the leading non-digit prefix, if it is not itself option-like;
//  2. the longest non-option quoted symbol that prefixes the option symbol;
//  3. nothing: an option symbol with no resolvable underlying has no base
//     ticker in this pass, and ok is false.
//
// A prefix resolved by step 1 is accepted even when absent from the quote
// table; the quote table only serves as the step 2 fallback.
func BaseTicker(symbol string, quotes *Quotes) (string, bool) {
	if !IsOption(symbol) {
		return symbol, true
	}

	// Step 1: everything before the first digit is the candidate underlying.
	if i := strings.IndexFunc(symbol, unicode.IsDigit); i > 0 {
		candidate := symbol[:i]
		if !IsOption(candidate) {
			return candidate, true
		}
	}

	// Step 2: longest quoted non-option symbol that prefixes this one.
	var longest string
	if quotes != nil {
		for _, quoted := range quotes.Symbols() {
			if strings.HasPrefix(symbol, quoted) && !IsOption(quoted) && len(quoted) > len(longest) {
				longest = quoted
			}
		}
	}
	if longest != "" {
		return longest, true
	}

	return "", false
}

// ExpiryDate extracts the expiry of an option symbol: exactly 6 characters
// starting at position len(underlying), parsed as YYMMDD. It fails when the
// underlying length does not align with the symbol's date field; callers are
// expected to skip the symbol in that case.
func ExpiryDate(underlying, symbol string) (Date, error) {
	start := len(underlying)
	if start+6 > len(symbol) {
		return Date{}, fmt.Errorf("option symbol %q too short for an expiry after underlying %q", symbol, underlying)
	}
	field := symbol[start : start+6]
	on, err := time.Parse("060102", field)
	if err != nil {
		return Date{}, fmt.Errorf("invalid expiry %q in option symbol %q: %w", field, symbol, err)
	}
	return NewDate(on.Date()), nil
}

// BaseTickers detects all distinct underlying tickers present in a
// transaction table, resolving option symbols with BaseTicker. Symbols with
// no resolvable underlying are left out. The result is in lexical order.
func BaseTickers(txs Transactions, quotes *Quotes) []string {
	seen := make(map[string]bool)
	var tickers []string
	for _, symbol := range txs.Symbols() {
		base, ok := BaseTicker(symbol, quotes)
		if !ok || seen[base] {
			continue
		}
		seen[base] = true
		tickers = append(tickers, base)
	}
	slices.Sort(tickers)
	return tickers
}
