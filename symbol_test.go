package xirr

import (
	"slices"
	"testing"
	"time"
)

func TestIsOption(t *testing.T) {
	tests := []struct {
		symbol string
		want   bool
	}{
		{"BKE", false},
		{"BOOT", false},
		{"BKE251219C00040000", true},
		{"BKE250417C00040000", true},
		{"AAPL260116P00200000", true},
		{"  BKE251219C00040000  ", true}, // ledger whitespace
		{"ABCDEFGHIJK", false},           // no digit
		{"AB1234567890", false},          // no C or P
		{"BRK1", false},                  // short, even with a digit
	}
	for _, tt := range tests {
		if got := IsOption(tt.symbol); got != tt.want {
			t.Errorf("IsOption(%q) = %v, want %v", tt.symbol, got, tt.want)
		}
	}
}

func TestBaseTicker(t *testing.T) {
	quotes := NewQuotes()
	quotes.Add("BKE", usd(49.7))
	quotes.Add("1234", usd(10))

	tests := []struct {
		symbol string
		want   string
		ok     bool
	}{
		// non-options are their own base ticker
		{"BKE", "BKE", true},
		{"BOOT", "BOOT", true},
		// digit-scan prefix, accepted even for tickers absent from the quote table
		{"BKE251219C00040000", "BKE", true},
		{"ZZZZ260116P00200000", "ZZZZ", true},
		// digit-scan yields nothing (leading digit): longest quoted non-option prefix wins
		{"123456789CP0", "1234", true},
		// no resolution possible
		{"987654321CP0", "", false},
	}
	for _, tt := range tests {
		got, ok := BaseTicker(tt.symbol, quotes)
		if got != tt.want || ok != tt.ok {
			t.Errorf("BaseTicker(%q) = (%q, %v), want (%q, %v)", tt.symbol, got, ok, tt.want, tt.ok)
		}
	}
}

func TestExpiryDate(t *testing.T) {
	expiry, err := ExpiryDate("BKE", "BKE251219C00040000")
	if err != nil {
		t.Fatalf("ExpiryDate() error = %v", err)
	}
	if want := NewDate(2025, time.December, 19); expiry != want {
		t.Errorf("ExpiryDate() = %v, want %v", expiry, want)
	}

	// the 6-character slice does not hold a date when the assumed underlying
	// length is misaligned with the symbol
	if _, err := ExpiryDate("BKE", "BKEABCDEFC001"); err == nil {
		t.Error("ExpiryDate() expected error for a non-numeric date field")
	}
	if _, err := ExpiryDate("BKELONGTICKER", "BKE251219C"); err == nil {
		t.Error("ExpiryDate() expected error for a too-short symbol")
	}
}

func TestBaseTickers(t *testing.T) {
	txs := Transactions{
		{Symbol: "BOOT", Date: on("2025-02-06"), Quantity: Q(3), CashFlow: usd(-435.96)},
		{Symbol: "BKE", Date: on("2025-03-18"), Quantity: Q(25), CashFlow: usd(-939.75)},
		{Symbol: "BKE251219C00040000", Date: on("2025-06-23"), Quantity: Q(-1), CashFlow: usd(649)},
	}
	quotes := NewQuotes()
	quotes.Add("BKE", usd(49.7))

	got := BaseTickers(txs, quotes)
	want := []string{"BKE", "BOOT"}
	if !slices.Equal(got, want) {
		t.Errorf("BaseTickers() = %v, want %v", got, want)
	}
}
