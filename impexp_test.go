package xirr

import (
	"strings"
	"testing"
	"time"
)

func TestImportTransactions(t *testing.T) {
	in := `Symbol,Date,Qty,Cash Flow
BKE,3/18/2025,25,-939.75
BKE251219C00040000,2025-06-23,-1,649
BOOT,06-02-2025,3,-435.96
`
	txs, dropped, err := ImportTransactions(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ImportTransactions() error = %v", err)
	}
	if dropped != 0 {
		t.Errorf("ImportTransactions() dropped %d rows, want 0", dropped)
	}
	if len(txs) != 3 {
		t.Fatalf("ImportTransactions() read %d rows, want 3", len(txs))
	}

	got := txs[0]
	if got.Symbol != "BKE" || got.Date != NewDate(2025, time.March, 18) {
		t.Errorf("row 0 = %+v, want BKE on 2025-03-18", got)
	}
	if !got.Quantity.Equal(Q(25)) || !got.CashFlow.Equal(usd(-939.75)) {
		t.Errorf("row 0 amounts = %v, %v, want 25, -939.75", got.Quantity, got.CashFlow)
	}
	// day-first date
	if txs[2].Date != NewDate(2025, time.February, 6) {
		t.Errorf("row 2 date = %v, want 2025-02-06", txs[2].Date)
	}
}

func TestImportTransactions_DropsInvalidRows(t *testing.T) {
	in := `Symbol,Date,Qty,Cash Flow
BKE,3/18/2025,25,-939.75
BKE,not-a-date,25,-939.75
BKE,3/19/2025,many,-939.75
BKE,3/20/2025,25,free
BOOT,2025-02-06,3,-435.96
`
	txs, dropped, err := ImportTransactions(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ImportTransactions() error = %v", err)
	}
	if dropped != 3 {
		t.Errorf("ImportTransactions() dropped %d rows, want 3", dropped)
	}
	if len(txs) != 2 {
		t.Errorf("ImportTransactions() kept %d rows, want 2", len(txs))
	}
}

func TestImportTransactions_MissingColumn(t *testing.T) {
	in := "Symbol,Date,Qty\nBKE,3/18/2025,25\n"
	if _, _, err := ImportTransactions(strings.NewReader(in)); err == nil {
		t.Error("ImportTransactions() expected error for a header without Cash Flow")
	}
}

func TestImportTransactions_ReorderedColumns(t *testing.T) {
	in := "Date,Cash Flow,Symbol,Qty\n3/18/2025,-939.75,BKE,25\n"
	txs, _, err := ImportTransactions(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ImportTransactions() error = %v", err)
	}
	if len(txs) != 1 || txs[0].Symbol != "BKE" || !txs[0].CashFlow.Equal(usd(-939.75)) {
		t.Errorf("ImportTransactions() = %+v, want the columns matched by name", txs)
	}
}

func TestImportQuotes(t *testing.T) {
	in := `Symbol,Current Price
BKE,49.7
BOOT,107.50
GME,to the moon
`
	quotes, dropped, err := ImportQuotes(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ImportQuotes() error = %v", err)
	}
	if dropped != 1 {
		t.Errorf("ImportQuotes() dropped %d rows, want 1", dropped)
	}
	if quotes.Len() != 2 {
		t.Fatalf("ImportQuotes() read %d quotes, want 2", quotes.Len())
	}
	if price, ok := quotes.Get("BKE"); !ok || !price.Equal(usd(49.7)) {
		t.Errorf("Get(BKE) = %v, %v, want 49.7", price, ok)
	}
}

func TestExportQuotes_RoundTrip(t *testing.T) {
	quotes := NewQuotes()
	quotes.Add("BOOT", usd(107.5))
	quotes.Add("BKE", usd(49.7))

	var buf strings.Builder
	if err := ExportQuotes(&buf, quotes); err != nil {
		t.Fatalf("ExportQuotes() error = %v", err)
	}

	back, dropped, err := ImportQuotes(strings.NewReader(buf.String()))
	if err != nil || dropped != 0 {
		t.Fatalf("ImportQuotes() = error %v, dropped %d", err, dropped)
	}
	for _, symbol := range quotes.Symbols() {
		want, _ := quotes.Get(symbol)
		got, ok := back.Get(symbol)
		if !ok || !got.Equal(want) {
			t.Errorf("round trip %s = %v, %v, want %v", symbol, got, ok, want)
		}
	}
}
