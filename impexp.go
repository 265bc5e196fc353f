package xirr

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// This file contains the ingestion layer for broker CSV exports. Its job is
// to guarantee that only fully valid rows reach the computation core: rows
// with an unparseable date, quantity, cash flow or price are dropped and
// counted, never passed through.

// LedgerCurrency is the currency assumed for all amounts in broker exports.
const LedgerCurrency = "USD"

// transaction export column names.
const (
	colSymbol   = "Symbol"
	colDate     = "Date"
	colQty      = "Qty"
	colCashFlow = "Cash Flow"
	colPrice    = "Current Price"
)

// ImportTransactions reads a transaction table from 'r' in the broker export
// format: a CSV file with a "Symbol,Date,Qty,Cash Flow" header. Dates may be
// MM/DD/YYYY, DD-MM-YYYY or ISO. The second return value counts the rows
// dropped for having an invalid date, quantity or cash flow.
func ImportTransactions(r io.Reader) (Transactions, int, error) {
	cols, rows, err := readTable(r, colSymbol, colDate, colQty, colCashFlow)
	if err != nil {
		return nil, 0, fmt.Errorf("cannot read transactions: %w", err)
	}

	var txs Transactions
	dropped := 0
	for _, row := range rows {
		date, err := ParseDate(row[cols[colDate]])
		if err != nil {
			dropped++
			continue
		}
		qty, err := decimal.NewFromString(strings.TrimSpace(row[cols[colQty]]))
		if err != nil {
			dropped++
			continue
		}
		cashFlow, err := decimal.NewFromString(strings.TrimSpace(row[cols[colCashFlow]]))
		if err != nil {
			dropped++
			continue
		}
		txs = append(txs, Transaction{
			Symbol:   strings.TrimSpace(row[cols[colSymbol]]),
			Date:     date,
			Quantity: Q(qty),
			CashFlow: M(cashFlow, LedgerCurrency),
		})
	}
	return txs, dropped, nil
}

// ImportQuotes reads a current price table from 'r': a CSV file with a
// "Symbol,Current Price" header. The second return value counts rows dropped
// for a non-numeric price.
func ImportQuotes(r io.Reader) (*Quotes, int, error) {
	cols, rows, err := readTable(r, colSymbol, colPrice)
	if err != nil {
		return nil, 0, fmt.Errorf("cannot read quotes: %w", err)
	}

	quotes := NewQuotes()
	dropped := 0
	for _, row := range rows {
		price, err := decimal.NewFromString(strings.TrimSpace(row[cols[colPrice]]))
		if err != nil {
			dropped++
			continue
		}
		quotes.Add(row[cols[colSymbol]], M(price, LedgerCurrency))
	}
	return quotes, dropped, nil
}

// ExportQuotes writes the quote table to 'w' in the same CSV format that
// ImportQuotes reads, symbols in lexical order.
func ExportQuotes(w io.Writer, quotes *Quotes) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{colSymbol, colPrice}); err != nil {
		return err
	}
	for _, symbol := range quotes.Symbols() {
		price, _ := quotes.Get(symbol)
		if err := cw.Write([]string{symbol, price.Amount().String()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// readTable reads a CSV stream, validates that the header holds the wanted
// columns, and returns the column indexes plus all well-formed records.
// Records with a wrong field count are skipped: row-level validation happens
// at the caller, but a malformed line must not abort the import.
func readTable(r io.Reader, want ...string) (map[string]int, [][]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("missing header row: %w", err)
	}
	cols := make(map[string]int)
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range want {
		if _, ok := cols[name]; !ok {
			return nil, nil, fmt.Errorf("missing column %q in header %v", name, header)
		}
	}

	var rows [][]string
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			continue // malformed line, skip
		}
		rows = append(rows, record)
	}
	return cols, rows, nil
}
