// Package cmd implements the CLI application to analyze ticker returns.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/openfolio/xirr"
)

// Commands returns all the subcommands of the txr tool.
// A main package registers each of them on a subcommands.Commander.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&reportCmd{},
		&flowsCmd{},
		&tickersCmd{},
		&fetchCmd{},
	}
}

// loadTransactions reads a broker transactions CSV. Invalid rows are dropped
// by the import with a warning; they must never reach the computation core.
func loadTransactions(path string) (xirr.Transactions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open transactions file: %w", err)
	}
	defer f.Close()

	txs, dropped, err := xirr.ImportTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load transactions from %q: %w", path, err)
	}
	if dropped > 0 {
		log.Printf("warning: dropped %d transaction rows with invalid date, quantity or cash flow", dropped)
	}
	return txs, nil
}

// loadQuotes reads a current prices CSV.
func loadQuotes(path string) (*xirr.Quotes, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open prices file: %w", err)
	}
	defer f.Close()

	quotes, dropped, err := xirr.ImportQuotes(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load quotes from %q: %w", path, err)
	}
	if dropped > 0 {
		log.Printf("warning: dropped %d price rows with a non-numeric price", dropped)
	}
	return quotes, nil
}

// valuationDate parses the -d flag, defaulting to today.
func valuationDate(str string) (xirr.Date, error) {
	if str == "" {
		return xirr.Today(), nil
	}
	return xirr.ParseDate(str)
}
