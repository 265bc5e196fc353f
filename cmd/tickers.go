package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/openfolio/xirr"
)

// tickersCmd holds the flags for the 'tickers' subcommand.
type tickersCmd struct {
	transactionsFile string
	pricesFile       string
}

func (*tickersCmd) Name() string     { return "tickers" }
func (*tickersCmd) Synopsis() string { return "list the underlying tickers detected in the ledger" }
func (*tickersCmd) Usage() string {
	return `txr tickers [-t <transactions.csv>] [-p <prices.csv>]

  Lists every underlying ticker detected in the transaction ledger, resolving
  option symbols to their underlying. The prices table is only used as a
  fallback to resolve ambiguous option symbols.
`
}

func (c *tickersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.transactionsFile, "t", "transactions.csv", "Transactions CSV file (Symbol,Date,Qty,Cash Flow)")
	f.StringVar(&c.pricesFile, "p", "prices.csv", "Current prices CSV file (Symbol,Current Price)")
}

func (c *tickersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txs, err := loadTransactions(c.transactionsFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	// The prices file is optional here.
	quotes, err := loadQuotes(c.pricesFile)
	if err != nil {
		quotes = xirr.NewQuotes()
	}

	for _, ticker := range xirr.BaseTickers(txs, quotes) {
		fmt.Println(ticker)
	}
	return subcommands.ExitSuccess
}
