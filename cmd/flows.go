package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/openfolio/xirr"
	"github.com/openfolio/xirr/renderer"
)

// flowsCmd holds the flags for the 'flows' subcommand.
type flowsCmd struct {
	transactionsFile string
	pricesFile       string
	date             string
	combined         bool
}

func (*flowsCmd) Name() string     { return "flows" }
func (*flowsCmd) Synopsis() string { return "print the cash-flow series built for one ticker" }
func (*flowsCmd) Usage() string {
	return `txr flows [-t <transactions.csv>] [-p <prices.csv>] [-d <date>] [-combined] <ticker>

  Prints the dated cash-flow series the solver operates on for one underlying
  ticker: every transaction's cash flow plus the terminal mark-to-market
  valuation. With -combined, option activity on the ticker is blended in.
`
}

func (c *flowsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.transactionsFile, "t", "transactions.csv", "Transactions CSV file (Symbol,Date,Qty,Cash Flow)")
	f.StringVar(&c.pricesFile, "p", "prices.csv", "Current prices CSV file (Symbol,Current Price)")
	f.StringVar(&c.date, "d", "", "Valuation date for open positions, defaults to today")
	f.BoolVar(&c.combined, "combined", false, "Include option activity on the ticker")
}

func (c *flowsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ticker := f.Arg(0)
	if ticker == "" {
		fmt.Fprintln(os.Stderr, "missing ticker argument")
		return subcommands.ExitUsageError
	}

	txs, err := loadTransactions(c.transactionsFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	quotes, err := loadQuotes(c.pricesFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	on, err := valuationDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing valuation date: %v\n", err)
		return subcommands.ExitUsageError
	}

	build := xirr.StockOnlyReturn
	if c.combined {
		build = xirr.CombinedReturn
	}
	_, flows, _ := build(ticker, txs, quotes, on)
	if len(flows) == 0 {
		fmt.Fprintf(os.Stderr, "no cash flows found for %s\n", ticker)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.FlowsMarkdown(ticker, flows))
	return subcommands.ExitSuccess
}
