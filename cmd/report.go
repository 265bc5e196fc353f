package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/openfolio/xirr"
	"github.com/openfolio/xirr/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	transactionsFile string
	pricesFile       string
	date             string
	ticker           string
	asJSON           bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "XIRR analysis for every ticker in the ledger" }
func (*reportCmd) Usage() string {
	return `txr report [-t <transactions.csv>] [-p <prices.csv>] [-d <date>] [-ticker <ticker>] [-json]

  Detects every underlying ticker in the transaction ledger and reports its
  stock-only XIRR, and, when option activity exists, the combined XIRR and
  the options impact. Open positions are valued at the given date using the
  current prices table.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.transactionsFile, "t", "transactions.csv", "Transactions CSV file (Symbol,Date,Qty,Cash Flow)")
	f.StringVar(&c.pricesFile, "p", "prices.csv", "Current prices CSV file (Symbol,Current Price)")
	f.StringVar(&c.date, "d", "", "Valuation date for open positions, defaults to today")
	f.StringVar(&c.ticker, "ticker", "", "Restrict the analysis to a single underlying ticker")
	f.BoolVar(&c.asJSON, "json", false, "Emit the raw results as JSON instead of markdown")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var results []xirr.TickerReturn
	if c.ticker != "" {
		results = []xirr.TickerReturn{xirr.AnalyzeTicker(c.ticker, txs, quotes, on)}
	} else {
		results = xirr.Analyze(txs, quotes, on)
	}

	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding results: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.ReportMarkdown(results, on))
	return subcommands.ExitSuccess
}
