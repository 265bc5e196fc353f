package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/openfolio/xirr"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	transactionsFile string
	outputFile       string
	apiKey           string
	live             bool
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch current prices for every symbol in the ledger" }
func (*fetchCmd) Usage() string {
	return `txr fetch [-t <transactions.csv>] [-o <prices.csv>] [-api-key <key>] [-live]

  Fetches the current price of every symbol appearing in the transaction
  ledger from the EODHD API and writes them as a prices CSV. Responses are
  cached until the end of day; use -live to bypass the cache. Symbols that
  cannot be quoted are skipped with a warning.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.transactionsFile, "t", "transactions.csv", "Transactions CSV file (Symbol,Date,Qty,Cash Flow)")
	f.StringVar(&c.outputFile, "o", "prices.csv", "Output prices CSV file")
	f.StringVar(&c.apiKey, "api-key", os.Getenv("EODHD_API_TOKEN"), "EODHD API token (defaults to $EODHD_API_TOKEN)")
	f.BoolVar(&c.live, "live", false, "Bypass the daily cache and fetch fresh quotes")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.apiKey == "" {
		fmt.Fprintln(os.Stderr, "missing EODHD API token: set -api-key or $EODHD_API_TOKEN")
		return subcommands.ExitUsageError
	}

	txs, err := loadTransactions(c.transactionsFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	quotes := xirr.FetchQuotes(c.apiKey, txs.Symbols(), c.live)
	if quotes.Len() == 0 {
		fmt.Fprintln(os.Stderr, "no quotes could be fetched")
		return subcommands.ExitFailure
	}

	out, err := os.Create(c.outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.outputFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := xirr.ExportQuotes(out, quotes); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.outputFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote %d quotes to %s\n", quotes.Len(), c.outputFile)
	return subcommands.ExitSuccess
}
