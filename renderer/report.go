// Package renderer turns analysis results into markdown reports.
package renderer

import (
	"fmt"
	"strings"

	"github.com/openfolio/xirr"
)

// ReportMarkdown renders the full per-ticker XIRR analysis to markdown.
func ReportMarkdown(results []xirr.TickerReturn, on xirr.Date) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Portfolio XIRR Report\n\n")
	fmt.Fprintf(&b, "Valuing current holdings as of **%s**.\n\n", on)

	if len(results) == 0 {
		fmt.Fprint(&b, "No recognizable tickers found in the transaction data.\n")
		return b.String()
	}

	for _, result := range results {
		fmt.Fprintf(&b, "## %s\n\n", result.Ticker)
		writeResult(&b, "Stock-Only", result.StockOnly)

		if !result.HasOptions {
			fmt.Fprintf(&b, "No option transactions found for %s.\n\n", result.Ticker)
			continue
		}
		writeResult(&b, "Combined (Stock + Options)", result.Combined)
		if impact, ok := result.OptionsImpact(); ok {
			fmt.Fprintf(&b, "Options Impact: **%s**\n\n", impact.SignedString())
		}
	}
	return b.String()
}

// FlowsMarkdown renders a single cash-flow series as a markdown table.
func FlowsMarkdown(ticker string, flows xirr.CashFlows) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Cash Flows\n\n", ticker)
	writeFlowsTable(&b, flows)
	return b.String()
}

func writeResult(b *strings.Builder, label string, result xirr.ReturnResult) {
	fmt.Fprintf(b, "### %s\n\n", label)
	if len(result.Flows) > 0 {
		writeFlowsTable(b, result.Flows)
	}
	if result.Defined {
		fmt.Fprintf(b, "%s XIRR: **%s**\n\n", label, result.Rate)
	} else {
		fmt.Fprintf(b, "%s XIRR could not be determined.\n\n", label)
	}
}

func writeFlowsTable(b *strings.Builder, flows xirr.CashFlows) {
	fmt.Fprintln(b, "| Date | Cash Flow |")
	fmt.Fprintln(b, "|:---|---:|")
	for _, cf := range flows {
		fmt.Fprintf(b, "| %s | %s |\n", cf.Date, cf.Amount)
	}
	fmt.Fprintf(b, "| **Total** | **%s** |\n\n", flows.Sum())
}
