package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/openfolio/xirr"
)

func usd(v float64) xirr.Money { return xirr.M(v, "USD") }

func sampleFlows() xirr.CashFlows {
	return xirr.CashFlows{
		{Date: xirr.NewDate(2025, time.March, 18), Amount: usd(-939.75)},
		{Date: xirr.NewDate(2025, time.June, 30), Amount: usd(1242.5)},
	}
}

func TestReportMarkdown(t *testing.T) {
	results := []xirr.TickerReturn{
		{
			Ticker:     "BKE",
			StockOnly:  xirr.ReturnResult{Rate: 1.1276, Defined: true, Flows: sampleFlows()},
			HasOptions: true,
			Combined:   xirr.ReturnResult{Rate: 1.3276, Defined: true, Flows: sampleFlows()},
		},
		{
			Ticker:    "BOOT",
			StockOnly: xirr.ReturnResult{Defined: false, Flows: sampleFlows()},
		},
	}
	got := ReportMarkdown(results, xirr.NewDate(2025, time.June, 30))

	for _, want := range []string{
		"# Portfolio XIRR Report",
		"as of **2025-06-30**",
		"## BKE",
		"### Stock-Only",
		"Stock-Only XIRR: **112.760%**",
		"### Combined (Stock + Options)",
		"Options Impact: **+20.000%**",
		"## BOOT",
		"No option transactions found for BOOT.",
		"Stock-Only XIRR could not be determined.",
		"| 2025-03-18 | -$939.75 |",
		"| **Total** | **$302.75** |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ReportMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestReportMarkdown_Empty(t *testing.T) {
	got := ReportMarkdown(nil, xirr.NewDate(2025, time.June, 30))
	if !strings.Contains(got, "No recognizable tickers") {
		t.Errorf("ReportMarkdown(nil) = %q, want the empty-table notice", got)
	}
}

func TestFlowsMarkdown(t *testing.T) {
	got := FlowsMarkdown("BKE", sampleFlows())

	for _, want := range []string{
		"# BKE Cash Flows",
		"| Date | Cash Flow |",
		"| 2025-03-18 | -$939.75 |",
		"| 2025-06-30 | $1,242.50 |",
		"| **Total** | **$302.75** |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FlowsMarkdown() missing %q in:\n%s", want, got)
		}
	}
}
