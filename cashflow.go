package xirr

import (
	"math"
	"slices"
)

// CashFlow is a dated amount of money moving in (positive) or out (negative)
// of a position. A terminal cash flow values the remaining holdings at the
// valuation date as if they were sold.
type CashFlow struct {
	Date   Date  `json:"date"`
	Amount Money `json:"amount"`
}

// CashFlows is a chronologically sorted cash-flow series, the unit the NPV
// function and the XIRR solver operate on.
type CashFlows []CashFlow

// Sorted returns a copy of the series in chronological order. The sort is
// stable: entries on the same date keep their construction order.
func (s CashFlows) Sorted() CashFlows {
	sorted := slices.Clone(s)
	slices.SortStableFunc(sorted, func(a, b CashFlow) int {
		return a.Date.DaysSince(b.Date)
	})
	return sorted
}

// Sum returns the simple, undiscounted sum of the series.
func (s CashFlows) Sum() Money {
	var total Money
	for _, cf := range s {
		total = total.Add(cf.Amount)
	}
	return total
}

// NPV computes the net present value of the series at the given annual rate,
// with actual/365 day-count discounting anchored at the first entry's date.
// Zero amounts are skipped and an empty series is worth 0.
//
// The series is used as given, not re-sorted: callers must pre-sort. Rates
// at or below -1 make the discount base non-positive and the result is not a
// number; the solver keeps its search above that boundary by rejecting
// non-finite evaluations.
func NPV(rate float64, s CashFlows) float64 {
	if len(s) == 0 {
		return 0
	}
	d0 := s[0].Date
	total := 0.0
	for _, cf := range s {
		amount := cf.Amount.AsFloat()
		if amount == 0 {
			continue
		}
		years := float64(cf.Date.DaysSince(d0)) / 365.0
		total += amount / math.Pow(1+rate, years)
	}
	return total
}
