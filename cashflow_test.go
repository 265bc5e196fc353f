package xirr

import (
	"math"
	"testing"
)

func TestNPV_ZeroRateIsSimpleSum(t *testing.T) {
	flows := CashFlows{
		{Date: on("2025-01-01"), Amount: usd(-100)},
		{Date: on("2025-06-01"), Amount: usd(30)},
		{Date: on("2025-12-01"), Amount: usd(80)},
	}
	got := NPV(0, flows)
	want := flows.Sum().AsFloat()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("NPV(0) = %v, want simple sum %v", got, want)
	}
}

func TestNPV_EmptySeries(t *testing.T) {
	if got := NPV(0.1, nil); got != 0 {
		t.Errorf("NPV(empty) = %v, want 0", got)
	}
}

func TestNPV_SkipsZeroAmounts(t *testing.T) {
	flows := CashFlows{
		{Date: on("2025-01-01"), Amount: usd(-100)},
		{Date: on("2025-03-01"), Amount: usd(0)},
		{Date: on("2026-01-01"), Amount: usd(110)},
	}
	// at 10% the one-year 110 discounts to 100 exactly
	got := NPV(0.1, flows)
	if math.Abs(got) > 1e-9 {
		t.Errorf("NPV(0.1) = %v, want 0", got)
	}
}

func TestNPV_OneYearDiscount(t *testing.T) {
	flows := CashFlows{
		{Date: on("2025-01-01"), Amount: usd(-100)},
		{Date: on("2026-01-01"), Amount: usd(120)},
	}
	// 120/(1.2)^1 - 100 = 0
	if got := NPV(0.2, flows); math.Abs(got) > 1e-9 {
		t.Errorf("NPV(0.2) = %v, want 0", got)
	}
}

func TestCashFlows_SortedIsStable(t *testing.T) {
	flows := CashFlows{
		{Date: on("2025-06-30"), Amount: usd(-1120)},
		{Date: on("2025-03-18"), Amount: usd(-939.75)},
		{Date: on("2025-06-30"), Amount: usd(1242.5)},
	}
	sorted := flows.Sorted()
	if !sorted[0].Amount.Equal(usd(-939.75)) {
		t.Fatalf("Sorted()[0] = %v, want the March entry first", sorted[0])
	}
	// same-date entries keep their construction order
	if !sorted[1].Amount.Equal(usd(-1120)) || !sorted[2].Amount.Equal(usd(1242.5)) {
		t.Errorf("Sorted() same-date order changed: %v", sorted)
	}
	// the input is left untouched
	if !flows[0].Amount.Equal(usd(-1120)) {
		t.Errorf("Sorted() mutated its input: %v", flows)
	}
}
