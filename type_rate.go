package xirr

import "fmt"

// Rate is an annualized rate of return, as a fraction (0.1 means +10% a year).
type Rate float64

// Equal compares two rates within the solver's precision.
func (r Rate) Equal(s Rate) bool {
	const precision = 1e-4
	diff := r - s
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// String renders the rate as a percentage with three decimals.
func (r Rate) String() string {
	return fmt.Sprintf("%.3f%%", 100*float64(r))
}

// SignedString renders the rate as a percentage with an explicit sign.
// Zero is represented as "-".
func (r Rate) SignedString() string {
	res := fmt.Sprintf("%+.3f%%", 100*float64(r))
	if res == "+0.000%" {
		return "-"
	}
	return res
}
