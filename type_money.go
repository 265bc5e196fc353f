package xirr

import (
	"encoding/json"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M builds a Money from any numeric value and a currency code.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency, never nil thanks to the money.New constructor.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, formatted
// with the currency's symbol and fraction rules.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the money value with an
// explicit sign. Zero is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string     { return m.cur }
func (m Money) Equal(n Money) bool   { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool         { return m.value.IsZero() }
func (m Money) IsPositive() bool     { return m.value.IsPositive() }
func (m Money) IsNegative() bool     { return m.value.IsNegative() }
func (m Money) Neg() Money           { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money           { return Money{value: m.value.Abs(), cur: m.cur} }
func (m Money) Mul(n Quantity) Money { return Money{value: m.value.Mul(n.value), cur: m.cur} }

func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// cur merges two currencies, making the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// AsFloat returns the value as a float64 for numeric root-finding. The exact
// decimal value remains the source of truth everywhere else.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// Amount returns the exact decimal value in major units.
func (m Money) Amount() decimal.Decimal { return m.value }

// MarshalJSON marshals the money as {"currency": ..., "amount": ...}.
func (m Money) MarshalJSON() ([]byte, error) {
	type jmoney struct {
		Currency string          `json:"currency,omitempty"`
		Amount   decimal.Decimal `json:"amount"`
	}
	return json.Marshal(jmoney{Currency: m.cur, Amount: m.value})
}
