package xirr

import "github.com/shopspring/decimal"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Quantity represents a number of shares or contracts. Fractional shares are
// common in broker ledgers, so the value is an exact decimal.
type Quantity struct {
	value decimal.Decimal
}

// Q builds a Quantity from any numeric value.
func Q[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (q Quantity) Add(p Quantity) Quantity { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) Mul(p Quantity) Quantity { return Quantity{value: q.value.Mul(p.value)} }
func (q Quantity) Neg() Quantity           { return Quantity{value: q.value.Neg()} }
func (q Quantity) Equal(p Quantity) bool   { return q.value.Equal(p.value) }
func (q Quantity) IsZero() bool            { return q.value.IsZero() }
func (q Quantity) IsNegative() bool        { return q.value.IsNegative() }
func (q Quantity) IsPositive() bool        { return q.value.IsPositive() }
func (q Quantity) String() string          { return q.value.String() }

func (q Quantity) MarshalJSON() ([]byte, error) {
	return q.value.MarshalJSON()
}
func (q *Quantity) UnmarshalJSON(decimalBytes []byte) error {
	return q.value.UnmarshalJSON(decimalBytes)
}
