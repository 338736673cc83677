package biomarket

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Price represents a monetary amount in euros.
//
// It keeps the exact decimal value; rounding only happens in Display.
type Price struct {
	value decimal.Decimal
}

// P builds a Price from a numeric constant. Mostly useful in tests and prompts.
func P[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Price {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Price{value: v}
	case float32:
		return Price{value: decimal.NewFromFloat32(v)}
	case float64:
		return Price{value: decimal.NewFromFloat(v)}
	case int:
		return Price{value: decimal.NewFromInt(int64(v))}
	case int32:
		return Price{value: decimal.NewFromInt32(v)}
	case int64:
		return Price{value: decimal.NewFromInt(v)}
	default:
		panic("unsupported type")
	}
}

// ParsePrice parses the decimal representation of a price.
// A comma is accepted as the decimal separator and normalized before parsing,
// interactive input being typed on European keyboards.
func ParsePrice(s string) (Price, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, err
	}
	return Price{value: d}, nil
}

// String returns the canonical storage form, a plain decimal literal with '.'
// as separator. It is stable across write/read round-trips.
func (p Price) String() string { return p.value.String() }

// Display returns the amount formatted as euros, e.g. "€1.50".
func (p Price) Display() string {
	cur := *money.New(0, money.EUR).Currency()
	return cur.Formatter().Format(p.value.Shift(int32(cur.Fraction)).Round(0).IntPart())
}

func (p Price) Add(q Price) Price  { return Price{value: p.value.Add(q.value)} }
func (p Price) Sub(q Price) Price  { return Price{value: p.value.Sub(q.value)} }
func (p Price) MulInt(n int) Price { return Price{value: p.value.Mul(decimal.NewFromInt(int64(n)))} }
func (p Price) Equal(q Price) bool { return p.value.Equal(q.value) }
func (p Price) IsZero() bool       { return p.value.IsZero() }
func (p Price) IsNegative() bool   { return p.value.IsNegative() }

// Decimal exposes the exact underlying value.
func (p Price) Decimal() decimal.Decimal { return p.value }
