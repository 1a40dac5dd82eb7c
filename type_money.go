package divistack

import (
	"encoding/json"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount for display, computations stay in float64.
//
// An amount that is not a number (a zero exchange rate yields one) is kept
// invalid and printed as "n/a".
type Money struct {
	value   decimal.Decimal // as major unit value
	cur     string
	invalid bool
}

// M returns the amount in the given currency.
func M(value float64, currency string) Money {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{cur: currency, invalid: true}
	}
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// EUR returns the amount in euro.
func EUR(value float64) Money { return M(value, BaseCurrency) }

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// money.New never returns a nil currency
	return *money.New(0, m.cur).Currency()
}

// String returns the amount formatted for its currency, rounded to the
// currency's fraction.
func (m Money) String() string {
	if m.invalid {
		return "n/a"
	}
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the amount with an explicit sign, "-" for zero.
func (m Money) SignedString() string {
	switch {
	case m.invalid:
		return "n/a"
	case m.value.Round(2).IsZero():
		return "-"
	case m.value.IsPositive():
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string { return m.cur }
func (m Money) IsValid() bool    { return !m.invalid }
func (m Money) IsZero() bool     { return !m.invalid && m.value.IsZero() }
func (m Money) IsNegative() bool { return !m.invalid && m.value.IsNegative() }
func (m Money) Float64() float64 {
	if m.invalid {
		return math.NaN()
	}
	return m.value.InexactFloat64()
}

// MarshalJSON writes the amount rounded to its currency's fraction, null when
// the amount is invalid.
func (m Money) MarshalJSON() ([]byte, error) {
	if m.invalid {
		return []byte("null"), nil
	}
	return json.Marshal(struct {
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency,omitempty"`
	}{m.value.Round(int32(m.currency().Fraction)), m.cur})
}
