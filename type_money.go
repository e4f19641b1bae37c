package bursar

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an exact monetary amount, held as an arbitrary-precision rational.
// Arithmetic never loses precision; rounding happens only when the value is
// rendered for display. The zero value is an exact zero.
type Money struct {
	rat *big.Rat
}

// M returns the exact amount numerator/denominator. M(150, 1) is 150, M(1, 3)
// is a third.
func M(numerator, denominator int64) Money {
	return Money{rat: big.NewRat(numerator, denominator)}
}

// MoneyFromRat returns the amount equal to r. The rational is copied, the
// caller keeps ownership of r.
func MoneyFromRat(r *big.Rat) Money {
	return Money{rat: new(big.Rat).Set(r)}
}

// ParseMoney parses a decimal string ("100", "12.34", "-0.005") into an exact
// amount. This is the boundary for every amount read from an import file or a
// command line flag.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{rat: d.Rat()}, nil
}

// val returns the underlying rational, never nil, never to be mutated.
func (m Money) val() *big.Rat {
	if m.rat == nil {
		return new(big.Rat)
	}
	return m.rat
}

// Rat returns a copy of the exact rational value.
func (m Money) Rat() *big.Rat { return new(big.Rat).Set(m.val()) }

func (m Money) Add(n Money) Money { return Money{rat: new(big.Rat).Add(m.val(), n.val())} }
func (m Money) Sub(n Money) Money { return Money{rat: new(big.Rat).Sub(m.val(), n.val())} }
func (m Money) Neg() Money        { return Money{rat: new(big.Rat).Neg(m.val())} }

func (m Money) Equal(n Money) bool { return m.val().Cmp(n.val()) == 0 }
func (m Money) IsZero() bool       { return m.val().Sign() == 0 }
func (m Money) IsNegative() bool   { return m.val().Sign() < 0 }
func (m Money) IsPositive() bool   { return m.val().Sign() > 0 }

// Cents rounds the exact value to a whole number of cents, toward positive
// infinity. The ceiling is deliberate and asymmetric: -0.005 rounds to 0, not
// to -1 cent. Downstream reports depend on this exact rule.
func (m Money) Cents() int64 {
	x := new(big.Rat).Mul(m.val(), big.NewRat(100, 1))
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(x.Num(), x.Denom(), r)
	// big.Rat keeps the denominator positive, so the remainder carries the
	// sign of the numerator. Truncation already is the ceiling for negative
	// values; positive leftovers push the quotient up.
	if r.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}
	return q.Int64()
}

// String renders the amount with currency symbol, thousands separators and two
// decimals, after ceiling the exact value to cents.
func (m Money) String() string {
	return money.New(m.Cents(), money.USD).Display()
}

// MarshalJSON persists the exact value as its rational string, e.g. "100" or
// "1/3". Lossless by construction.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.val().RatString())
}

// UnmarshalJSON accepts the rational string form produced by MarshalJSON, and
// also plain decimal strings.
func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("money must be a string: %w", err)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return fmt.Errorf("invalid money value %q", s)
	}
	m.rat = r
	return nil
}
