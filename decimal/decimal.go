package decimal

import (
	"math/big"
	"strings"
)

var ten = big.NewInt(10)

// Decimal is a fixed point base 10 number: value * 10^-scale.
type Decimal struct {
	value *big.Int
	scale int32
}

// New returns a decimal holding a copy of value at the given scale.
func New(value *big.Int, scale int32) Decimal {
	return Decimal{
		value: new(big.Int).Set(value),
		scale: scale,
	}
}

// Parse reads a decimal numeral: an optional sign, digits, and an optional
// point followed by digits. At least one digit must be present.
func Parse(input string) (d Decimal, err error) {
	s := input

	negative := false
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	}

	integer := s
	fraction := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		integer = s[:i]
		fraction = s[i+1:]
	}

	digits := integer + fraction
	if len(digits) == 0 {
		return d, Error.New("invalid decimal: %q", input)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return d, Error.New("invalid decimal: %q", input)
		}
	}

	value, _ := new(big.Int).SetString(digits, 10)
	if negative {
		value.Neg(value)
	}

	return Decimal{
		value: value,
		scale: int32(len(fraction)),
	}, nil
}

// Value returns a copy of the unscaled integer value.
func (d Decimal) Value() *big.Int {
	if d.value == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(d.value)
}

// Scale returns the count of fractional digits.
func (d Decimal) Scale() int32 {
	return d.scale
}

// Sign returns -1, 0, or +1 for negative, zero, and positive values.
func (d Decimal) Sign() int {
	if d.value == nil {
		return 0
	}

	return d.value.Sign()
}

// Normalize strips trailing zeros from the fractional part, reducing the
// scale toward zero. Zero normalizes to scale zero.
func (d Decimal) Normalize() Decimal {
	value := d.Value()
	scale := d.scale

	if value.Sign() == 0 {
		return Decimal{value: value}
	}

	rem := new(big.Int)
	for scale > 0 {
		q, r := new(big.Int).QuoRem(value, ten, rem)
		if r.Sign() != 0 {
			break
		}

		value = q
		scale--
	}

	return Decimal{value: value, scale: scale}
}

// IsInteger reports whether the value has no fractional component once
// trailing zeros are stripped.
func (d Decimal) IsInteger() bool {
	if d.Sign() == 0 || d.scale <= 0 {
		return true
	}

	return d.Normalize().scale <= 0
}

// BigInt returns the value as an integer. The second return is false when
// the value has a fractional component.
func (d Decimal) BigInt() (value *big.Int, ok bool) {
	n := d.Normalize()
	if n.scale > 0 {
		return nil, false
	}

	value = n.value
	for ; n.scale < 0; n.scale++ {
		value.Mul(value, ten)
	}

	return value, true
}

// Mul2Exp returns the value multiplied by 2^n at the same scale.
func (d Decimal) Mul2Exp(n uint) Decimal {
	return Decimal{
		value: new(big.Int).Lsh(d.Value(), n),
		scale: d.scale,
	}
}

// Equal reports whether two decimals represent the same number. Trailing
// zeros do not distinguish values: 1.50 equals 1.5.
func (d Decimal) Equal(o Decimal) bool {
	dn := d.Normalize()
	on := o.Normalize()

	return dn.scale == on.scale && dn.value.Cmp(on.value) == 0
}

// String renders the decimal numeral.
func (d Decimal) String() string {
	value := d.Value()

	if d.scale <= 0 {
		for scale := d.scale; scale < 0; scale++ {
			value.Mul(value, ten)
		}

		return value.String()
	}

	sign := ""
	if value.Sign() < 0 {
		sign = "-"
		value.Neg(value)
	}

	digits := value.String()
	for len(digits) <= int(d.scale) {
		digits = "0" + digits
	}

	point := len(digits) - int(d.scale)

	return sign + digits[:point] + "." + digits[point:]
}
