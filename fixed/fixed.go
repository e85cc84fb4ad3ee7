package fixed

import (
	"fmt"
	"math/big"

	"github.com/calebcase/numeric"
	"github.com/calebcase/numeric/decimal"
)

// MaxTotalBits is the widest format the ABI defines.
const MaxTotalBits = 256

// Schema describes a concrete fixed point format.
type Schema struct {
	TotalBits      uint
	FractionalBits uint
	Signed         bool
}

// Validate checks the bit width invariants: TotalBits is a positive
// multiple of 8 at most MaxTotalBits and FractionalBits is in
// (0, TotalBits).
func (s Schema) Validate() (err error) {
	switch {
	case s.TotalBits == 0 || s.TotalBits%8 != 0:
		return RangeError.New("total bits must be a positive multiple of 8: %d", s.TotalBits)
	case s.TotalBits > MaxTotalBits:
		return RangeError.New("total bits must be at most %d: %d", MaxTotalBits, s.TotalBits)
	case s.FractionalBits == 0 || s.FractionalBits >= s.TotalBits:
		return RangeError.New(
			"fractional bits must be greater than 0 and less than %d: %d",
			s.TotalBits,
			s.FractionalBits,
		)
	}

	return nil
}

// checkMagnitude enforces the storage range: unsigned formats hold
// [0, 2^TotalBits), signed formats [-2^(TotalBits-1), 2^(TotalBits-1)).
func (s Schema) checkMagnitude(magnitude *big.Int) (err error) {
	if s.Signed {
		bound := new(big.Int).Lsh(one, s.TotalBits-1)
		if magnitude.Cmp(new(big.Int).Neg(bound)) < 0 || magnitude.Cmp(bound) >= 0 {
			return RangeError.New(
				"magnitude %s does not fit in %d signed bits",
				magnitude,
				s.TotalBits,
			)
		}

		return nil
	}

	if magnitude.Sign() < 0 {
		return RangeError.New("magnitude %s is negative in an unsigned format", magnitude)
	}
	if magnitude.BitLen() > int(s.TotalBits) {
		return RangeError.New(
			"magnitude %s does not fit in %d bits",
			magnitude,
			s.TotalBits,
		)
	}

	return nil
}

var one = big.NewInt(1)

// New returns a number with the given raw magnitude, the real value
// already scaled by 2^FractionalBits.
func (s Schema) New(magnitude *big.Int) (n Number, err error) {
	if err := s.Validate(); err != nil {
		return n, err
	}
	if err := s.checkMagnitude(magnitude); err != nil {
		return n, err
	}

	return Number{
		schema:    s,
		magnitude: new(big.Int).Set(magnitude),
	}, nil
}

// Zero returns the zero value of the format: the shared default constant
// of the generated type layer, computed on demand. The schema must be
// valid.
func (s Schema) Zero() Number {
	return Number{
		schema:    s,
		magnitude: new(big.Int),
	}
}

// FromParts builds the magnitude from an integer part m and a fractional
// part n. The fractional part is packed at the top of the fractional
// field, left aligned to a nibble boundary.
func (s Schema) FromParts(m, n *big.Int) (_ Number, err error) {
	if err := s.Validate(); err != nil {
		return Number{}, err
	}
	if n.Sign() < 0 {
		return Number{}, RangeError.New("fractional part %s is negative", n)
	}

	// Left align n: shift is n's bit length rounded up to a multiple of
	// 4 so whole hex digits land in the fractional field.
	shift := uint(n.BitLen()+3) &^ 3
	if shift > s.FractionalBits {
		return Number{}, RangeError.New(
			"fractional part %s does not fit in %d bits",
			n,
			s.FractionalBits,
		)
	}

	magnitude := new(big.Int).Lsh(m, s.FractionalBits)
	magnitude.Or(magnitude, new(big.Int).Lsh(n, s.FractionalBits-shift))

	return s.New(magnitude)
}

// FromDecimal builds a number from a base 10 decimal. The decimal scaled
// by 2^FractionalBits must be an integer; a value needing more precision
// than the format carries is rejected rather than rounded.
func (s Schema) FromDecimal(d decimal.Decimal) (_ Number, err error) {
	if err := s.Validate(); err != nil {
		return Number{}, err
	}

	magnitude, ok := d.Mul2Exp(s.FractionalBits).BigInt()
	if !ok {
		return Number{}, RangeError.New(
			"%s is not representable with %d fractional bits",
			d,
			s.FractionalBits,
		)
	}

	return s.New(magnitude)
}

// Size returns the wire size in bytes.
func (s Schema) Size() int {
	return int(s.TotalBits / 8)
}

// Number is an immutable fixed point value.
type Number struct {
	schema    Schema
	magnitude *big.Int
}

// Schema returns the number's format.
func (n Number) Schema() Schema {
	return n.schema
}

// Magnitude returns a copy of the raw magnitude.
func (n Number) Magnitude() *big.Int {
	if n.magnitude == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(n.magnitude)
}

// Sign returns -1, 0, or +1 for negative, zero, and positive values.
func (n Number) Sign() int {
	if n.magnitude == nil {
		return 0
	}

	return n.magnitude.Sign()
}

// Equal reports whether both numbers have the same format and magnitude.
// Differing bit widths are never coerced: ufixed16x8(1) is not equal to
// ufixed32x8(1).
func (n Number) Equal(o Number) bool {
	return n.schema == o.schema && n.Magnitude().Cmp(o.Magnitude()) == 0
}

// Bytes returns the value in exactly TotalBits/8 bytes, big endian.
// Signed negative magnitudes are biased into two's complement before the
// unsigned padded conversion.
func (n Number) Bytes() (data []byte, err error) {
	if err := n.schema.Validate(); err != nil {
		return nil, err
	}

	magnitude := n.Magnitude()
	if magnitude.Sign() < 0 {
		magnitude.Add(magnitude, new(big.Int).Lsh(one, n.schema.TotalBits))
	}

	return numeric.ToBytesPadded(magnitude, n.schema.Size())
}

// Hex returns the prefixed byte-array hex encoding of Bytes.
func (n Number) Hex() (s string, err error) {
	data, err := n.Bytes()
	if err != nil {
		return "", err
	}

	return numeric.BytesToHexWithPrefix(data), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (n Number) MarshalBinary() (data []byte, err error) {
	return n.Bytes()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The receiver's
// schema selects the format; data must be exactly TotalBits/8 bytes.
func (n *Number) UnmarshalBinary(data []byte) (err error) {
	if err := n.schema.Validate(); err != nil {
		return err
	}
	if len(data) != n.schema.Size() {
		return RangeError.New(
			"expected %d bytes for %s, got %d",
			n.schema.Size(),
			n.schema.TypeName(),
			len(data),
		)
	}

	magnitude := new(big.Int).SetBytes(data)
	if n.schema.Signed && magnitude.Bit(int(n.schema.TotalBits-1)) == 1 {
		magnitude.Sub(magnitude, new(big.Int).Lsh(one, n.schema.TotalBits))
	}

	n.magnitude = magnitude

	return nil
}

// String renders the type name and raw magnitude for diagnostics.
func (n Number) String() string {
	return fmt.Sprintf("%s(%s)", n.schema.TypeName(), n.Magnitude())
}
