package numeric

import (
	"math/big"
)

// Quantity is a big.Int that marshals to and from the canonical quantity
// encoding. It implements encoding.TextMarshaler and TextUnmarshaler, so
// it round-trips through JSON payloads as a string.
type Quantity big.Int

// NewQuantity returns a Quantity holding a copy of value.
func NewQuantity(value *big.Int) *Quantity {
	return (*Quantity)(new(big.Int).Set(value))
}

// Big returns a copy of the value as a big.Int.
func (q *Quantity) Big() *big.Int {
	return new(big.Int).Set((*big.Int)(q))
}

// MarshalText implements encoding.TextMarshaler.
func (q *Quantity) MarshalText() (text []byte, err error) {
	s, err := EncodeQuantity((*big.Int)(q))
	if err != nil {
		return nil, err
	}

	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts exactly
// what DecodeQuantity accepts, including the decimal numeral fallback.
func (q *Quantity) UnmarshalText(text []byte) (err error) {
	v, err := DecodeQuantity(string(text))
	if err != nil {
		return err
	}

	(*big.Int)(q).Set(v)

	return nil
}

// String returns the canonical quantity encoding, or the decimal form for
// values that have no quantity encoding.
func (q *Quantity) String() string {
	s, err := EncodeQuantity((*big.Int)(q))
	if err != nil {
		return (*big.Int)(q).String()
	}

	return s
}

// Bytes is a byte slice that marshals to and from the fixed-width
// byte-array hex encoding. It implements encoding.TextMarshaler and
// TextUnmarshaler.
type Bytes []byte

// MarshalText implements encoding.TextMarshaler.
func (b Bytes) MarshalText() (text []byte, err error) {
	return []byte(BytesToHexWithPrefix(b)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unlike FromHex, the
// wire contract is strict: the prefix is required and the digit count must
// be even.
func (b *Bytes) UnmarshalText(text []byte) (err error) {
	input := string(text)

	if !HasHexPrefix(input) {
		return DecodingError.New("missing 0x prefix: %q", input)
	}
	if len(input)%2 != 0 {
		return DecodingError.New("odd hex digit count: %q", input)
	}

	data, err := FromHex(input)
	if err != nil {
		return err
	}

	*b = data

	return nil
}

// String returns the prefixed hex encoding.
func (b Bytes) String() string {
	return BytesToHexWithPrefix(b)
}
