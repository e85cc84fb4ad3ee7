package numeric

import (
	"math/big"
	"strings"
)

const hexPrefix = "0x"

// HasHexPrefix reports whether input begins with the two characters "0x".
func HasHexPrefix(input string) bool {
	return len(input) > 1 && input[0] == '0' && input[1] == 'x'
}

// TrimHexPrefix strips a leading "0x" if present. Applying it twice is a
// no-op.
func TrimHexPrefix(input string) string {
	if HasHexPrefix(input) {
		return input[2:]
	}

	return input
}

// AddHexPrefix prepends "0x" if absent. Applying it twice is a no-op.
func AddHexPrefix(input string) string {
	if HasHexPrefix(input) {
		return input
	}

	return hexPrefix + input
}

// ToBig parses an optionally prefixed hex string as an unsigned base 16
// integer.
func ToBig(input string) (*big.Int, error) {
	return ToBigNoPrefix(TrimHexPrefix(input))
}

// ToBigNoPrefix parses hex digits as an unsigned base 16 integer.
func ToBigNoPrefix(input string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(input, 16)
	if !ok || v.Sign() < 0 {
		return nil, DecodingError.New("invalid hex digits: %q", input)
	}

	return v, nil
}

// ToHex returns the minimal lowercase hex digits of value, no prefix and no
// padding.
func ToHex(value *big.Int) string {
	return value.Text(16)
}

// ToHexWithPrefix returns the minimal lowercase hex digits of value with
// the "0x" prefix.
func ToHexWithPrefix(value *big.Int) string {
	return hexPrefix + value.Text(16)
}

// ToHexZeroPadded returns exactly size hex digits, left padded with zeros.
func ToHexZeroPadded(value *big.Int, size int) (string, error) {
	return toHexZeroPadded(value, size, false)
}

// ToHexZeroPaddedWithPrefix returns exactly size hex digits, left padded
// with zeros, with the "0x" prefix.
func ToHexZeroPaddedWithPrefix(value *big.Int, size int) (string, error) {
	return toHexZeroPadded(value, size, true)
}

func toHexZeroPadded(value *big.Int, size int, withPrefix bool) (string, error) {
	if value.Sign() < 0 {
		return "", EncodingError.New("negative value: %s", value)
	}

	digits := value.Text(16)
	if len(digits) > size {
		return "", EncodingError.New("value %s is larger than %d digits", digits, size)
	}

	digits = strings.Repeat("0", size-len(digits)) + digits

	if withPrefix {
		return hexPrefix + digits, nil
	}

	return digits, nil
}

// ToHexWithPrefixSafe is like ToHexWithPrefix but guarantees an even digit
// count, so the result always holds a whole number of encoded bytes.
func ToHexWithPrefixSafe(value *big.Int) string {
	digits := value.Text(16)
	if len(digits)%2 != 0 {
		digits = "0" + digits
	}

	return hexPrefix + digits
}
