package numeric

import (
	"math/big"
	"strconv"
)

// EncodeQuantity returns the canonical quantity encoding of value: "0x"
// followed by the minimal lowercase hex digits. Zero encodes as "0x0".
func EncodeQuantity(value *big.Int) (string, error) {
	if value.Sign() < 0 {
		return "", EncodingError.New("negative value: %s", value)
	}

	return hexPrefix + value.Text(16), nil
}

// DecodeQuantity parses a quantity. A plain decimal numeral that fits a
// signed 64-bit integer is accepted before the 0x form is required; some
// servers emit them. The precedence is observable and must not change.
func DecodeQuantity(input string) (*big.Int, error) {
	if v, err := strconv.ParseInt(input, 10, 64); err == nil {
		return big.NewInt(v), nil
	}

	if len(input) < 3 || !HasHexPrefix(input) {
		return nil, DecodingError.New("value must be in format 0x[1-9a-f]+[0-9a-f]* or 0x0: %q", input)
	}

	v, ok := new(big.Int).SetString(input[2:], 16)
	if !ok || v.Sign() < 0 {
		return nil, DecodingError.New("invalid hex payload: %q", input)
	}

	return v, nil
}
