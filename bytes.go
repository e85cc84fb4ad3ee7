package numeric

import (
	"encoding/hex"
	"math/big"
)

// BytesToBig interprets data as an unsigned big-endian integer. The result
// is never negative.
func BytesToBig(data []byte) *big.Int {
	return new(big.Int).SetBytes(data)
}

// ToBytesPadded returns exactly length bytes holding the big-endian
// magnitude of value, left padded with zero bytes.
func ToBytesPadded(value *big.Int, length int) (data []byte, err error) {
	if value.Sign() < 0 {
		return nil, EncodingError.New("negative value: %s", value)
	}

	// Note: big.Int.Bytes returns the bare magnitude, so there is no
	// leading sign byte to strip here (and zero yields an empty slice,
	// which pads to all zero bytes).
	bytes := value.Bytes()
	if len(bytes) > length {
		return nil, EncodingError.New(
			"value requires %d bytes, only %d available",
			len(bytes),
			length,
		)
	}

	data = make([]byte, length)
	copy(data[length-len(bytes):], bytes)

	return data, nil
}

// FromHex parses an optionally prefixed hex digit string into bytes. An
// odd number of digits is read as if a leading 0 digit were present, so
// the first output byte holds only the low nibble from the first
// character. An empty payload yields an empty slice.
func FromHex(input string) (data []byte, err error) {
	clean := TrimHexPrefix(input)
	if len(clean) == 0 {
		return []byte{}, nil
	}

	data = make([]byte, (len(clean)+1)/2)

	start := 0
	if len(clean)%2 != 0 {
		nib, ok := fromHexChar(clean[0])
		if !ok {
			return nil, DecodingError.New("invalid hex digit %q in %q", clean[0], input)
		}

		data[0] = nib
		start = 1
	}

	for i := start; i < len(clean); i += 2 {
		hi, ok := fromHexChar(clean[i])
		if !ok {
			return nil, DecodingError.New("invalid hex digit %q in %q", clean[i], input)
		}

		lo, ok := fromHexChar(clean[i+1])
		if !ok {
			return nil, DecodingError.New("invalid hex digit %q in %q", clean[i+1], input)
		}

		data[(i+1)/2] = hi<<4 | lo
	}

	return data, nil
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}

	return 0, false
}

// BytesToHex encodes data as two lowercase hex digits per byte, no prefix.
// Leading zero bytes are preserved.
func BytesToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// BytesToHexWithPrefix encodes data as two lowercase hex digits per byte
// with the "0x" prefix.
func BytesToHexWithPrefix(data []byte) string {
	return hexPrefix + hex.EncodeToString(data)
}
