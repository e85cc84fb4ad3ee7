package numeric

import (
	"github.com/zeebo/errs"
)

var (
	// EncodingError is returned when an input cannot be represented in
	// the requested format (negative where only non-negative is
	// representable, magnitude too large for a fixed width).
	EncodingError = errs.Class("encoding")

	// DecodingError is returned when wire format text does not conform
	// to the expected grammar.
	DecodingError = errs.Class("decoding")
)
