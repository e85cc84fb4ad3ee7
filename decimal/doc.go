// Package decimal provides a fixed point base 10 number.
//
// The equation for a decimal number is:
//
//  number = value * 10 ^ -scale
//
// Where number is the fixed point number, value is an unscaled integer, and
// scale is the count of fractional digits. For example:
//
//  1.23 = 123 * 10^-2
//
// A negative scale multiplies the value out instead:
//
//  1200 = 12 * 10^-(-2)
//
// Values are arbitrary precision. Decimals are immutable: every operation
// returns a fresh value and the internal integer is copied on construction
// and access.
//
// The package exists to feed fixed point construction: a decimal input is
// only representable in a binary fixed point format when scaling it by the
// format's power of two leaves no fractional component, which IsInteger
// detects after stripping trailing zeros.
package decimal
