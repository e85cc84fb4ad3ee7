// Package numeric implements the hex encodings used by Ethereum style
// JSON-RPC APIs and contract ABIs: quantities, byte arrays, and the
// conversions between them and arbitrary precision integers.
//
// Quantities
//
// A quantity is a non-negative integer encoded as "0x" followed by the
// minimal number of lowercase hex digits:
//
//  0     -> "0x0"
//  16    -> "0x10"
//  255   -> "0xff"
//  1024  -> "0x400"
//
// Leading zero digits are never produced ("0x0400" is not a canonical
// quantity). Decoding additionally accepts a plain decimal numeral as a
// compatibility concession to non-conformant servers; the decimal parse is
// attempted first and the strict hex grammar only applies when it fails.
//
// Byte Arrays
//
// A byte array is encoded as "0x" followed by exactly two lowercase hex
// digits per byte:
//
//  []        -> "0x"
//  [0]       -> "0x00"
//  [1, 2]    -> "0x0102"
//
// Leading zero bytes are preserved. This is a structural encoding, not a
// numeric one: the digit count is fixed by the byte count, never by the
// value. Conflating the two encodings is the classic interoperability bug
// this package exists to prevent.
//
// The Quantity and Bytes types carry these encodings across
// encoding.TextMarshaler and encoding.TextUnmarshaler so values round-trip
// through JSON payloads without hand-rolled conversions.
package numeric
