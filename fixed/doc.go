// Package fixed provides the fixed point number family of the contract
// ABI: fixed<M>x<N> and ufixed<M>x<N>.
//
// A format is described by a Schema: the total bit width M, the count of
// fractional bits N, and whether the format is signed. The equation for a
// fixed point number is:
//
//  number = magnitude * 2 ^ -N
//
// Where magnitude is an integer stored in M bits, signed formats in two's
// complement. For example, ufixed16x8 with magnitude 384 is:
//
//  384 * 2^-8 = 1.5
//
// Valid schemas have M a multiple of 8, 0 < N < M, and M at most 256. The
// ABI's generated type layer enumerates one concrete type per (M, N) pair;
// this package carries the pair as free parameters instead and validates
// once on construction, so every combination shares one code path.
//
// Numbers are immutable. The wire form is exactly M/8 bytes, big endian,
// produced by Bytes or MarshalBinary and read back by UnmarshalBinary on a
// Number whose schema is already set.
package fixed
