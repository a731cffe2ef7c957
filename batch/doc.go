// Package batch implements packed vector arithmetic over the small finite
// fields used by MPC-in-the-head signature schemes.
//
// Six fields are supported, identified by their order q: the binary
// extension fields GF(2), GF(4), GF(16) and GF(256), and the prime fields
// GF(251) and GF(65521). Extension fields use a polynomial basis with the
// following fixed reduction polynomials:
//
//	GF(4)     x^2 + x + 1
//	GF(16)    x^4 + x + 1
//	GF(256)   x^8 + x^4 + x^3 + x^2 + 1
//
// A [Vector] holds a fixed number of elements of a single field, packed
// into 64-bit words with 1, 2, 4, 8, 8 or 16 bits per element (for q = 2,
// 4, 16, 256, 251 and 65521, respectively). Element j occupies bits j*w to
// j*w+w-1 of the little-endian word array; the same layout is used for the
// external byte encoding, i.e. elements are packed least significant bits
// first within each byte. Bits beyond the last element are always zero.
//
// Arithmetic on binary fields is performed on whole words (addition is a
// XOR, multiplication is a bit-sliced shift-and-reduce loop). Arithmetic
// on prime fields works element by element with branchless reductions.
// None of the operations branch on element values, except for rejection
// sampling in [Vector.Generate], which only consumes public or
// freshly-generated randomness.
//
// Operations on vectors of mismatched fields or lengths, and use of an
// unsupported field identifier, are programming errors and panic.
package batch
