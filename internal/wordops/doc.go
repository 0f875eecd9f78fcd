// Package wordops provides the word-level kernels behind bitboard.
//
// Bits are packed little-endian into []uint64: bit i lives in word i/64 at
// offset i%64. All functions operate on caller-owned slices and never
// allocate.
//
// # Operations
//
//   - Addressing: Locate, Ones
//   - Whole-set: OrWords, AndNotWords, PopcountWords, IsZero
//   - Bulk: OrLine (a run of up to 63 bits, possibly spanning two words)
package wordops
