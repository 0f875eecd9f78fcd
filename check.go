//go:build !bitboard_unchecked

package bitboard

// boundsChecks enables capacity checks on bit and line operations.
const boundsChecks = true
