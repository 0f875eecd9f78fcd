//go:build bitboard_unchecked

package bitboard

// boundsChecks is off: indexes past the last word and overflowing line
// numbers still panic, padding bits do not.
const boundsChecks = false
