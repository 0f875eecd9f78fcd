// Package bitboard provides fixed-capacity bit sets for board games and
// combinatorial search.
//
// A Bitboard packs N boolean flags into 64-bit words. N is fixed at compile
// time by a Layout type, so a board lives inline in its owner with no heap
// allocation, and boards of different sizes are different types.
//
// # Quick Start
//
//	var occupied bitboard.Board81 // 9x9, two words
//	occupied.Set(40)
//	occupied.SetWholeLine(0, 9)   // first row
//	fmt.Println(occupied.IsSet(4)) // true
//
// # Custom Layouts
//
// A layout is a named uint64 array that reports its capacity. The array
// length must be ceil(capacity/64):
//
//	type Cap49 [1]uint64 // 7x7
//
//	func (Cap49) Capacity() int { return 49 }
//
//	board := bitboard.New[Cap49]() // panics if the layout is malformed
//
// # Set Algebra
//
//	a.UnionWith(b)      // a |= b
//	a.DifferenceWith(b) // a &^= b
//
// # Bounds Checking
//
// Set, Unset, IsSet, IsUnset and SetWholeLine panic with a typed error
// (*IndexError, *LineError, *LineSizeError) on invalid input. CheckIndex and
// CheckLine return the same errors without panicking. Building with
// -tags bitboard_unchecked drops the capacity checks on the hot path; indexes
// past the last word, line numbers whose start index overflows and invalid
// line sizes still panic, writes into the padding bits do not.
//
// # Debugging
//
// Fprint and PrintByLine render the raw layout, padding included, as rows of
// '0' and '1'. Boards implement slog.LogValuer and fmt.Stringer.
package bitboard
