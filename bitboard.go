package bitboard

import (
	"fmt"
	"log/slog"
	"slices"
	"unsafe"

	"github.com/hupe1980/bitboard/internal/wordops"
)

// Bitboard is a fixed-capacity set of bits packed into 64-bit words.
//
// The layout L fixes both the storage size and the capacity. The zero value
// is an empty board and boards are plain values: assignment copies all words.
// A Bitboard is not safe for concurrent mutation.
type Bitboard[L Layout] struct {
	words L
}

// New returns an empty board.
// It panics with a *LayoutError if L's word count does not match its capacity.
func New[L Layout]() Bitboard[L] {
	if err := ValidateLayout[L](); err != nil {
		panic(err)
	}
	return Bitboard[L]{}
}

// view returns the board's words as a slice sharing its storage.
func (b *Bitboard[L]) view() []uint64 {
	return unsafe.Slice((*uint64)(unsafe.Pointer(&b.words)), len(b.words))
}

// Capacity returns the number of valid bits.
func (b *Bitboard[L]) Capacity() int {
	return b.words.Capacity()
}

// WordCount returns the number of storage words.
func (b *Bitboard[L]) WordCount() int {
	return len(b.words)
}

// Remainder returns the offset of the last valid bit within the final word.
func (b *Bitboard[L]) Remainder() int {
	return (b.Capacity() - 1) % WordBits
}

// CheckIndex returns an *IndexError if i is not a valid bit index.
func (b *Bitboard[L]) CheckIndex(i int) error {
	if c := b.Capacity(); i < 0 || i >= c {
		return &IndexError{Index: i, Capacity: c}
	}
	return nil
}

func (b *Bitboard[L]) mustIndex(i int) {
	if !boundsChecks {
		return
	}
	if err := b.CheckIndex(i); err != nil {
		panic(err)
	}
}

// Set sets bit i.
// It panics with an *IndexError if i is out of range.
func (b *Bitboard[L]) Set(i int) {
	b.mustIndex(i)
	w, mask := wordops.Locate(i)
	b.view()[w] |= mask
}

// Unset clears bit i.
// It panics with an *IndexError if i is out of range.
func (b *Bitboard[L]) Unset(i int) {
	b.mustIndex(i)
	w, mask := wordops.Locate(i)
	b.view()[w] &^= mask
}

// IsSet reports whether bit i is set.
// It panics with an *IndexError if i is out of range.
func (b *Bitboard[L]) IsSet(i int) bool {
	b.mustIndex(i)
	w, mask := wordops.Locate(i)
	return b.view()[w]&mask != 0
}

// IsUnset reports whether bit i is clear.
func (b *Bitboard[L]) IsUnset(i int) bool {
	return !b.IsSet(i)
}

// IsEmpty reports whether no bit is set.
func (b *Bitboard[L]) IsEmpty() bool {
	return wordops.IsZero(b.view())
}

// Count returns the number of set bits.
func (b *Bitboard[L]) Count() int {
	return wordops.PopcountWords(b.view())
}

// Clear unsets every bit.
func (b *Bitboard[L]) Clear() {
	clear(b.view())
}

// UnionWith sets every bit that is set in other (b |= other).
func (b *Bitboard[L]) UnionWith(other Bitboard[L]) {
	wordops.OrWords(b.view(), other.view())
}

// DifferenceWith clears every bit that is set in other (b &^= other).
func (b *Bitboard[L]) DifferenceWith(other Bitboard[L]) {
	wordops.AndNotWords(b.view(), other.view())
}

// Equal reports whether both boards hold the same words.
func (b *Bitboard[L]) Equal(other Bitboard[L]) bool {
	return slices.Equal(b.view(), other.view())
}

// Word returns storage word i.
func (b *Bitboard[L]) Word(i int) uint64 {
	return b.view()[i]
}

// Words returns a copy of the storage words.
func (b *Bitboard[L]) Words() []uint64 {
	return slices.Clone(b.view())
}

// String formats the board as its capacity followed by its words in hex.
func (b Bitboard[L]) String() string {
	return fmt.Sprintf("Bitboard(%d)%#x", b.Capacity(), b.view())
}

// LogValue implements slog.LogValuer.
func (b Bitboard[L]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("capacity", b.Capacity()),
		slog.String("words", fmt.Sprintf("%#x", b.view())),
		slog.Int("count", b.Count()),
	)
}
