package bitboard

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/bitboard/internal/wordops"
)

var (
	// ErrIndexOutOfRange is returned when a bit index falls outside [0, Capacity).
	ErrIndexOutOfRange = errors.New("bit index out of range")

	// ErrInvalidLineSize is returned when a line size is not in [1, 64).
	ErrInvalidLineSize = errors.New("invalid line size")

	// ErrLineOutOfRange is returned when a line does not fit within the board.
	ErrLineOutOfRange = errors.New("line out of range")

	// ErrInvalidLayout is returned when a layout's word count does not match its capacity.
	ErrInvalidLayout = errors.New("invalid layout")
)

// IndexError reports an out-of-range bit index.
//
// It unwraps to ErrIndexOutOfRange.
type IndexError struct {
	Index    int
	Capacity int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bit index out of range: %d not in [0, %d)", e.Index, e.Capacity)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// LineSizeError reports an unusable line size.
//
// SetWholeLine and CheckLine require [1, 64) so a line fits a single mask;
// Fprint only requires a positive size and sets Unbounded.
// It unwraps to ErrInvalidLineSize.
type LineSizeError struct {
	LineSize  int
	Unbounded bool
}

func (e *LineSizeError) Error() string {
	if e.Unbounded {
		return fmt.Sprintf("invalid line size: %d must be positive", e.LineSize)
	}
	return fmt.Sprintf("invalid line size: %d not in [1, %d)", e.LineSize, WordBits)
}

func (e *LineSizeError) Unwrap() error { return ErrInvalidLineSize }

// LineError reports a line whose bits run past the board capacity.
//
// It unwraps to ErrLineOutOfRange.
type LineError struct {
	LineNumber int
	LineSize   int
	Capacity   int
}

func (e *LineError) Error() string {
	if e.LineNumber < 0 || e.LineSize < 1 || e.LineNumber > (math.MaxInt-e.LineSize)/e.LineSize {
		return fmt.Sprintf("line out of range: line %d of size %d, capacity %d",
			e.LineNumber, e.LineSize, e.Capacity)
	}
	start := e.LineNumber * e.LineSize
	return fmt.Sprintf("line out of range: line %d of size %d covers [%d, %d), capacity %d",
		e.LineNumber, e.LineSize, start, start+e.LineSize, e.Capacity)
}

func (e *LineError) Unwrap() error { return ErrLineOutOfRange }

// LayoutError reports a layout whose word count does not match its capacity.
//
// It unwraps to ErrInvalidLayout.
type LayoutError struct {
	Capacity int
	Words    int
}

func (e *LayoutError) Error() string {
	if e.Capacity < 1 {
		return fmt.Sprintf("invalid layout: capacity %d must be positive", e.Capacity)
	}
	return fmt.Sprintf("invalid layout: capacity %d needs %d words, layout has %d",
		e.Capacity, wordops.WordsFor(e.Capacity), e.Words)
}

func (e *LayoutError) Unwrap() error { return ErrInvalidLayout }
