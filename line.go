package bitboard

import (
	"math"

	"github.com/hupe1980/bitboard/internal/wordops"
)

// CheckLine validates a SetWholeLine call.
//
// It returns a *LineSizeError if lineSize is not in [1, 64) and a *LineError
// if the line does not fit within the board.
func (b *Bitboard[L]) CheckLine(lineNumber, lineSize int) error {
	if lineSize < 1 || lineSize >= WordBits {
		return &LineSizeError{LineSize: lineSize}
	}
	c := b.Capacity()
	if lineNumber < 0 || lineSize > c || lineNumber > (c-lineSize)/lineSize {
		return &LineError{LineNumber: lineNumber, LineSize: lineSize, Capacity: c}
	}
	return nil
}

// SetWholeLine sets the lineSize bits starting at lineNumber*lineSize.
//
// Lines are rows of a rectangular board packed into the flat bit space; a
// row may straddle two words. lineSize must be in [1, 64). It panics with a
// *LineSizeError or *LineError on invalid input.
func (b *Bitboard[L]) SetWholeLine(lineNumber, lineSize int) {
	if lineSize < 1 || lineSize >= WordBits {
		panic(&LineSizeError{LineSize: lineSize})
	}
	if boundsChecks {
		if err := b.CheckLine(lineNumber, lineSize); err != nil {
			panic(err)
		}
	} else if lineNumber < 0 || lineNumber > math.MaxInt/lineSize {
		// The start index would overflow and wrap into the board.
		panic(&LineError{LineNumber: lineNumber, LineSize: lineSize, Capacity: b.Capacity()})
	}
	wordops.OrLine(b.view(), lineNumber*lineSize, lineSize)
}
