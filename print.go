package bitboard

import (
	"bufio"
	"io"
	"os"
)

// Fprint writes the board to w as rows of '0' and '1', lineSize bits per row.
//
// Every storage bit is written, including the padding past Capacity, so the
// output shows the raw layout. The last row ends with a newline. A lineSize
// below 1 returns a *LineSizeError with Unbounded set.
func (b *Bitboard[L]) Fprint(w io.Writer, lineSize int) error {
	if lineSize < 1 {
		return &LineSizeError{LineSize: lineSize, Unbounded: true}
	}

	bw := bufio.NewWriter(w)
	words := b.view()
	for i := 0; i < len(words)*WordBits; i++ {
		if i > 0 && i%lineSize == 0 {
			_ = bw.WriteByte('\n')
		}
		c := byte('0')
		if words[i/WordBits]&(1<<(uint(i)%WordBits)) != 0 {
			c = '1'
		}
		_ = bw.WriteByte(c)
	}
	_ = bw.WriteByte('\n')

	return bw.Flush()
}

// PrintByLine writes the board to standard output. See Fprint.
func (b *Bitboard[L]) PrintByLine(lineSize int) error {
	return b.Fprint(os.Stdout, lineSize)
}
