package wordops

import "math/bits"

const (
	// WordBits is the number of bits held by one storage word.
	WordBits = 64

	wordShift = 6
	wordMask  = WordBits - 1
)

// WordsFor returns the number of words needed to hold n bits.
func WordsFor(n int) int {
	return (n + wordMask) >> wordShift
}

// Locate returns the word index holding bit i and a mask with only that bit set.
func Locate(i int) (int, uint64) {
	return i >> wordShift, uint64(1) << (uint(i) & wordMask)
}

// Ones returns a word whose n low bits are set.
// n must be in [0, 64).
func Ones(n int) uint64 {
	return (uint64(1) << uint(n)) - 1
}

// OrWords performs dst[i] |= src[i] for all words.
func OrWords(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] |= src[i]
	}
}

// AndNotWords performs dst[i] &= ^src[i] for all words.
func AndNotWords(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &^= src[i]
		dst[i+1] &^= src[i+1]
		dst[i+2] &^= src[i+2]
		dst[i+3] &^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &^= src[i]
	}
}

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint64) int {
	count := 0
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(words[i])
		count += bits.OnesCount64(words[i+1])
		count += bits.OnesCount64(words[i+2])
		count += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount64(words[i])
	}
	return count
}

// IsZero reports whether every word is zero.
func IsZero(words []uint64) bool {
	var acc uint64
	for _, w := range words {
		acc |= w
	}
	return acc == 0
}

// OrLine sets size contiguous bits starting at bit start.
//
// size must be in [1, 64). The run may cross into the following word, in
// which case that word must exist.
func OrLine(words []uint64, start, size int) {
	w := start >> wordShift
	off := uint(start) & wordMask
	ones := Ones(size)

	// Bits shifted past the top of the word are dropped here and
	// written to the next word below.
	words[w] |= ones << off

	if int(off)+size > WordBits {
		words[w+1] |= ones >> (WordBits - off)
	}
}
