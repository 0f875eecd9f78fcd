package bitboard

import "github.com/hupe1980/bitboard/internal/wordops"

// WordBits is the width of one storage word.
const WordBits = wordops.WordBits

// MaxWords is the largest word count a Layout may use.
const MaxWords = 16

// Layout fixes the storage and capacity of a Bitboard at compile time.
//
// A layout is a named array of uint64 words that also reports how many of
// its bits are valid. The array length must equal ceil(Capacity()/64):
//
//	type Cap81 [2]uint64
//
//	func (Cap81) Capacity() int { return 81 }
//
// Boards over different layouts are different types, so they cannot be
// combined by UnionWith or DifferenceWith.
type Layout interface {
	~[1]uint64 | ~[2]uint64 | ~[3]uint64 | ~[4]uint64 |
		~[5]uint64 | ~[6]uint64 | ~[7]uint64 | ~[8]uint64 |
		~[9]uint64 | ~[10]uint64 | ~[11]uint64 | ~[12]uint64 |
		~[13]uint64 | ~[14]uint64 | ~[15]uint64 | ~[16]uint64

	// Capacity returns the number of valid bits.
	Capacity() int
}

// ValidateLayout checks that L's word count matches its capacity.
func ValidateLayout[L Layout]() error {
	var l L
	capacity, words := l.Capacity(), len(l)
	if capacity < 1 || wordops.WordsFor(capacity) != words {
		return &LayoutError{Capacity: capacity, Words: words}
	}
	return nil
}

// Predefined layouts for common board sizes.
type (
	// Cap64 holds an 8x8 board.
	Cap64 [1]uint64
	// Cap81 holds a 9x9 board.
	Cap81 [2]uint64
	// Cap100 holds a 10x10 board.
	Cap100 [2]uint64
	// Cap128 holds 128 bits.
	Cap128 [2]uint64
	// Cap225 holds a 15x15 board.
	Cap225 [4]uint64
	// Cap256 holds a 16x16 board.
	Cap256 [4]uint64
	// Cap361 holds a 19x19 board.
	Cap361 [6]uint64
)

func (Cap64) Capacity() int  { return 64 }
func (Cap81) Capacity() int  { return 81 }
func (Cap100) Capacity() int { return 100 }
func (Cap128) Capacity() int { return 128 }
func (Cap225) Capacity() int { return 225 }
func (Cap256) Capacity() int { return 256 }
func (Cap361) Capacity() int { return 361 }

// Board aliases for the predefined layouts.
type (
	Board64  = Bitboard[Cap64]
	Board81  = Bitboard[Cap81]
	Board100 = Bitboard[Cap100]
	Board128 = Bitboard[Cap128]
	Board225 = Bitboard[Cap225]
	Board256 = Bitboard[Cap256]
	Board361 = Bitboard[Cap361]
)
