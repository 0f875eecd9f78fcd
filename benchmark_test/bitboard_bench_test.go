package benchmark_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/bitboard"
	"github.com/hupe1980/bitboard/testutil"
)

// ============================================================================
// BITBOARD BENCHMARKS
// ============================================================================
//
// Run: go test -bench=. -run=^$ ./benchmark_test/...
//
// Per-bit operations should stay in the low nanoseconds regardless of layout;
// whole-board operations scale with the word count.

var sink bool

func BenchmarkSet(b *testing.B) {
	idx := indices(361)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var board bitboard.Board361
		for _, j := range idx {
			board.Set(j)
		}
		sink = board.IsEmpty()
	}
}

func BenchmarkIsSet(b *testing.B) {
	board := fill[bitboard.Cap361](1, 120)
	idx := indices(361)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, j := range idx {
			sink = board.IsSet(j)
		}
	}
}

func BenchmarkUnionWith(b *testing.B) {
	b.Run("64", func(b *testing.B) { benchUnion[bitboard.Cap64](b) })
	b.Run("81", func(b *testing.B) { benchUnion[bitboard.Cap81](b) })
	b.Run("225", func(b *testing.B) { benchUnion[bitboard.Cap225](b) })
	b.Run("361", func(b *testing.B) { benchUnion[bitboard.Cap361](b) })
}

func benchUnion[L bitboard.Layout](b *testing.B) {
	x := fill[L](1, 30)
	y := fill[L](2, 30)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		z := x
		z.UnionWith(y)
		sink = z.IsEmpty()
	}
}

func BenchmarkDifferenceWith(b *testing.B) {
	b.Run("64", func(b *testing.B) { benchDifference[bitboard.Cap64](b) })
	b.Run("81", func(b *testing.B) { benchDifference[bitboard.Cap81](b) })
	b.Run("225", func(b *testing.B) { benchDifference[bitboard.Cap225](b) })
	b.Run("361", func(b *testing.B) { benchDifference[bitboard.Cap361](b) })
}

func benchDifference[L bitboard.Layout](b *testing.B) {
	x := fill[L](3, 30)
	y := fill[L](4, 30)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		z := x
		z.DifferenceWith(y)
		sink = z.IsEmpty()
	}
}

func BenchmarkSetWholeLine(b *testing.B) {
	for _, size := range []int{8, 9, 15, 19} {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			lines := 361 / size

			for i := 0; i < b.N; i++ {
				var board bitboard.Board361
				for line := 0; line < lines; line++ {
					board.SetWholeLine(line, size)
				}
				sink = board.IsEmpty()
			}
		})
	}
}

func BenchmarkCount(b *testing.B) {
	board := fill[bitboard.Cap361](5, 200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = board.Count() == 0
	}
}

func BenchmarkIsSetParallel(b *testing.B) {
	board := fill[bitboard.Cap361](6, 120)
	idx := indices(361)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		var local bool
		for pb.Next() {
			for _, j := range idx {
				local = board.IsSet(j)
			}
		}
		_ = local
	})
}

func fill[L bitboard.Layout](seed int64, n int) bitboard.Bitboard[L] {
	board := bitboard.New[L]()
	rng := testutil.NewRNG(seed)
	for _, i := range rng.Indices(n, board.Capacity()) {
		board.Set(i)
	}
	return board
}

func indices(capacity int) []int {
	return testutil.NewRNG(42).Indices(1024, capacity)
}
