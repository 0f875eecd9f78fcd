package bitboard

import (
	"testing"

	"github.com/hupe1980/bitboard/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentReaders(t *testing.T) {
	rng := testutil.NewRNG(2024)
	shared, oracle := randomBoard[Cap361](rng, 120)
	want := oracle.Indices()

	var g errgroup.Group
	results := make([][]int, 8)
	for r := range results {
		g.Go(func() error {
			results[r] = setBits(&shared)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestCopiesAreIndependentAcrossGoroutines(t *testing.T) {
	var base Board256
	base.SetWholeLine(0, 16)

	var g errgroup.Group
	boards := make([]Board256, 16)
	for r := range boards {
		local := base
		g.Go(func() error {
			local.SetWholeLine(r, 16)
			boards[r] = local
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 16, base.Count())
	for r, b := range boards {
		want := 32
		if r == 0 {
			want = 16
		}
		assert.Equal(t, want, b.Count(), "row %d", r)
	}
}
