// Package testutil provides testing utilities for bitboard.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source and a reference model backed by a
// roaring bitmap, so board operations can be checked against an independent
// implementation.
//
// # Random Indices
//
//	rng := testutil.NewRNG(seed)
//	idx := rng.Indices(20, 361) // 20 indices in [0, 361)
//
// # Reference Model
//
//	var oracle testutil.Oracle
//	oracle.Set(70)
//	oracle.SetRange(9, 18)
//	ok := oracle.Matches(board.IsSet, board.Capacity())
package testutil
