// Package testutil provides testing utilities for seglist.
//
// This package is intended for use in tests and benchmarks only. It provides
// a deterministic, seedable random source for differential tests that replay
// the same operations against a List and a plain slice, plus small helpers
// for building expected sequences.
//
//	rng := testutil.NewRNG(42)
//	pos := rng.Intn(l.Len() + 1)
//	want := testutil.Range(0, 8) // [0 1 2 3 4 5 6 7]
package testutil
