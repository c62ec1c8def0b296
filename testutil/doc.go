// Package testutil provides testing utilities for the hash packages.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random keys, splitting them into
// write-sized chunks, and measuring digest quality.
//
// # Random Key Generation
//
//	rng := testutil.NewRNG(seed)
//	key := rng.Bytes(64)                  // random key
//	chunks := rng.Chunks(key, 6)          // random split for streaming
//
// # Digest Quality
//
//	bias := testutil.AvalancheBias(lookup3.Sum32WithSeed, rng, 512, 11)
//
//	dd := testutil.NewDistinctDigests()
//	dd.Add(digest)
//	collisions := dd.Collisions()
package testutil
