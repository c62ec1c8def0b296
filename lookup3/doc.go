// Package lookup3 implements Bob Jenkins's lookup3 hash, the 2006 member
// of the hash family published at http://burtleburtle.net/bob/hash/.
//
// lookup3 is a fast non-cryptographic hash for hash tables, fingerprints
// and sharding. Keys are consumed in 12-byte blocks through a reversible
// mixing function, and a final avalanche pass spreads the last block
// across the result. Every input bit flips about half of the output bits.
// It is NOT collision resistant against an adversary who knows the
// algorithm; do not use it for anything security relevant.
//
// # One-shot hashing
//
//	h := lookup3.Sum32WithSeed(key, seed)
//	lo, hi := lookup3.Sum32Pair(key, seed1, seed2)
//	h64 := lookup3.Sum64WithSeed(key, seed64)
//
// The pair form computes two independent-looking 32-bit hashes in one
// pass; the first is the better mixed. Sum64 packs the pair with the
// primary word in the low 32 bits.
//
// # Keys of words
//
// Keys that are naturally []uint32 can skip byte packing:
//
//	h := lookup3.SumWords(words, seed)
//
// SumWords(w, seed) always equals Sum32WithSeed of the same words laid
// out as little-endian bytes.
//
// # Streaming
//
// New32 and New64 return hash.Hash32/hash.Hash64 digests. Because the
// algorithm seeds its state with the total key length, the digests buffer
// written bytes and hash when a sum is read; memory use is proportional
// to the key, which is fine for the short keys the hash is meant for.
//
// # Byte order
//
// All lanes are packed little-endian, matching the digests published with
// the reference implementation. SumBig32 is the one big-endian variant,
// kept for interoperating with big-endian-machine digests.
package lookup3
