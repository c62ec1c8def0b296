package jenkins

import (
	"github.com/shopkick/jenkins/lookup3"
)

// Hash32 returns the 32-bit hash of data under the given seed.
func Hash32(data []byte, seed uint32) uint32 {
	return lookup3.Sum32WithSeed(data, seed)
}

// Hash64Pair returns two 32-bit hashes of data, computed in a single
// pass from two seeds. With seed2 == 0 the first result equals
// Hash32(data, seed1).
func Hash64Pair(data []byte, seed1, seed2 uint32) (uint32, uint32) {
	return lookup3.Sum32Pair(data, seed1, seed2)
}

// Hash64 returns the Hash64Pair words packed into a single uint64 with
// the primary word in the low 32 bits. The seed's halves feed the
// pair, low half as the first seed.
func Hash64(data []byte, seed uint64) uint64 {
	return lookup3.Sum64WithSeed(data, seed)
}

// HashString32 returns Hash32 of the raw bytes of s.
func HashString32(s string, seed uint32) uint32 {
	return lookup3.Sum32WithSeed([]byte(s), seed)
}

// HashString64 returns Hash64 of the raw bytes of s.
func HashString64(s string, seed uint64) uint64 {
	return lookup3.Sum64WithSeed([]byte(s), seed)
}

// HashWords returns the 32-bit hash of a word key under the given
// seed. Hashing n words equals hashing the same 4n bytes in
// little-endian order through Hash32, but skips the byte shuffling.
func HashWords(words []uint32, seed uint32) uint32 {
	return lookup3.SumWords(words, seed)
}
