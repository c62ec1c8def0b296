package lookup3

import (
	"encoding/binary"
	"math/bits"
)

const (
	// initBase is the arbitrary start value of the internal state.
	initBase = 0xdeadbeef

	// blockSize is the number of input bytes folded per mix round.
	blockSize = 12
)

// Sum32 returns the 32-bit hash of data with seed 0.
func Sum32(data []byte) uint32 {
	c, _ := sumPair(data, 0, 0)
	return c
}

// Sum32WithSeed returns the 32-bit hash of data with the provided seed.
func Sum32WithSeed(data []byte, seed uint32) uint32 {
	c, _ := sumPair(data, seed, 0)
	return c
}

// Sum32Pair returns two 32-bit hashes of data, computed in a single pass
// from two seeds. The first result is the better mixed of the two; the
// second is fine as a secondary key or for doubling the effective hash
// width. With seed2 == 0 the first result equals Sum32WithSeed(data, seed1).
func Sum32Pair(data []byte, seed1, seed2 uint32) (uint32, uint32) {
	return sumPair(data, seed1, seed2)
}

// Sum64 returns the 64-bit hash of data with seed 0.
func Sum64(data []byte) uint64 {
	return Sum64WithSeed(data, 0)
}

// Sum64WithSeed returns the 64-bit hash of data. The two halves of seed
// seed the pair computation, and the result packs the pair with the
// primary word in the low 32 bits: uint64(b)<<32 | uint64(c).
func Sum64WithSeed(data []byte, seed uint64) uint64 {
	c, b := sumPair(data, uint32(seed), uint32(seed>>32))
	return uint64(b)<<32 | uint64(c)
}

// SumWords returns the 32-bit hash of a []uint32 key with the provided
// seed. Hashing n words equals hashing the same 4n bytes in little-endian
// order through Sum32WithSeed, but avoids the byte shuffling.
func SumWords(words []uint32, seed uint32) uint32 {
	a := initBase + uint32(len(words))<<2 + seed
	b, c := a, a

	k := words
	for len(k) > 3 {
		a += k[0]
		b += k[1]
		c += k[2]
		a, b, c = mix(a, b, c)
		k = k[3:]
	}

	switch len(k) {
	case 3:
		c += k[2]
		fallthrough
	case 2:
		b += k[1]
		fallthrough
	case 1:
		a += k[0]
		_, _, c = final(a, b, c)
	}
	return c
}

// SumWordsPair returns two 32-bit hashes of a []uint32 key, seeded with
// seed1 and seed2. The first result is the better mixed; with seed2 == 0
// it equals SumWords(words, seed1).
func SumWordsPair(words []uint32, seed1, seed2 uint32) (uint32, uint32) {
	a := initBase + uint32(len(words))<<2 + seed1
	b, c := a, a
	c += seed2

	k := words
	for len(k) > 3 {
		a += k[0]
		b += k[1]
		c += k[2]
		a, b, c = mix(a, b, c)
		k = k[3:]
	}

	switch len(k) {
	case 3:
		c += k[2]
		fallthrough
	case 2:
		b += k[1]
		fallthrough
	case 1:
		a += k[0]
		_, b, c = final(a, b, c)
	}
	return c, b
}

// SumBig32 returns the 32-bit hash of data with big-endian lane packing.
// It produces the digests a big-endian machine reading key bytes straight
// from memory would; everything else in this package packs little-endian.
func SumBig32(data []byte, seed uint32) uint32 {
	a := initBase + uint32(len(data)) + seed
	b, c := a, a

	k := data
	for len(k) > blockSize {
		a += binary.BigEndian.Uint32(k[0:4])
		b += binary.BigEndian.Uint32(k[4:8])
		c += binary.BigEndian.Uint32(k[8:12])
		a, b, c = mix(a, b, c)
		k = k[blockSize:]
	}

	switch len(k) {
	case 12:
		c += uint32(k[11])
		fallthrough
	case 11:
		c += uint32(k[10]) << 8
		fallthrough
	case 10:
		c += uint32(k[9]) << 16
		fallthrough
	case 9:
		c += uint32(k[8]) << 24
		fallthrough
	case 8:
		b += uint32(k[7])
		fallthrough
	case 7:
		b += uint32(k[6]) << 8
		fallthrough
	case 6:
		b += uint32(k[5]) << 16
		fallthrough
	case 5:
		b += uint32(k[4]) << 24
		fallthrough
	case 4:
		a += uint32(k[3])
		fallthrough
	case 3:
		a += uint32(k[2]) << 8
		fallthrough
	case 2:
		a += uint32(k[1]) << 16
		fallthrough
	case 1:
		a += uint32(k[0]) << 24
	case 0:
		return c
	}
	_, _, c = final(a, b, c)
	return c
}

// sumPair is the core of the package: every byte-keyed digest routes
// through it. The total length is folded into the initial state, which is
// why the streaming types must buffer before calling it.
//
// Lanes are packed little-endian. The published reference vectors were
// produced by little-endian hardware reading key memory directly, so
// explicit little-endian loads reproduce them on any platform.
func sumPair(data []byte, seed1, seed2 uint32) (uint32, uint32) {
	a := initBase + uint32(len(data)) + seed1
	b, c := a, a
	c += seed2

	k := data
	for len(k) > blockSize {
		a += binary.LittleEndian.Uint32(k[0:4])
		b += binary.LittleEndian.Uint32(k[4:8])
		c += binary.LittleEndian.Uint32(k[8:12])
		a, b, c = mix(a, b, c)
		k = k[blockSize:]
	}

	// The last block is 1..12 bytes and is assembled byte-wise; a full
	// final block must land here, not in the mix loop above.
	switch len(k) {
	case 12:
		c += uint32(k[11]) << 24
		fallthrough
	case 11:
		c += uint32(k[10]) << 16
		fallthrough
	case 10:
		c += uint32(k[9]) << 8
		fallthrough
	case 9:
		c += uint32(k[8])
		fallthrough
	case 8:
		b += uint32(k[7]) << 24
		fallthrough
	case 7:
		b += uint32(k[6]) << 16
		fallthrough
	case 6:
		b += uint32(k[5]) << 8
		fallthrough
	case 5:
		b += uint32(k[4])
		fallthrough
	case 4:
		a += uint32(k[3]) << 24
		fallthrough
	case 3:
		a += uint32(k[2]) << 16
		fallthrough
	case 2:
		a += uint32(k[1]) << 8
		fallthrough
	case 1:
		a += uint32(k[0])
	case 0:
		// Zero remaining bytes require no mixing at all.
		return c, b
	}
	_, b, c = final(a, b, c)
	return c, b
}

// mix advances the internal state by one 12-byte block. It is reversible,
// so no key information is lost between rounds. All arithmetic wraps
// modulo 2^32.
func mix(a, b, c uint32) (uint32, uint32, uint32) {
	a -= c
	a ^= bits.RotateLeft32(c, 4)
	c += b
	b -= a
	b ^= bits.RotateLeft32(a, 6)
	a += c
	c -= b
	c ^= bits.RotateLeft32(b, 8)
	b += a
	a -= c
	a ^= bits.RotateLeft32(c, 16)
	c += b
	b -= a
	b ^= bits.RotateLeft32(a, 19)
	a += c
	c -= b
	c ^= bits.RotateLeft32(b, 4)
	b += a
	return a, b, c
}

// final forces avalanche of the last 12-byte block into c (and b).
func final(a, b, c uint32) (uint32, uint32, uint32) {
	c ^= b
	c -= bits.RotateLeft32(b, 14)
	a ^= c
	a -= bits.RotateLeft32(c, 11)
	b ^= a
	b -= bits.RotateLeft32(a, 25)
	c ^= b
	c -= bits.RotateLeft32(b, 16)
	a ^= c
	a -= bits.RotateLeft32(c, 4)
	b ^= a
	b -= bits.RotateLeft32(a, 14)
	c ^= b
	c -= bits.RotateLeft32(b, 24)
	return a, b, c
}
