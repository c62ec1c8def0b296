package spooky

import (
	"encoding/binary"
	"math/bits"
)

const (
	// oddConst is not zero, odd, and a not-very-regular mix of ones and
	// zeros; the algorithm needs nothing more from it.
	oddConst = 0xdeadbeefdeadbeef

	// numVars is the number of 64-bit state variables.
	numVars = 12

	// blockSize is the bytes consumed per long-path mix, and bufSize is
	// the threshold below which the short path handles the whole key.
	blockSize = numVars * 8
	bufSize   = 2 * blockSize
)

// Sum128 returns the 128-bit hash of data as two 64-bit words, seeded
// with seed1 and seed2. Keys shorter than 192 bytes take a cheaper short
// path; both paths pack lanes little-endian.
func Sum128(data []byte, seed1, seed2 uint64) (uint64, uint64) {
	if len(data) < bufSize {
		return short(data, seed1, seed2)
	}

	var h [12]uint64
	initLong(&h, seed1, seed2)

	k := data
	for len(k) >= blockSize {
		mixBlock(k, &h)
		k = k[blockSize:]
	}

	// The remainder is zero-padded into one final block whose last byte
	// carries the remainder length.
	var block [blockSize]byte
	copy(block[:], k)
	block[blockSize-1] = byte(len(k))
	end(block[:], &h)
	return h[0], h[1]
}

// Sum64 returns the first word of the 128-bit hash, with both halves
// seeded from seed.
func Sum64(data []byte, seed uint64) uint64 {
	h1, _ := Sum128(data, seed, seed)
	return h1
}

// Sum32 returns the low 32 bits of Sum64.
func Sum32(data []byte, seed uint32) uint32 {
	return uint32(Sum64(data, uint64(seed)))
}

func initLong(h *[12]uint64, seed1, seed2 uint64) {
	h[0], h[3], h[6], h[9] = seed1, seed1, seed1, seed1
	h[1], h[4], h[7], h[10] = seed2, seed2, seed2, seed2
	h[2], h[5], h[8], h[11] = oddConst, oddConst, oddConst, oddConst
}

// short hashes keys under 192 bytes: 32-byte rounds through shortMix,
// a tail fold of the last 0..15 bytes together with the total length,
// and one shortEnd avalanche.
func short(data []byte, seed1, seed2 uint64) (uint64, uint64) {
	a, b := seed1, seed2
	c, d := uint64(oddConst), uint64(oddConst)

	length := len(data)
	remainder := length % 32
	k := data
	if length >= 16 {
		for len(k) >= 32 {
			c += binary.LittleEndian.Uint64(k[0:8])
			d += binary.LittleEndian.Uint64(k[8:16])
			a, b, c, d = shortMix(a, b, c, d)
			a += binary.LittleEndian.Uint64(k[16:24])
			b += binary.LittleEndian.Uint64(k[24:32])
			k = k[32:]
		}
		if remainder >= 16 {
			c += binary.LittleEndian.Uint64(k[0:8])
			d += binary.LittleEndian.Uint64(k[8:16])
			a, b, c, d = shortMix(a, b, c, d)
			k = k[16:]
			remainder -= 16
		}
	}

	// Fold in the last 0..15 bytes and the total length.
	d += uint64(length) << 56
	switch {
	case remainder >= 12:
		if remainder >= 15 {
			d += uint64(k[14]) << 48
		}
		if remainder >= 14 {
			d += uint64(k[13]) << 40
		}
		if remainder >= 13 {
			d += uint64(k[12]) << 32
		}
		d += uint64(binary.LittleEndian.Uint32(k[8:12]))
		c += binary.LittleEndian.Uint64(k[0:8])
	case remainder >= 8:
		if remainder >= 11 {
			d += uint64(k[10]) << 16
		}
		if remainder >= 10 {
			d += uint64(k[9]) << 8
		}
		if remainder >= 9 {
			d += uint64(k[8])
		}
		c += binary.LittleEndian.Uint64(k[0:8])
	case remainder >= 4:
		if remainder >= 7 {
			c += uint64(k[6]) << 48
		}
		if remainder >= 6 {
			c += uint64(k[5]) << 40
		}
		if remainder >= 5 {
			c += uint64(k[4]) << 32
		}
		c += uint64(binary.LittleEndian.Uint32(k[0:4]))
	case remainder >= 1:
		if remainder >= 3 {
			c += uint64(k[2]) << 16
		}
		if remainder >= 2 {
			c += uint64(k[1]) << 8
		}
		c += uint64(k[0])
	default:
		c += oddConst
		d += oddConst
	}
	a, b, _, _ = shortEnd(a, b, c, d)
	return a, b
}

func shortMix(h0, h1, h2, h3 uint64) (uint64, uint64, uint64, uint64) {
	h2 = bits.RotateLeft64(h2, 50)
	h2 += h3
	h0 ^= h2
	h3 = bits.RotateLeft64(h3, 52)
	h3 += h0
	h1 ^= h3
	h0 = bits.RotateLeft64(h0, 30)
	h0 += h1
	h2 ^= h0
	h1 = bits.RotateLeft64(h1, 41)
	h1 += h2
	h3 ^= h1
	h2 = bits.RotateLeft64(h2, 54)
	h2 += h3
	h0 ^= h2
	h3 = bits.RotateLeft64(h3, 48)
	h3 += h0
	h1 ^= h3
	h0 = bits.RotateLeft64(h0, 38)
	h0 += h1
	h2 ^= h0
	h1 = bits.RotateLeft64(h1, 37)
	h1 += h2
	h3 ^= h1
	h2 = bits.RotateLeft64(h2, 62)
	h2 += h3
	h0 ^= h2
	h3 = bits.RotateLeft64(h3, 34)
	h3 += h0
	h1 ^= h3
	h0 = bits.RotateLeft64(h0, 5)
	h0 += h1
	h2 ^= h0
	h1 = bits.RotateLeft64(h1, 36)
	h1 += h2
	h3 ^= h1
	return h0, h1, h2, h3
}

func shortEnd(h0, h1, h2, h3 uint64) (uint64, uint64, uint64, uint64) {
	h3 ^= h2
	h2 = bits.RotateLeft64(h2, 15)
	h3 += h2
	h0 ^= h3
	h3 = bits.RotateLeft64(h3, 52)
	h0 += h3
	h1 ^= h0
	h0 = bits.RotateLeft64(h0, 26)
	h1 += h0
	h2 ^= h1
	h1 = bits.RotateLeft64(h1, 51)
	h2 += h1
	h3 ^= h2
	h2 = bits.RotateLeft64(h2, 28)
	h3 += h2
	h0 ^= h3
	h3 = bits.RotateLeft64(h3, 9)
	h0 += h3
	h1 ^= h0
	h0 = bits.RotateLeft64(h0, 47)
	h1 += h0
	h2 ^= h1
	h1 = bits.RotateLeft64(h1, 54)
	h2 += h1
	h3 ^= h2
	h2 = bits.RotateLeft64(h2, 32)
	h3 += h2
	h0 ^= h3
	h3 = bits.RotateLeft64(h3, 25)
	h0 += h3
	h1 ^= h0
	h0 = bits.RotateLeft64(h0, 63)
	h1 += h0
	return h0, h1, h2, h3
}

// mixBlock folds one 96-byte block into the state. The state is fully
// overwritten every 96 bytes; each input bit spreads to at least 128
// state bits before another 96 bytes are combined.
func mixBlock(block []byte, h *[12]uint64) {
	w0 := binary.LittleEndian.Uint64(block[0:8])
	w1 := binary.LittleEndian.Uint64(block[8:16])
	w2 := binary.LittleEndian.Uint64(block[16:24])
	w3 := binary.LittleEndian.Uint64(block[24:32])
	w4 := binary.LittleEndian.Uint64(block[32:40])
	w5 := binary.LittleEndian.Uint64(block[40:48])
	w6 := binary.LittleEndian.Uint64(block[48:56])
	w7 := binary.LittleEndian.Uint64(block[56:64])
	w8 := binary.LittleEndian.Uint64(block[64:72])
	w9 := binary.LittleEndian.Uint64(block[72:80])
	w10 := binary.LittleEndian.Uint64(block[80:88])
	w11 := binary.LittleEndian.Uint64(block[88:96])

	h[0] += w0
	h[2] ^= h[10]
	h[11] ^= h[0]
	h[0] = bits.RotateLeft64(h[0], 11)
	h[11] += h[1]
	h[1] += w1
	h[3] ^= h[11]
	h[0] ^= h[1]
	h[1] = bits.RotateLeft64(h[1], 32)
	h[0] += h[2]
	h[2] += w2
	h[4] ^= h[0]
	h[1] ^= h[2]
	h[2] = bits.RotateLeft64(h[2], 43)
	h[1] += h[3]
	h[3] += w3
	h[5] ^= h[1]
	h[2] ^= h[3]
	h[3] = bits.RotateLeft64(h[3], 31)
	h[2] += h[4]
	h[4] += w4
	h[6] ^= h[2]
	h[3] ^= h[4]
	h[4] = bits.RotateLeft64(h[4], 17)
	h[3] += h[5]
	h[5] += w5
	h[7] ^= h[3]
	h[4] ^= h[5]
	h[5] = bits.RotateLeft64(h[5], 28)
	h[4] += h[6]
	h[6] += w6
	h[8] ^= h[4]
	h[5] ^= h[6]
	h[6] = bits.RotateLeft64(h[6], 39)
	h[5] += h[7]
	h[7] += w7
	h[9] ^= h[5]
	h[6] ^= h[7]
	h[7] = bits.RotateLeft64(h[7], 57)
	h[6] += h[8]
	h[8] += w8
	h[10] ^= h[6]
	h[7] ^= h[8]
	h[8] = bits.RotateLeft64(h[8], 55)
	h[7] += h[9]
	h[9] += w9
	h[11] ^= h[7]
	h[8] ^= h[9]
	h[9] = bits.RotateLeft64(h[9], 54)
	h[8] += h[10]
	h[10] += w10
	h[0] ^= h[8]
	h[9] ^= h[10]
	h[10] = bits.RotateLeft64(h[10], 22)
	h[9] += h[11]
	h[11] += w11
	h[1] ^= h[9]
	h[10] ^= h[11]
	h[11] = bits.RotateLeft64(h[11], 46)
	h[10] += h[0]
}

func endPartial(h *[12]uint64) {
	h[11] += h[1]
	h[2] ^= h[11]
	h[1] = bits.RotateLeft64(h[1], 44)
	h[0] += h[2]
	h[3] ^= h[0]
	h[2] = bits.RotateLeft64(h[2], 15)
	h[1] += h[3]
	h[4] ^= h[1]
	h[3] = bits.RotateLeft64(h[3], 34)
	h[2] += h[4]
	h[5] ^= h[2]
	h[4] = bits.RotateLeft64(h[4], 21)
	h[3] += h[5]
	h[6] ^= h[3]
	h[5] = bits.RotateLeft64(h[5], 38)
	h[4] += h[6]
	h[7] ^= h[4]
	h[6] = bits.RotateLeft64(h[6], 33)
	h[5] += h[7]
	h[8] ^= h[5]
	h[7] = bits.RotateLeft64(h[7], 10)
	h[6] += h[8]
	h[9] ^= h[6]
	h[8] = bits.RotateLeft64(h[8], 13)
	h[7] += h[9]
	h[10] ^= h[7]
	h[9] = bits.RotateLeft64(h[9], 38)
	h[8] += h[10]
	h[11] ^= h[8]
	h[10] = bits.RotateLeft64(h[10], 53)
	h[9] += h[11]
	h[0] ^= h[9]
	h[11] = bits.RotateLeft64(h[11], 42)
	h[10] += h[0]
	h[1] ^= h[10]
	h[0] = bits.RotateLeft64(h[0], 54)
}

// end folds the final padded block and runs three avalanche passes so
// that h[0] and h[1] hash all twelve state variables. Two passes were
// almost enough for 64 bits; the 128-bit result takes three.
func end(block []byte, h *[12]uint64) {
	for i := range numVars {
		h[i] += binary.LittleEndian.Uint64(block[8*i:])
	}
	endPartial(h)
	endPartial(h)
	endPartial(h)
}
