package spooky

import (
	"encoding/binary"
	"hash"
)

// Compile-time interface assertions.
var (
	_ hash.Hash   = (*Digest)(nil)
	_ hash.Hash32 = (*Digest)(nil)
	_ hash.Hash64 = (*Digest)(nil)
)

// Digest is a streaming 128-bit hash. Unlike the 32-bit family hashes,
// the algorithm was designed to stream: fragments accumulate in a
// two-block buffer and are mixed through the long path as whole blocks
// become available. Keys that never reach 192 bytes total are hashed
// through the short path on read, reproducing the one-shot digests
// exactly.
type Digest struct {
	state  [numVars]uint64
	buf    [bufSize]byte
	seed1  uint64
	seed2  uint64
	n      int // pending bytes in buf
	length int // total bytes written
}

// New returns a streaming digest seeded with seed1 and seed2.
func New(seed1, seed2 uint64) *Digest {
	return &Digest{seed1: seed1, seed2: seed2}
}

// Write mixes p into the hash state. It never fails.
func (d *Digest) Write(p []byte) (int, error) {
	written := len(p)

	// Fragments shorter than the buffer are stuffed away whole.
	newLength := len(p) + d.n
	if newLength < bufSize {
		copy(d.buf[d.n:], p)
		d.n = newLength
		d.length += written
		return written, nil
	}

	// First flush seeds the twelve state variables; later flushes resume.
	var h [numVars]uint64
	if d.length < bufSize {
		initLong(&h, d.seed1, d.seed2)
	} else {
		h = d.state
	}
	d.length += written

	if d.n > 0 {
		prefix := bufSize - d.n
		copy(d.buf[d.n:], p[:prefix])
		mixBlock(d.buf[:blockSize], &h)
		mixBlock(d.buf[blockSize:], &h)
		p = p[prefix:]
	}

	for len(p) >= blockSize {
		mixBlock(p, &h)
		p = p[blockSize:]
	}

	d.n = copy(d.buf[:], p)
	d.state = h
	return written, nil
}

// Sum128 returns the 128-bit hash of the bytes written so far. It
// finalizes a copy of the state, so writes may continue afterward.
func (d *Digest) Sum128() (uint64, uint64) {
	if d.length < bufSize {
		return short(d.buf[:d.length], d.seed1, d.seed2)
	}

	h := d.state
	remainder := d.n
	buf := d.buf
	k := buf[:]
	if remainder >= blockSize {
		// The buffer holds a whole block ahead of the remainder.
		mixBlock(k, &h)
		k = k[blockSize:]
		remainder -= blockSize
	}
	for i := remainder; i < blockSize-1; i++ {
		k[i] = 0
	}
	k[blockSize-1] = byte(remainder)
	end(k[:blockSize], &h)
	return h[0], h[1]
}

// Sum64 returns the first word of Sum128.
func (d *Digest) Sum64() uint64 {
	h1, _ := d.Sum128()
	return h1
}

// Sum32 returns the low 32 bits of Sum64.
func (d *Digest) Sum32() uint32 {
	return uint32(d.Sum64())
}

// Sum appends the current 128-bit hash to b, first word first, each
// word big-endian.
func (d *Digest) Sum(b []byte) []byte {
	h1, h2 := d.Sum128()
	var out [16]byte
	binary.BigEndian.PutUint64(out[0:8], h1)
	binary.BigEndian.PutUint64(out[8:16], h2)
	return append(b, out[:]...)
}

// Reset returns the digest to its initial seeded state.
func (d *Digest) Reset() {
	d.n = 0
	d.length = 0
}

// Size returns the digest size in bytes.
func (d *Digest) Size() int { return 16 }

// BlockSize returns the long-path block size in bytes.
func (d *Digest) BlockSize() int { return blockSize }
