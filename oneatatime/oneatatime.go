// Package oneatatime implements Bob Jenkins's one-at-a-time hash: one
// add-shift-xor round per input byte and a three-round avalanche at the
// end. It is the simplest member of the family and the only 32-bit one
// whose state does not depend on the total key length, so it streams
// without buffering.
package oneatatime

import "hash"

var _ hash.Hash32 = (*Digest32)(nil)

// Sum32 returns the 32-bit hash of data.
func Sum32(data []byte) uint32 {
	var h uint32
	for _, v := range data {
		h += uint32(v)
		h += h << 10
		h ^= h >> 6
	}
	return finalize(h)
}

// SumString returns the 32-bit hash of s without copying it.
func SumString(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h += uint32(s[i])
		h += h << 10
		h ^= h >> 6
	}
	return finalize(h)
}

func finalize(h uint32) uint32 {
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}

// Digest32 is a streaming hash.Hash32. Writes mix bytes into the state
// immediately; Sum32 finalizes a copy, so writes may continue after a
// digest is read.
type Digest32 struct {
	h uint32
}

// New32 returns a streaming digest.
func New32() *Digest32 { return new(Digest32) }

// Write mixes p into the state. It never fails.
func (d *Digest32) Write(p []byte) (int, error) {
	h := d.h
	for _, v := range p {
		h += uint32(v)
		h += h << 10
		h ^= h >> 6
	}
	d.h = h
	return len(p), nil
}

// Sum appends the big-endian encoding of the current digest to b.
func (d *Digest32) Sum(b []byte) []byte {
	h := d.Sum32()
	return append(b, byte(h>>24), byte(h>>16), byte(h>>8), byte(h))
}

// Sum32 returns the hash of the bytes written so far.
func (d *Digest32) Sum32() uint32 { return finalize(d.h) }

// Reset returns the digest to its initial state.
func (d *Digest32) Reset() { d.h = 0 }

// Size returns the digest size in bytes.
func (d *Digest32) Size() int { return 4 }

// BlockSize returns 1; the hash consumes single bytes.
func (d *Digest32) BlockSize() int { return 1 }
