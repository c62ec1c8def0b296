// Package lookup2 implements Bob Jenkins's 1996 lookup2 hash, the
// predecessor of lookup3. New code should prefer lookup3; this package
// exists for compatibility with stored digests and for chained hashing
// schemes that feed one digest in as the next seed.
package lookup2

import (
	"encoding/binary"
	"hash"
)

// golden is the golden ratio; an arbitrary start value.
const golden = 0x9e3779b9

var _ hash.Hash32 = (*Digest32)(nil)

// Sum32 returns the 32-bit hash of data with seed 0.
func Sum32(data []byte) uint32 { return Sum32WithSeed(data, 0) }

// Sum32WithSeed returns the 32-bit hash of data. The seed may be an
// arbitrary value or the previous digest when chaining hashes.
// Lanes are packed little-endian, as on the hardware the reference
// digests were produced on.
func Sum32WithSeed(data []byte, seed uint32) uint32 {
	a := uint32(golden)
	b := uint32(golden)
	c := seed

	// Unlike lookup3, a final full block takes the mix path; the tail
	// only ever sees 0..11 bytes.
	k := data
	for len(k) >= 12 {
		a += binary.LittleEndian.Uint32(k[0:4])
		b += binary.LittleEndian.Uint32(k[4:8])
		c += binary.LittleEndian.Uint32(k[8:12])
		a, b, c = mix(a, b, c)
		k = k[12:]
	}

	// The total length is folded in ahead of the tail. The low byte of c
	// is reserved for it: the tail never adds to c below its second byte.
	c += uint32(len(data))
	switch len(k) {
	case 11:
		c += uint32(k[10]) << 24
		fallthrough
	case 10:
		c += uint32(k[9]) << 16
		fallthrough
	case 9:
		c += uint32(k[8]) << 8
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
	}
	_, _, c = mix(a, b, c)
	return c
}

// mix advances the internal state by one 12-byte block. The shifts are
// lookup2's original schedule; lookup3 replaced them with rotates.
func mix(a, b, c uint32) (uint32, uint32, uint32) {
	a -= b
	a -= c
	a ^= c >> 13
	b -= c
	b -= a
	b ^= a << 8
	c -= a
	c -= b
	c ^= b >> 13
	a -= b
	a -= c
	a ^= c >> 12
	b -= c
	b -= a
	b ^= a << 16
	c -= a
	c -= b
	c ^= b >> 5
	a -= b
	a -= c
	a ^= c >> 3
	b -= c
	b -= a
	b ^= a << 10
	c -= a
	c -= b
	c ^= b >> 15
	return a, b, c
}

// Digest32 is a hash.Hash32 over Sum32WithSeed. Like the lookup3 digests
// it buffers written bytes, because the total length is folded into the
// state before the tail bytes are.
type Digest32 struct {
	seed uint32
	buf  []byte
}

// New32 returns a 32-bit digest with seed 0.
func New32() *Digest32 { return &Digest32{} }

// New32WithSeed returns a 32-bit digest with the provided seed.
func New32WithSeed(seed uint32) *Digest32 { return &Digest32{seed: seed} }

// Write appends p to the pending key bytes. It never fails.
func (d *Digest32) Write(p []byte) (int, error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

// Sum appends the big-endian encoding of the current digest to b.
func (d *Digest32) Sum(b []byte) []byte {
	var out [4]byte
	binary.BigEndian.PutUint32(out[:], d.Sum32())
	return append(b, out[:]...)
}

// Sum32 returns the hash of the bytes written so far.
func (d *Digest32) Sum32() uint32 { return Sum32WithSeed(d.buf, d.seed) }

// Reset discards the pending key bytes.
func (d *Digest32) Reset() { d.buf = d.buf[:0] }

// Size returns the digest size in bytes.
func (d *Digest32) Size() int { return 4 }

// BlockSize returns 1; writes of any size and split are accepted.
func (d *Digest32) BlockSize() int { return 1 }
