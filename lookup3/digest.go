package lookup3

import (
	"encoding/binary"
	"hash"
)

// Compile-time interface assertions.
var _ hash.Hash32 = (*Digest32)(nil)
var _ hash.Hash64 = (*Digest64)(nil)

// Digest32 is a hash.Hash32 over the byte-keyed hash.
//
// The algorithm folds the total key length into its initial state, so the
// digest accumulates written bytes and hashes them when a sum is read.
// Sums may be read repeatedly and writes may continue afterward; Reset
// discards the accumulated bytes and keeps the seed.
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

// Digest64 is the hash.Hash64 counterpart of Digest32, built on the
// two-seed pair computation with the packed 64-bit result.
type Digest64 struct {
	seed uint64
	buf  []byte
}

// New64 returns a 64-bit digest with seed 0.
func New64() *Digest64 { return &Digest64{} }

// New64WithSeed returns a 64-bit digest with the provided seed.
func New64WithSeed(seed uint64) *Digest64 { return &Digest64{seed: seed} }

// Write appends p to the pending key bytes. It never fails.
func (d *Digest64) Write(p []byte) (int, error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

// Sum appends the big-endian encoding of the current digest to b.
func (d *Digest64) Sum(b []byte) []byte {
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], d.Sum64())
	return append(b, out[:]...)
}

// Sum64 returns the hash of the bytes written so far, packed as in
// Sum64WithSeed: primary word in the low 32 bits.
func (d *Digest64) Sum64() uint64 { return Sum64WithSeed(d.buf, d.seed) }

// Reset discards the pending key bytes.
func (d *Digest64) Reset() { d.buf = d.buf[:0] }

// Size returns the digest size in bytes.
func (d *Digest64) Size() int { return 8 }

// BlockSize returns 1; writes of any size and split are accepted.
func (d *Digest64) BlockSize() int { return 1 }
