package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// FillBytes fills dst with random bytes.
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) FillBytes(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = byte(r.rand.Intn(256))
	}
}

// Bytes returns a new random key of the given length.
func (r *RNG) Bytes(n int) []byte {
	data := make([]byte, n)
	r.FillBytes(data)
	return data
}

// Chunks splits data into consecutive chunks of random length between
// 1 and 2*avg bytes. The chunks share data's backing array. Feeding
// them to a streaming digest in order reproduces the whole input.
func (r *RNG) Chunks(data []byte, avg int) [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	var chunks [][]byte
	for len(data) > 0 {
		n := 1 + r.rand.Intn(2*avg)
		if n > len(data) {
			n = len(data)
		}
		chunks = append(chunks, data[:n])
		data = data[n:]
	}

	return chunks
}

// SequentialBytes returns a key of the given length with byte i set to
// byte(i). Useful for vectors that must be reproducible across
// implementations without sharing an RNG.
func SequentialBytes(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

// AvalancheBias estimates how well h diffuses single-bit input changes.
//
// For each trial it hashes a random key, flips every input bit in turn
// and records which output bits changed. The return value is the mean
// absolute deviation from 1/2 of the per-bit-pair flip probabilities.
// An ideal hash scores near the sampling noise floor, roughly
// 0.4/sqrt(trials); a mixing defect that pins or mirrors output bits
// pushes the mean toward 0.5.
func AvalancheBias(h func(data []byte, seed uint32) uint32, rng *RNG, trials, length int) float64 {
	bits := length * 8
	counts := make([]int, bits*32)

	data := make([]byte, length)
	flipped := make([]byte, length)

	for range trials {
		rng.FillBytes(data)
		seed := rng.Uint32()
		base := h(data, seed)

		for bit := range bits {
			copy(flipped, data)
			flipped[bit/8] ^= 1 << (bit % 8)
			diff := base ^ h(flipped, seed)

			for out := range 32 {
				if diff>>out&1 == 1 {
					counts[bit*32+out]++
				}
			}
		}
	}

	var total float64
	for _, c := range counts {
		total += math.Abs(float64(c)/float64(trials) - 0.5)
	}

	return total / float64(len(counts))
}

// DistinctDigests tracks a stream of 32-bit digests and counts
// collisions. It is backed by a roaring bitmap, so large corpora stay
// cheap to track.
type DistinctDigests struct {
	seen       *roaring.Bitmap
	collisions int
}

// NewDistinctDigests creates an empty digest tracker.
func NewDistinctDigests() *DistinctDigests {
	return &DistinctDigests{
		seen: roaring.New(),
	}
}

// Add records a digest. It reports whether the digest was new.
func (d *DistinctDigests) Add(digest uint32) bool {
	if d.seen.Contains(digest) {
		d.collisions++
		return false
	}
	d.seen.Add(digest)
	return true
}

// Distinct returns the number of distinct digests seen so far.
func (d *DistinctDigests) Distinct() uint64 {
	return d.seen.GetCardinality()
}

// Collisions returns the number of Add calls that repeated an earlier
// digest.
func (d *DistinctDigests) Collisions() int {
	return d.collisions
}
