package jenkins

import (
	"io"

	"github.com/shopkick/jenkins/lookup3"
)

// Compile-time checks.
var (
	_ io.Writer = (*Stream32)(nil)
	_ io.Writer = (*Stream64)(nil)
)

// Stream32 accumulates a key across writes and hashes it once, on
// Finalize.
//
// Unlike the hash.Hash32 adapters in the subpackages, a stream is
// single-use: Finalize spends it, and every later operation fails with
// ErrFinalized. There is no Reset; hashing again takes a fresh stream.
type Stream32 struct {
	seed      uint32
	buf       []byte
	finalized bool
}

// NewStream32 creates a stream computing Hash32 under the given seed.
func NewStream32(seed uint32) *Stream32 {
	return &Stream32{seed: seed}
}

// Write appends p to the pending key. Once the stream is spent it
// consumes nothing and fails with ErrFinalized.
func (s *Stream32) Write(p []byte) (int, error) {
	if s.finalized {
		return 0, errFinalized("write")
	}
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// Finalize hashes the accumulated key and spends the stream. A second
// call returns a zero digest and ErrFinalized.
func (s *Stream32) Finalize() (uint32, error) {
	if s.finalized {
		return 0, errFinalized("finalize")
	}
	s.finalized = true
	return lookup3.Sum32WithSeed(s.buf, s.seed), nil
}

// Finalized reports whether the stream has been spent.
func (s *Stream32) Finalized() bool {
	return s.finalized
}

// Stream64 is the two-seed form of Stream32; Finalize yields the same
// pair as Hash64Pair.
type Stream64 struct {
	seed1     uint32
	seed2     uint32
	buf       []byte
	finalized bool
}

// NewStream64 creates a stream computing Hash64Pair under the given
// seeds.
func NewStream64(seed1, seed2 uint32) *Stream64 {
	return &Stream64{seed1: seed1, seed2: seed2}
}

// Write appends p to the pending key. Once the stream is spent it
// consumes nothing and fails with ErrFinalized.
func (s *Stream64) Write(p []byte) (int, error) {
	if s.finalized {
		return 0, errFinalized("write")
	}
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// Finalize hashes the accumulated key and spends the stream. A second
// call returns zero digests and ErrFinalized.
func (s *Stream64) Finalize() (uint32, uint32, error) {
	if s.finalized {
		return 0, 0, errFinalized("finalize")
	}
	s.finalized = true
	h1, h2 := lookup3.Sum32Pair(s.buf, s.seed1, s.seed2)
	return h1, h2, nil
}

// Finalized reports whether the stream has been spent.
func (s *Stream64) Finalized() bool {
	return s.finalized
}
