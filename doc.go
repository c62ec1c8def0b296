// Package jenkins provides Bob Jenkins's non-cryptographic hash functions.
//
// The package is the one-stop surface for keyed 32- and 64-bit hashing
// of byte, string and word keys. It delegates to the lookup3
// subpackage, the 2006 generation most callers want; the older
// generations and the 64-bit-native SpookyHash live in their own
// subpackages:
//
//   - lookup3: hashlittle/hashword family, the package default
//   - lookup2: the 1996 predecessor, for digests that must match old data
//   - oneatatime: the tiny per-byte hash, streams without buffering
//   - spooky: SpookyHash V2, 128-bit digests, fastest on long keys
//
// None of these are cryptographic. They are for hash tables, sharding,
// fingerprinting and checksums, not for keyed authentication or
// anything an adversary may probe.
//
// # Quick Start
//
//	sum := jenkins.Hash32(key, 0)
//	h1, h2 := jenkins.Hash64Pair(key, 1, 2)
//
// Results are deterministic across platforms: lane packing is
// little-endian everywhere, regardless of the host.
//
// # Streaming
//
// Streams accumulate writes and hash once, on Finalize. A finalized
// stream is spent: further writes and a second Finalize fail with
// ErrFinalized, so accidental reuse surfaces as an error instead of a
// wrong digest.
//
//	s := jenkins.NewStream32(seed)
//	_, _ = s.Write(header)
//	_, _ = s.Write(body)
//	sum, err := s.Finalize()
//
// The subpackages additionally expose stdlib-style hash.Hash32 and
// hash.Hash64 adapters, which keep Reset semantics for callers that
// want them.
//
// # Choosing a width
//
// Hash32 is the right default for table lookup. Hash64Pair computes
// two independent 32-bit hashes in a single pass for about 40% more
// work than one; Hash64 packs that pair into a uint64 with the primary
// word in the low half. For keys beyond a few hundred bytes, prefer
// the spooky subpackage.
package jenkins
