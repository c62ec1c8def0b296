// Package spooky implements SpookyHash V2, Bob Jenkins's 128-bit
// non-cryptographic hash for 64-bit platforms.
//
// The hash reaches about 3 bytes per cycle for long keys and stays cheap
// for short ones: keys under 192 bytes skip the twelve-variable block
// state entirely and run a compact four-variable path. All one- and
// two-bit input deltas avalanche to within 1% bias per output bit. As
// with the rest of the family there is no resistance to an adversary who
// knows the algorithm.
//
// # One-shot hashing
//
//	h1, h2 := spooky.Sum128(key, seed1, seed2)
//	h64 := spooky.Sum64(key, seed)
//	h32 := spooky.Sum32(key, seed)
//
// Sum64 and Sum32 are truncations of the 128-bit result, not separate
// algorithms.
//
// # Streaming
//
//	d := spooky.New(seed1, seed2)
//	d.Write(part1)
//	d.Write(part2)
//	h1, h2 := d.Sum128()
//
// The digest streams in constant memory and produces exactly the
// one-shot digests for any split of the key. Reading a sum does not
// disturb the stream; writes may continue afterward.
//
// # Byte order
//
// Lanes are packed little-endian, matching the digests the reference
// implementation produces on little-endian hardware.
package spooky
