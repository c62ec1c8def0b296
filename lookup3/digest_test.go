package lookup3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopkick/jenkins/testutil"
)

func TestDigest32(t *testing.T) {
	t.Run("MatchesOneShot", func(t *testing.T) {
		rng := testutil.NewRNG(4711)

		for _, n := range []int{0, 1, 11, 12, 13, 100, 500} {
			data := rng.Bytes(n)
			seed := rng.Uint32()
			want := Sum32WithSeed(data, seed)

			// Whole buffer, byte-at-a-time, and random splits must agree.
			d := New32WithSeed(seed)
			_, err := d.Write(data)
			require.NoError(t, err)
			assert.Equal(t, want, d.Sum32(), "whole, length %d", n)

			d.Reset()
			for i := range data {
				_, err = d.Write(data[i : i+1])
				require.NoError(t, err)
			}
			assert.Equal(t, want, d.Sum32(), "bytewise, length %d", n)

			d.Reset()
			for _, chunk := range rng.Chunks(data, 4) {
				_, err = d.Write(chunk)
				require.NoError(t, err)
			}
			assert.Equal(t, want, d.Sum32(), "chunked, length %d", n)
		}
	})

	t.Run("SumAppends", func(t *testing.T) {
		d := New32()
		_, err := d.Write([]byte(fourScore))
		require.NoError(t, err)

		got := d.Sum([]byte{0xff})
		require.Len(t, got, 5)
		assert.Equal(t, byte(0xff), got[0])
		// Big-endian digest bytes follow the prefix.
		assert.Equal(t, []byte{0x17, 0x77, 0x05, 0x51}, got[1:])
	})

	t.Run("SumThenKeepWriting", func(t *testing.T) {
		data := []byte(fourScore)

		d := New32()
		_, err := d.Write(data[:10])
		require.NoError(t, err)
		_ = d.Sum32()
		_, err = d.Write(data[10:])
		require.NoError(t, err)
		assert.Equal(t, Sum32(data), d.Sum32())
	})

	t.Run("Reset", func(t *testing.T) {
		d := New32WithSeed(99)
		_, err := d.Write([]byte("junk"))
		require.NoError(t, err)
		d.Reset()

		_, err = d.Write([]byte(fourScore))
		require.NoError(t, err)
		assert.Equal(t, Sum32WithSeed([]byte(fourScore), 99), d.Sum32())
	})

	t.Run("SizeAndBlockSize", func(t *testing.T) {
		d := New32()
		assert.Equal(t, 4, d.Size())
		assert.Equal(t, 1, d.BlockSize())
	})
}

func TestDigest64(t *testing.T) {
	t.Run("MatchesOneShot", func(t *testing.T) {
		rng := testutil.NewRNG(4711)

		for _, n := range []int{0, 1, 12, 13, 250} {
			data := rng.Bytes(n)
			seed := rng.Uint64()
			want := Sum64WithSeed(data, seed)

			d := New64WithSeed(seed)
			for _, chunk := range rng.Chunks(data, 3) {
				_, err := d.Write(chunk)
				require.NoError(t, err)
			}
			assert.Equal(t, want, d.Sum64(), "length %d", n)
		}
	})

	t.Run("SumAppends", func(t *testing.T) {
		d := New64()
		_, err := d.Write([]byte(fourScore))
		require.NoError(t, err)

		got := d.Sum(nil)
		require.Len(t, got, 8)

		// The packed hash is appended big-endian: second word first.
		want := Sum64([]byte(fourScore))
		assert.Equal(t, byte(want>>56), got[0])
		assert.Equal(t, byte(want), got[7])
	})

	t.Run("SizeAndBlockSize", func(t *testing.T) {
		d := New64()
		assert.Equal(t, 8, d.Size())
		assert.Equal(t, 1, d.BlockSize())
	})
}
