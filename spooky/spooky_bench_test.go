package spooky

import (
	"math/rand"
	"strconv"
	"testing"
)

func BenchmarkSum128_Sizes(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	for _, n := range []int{16, 96, 192, 1024, 8192, 65536} {
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			data := make([]byte, n)
			_, _ = r.Read(data)
			b.SetBytes(int64(n))
			b.ResetTimer()
			var s1, s2 uint64
			for b.Loop() {
				s1, s2 = Sum128(data, 0, 0)
			}
			_, _ = s1, s2
		})
	}
}

func BenchmarkDigestWrite(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	data := make([]byte, 8192)
	_, _ = r.Read(data)

	d := New(0, 0)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for b.Loop() {
		_, _ = d.Write(data)
	}
}
