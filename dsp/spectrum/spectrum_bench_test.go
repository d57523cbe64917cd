package spectrum

import (
	"strconv"
	"testing"
)

func BenchmarkPowerInto(b *testing.B) {
	for _, n := range []int{64, 1024, 16384} {
		in := make([]complex128, n)
		for i := range in {
			in[i] = complex(float64(i%7)-3, float64(i%5)-2)
		}
		dst := make([]float64, n)

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.SetBytes(int64(n * 16))
			b.ReportAllocs()
			for range b.N {
				PowerInto(dst, in)
			}
		})
	}
}

func BenchmarkScaleInto(b *testing.B) {
	in := make([]complex128, 1024)
	for i := range in {
		in[i] = complex(float64(i), -float64(i))
	}
	dst := make([]complex128, len(in))

	b.ReportAllocs()
	for range b.N {
		ScaleInto(dst, in, 0.25)
	}
}
