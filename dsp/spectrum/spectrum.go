package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// split unpacks in into separate real and imaginary slices.
func split(re, im []float64, in []complex128) {
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	PowerInto(out, in)
	return out
}

// PowerInto computes |X[k]|^2 = re^2 + im^2 for every bin of in into dst.
//
// dst must be at least len(in) long; only dst[:len(in)] is written. The
// kernel uses the SIMD implementation of algo-vecmath when available.
// Scratch buffers are pooled, so in steady state this does not allocate.
func PowerInto(dst []float64, in []complex128) {
	n := len(in)
	if n == 0 {
		return
	}
	re, im, buf := getScratch(n)
	split(re, im, in)
	vecmath.Power(dst[:n], re, im)
	putScratch(buf)
}

// ScaleInto writes src[k]*gain into dst for every bin.
//
// dst must be at least len(src) long. dst and src may alias.
func ScaleInto(dst, src []complex128, gain float64) {
	n := len(src)
	if n == 0 {
		return
	}
	re, im, buf := getScratch(n)
	split(re, im, src)
	vecmath.ScaleBlock(re, re, gain)
	vecmath.ScaleBlock(im, im, gain)
	for i := range n {
		dst[i] = complex(re[i], im[i])
	}
	putScratch(buf)
}

// ScaleRamp writes src[k]*gain(k) into dst, where gain is evaluated once per
// bin. It is the generic path for per-bin normalization factors.
func ScaleRamp(dst, src []complex128, gain func(k int) float64) {
	for k, c := range src {
		g := gain(k)
		dst[k] = complex(real(c)*g, imag(c)*g)
	}
}
