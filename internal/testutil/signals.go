package testutil

import (
	"math"
	"math/rand"
)

// ConstantSpectrum returns n bins all equal to c.
func ConstantSpectrum(c complex128, n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = c
	}
	return out
}

// WhiteSpectrum generates n bins of complex Gaussian noise with a fixed seed.
// Each bin's power is exponentially distributed with mean meanPower.
func WhiteSpectrum(seed int64, meanPower float64, n int) []complex128 {
	return ShapedSpectrum(seed, n, func(int) float64 { return meanPower })
}

// ShapedSpectrum generates n bins of complex Gaussian noise whose mean power
// at bin i is level(i).
func ShapedSpectrum(seed int64, n int, level func(i int) float64) []complex128 {
	out := make([]complex128, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		sigma := math.Sqrt(level(i) / 2)
		out[i] = complex(rng.NormFloat64()*sigma, rng.NormFloat64()*sigma)
	}
	return out
}

// RedSpectrum generates n bins whose mean power falls off as
// floor + amp/(i^alpha), bin 0 included at the value of bin 1.
func RedSpectrum(seed int64, n int, floor, amp, alpha float64) []complex128 {
	return ShapedSpectrum(seed, n, func(i int) float64 {
		return floor + amp/math.Pow(float64(max(i, 1)), alpha)
	})
}

// RippleSpectrum returns n deterministic bins whose power stays within
// [(1-depth)^2, (1+depth)^2+depth^2]. It is useful where only bin counts
// matter and random level swings between small blocks would get in the way.
func RippleSpectrum(n int, depth float64) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		x := float64(i)
		out[i] = complex(1+depth*math.Sin(0.37*x), depth*math.Cos(0.11*x))
	}
	return out
}
