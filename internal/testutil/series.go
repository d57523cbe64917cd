package testutil

import (
	"fmt"
	"math/rand"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// RandomWalkSeries generates n samples of unit Gaussian white noise plus a
// random walk whose steps have standard deviation step. Its spectrum is red:
// the walk adds power falling off as 1/f^2 on top of a flat floor.
func RandomWalkSeries(seed int64, n int, step float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	walk := 0.0
	for i := range out {
		walk += step * rng.NormFloat64()
		out[i] = rng.NormFloat64() + walk
	}
	return out
}

// RealSpectrum returns the len(x)/2 one-sided bins of the forward FFT of x,
// with the Nyquist value packed into the imaginary part of bin 0. len(x)
// must be a power of two.
func RealSpectrum(x []float64) ([]complex128, error) {
	n := len(x)
	if n < 2 || n&(n-1) != 0 {
		return nil, fmt.Errorf("testutil: series length %d is not a power of two", n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("testutil: FFT plan: %w", err)
	}
	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("testutil: FFT: %w", err)
	}

	half := n / 2
	bins := make([]complex128, half)
	copy(bins, out[:half])
	bins[0] = complex(real(out[0]), real(out[half]))
	return bins, nil
}
