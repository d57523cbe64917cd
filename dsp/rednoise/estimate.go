package rednoise

import (
	"math"

	"github.com/cwbudde/algo-rednoise/dsp/spectrum"
	"github.com/cwbudde/algo-rednoise/stats/robust"
)

// NoiseLevel returns the robust noise level of a block of bins:
// median(|X|^2) / ln 2. For white noise the power of a bin is exponentially
// distributed with median ln 2 times its mean, so the result estimates the
// mean power. Even-length medians average the two middle values.
//
// bins is not modified. NoiseLevel returns NaN for an empty block.
func NoiseLevel(bins []complex128) float64 {
	if len(bins) == 0 {
		return math.NaN()
	}
	pow := make([]float64, len(bins))
	return noiseLevel(pow, bins)
}

// noiseLevel computes the level of bins using pow as scratch. pow must be at
// least len(bins) long and is reordered by the median selection.
func noiseLevel(pow []float64, bins []complex128) float64 {
	p := pow[:len(bins)]
	spectrum.PowerInto(p, bins)
	return robust.MedianInPlace(p) / math.Ln2
}
