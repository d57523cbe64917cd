package rednoise

import "math"

// NextBlockLength returns the length of the block to read after binnum bins
// (DC included) have been consumed from a spectrum of the given duration in
// seconds.
//
// Below cfg.EndFreq (binnum/duration is the frequency in Hz of the next bin)
// the length is trunc(StartWidth * ln(binnum)); at or above it the length is
// EndWidth. The result is always within [StartWidth, EndWidth]. Since
// binnum/duration only grows, the clamp is permanent once reached.
func NextBlockLength(cfg Config, binnum int64, duration float64) int {
	if float64(binnum)/duration >= cfg.EndFreq {
		return cfg.EndWidth
	}
	if binnum < 1 {
		return cfg.StartWidth
	}
	n := int(float64(cfg.StartWidth) * math.Log(float64(binnum)))
	return min(max(n, cfg.StartWidth), cfg.EndWidth)
}
