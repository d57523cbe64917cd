package rednoise

import (
	"fmt"

	"github.com/cwbudde/algo-rednoise/dsp/spectrum"
)

// Block is one analysis block: a contiguous run of bins and its noise level.
type Block struct {
	Bins  []complex128
	Level float64
}

// Mid returns the block midpoint index, floor(len/2).
func (b Block) Mid() int { return len(b.Bins) / 2 }

// Slope returns the change of noise level per bin between the midpoints of
// two consecutive blocks.
func Slope(old, cur Block) float64 {
	return (cur.Level - old.Level) / (0.5 * float64(len(old.Bins)+len(cur.Bins)))
}

// Head normalizes the bins before the midpoint of the first block with the
// block's own level and no slope. It writes into dst and returns the number
// of bins written.
func Head(dst []complex128, first Block) (int, error) {
	if err := checkLevel(first.Level); err != nil {
		return 0, err
	}
	n := first.Mid()
	spectrum.ScaleInto(dst[:n], first.Bins[:n], invSqrt(first.Level))
	return n, nil
}

// Transition normalizes the region from the midpoint of old up to the
// midpoint of cur: old.Bins[old.Mid():] followed by cur.Bins[:cur.Mid()].
// The k-th bin of the region is scaled by 1/sqrt(old.Level + slope*k) where
// slope is [Slope](old, cur). It writes into dst and returns the number of
// bins written and the slope.
func Transition(dst []complex128, old, cur Block) (int, float64, error) {
	slope := Slope(old, cur)

	oldHalf := old.Bins[old.Mid():]
	curHalf := cur.Bins[:cur.Mid()]
	n := len(oldHalf) + len(curHalf)
	if err := ramp(dst[:len(oldHalf)], oldHalf, old.Level, slope, 0); err != nil {
		return 0, slope, err
	}
	if err := ramp(dst[len(oldHalf):n], curHalf, old.Level, slope, len(oldHalf)); err != nil {
		return 0, slope, err
	}
	return n, slope, nil
}

// Tail normalizes the second half of the final block by extrapolating the
// last slope beyond its midpoint. When the extrapolated level would reach
// zero or below before the last bin, the level is held at last.Level
// instead. It writes into dst and returns the number of bins written.
func Tail(dst []complex128, last Block, slope float64) (int, error) {
	half := last.Bins[last.Mid():]
	if !(last.Level+slope*float64(len(half)-1) > 0) {
		slope = 0
	}
	if err := ramp(dst[:len(half)], half, last.Level, slope, 0); err != nil {
		return 0, err
	}
	return len(half), nil
}

// ramp scales src[i] by 1/sqrt(level + slope*(k0+i)) into dst. The local
// level is linear in i, so checking both ends bounds the whole run.
func ramp(dst, src []complex128, level, slope float64, k0 int) error {
	if len(src) == 0 {
		return nil
	}
	first := level + slope*float64(k0)
	last := level + slope*float64(k0+len(src)-1)
	if err := checkLevel(first); err != nil {
		return fmt.Errorf("bin offset %d: %w", k0, err)
	}
	if err := checkLevel(last); err != nil {
		return fmt.Errorf("bin offset %d: %w", k0+len(src)-1, err)
	}
	spectrum.ScaleRamp(dst, src, func(k int) float64 {
		return invSqrt(level + slope*float64(k0+k))
	})
	return nil
}
