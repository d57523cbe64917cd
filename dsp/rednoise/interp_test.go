package rednoise

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-rednoise/internal/testutil"
)

// localLevels recovers the level used for each bin from unit input bins.
func localLevels(out []complex128) []float64 {
	levels := make([]float64, len(out))
	for i, v := range out {
		g := real(v)
		levels[i] = 1 / (g * g)
	}
	return levels
}

func TestSlope(t *testing.T) {
	old := Block{Bins: make([]complex128, 10), Level: 2}
	cur := Block{Bins: make([]complex128, 12), Level: 13}
	if got := Slope(old, cur); math.Abs(got-1) > 1e-15 {
		t.Fatalf("Slope = %v, want 1", got)
	}
}

func TestHeadUsesFlatLevel(t *testing.T) {
	first := Block{Bins: testutil.ConstantSpectrum(2, 7), Level: 4}
	dst := make([]complex128, 7)

	n, err := Head(dst, first)
	if err != nil {
		t.Fatalf("Head: %v", err)
	}
	if n != 3 {
		t.Fatalf("Head wrote %d bins, want 3", n)
	}
	testutil.RequireBinsNearlyEqual(t, dst[:n], testutil.ConstantSpectrum(1, 3), 1e-15)
}

func TestTransitionRegion(t *testing.T) {
	old := Block{Bins: testutil.ConstantSpectrum(1, 10), Level: 2}
	cur := Block{Bins: testutil.ConstantSpectrum(1, 12), Level: 13}
	dst := make([]complex128, 12)

	n, slope, err := Transition(dst, old, cur)
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if n != 5+6 {
		t.Fatalf("Transition wrote %d bins, want 11", n)
	}
	if math.Abs(slope-1) > 1e-15 {
		t.Fatalf("slope = %v, want 1", slope)
	}

	want := make([]float64, n)
	for k := range want {
		want[k] = 2 + float64(k)
	}
	testutil.RequireSliceNearlyEqual(t, localLevels(dst[:n]), want, 1e-12)
}

func TestTransitionBoundaryContinuity(t *testing.T) {
	old := Block{Bins: testutil.ConstantSpectrum(1, 9), Level: 1.5}
	cur := Block{Bins: testutil.ConstantSpectrum(1, 14), Level: 0.25}
	dst := make([]complex128, 16)

	n, slope, err := Transition(dst, old, cur)
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}

	levels := localLevels(dst[:n])
	// The last old bin and the first new bin sit one slope step apart,
	// like every other neighboring pair.
	boundary := len(old.Bins) - old.Mid()
	for k := 1; k < n; k++ {
		step := levels[k] - levels[k-1]
		if math.Abs(step-slope) > 1e-12 {
			t.Fatalf("k=%d (boundary at %d): step %v, want slope %v", k, boundary, step, slope)
		}
	}
}

func TestTransitionPreservesPhase(t *testing.T) {
	old := Block{Bins: []complex128{1i, -1i, 3 - 4i, 1 + 1i}, Level: 1}
	cur := Block{Bins: []complex128{2, 2}, Level: 1}
	dst := make([]complex128, 4)

	n, _, err := Transition(dst, old, cur)
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	testutil.RequireBinsNearlyEqual(t, dst[:n], []complex128{3 - 4i, 1 + 1i, 2}, 1e-15)
}

func TestTailExtrapolatesSlope(t *testing.T) {
	last := Block{Bins: testutil.ConstantSpectrum(1, 9), Level: 3}
	dst := make([]complex128, 9)

	n, err := Tail(dst, last, 0.5)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if n != 5 {
		t.Fatalf("Tail wrote %d bins, want 5", n)
	}
	testutil.RequireSliceNearlyEqual(t, localLevels(dst[:n]), []float64{3, 3.5, 4, 4.5, 5}, 1e-12)
}

func TestDegenerateLevels(t *testing.T) {
	dst := make([]complex128, 16)

	if _, err := Head(dst, Block{Bins: make([]complex128, 4), Level: 0}); !errors.Is(err, ErrDegenerateLevel) {
		t.Fatalf("Head zero level: err = %v", err)
	}
	if _, err := Head(dst, Block{Bins: make([]complex128, 4), Level: math.NaN()}); !errors.Is(err, ErrDegenerateLevel) {
		t.Fatalf("Head NaN level: err = %v", err)
	}
	if _, err := Tail(dst, Block{Bins: make([]complex128, 4), Level: -1}, 0); !errors.Is(err, ErrDegenerateLevel) {
		t.Fatalf("Tail negative level: err = %v", err)
	}
}

func TestTailHoldsLevelWhenExtrapolationTurnsNegative(t *testing.T) {
	// 3 - 0.5*k reaches zero at k = 6, inside the 10-bin half.
	last := Block{Bins: testutil.ConstantSpectrum(1, 20), Level: 3}
	dst := make([]complex128, 20)

	n, err := Tail(dst, last, -0.5)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if n != 10 {
		t.Fatalf("Tail wrote %d bins, want 10", n)
	}
	testutil.RequireSliceNearlyEqual(t, localLevels(dst[:n]), filled(3, n), 1e-12)

	// A downward slope that stays positive is still extrapolated.
	n, err = Tail(dst, last, -0.25)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if got := localLevels(dst[n-1 : n])[0]; math.Abs(got-0.75) > 1e-12 {
		t.Fatalf("last level = %v, want 0.75", got)
	}
}

func filled(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
