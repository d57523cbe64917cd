package testutil

import (
	"math"
	"testing"
)

func TestRequireSliceNearlyEqualPass(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2, 3}, []float64{1, 2, 3 + 1e-13}, 1e-12)
}

func TestRequireBinsNearlyEqualPass(t *testing.T) {
	RequireBinsNearlyEqual(t, []complex128{1 + 1i, 2}, []complex128{1 + 1i, 2 + 1e-13i}, 1e-12)
}

func TestRequireFinitePass(t *testing.T) {
	RequireFinite(t, []complex128{0, 1, -1i})
}

func TestPowers(t *testing.T) {
	RequireSliceNearlyEqual(t, Powers([]complex128{3 + 4i, 1i}), []float64{25, 1}, 0)
}

func TestMean(t *testing.T) {
	if got := Mean([]float64{1, 2, 3, 4}); got != 2.5 {
		t.Fatalf("Mean = %v, want 2.5", got)
	}
	if !math.IsNaN(Mean(nil)) {
		t.Fatal("Mean(nil) should be NaN")
	}
}
