package robust

import (
	"math"
	"math/rand"
	"slices"
	"sort"
	"testing"
)

// referenceMedian sorts a copy and averages the middle pair for even lengths.
func referenceMedian(x []float64) float64 {
	s := make([]float64, len(x))
	copy(s, x)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

func TestMedianKnownValues(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{"single", []float64{7}, 7},
		{"pair", []float64{1, 4}, 2.5},
		{"odd", []float64{5, 1, 3}, 3},
		{"even", []float64{4, 1, 3, 2}, 2.5},
		{"ties", []float64{2, 2, 2, 2, 2}, 2},
		{"even ties", []float64{1, 3, 3, 3}, 3},
		{"outlier", []float64{1, 1, 1, 1000, 1}, 1},
		{"negative", []float64{-3, -1, -2}, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Median(tt.in)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("Median(%v)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMedianEmpty(t *testing.T) {
	if !math.IsNaN(Median(nil)) {
		t.Fatalf("Median(nil) should be NaN")
	}
	if !math.IsNaN(MedianInPlace([]float64{})) {
		t.Fatalf("MedianInPlace(empty) should be NaN")
	}
}

func TestMedianDoesNotModifyInput(t *testing.T) {
	in := []float64{9, 3, 7, 1, 5, 2}
	orig := slices.Clone(in)

	_ = Median(in)

	if !slices.Equal(in, orig) {
		t.Fatalf("Median reordered its input: %v", in)
	}
}

func TestMedianInPlaceMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 1; n <= 257; n++ {
		x := make([]float64, n)
		for i := range x {
			// Exponential powers, with some quantization to force ties.
			x[i] = math.Round(rng.ExpFloat64()*8) / 8
		}
		want := referenceMedian(x)

		got := MedianInPlace(slices.Clone(x))
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("n=%d: MedianInPlace=%v want=%v", n, got, want)
		}
	}
}

func TestSelectKthPartitions(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	x := make([]float64, 101)
	for i := range x {
		x[i] = rng.Float64()
	}

	const k = 37
	v := selectKth(x, k)

	for i := range k {
		if x[i] > v {
			t.Fatalf("x[%d]=%v > kth=%v", i, x[i], v)
		}
	}
	for i := k + 1; i < len(x); i++ {
		if x[i] < v {
			t.Fatalf("x[%d]=%v < kth=%v", i, x[i], v)
		}
	}
}
