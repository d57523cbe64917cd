package robust

import (
	"math"
	"slices"
)

// Median returns the median of x without modifying it.
// It returns NaN for an empty slice.
func Median(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	tmp := slices.Clone(x)
	return MedianInPlace(tmp)
}

// MedianInPlace returns the median of x, reordering x in the process.
// It returns NaN for an empty slice.
//
// The selection runs in expected linear time. For even lengths the result
// is the mean of the two middle order statistics.
func MedianInPlace(x []float64) float64 {
	n := len(x)
	switch n {
	case 0:
		return math.NaN()
	case 1:
		return x[0]
	case 2:
		return 0.5 * (x[0] + x[1])
	}

	k := n / 2
	hi := selectKth(x, k)
	if n%2 == 1 {
		return hi
	}
	// After selection every element left of k is <= x[k].
	lo := slices.Max(x[:k])
	return 0.5 * (lo + hi)
}

// selectKth partially orders x so that x[k] holds the k-th smallest value,
// x[:k] holds values <= x[k] and x[k+1:] holds values >= x[k].
func selectKth(x []float64, k int) float64 {
	left, right := 0, len(x)-1
	for right > left {
		lt, gt := partition3(x, left, right, x[medianOfThree(x, left, right)])
		switch {
		case k < lt:
			right = lt - 1
		case k > gt:
			left = gt + 1
		default:
			return x[k]
		}
	}
	return x[k]
}

// partition3 reorders x[left:right+1] into runs < v, == v and > v and
// returns the bounds [lt, gt] of the run equal to v.
func partition3(x []float64, left, right int, v float64) (lt, gt int) {
	lt, gt = left, right
	i := left
	for i <= gt {
		switch {
		case x[i] < v:
			x[lt], x[i] = x[i], x[lt]
			lt++
			i++
		case x[i] > v:
			x[i], x[gt] = x[gt], x[i]
			gt--
		default:
			i++
		}
	}
	return lt, gt
}

func medianOfThree(x []float64, left, right int) int {
	mid := left + (right-left)/2
	a, b, c := x[left], x[mid], x[right]
	switch {
	case (a <= b && b <= c) || (c <= b && b <= a):
		return mid
	case (b <= a && a <= c) || (c <= a && a <= b):
		return left
	default:
		return right
	}
}
