//go:build !fastmath

package rednoise

import "math"

// invSqrt returns 1/sqrt(x).
func invSqrt(x float64) float64 {
	return 1 / math.Sqrt(x)
}
