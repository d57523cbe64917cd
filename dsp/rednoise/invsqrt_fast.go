//go:build fastmath

package rednoise

import "github.com/meko-christian/algo-approx"

// invSqrt returns an approximation of 1/sqrt(x). The relative error follows
// approx.FastSqrt; normalized powers deviate from the exact result by about
// twice that error.
func invSqrt(x float64) float64 {
	return 1 / approx.FastSqrt(x)
}
