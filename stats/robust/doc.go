// Package robust provides outlier-resistant location estimates for power
// spectra.
//
// The median of an even-length sample is defined as the mean of its two
// middle order statistics. Downstream normalization scales with this value,
// so the convention is fixed here rather than left to the selection
// algorithm.
package robust
