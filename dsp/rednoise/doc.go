// Package rednoise removes low-frequency (red) noise from a one-sided Fourier
// spectrum so that the noise floor is white across frequency.
//
// The spectrum is processed in a single streaming pass over blocks of bins
// whose length grows logarithmically with frequency and is clamped to a fixed
// width above a configured frequency. Each block's noise level is estimated
// robustly as median(|X|^2)/ln 2, which equals the mean power of white noise
// (exponentially distributed power) while ignoring strong periodic signals.
// Between the midpoints of consecutive blocks the noise level is interpolated
// linearly and every bin is scaled by 1/sqrt(level), so that the expected
// power per bin becomes 1 under the white-noise hypothesis.
//
// Boundary policies:
//   - bin 0 (DC) is replaced by 1+0i,
//   - the first half of the first block uses that block's level without slope,
//   - the second half of the last block extrapolates the last slope.
//
// At most two blocks are resident at any time. Buffers are sized by the
// configured end width and reused for the whole stream.
package rednoise
