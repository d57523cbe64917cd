// Package spectrum provides per-bin kernels over one-sided complex spectra.
//
// The package does not compute transforms. It operates on complex bins
// produced elsewhere (an FFT file, a synthetic generator) and provides the
// power and gain kernels the whitening engine runs in its inner loop.
package spectrum
