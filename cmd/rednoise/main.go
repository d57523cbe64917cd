// Command rednoise removes red noise from a one-sided Fourier spectrum.
//
// Usage:
//
//	rednoise [flags] file.fft
//	rednoise synth [flags] name
//
// The input spectrum is read from file.fft (little-endian float32 complex
// pairs) and its time-series metadata from file.inf. The whitened spectrum
// is written next to the data named in the .inf file with a "_red" suffix,
// or into the current directory when that location does not exist.
//
// Examples:
//
//	rednoise ser_DM10.00.fft
//	rednoise --startwidth 10 --endwidth 200 --endfreq 10 ser_DM10.00.fft
//	rednoise --config rednoise.yaml ser_DM10.00.fft
//	rednoise synth --samples 1048576 --dt 6.4e-5 --freq 37.5 test
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
