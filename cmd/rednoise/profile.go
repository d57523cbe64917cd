package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-rednoise/dsp/rednoise"
	"github.com/cwbudde/algo-rednoise/stats/frequency"
)

// profiledSource feeds every bin it reads into a power profile.
type profiledSource struct {
	src     rednoise.Source
	profile *frequency.Profile
}

func (s profiledSource) Read(dst []complex128) (int, error) {
	n, err := s.src.Read(dst)
	s.profile.Add(dst[:n])
	return n, err
}

// profiledSink feeds every bin it writes into a power profile.
type profiledSink struct {
	dst     rednoise.Sink
	profile *frequency.Profile
}

func (s profiledSink) Write(src []complex128) (int, error) {
	n, err := s.dst.Write(src)
	s.profile.Add(src[:n])
	return n, err
}

// printProfiles writes the per-octave mean power of the input and output
// spectra side by side. Output powers are normalized to the white-noise
// mean of 1.
func printProfiles(w io.Writer, in, out *frequency.Profile) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Bins\tFreq [Hz]\tIn Power\tIn Flatness\tOut Power\tOut Flatness\n")
	fmt.Fprintf(tw, "----\t---------\t--------\t-----------\t---------\t------------\n")

	outBands := out.Bands()
	for i, b := range in.Bands() {
		if i >= len(outBands) {
			break
		}
		o := outBands[i]
		fmt.Fprintf(tw, "%d-%d\t%.4g-%.4g\t%.4g\t%.3f\t%.4f\t%.3f\n",
			b.LoBin, b.HiBin-1, b.LoHz, b.HiHz, b.MeanPower, b.Flatness, o.MeanPower, o.Flatness)
	}
	fmt.Fprintf(tw, "\nRedness (lowest/highest octave power, >= 64 bins):\t%.4g -> %.4g\n",
		in.Redness(64), out.Redness(64))
	return tw.Flush()
}
