package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-rednoise/internal/fftfile"
	"github.com/cwbudde/algo-rednoise/internal/inf"
)

type synthParams struct {
	samples int
	dt      float64
	red     float64
	freq    float64
	amp     float64
	seed    int64
}

func newSynthCmd() *cobra.Command {
	p := synthParams{samples: 1 << 16, dt: 1e-3, red: 0.05, seed: 1}

	cmd := &cobra.Command{
		Use:   "synth [flags] name",
		Short: "Write a synthetic red-noise spectrum (name.fft, name.inf)",
		Long: `Generate a time series of white Gaussian noise plus a random walk
(red noise) and an optional sinusoid, real-FFT it and write the one-sided
spectrum to name.fft with its metadata in name.inf. The Nyquist bin is
packed into the imaginary part of the DC bin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bins, err := synthSpectrum(p)
			if err != nil {
				return err
			}
			name := args[0]
			if err := writeSpectrum(name+".fft", bins); err != nil {
				return err
			}
			if err := inf.New(name, int64(p.samples), p.dt).WriteFile(name + ".inf"); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bins to %s.fft (T = %g s)\n", len(bins), name, float64(p.samples)*p.dt)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&p.samples, "samples", "n", p.samples, "number of time-series samples (even)")
	flags.Float64Var(&p.dt, "dt", p.dt, "sampling interval in seconds")
	flags.Float64Var(&p.red, "red", p.red, "random-walk step size relative to the white noise")
	flags.Float64Var(&p.freq, "freq", p.freq, "frequency in Hz of an injected sinusoid (0 for none)")
	flags.Float64Var(&p.amp, "amp", p.amp, "amplitude of the injected sinusoid")
	flags.Int64Var(&p.seed, "seed", p.seed, "random seed")
	return cmd
}

// synthSpectrum returns samples/2 bins of the real FFT of the synthetic
// time series.
func synthSpectrum(p synthParams) ([]complex128, error) {
	series, err := synthSeries(p)
	if err != nil {
		return nil, err
	}
	coeffs := fourier.NewFFT(p.samples).Coefficients(nil, series)
	half := p.samples / 2
	bins := make([]complex128, half)
	copy(bins, coeffs[:half])
	bins[0] = complex(real(coeffs[0]), real(coeffs[half]))
	return bins, nil
}

func synthSeries(p synthParams) ([]float64, error) {
	if p.samples < 2 || p.samples%2 != 0 {
		return nil, fmt.Errorf("synth samples must be even and >= 2: %d", p.samples)
	}
	if !(p.dt > 0) {
		return nil, fmt.Errorf("synth dt must be > 0: %f", p.dt)
	}

	rng := rand.New(rand.NewSource(p.seed))
	series := make([]float64, p.samples)
	walk := 0.0
	for i := range series {
		walk += p.red * rng.NormFloat64()
		series[i] = rng.NormFloat64() + walk
		if p.freq > 0 {
			series[i] += p.amp * math.Sin(2*math.Pi*p.freq*float64(i)*p.dt)
		}
	}
	return series, nil
}

func writeSpectrum(path string, bins []complex128) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fftfile.WriteAll(f, bins); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
