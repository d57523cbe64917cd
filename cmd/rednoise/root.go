package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-rednoise/dsp/rednoise"
	"github.com/cwbudde/algo-rednoise/internal/fftfile"
	"github.com/cwbudde/algo-rednoise/internal/inf"
	"github.com/cwbudde/algo-rednoise/stats/frequency"
)

type rootFlags struct {
	config     string
	startWidth int
	endWidth   int
	endFreq    float64
	verbose    bool
	profile    bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	def := rednoise.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "rednoise [flags] file.fft",
		Short: "Remove red noise from a Fourier spectrum",
		Long: `Rescale every bin of a one-sided Fourier spectrum so that the noise
floor is white: the local noise level is estimated from the median power of
blocks whose length grows with frequency, interpolated linearly between
block midpoints, and divided out bin by bin.

Block schedule settings may come from a YAML file (--config); flags given
on the command line take precedence:

  startwidth: 6
  endwidth: 100
  endfreq: 6.0`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), f.verbose)

			opts, err := f.options(cmd)
			if err != nil {
				return err
			}
			return runWhiten(args[0], opts, f.profile, logger, cmd.OutOrStdout())
		},
	}

	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "YAML file with block schedule settings")
	cmd.Flags().IntVar(&f.startWidth, "startwidth", def.StartWidth, "initial (minimum) block length in bins")
	cmd.Flags().IntVar(&f.endWidth, "endwidth", def.EndWidth, "maximum block length in bins")
	cmd.Flags().Float64Var(&f.endFreq, "endfreq", def.EndFreq, "frequency (Hz) at which block growth stops")
	cmd.Flags().BoolVar(&f.profile, "profile", false, "print per-octave power of the input and output spectra")

	cmd.AddCommand(newSynthCmd())
	return cmd
}

// options merges the config file and explicitly set flags.
func (f *rootFlags) options(cmd *cobra.Command) ([]rednoise.Option, error) {
	var opts []rednoise.Option
	if f.config != "" {
		fc, err := loadConfigFile(f.config)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fc.options()...)
	}
	flags := cmd.Flags()
	if flags.Changed("startwidth") {
		opts = append(opts, rednoise.WithStartWidth(f.startWidth))
	}
	if flags.Changed("endwidth") {
		opts = append(opts, rednoise.WithEndWidth(f.endWidth))
	}
	if flags.Changed("endfreq") {
		opts = append(opts, rednoise.WithEndFreq(f.endFreq))
	}
	return opts, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runWhiten(input string, opts []rednoise.Option, profile bool, logger *slog.Logger, stdout io.Writer) error {
	root, err := inputRoot(input)
	if err != nil {
		return err
	}

	info, err := inf.ReadFile(root + ".inf")
	if err != nil {
		return err
	}
	numsamp, err := info.N()
	if err != nil {
		return err
	}
	duration, err := info.Duration()
	if err != nil {
		return err
	}
	dataName, err := info.Name()
	if err != nil {
		return err
	}

	w, err := rednoise.New(duration, opts...)
	if err != nil {
		return err
	}
	cfg := w.Config()
	logger.Debug("block schedule",
		"startwidth", cfg.StartWidth, "endwidth", cfg.EndWidth, "endfreq", cfg.EndFreq,
		"duration", duration)

	out := planOutputs(root, dataName)
	if out.Fallback {
		logger.Warn("original directory does not exist, writing output files in the current working directory",
			"name", dataName)
	}

	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()

	dst, err := os.Create(out.FFT)
	if err != nil {
		return err
	}
	defer dst.Close()

	reader := fftfile.NewReader(in)
	writer := fftfile.NewWriter(dst)

	var src rednoise.Source = reader
	var sink rednoise.Sink = writer
	var inProfile, outProfile *frequency.Profile
	if profile {
		inProfile = frequency.NewProfile(duration)
		outProfile = frequency.NewProfile(duration)
		src = profiledSource{src: reader, profile: inProfile}
		sink = profiledSink{dst: writer, profile: outProfile}
	}

	half := max(numsamp/2, 1)
	lastPercent := int64(-1)
	w.SetProgress(func(binnum int64) {
		percent := min(100*binnum/half, 100)
		if percent/10 != lastPercent/10 {
			logger.Debug("progress", "percent", percent, "bins", binnum)
			lastPercent = percent
		}
	})

	// A partially written output is removed on failure.
	discard := func() {
		dst.Close()
		os.Remove(out.FFT)
	}
	res, err := w.Process(src, sink)
	if err != nil {
		discard()
		return fmt.Errorf("%s: %w", input, err)
	}
	if err := writer.Flush(); err != nil {
		discard()
		return fmt.Errorf("%s: %w", out.FFT, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(out.FFT)
		return fmt.Errorf("%s: %w", out.FFT, err)
	}

	info.SetName(out.Name)
	if err := info.WriteFile(out.Inf); err != nil {
		return fmt.Errorf("write %s: %w", out.Inf, err)
	}

	logger.Debug("done", "blocks", res.Blocks, "last_level", res.Level, "last_slope", res.Slope)
	fmt.Fprintf(stdout, "Rednoise removed from %d of %d points.\n\n", res.Emitted, numsamp/2)
	fmt.Fprintf(stdout, "   Dereddened fft file: %s\n", out.FFT)
	fmt.Fprintf(stdout, "Corresponding inf file: %s\n", out.Inf)
	if profile {
		fmt.Fprintln(stdout)
		return printProfiles(stdout, inProfile, outProfile)
	}
	return nil
}
