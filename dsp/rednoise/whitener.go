package rednoise

import (
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/algo-rednoise/dsp/buffer"
)

// Result summarizes one pass over a spectrum.
type Result struct {
	// Consumed is the number of bins read from the source, DC included.
	Consumed int64
	// Emitted is the number of bins written to the sink, DC included.
	Emitted int64
	// Blocks is the number of analysis blocks.
	Blocks int
	// Level is the noise level of the last block.
	Level float64
	// Slope is the last level change per bin, used for the final tail.
	Slope float64
}

// ProgressFunc is called after every analysis block with the number of bins
// consumed so far, DC included.
type ProgressFunc func(binnum int64)

// Whitener streams a spectrum through the adaptive whitening pass.
//
// A Whitener owns a pair of block buffers, an output buffer and a power
// scratch buffer, all of capacity EndWidth. They are reused across blocks
// and across calls to Process. A Whitener is not safe for concurrent use.
type Whitener struct {
	cfg      Config
	duration float64
	progress ProgressFunc

	blocks *buffer.Pair
	out    []complex128
	pow    []float64
}

// New returns a Whitener for a spectrum whose time series spans duration
// seconds (sample count times sampling interval). The frequency of bin i is
// i/duration.
func New(duration float64, opts ...Option) (*Whitener, error) {
	cfg := ApplyOptions(opts...)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if err := validateDuration(duration); err != nil {
		return nil, err
	}
	return &Whitener{
		cfg:      cfg,
		duration: duration,
		blocks:   buffer.NewPair(cfg.EndWidth),
		out:      make([]complex128, cfg.EndWidth),
		pow:      make([]float64, cfg.EndWidth),
	}, nil
}

// Config returns the validated configuration.
func (w *Whitener) Config() Config { return w.cfg }

// Duration returns the time-series duration in seconds.
func (w *Whitener) Duration() float64 { return w.duration }

// SetProgress installs a callback invoked after every block. Pass nil to
// remove it.
func (w *Whitener) SetProgress(fn ProgressFunc) { w.progress = fn }

// Process reads the whole spectrum from src and writes the whitened bins to
// dst, one output bin per input bin.
//
// It returns [ErrShortFirstBlock] when src cannot provide the DC bin and a
// full first block, and [ErrDegenerateLevel] when a noise level is not
// positive. Bins already written to dst before an error are not retracted.
func (w *Whitener) Process(src Source, dst Sink) (Result, error) {
	var res Result
	w.blocks.Reset()

	// DC.
	dc := w.blocks.Old().Resize(1)
	n, err := readFull(src, dc)
	res.Consumed += int64(n)
	if n != 1 {
		return res, shortFirst(err, "DC bin")
	}
	dc[0] = complex(1, 0)
	if err := writeAll(dst, dc); err != nil {
		return res, fmt.Errorf("rednoise: write DC bin: %w", err)
	}
	res.Emitted++
	binnum := int64(1)

	// First block.
	first := w.blocks.Old().Resize(w.cfg.StartWidth)
	n, err = readFull(src, first)
	res.Consumed += int64(n)
	if n != len(first) {
		return res, shortFirst(err, fmt.Sprintf("first block: read %d of %d bins", n, len(first)))
	}
	old := Block{Bins: first, Level: noiseLevel(w.pow, first)}
	res.Blocks++
	res.Level = old.Level

	written, err := Head(w.out, old)
	if err != nil {
		return res, fmt.Errorf("rednoise: block at bin %d: %w", binnum, err)
	}
	if err := w.emit(dst, written, &res); err != nil {
		return res, err
	}
	binnum += int64(len(first))
	w.report(binnum)

	// Steady state: normalize from the old midpoint to the new midpoint.
	slope := 0.0
	eof := false
	for !eof {
		want := NextBlockLength(w.cfg, binnum, w.duration)
		next := w.blocks.New()
		buf := next.Resize(want)
		n, err := readFull(src, buf)
		res.Consumed += int64(n)
		switch {
		case errors.Is(err, io.EOF):
			eof = true
		case err != nil:
			return res, fmt.Errorf("rednoise: read block at bin %d: %w", binnum, err)
		}
		if n == 0 {
			break
		}

		next.Truncate(n)
		cur := Block{Bins: next.Bins(), Level: noiseLevel(w.pow, next.Bins())}
		if err := checkLevel(cur.Level); err != nil {
			return res, fmt.Errorf("rednoise: block at bin %d: %w", binnum, err)
		}
		written, slope, err = Transition(w.out, old, cur)
		if err != nil {
			return res, fmt.Errorf("rednoise: block at bin %d: %w", binnum, err)
		}
		if err := w.emit(dst, written, &res); err != nil {
			return res, err
		}

		binnum += int64(n)
		res.Blocks++
		res.Level = cur.Level
		res.Slope = slope
		old = cur
		w.blocks.Swap()
		w.report(binnum)
	}

	// Extrapolate the last slope over the second half of the last block.
	written, err = Tail(w.out, old, slope)
	if err != nil {
		return res, fmt.Errorf("rednoise: final block at bin %d: %w", binnum-int64(len(old.Bins)), err)
	}
	if err := w.emit(dst, written, &res); err != nil {
		return res, err
	}

	if res.Emitted != res.Consumed {
		return res, fmt.Errorf("%w: %d != %d", errCountMismatch, res.Emitted, res.Consumed)
	}
	return res, nil
}

func (w *Whitener) emit(dst Sink, n int, res *Result) error {
	if err := writeAll(dst, w.out[:n]); err != nil {
		return fmt.Errorf("rednoise: write %d bins after bin %d: %w", n, res.Emitted, err)
	}
	res.Emitted += int64(n)
	return nil
}

func (w *Whitener) report(binnum int64) {
	if w.progress != nil {
		w.progress(binnum)
	}
}

func shortFirst(err error, what string) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %w", ErrShortFirstBlock, what, err)
	}
	return fmt.Errorf("%w: %s", ErrShortFirstBlock, what)
}

// Whiten is a convenience wrapper that whitens an in-memory spectrum and
// returns a new slice of the same length.
func Whiten(bins []complex128, duration float64, opts ...Option) ([]complex128, error) {
	w, err := New(duration, opts...)
	if err != nil {
		return nil, err
	}
	sink := &SliceSink{Bins: make([]complex128, 0, len(bins))}
	if _, err := w.Process(NewSliceSource(bins), sink); err != nil {
		return nil, err
	}
	return sink.Bins, nil
}
