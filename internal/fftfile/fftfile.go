// Package fftfile reads and writes raw one-sided spectra stored as
// consecutive little-endian float32 (real, imaginary) pairs, one pair per
// Fourier bin, as produced by real-input FFT tools.
package fftfile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// RecordSize is the size in bytes of one stored bin.
const RecordSize = 8

// ErrTruncated is returned when the data ends inside a record.
var ErrTruncated = errors.New("fftfile: truncated record")

// Reader decodes bins from an underlying io.Reader. It implements
// rednoise.Source.
type Reader struct {
	r    *bufio.Reader
	buf  []byte
	bins int64
}

// NewReader returns a buffered Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReaderSize(r, 1<<16)}
}

// Read decodes up to len(dst) bins. It returns io.EOF once the data is
// exhausted and ErrTruncated when it ends in the middle of a record.
func (r *Reader) Read(dst []complex128) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	need := len(dst) * RecordSize
	if cap(r.buf) < need {
		r.buf = make([]byte, need)
	}
	buf := r.buf[:need]

	n, err := io.ReadFull(r.r, buf)
	bins := n / RecordSize
	for i := range bins {
		rec := buf[i*RecordSize:]
		re := math.Float32frombits(binary.LittleEndian.Uint32(rec[0:4]))
		im := math.Float32frombits(binary.LittleEndian.Uint32(rec[4:8]))
		dst[i] = complex(float64(re), float64(im))
	}
	r.bins += int64(bins)

	switch {
	case err == nil:
		return bins, nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		if n%RecordSize != 0 {
			return bins, fmt.Errorf("%w after bin %d", ErrTruncated, r.bins)
		}
		return bins, io.EOF
	default:
		return bins, err
	}
}

// Bins returns the number of bins decoded so far.
func (r *Reader) Bins() int64 { return r.bins }

// Writer encodes bins to an underlying io.Writer. It implements
// rednoise.Sink. Call Flush when done.
type Writer struct {
	w    *bufio.Writer
	buf  []byte
	bins int64
}

// NewWriter returns a buffered Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, 1<<16)}
}

// Write encodes src as float32 pairs. Values are rounded to float32.
func (w *Writer) Write(src []complex128) (int, error) {
	need := len(src) * RecordSize
	if cap(w.buf) < need {
		w.buf = make([]byte, need)
	}
	buf := w.buf[:need]
	for i, c := range src {
		rec := buf[i*RecordSize:]
		binary.LittleEndian.PutUint32(rec[0:4], math.Float32bits(float32(real(c))))
		binary.LittleEndian.PutUint32(rec[4:8], math.Float32bits(float32(imag(c))))
	}
	n, err := w.w.Write(buf)
	bins := n / RecordSize
	w.bins += int64(bins)
	return bins, err
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error { return w.w.Flush() }

// Bins returns the number of bins accepted so far.
func (w *Writer) Bins() int64 { return w.bins }

// CountBins returns the number of whole bins stored in the file at path.
func CountBins(path string) (int64, error) {
	st, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if st.Size()%RecordSize != 0 {
		return st.Size() / RecordSize, fmt.Errorf("%w: %s has %d trailing bytes", ErrTruncated, path, st.Size()%RecordSize)
	}
	return st.Size() / RecordSize, nil
}

// ReadAll decodes every bin of r.
func ReadAll(r io.Reader) ([]complex128, error) {
	fr := NewReader(r)
	var out []complex128
	chunk := make([]complex128, 4096)
	for {
		n, err := fr.Read(chunk)
		out = append(out, chunk[:n]...)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
}

// WriteAll encodes bins to w and flushes.
func WriteAll(w io.Writer, bins []complex128) error {
	fw := NewWriter(w)
	if _, err := fw.Write(bins); err != nil {
		return err
	}
	return fw.Flush()
}
