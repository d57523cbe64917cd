package rednoise

import (
	"errors"
	"io"
)

// Source is a sequential source of spectrum bins with io.Reader semantics:
// Read fills up to len(dst) bins and returns io.EOF once exhausted.
type Source interface {
	Read(dst []complex128) (int, error)
}

// Sink is a sequential consumer of normalized bins with io.Writer
// semantics.
type Sink interface {
	Write(src []complex128) (int, error)
}

// SliceSource adapts an in-memory spectrum as a [Source].
type SliceSource struct {
	bins []complex128
	pos  int
}

// NewSliceSource returns a Source reading bins in order. bins is not copied.
func NewSliceSource(bins []complex128) *SliceSource {
	return &SliceSource{bins: bins}
}

// Read implements [Source].
func (s *SliceSource) Read(dst []complex128) (int, error) {
	if s.pos >= len(s.bins) {
		return 0, io.EOF
	}
	n := copy(dst, s.bins[s.pos:])
	s.pos += n
	return n, nil
}

// Len returns the number of bins not yet read.
func (s *SliceSource) Len() int { return len(s.bins) - s.pos }

// SliceSink collects normalized bins in memory.
type SliceSink struct {
	Bins []complex128
}

// Write implements [Sink].
func (s *SliceSink) Write(src []complex128) (int, error) {
	s.Bins = append(s.Bins, src...)
	return len(src), nil
}

const maxEmptyReads = 100

// readFull reads until buf is full or the source ends. It returns io.EOF
// only when the source ended before buf was filled, including partial
// reads.
func readFull(src Source, buf []complex128) (int, error) {
	n, empty := 0, 0
	for n < len(buf) {
		nn, err := src.Read(buf[n:])
		n += nn
		if err != nil {
			if n == len(buf) && errors.Is(err, io.EOF) {
				return n, nil
			}
			return n, err
		}
		if nn == 0 {
			empty++
			if empty >= maxEmptyReads {
				return n, io.ErrNoProgress
			}
			continue
		}
		empty = 0
	}
	return n, nil
}

// writeAll writes every bin of buf to dst.
func writeAll(dst Sink, buf []complex128) error {
	if len(buf) == 0 {
		return nil
	}
	n, err := dst.Write(buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return io.ErrShortWrite
	}
	return nil
}
