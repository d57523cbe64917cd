// Package inf reads and writes the plain-text sidecar files that describe a
// time series and its Fourier transform.
//
// A sidecar is a sequence of "label = value" lines followed by an optional
// free-form notes section. Only the data file name, the number of samples
// and the sampling interval are interpreted; every other line is preserved
// verbatim so a rewritten copy keeps the original metadata.
package inf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	labelName = "Data file name without suffix"
	labelN    = "Number of bins in the time series"
	labelDt   = "Width of each time series bin (sec)"
	notesHead = "Any additional notes:"
)

// ErrMissingField is returned when a required label is absent.
var ErrMissingField = errors.New("inf: missing field")

// Entry is one "label = value" line, or a raw line when Label is empty.
type Entry struct {
	Label string
	Value string
}

// Info is a parsed sidecar.
type Info struct {
	Entries []Entry
	Notes   []string
}

// Parse reads a sidecar from r.
func Parse(r io.Reader) (*Info, error) {
	info := &Info{}
	sc := bufio.NewScanner(r)
	inNotes := false
	for sc.Scan() {
		line := sc.Text()
		if inNotes {
			info.Notes = append(info.Notes, line)
			continue
		}
		if strings.TrimSpace(line) == notesHead {
			inNotes = true
			continue
		}
		label, value, ok := strings.Cut(line, "=")
		if !ok {
			info.Entries = append(info.Entries, Entry{Value: line})
			continue
		}
		info.Entries = append(info.Entries, Entry{
			Label: strings.TrimSpace(label),
			Value: strings.TrimSpace(value),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("inf: read: %w", err)
	}
	return info, nil
}

// ReadFile parses the sidecar at path.
func ReadFile(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	info, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return info, nil
}

// Write formats the sidecar to w.
func (info *Info) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range info.Entries {
		if e.Label == "" {
			fmt.Fprintln(bw, e.Value)
			continue
		}
		fmt.Fprintf(bw, " %-39s=  %s\n", e.Label, e.Value)
	}
	if len(info.Notes) > 0 {
		fmt.Fprintf(bw, " %s\n", notesHead)
		for _, n := range info.Notes {
			fmt.Fprintln(bw, n)
		}
	}
	return bw.Flush()
}

// WriteFile writes the sidecar to path.
func (info *Info) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := info.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (info *Info) lookup(label string) (int, bool) {
	for i, e := range info.Entries {
		if e.Label != "" && strings.HasPrefix(e.Label, label) {
			return i, true
		}
	}
	return -1, false
}

func (info *Info) get(label string) (string, error) {
	i, ok := info.lookup(label)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingField, label)
	}
	return info.Entries[i].Value, nil
}

// set replaces the value of label or appends a new entry.
func (info *Info) set(label, value string) {
	if i, ok := info.lookup(label); ok {
		info.Entries[i].Value = value
		return
	}
	info.Entries = append(info.Entries, Entry{Label: label, Value: value})
}

// Name returns the data file name without suffix. It may include a
// directory.
func (info *Info) Name() (string, error) { return info.get(labelName) }

// SetName sets the data file name without suffix.
func (info *Info) SetName(name string) { info.set(labelName, name) }

// N returns the number of samples of the time series.
func (info *Info) N() (int64, error) {
	v, err := info.get(labelN)
	if err != nil {
		return 0, err
	}
	// Sample counts are sometimes written as floating point.
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("inf: invalid sample count %q", v)
	}
	return int64(f), nil
}

// Dt returns the sampling interval in seconds.
func (info *Info) Dt() (float64, error) {
	v, err := info.get(labelDt)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || !(f > 0) {
		return 0, fmt.Errorf("inf: invalid sampling interval %q", v)
	}
	return f, nil
}

// Duration returns N*dt, the time series length in seconds.
func (info *Info) Duration() (float64, error) {
	n, err := info.N()
	if err != nil {
		return 0, err
	}
	dt, err := info.Dt()
	if err != nil {
		return 0, err
	}
	return float64(n) * dt, nil
}

// New returns a minimal sidecar for a synthetic time series.
func New(name string, n int64, dt float64) *Info {
	info := &Info{}
	info.SetName(name)
	info.set("Telescope used", "None (Artificial Data Set)")
	info.set(labelN, strconv.FormatInt(n, 10))
	info.set(labelDt, strconv.FormatFloat(dt, 'g', 15, 64))
	info.set("Any breaks in the data? (1 yes, 0 no)", "0")
	info.set("Type of observation (EM band)", "Radio")
	return info
}
