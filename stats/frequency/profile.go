// Package frequency summarizes the power distribution of streamed one-sided
// spectra over frequency.
package frequency

import (
	"math"
	"math/bits"
)

// Band holds power statistics of one octave of bins, [LoBin, HiBin).
type Band struct {
	LoBin, HiBin int64
	LoHz, HiHz   float64
	Bins         int64
	MeanPower    float64
	// Flatness is the geometric over the arithmetic mean of the power
	// (Wiener entropy), 0..1. Exponentially distributed white-noise power
	// gives exp(-EulerGamma), about 0.561.
	Flatness float64
}

// Profile accumulates per-octave power statistics of a spectrum streamed in
// bin order. Bin 0 (DC) is excluded. The zero value is not usable; call
// [NewProfile].
type Profile struct {
	duration float64
	next     int64
	count    []int64
	sum      []float64
	sumLog   []float64
	zeros    []int64
}

// NewProfile returns a Profile for a spectrum whose time series spans
// duration seconds, so that bin i lies at i/duration Hz.
func NewProfile(duration float64) *Profile {
	return &Profile{duration: duration}
}

// Add accumulates the next bins of the spectrum.
func (p *Profile) Add(bins []complex128) {
	for _, c := range bins {
		i := p.next
		p.next++
		if i == 0 {
			continue
		}
		band := bits.Len64(uint64(i)) - 1
		for len(p.count) <= band {
			p.count = append(p.count, 0)
			p.sum = append(p.sum, 0)
			p.sumLog = append(p.sumLog, 0)
			p.zeros = append(p.zeros, 0)
		}
		pow := real(c)*real(c) + imag(c)*imag(c)
		p.count[band]++
		p.sum[band] += pow
		if pow > 0 {
			p.sumLog[band] += math.Log(pow)
		} else {
			p.zeros[band]++
		}
	}
}

// Bins returns the number of bins seen, DC included.
func (p *Profile) Bins() int64 { return p.next }

// Bands returns the statistics of every populated octave, lowest first.
func (p *Profile) Bands() []Band {
	out := make([]Band, 0, len(p.count))
	for b, n := range p.count {
		if n == 0 {
			continue
		}
		lo := int64(1) << b
		hi := lo << 1
		band := Band{
			LoBin:     lo,
			HiBin:     hi,
			LoHz:      float64(lo) / p.duration,
			HiHz:      float64(hi) / p.duration,
			Bins:      n,
			MeanPower: p.sum[b] / float64(n),
		}
		if p.zeros[b] == 0 && band.MeanPower > 0 {
			band.Flatness = math.Exp(p.sumLog[b]/float64(n)) / band.MeanPower
		}
		out = append(out, band)
	}
	return out
}

// Redness returns the mean power of the lowest populated octave divided by
// that of the highest. It is close to 1 for a white spectrum. Octaves with
// fewer than minBins bins are ignored; it returns NaN when fewer than two
// octaves qualify.
func (p *Profile) Redness(minBins int64) float64 {
	var lo, hi float64
	found := 0
	for _, b := range p.Bands() {
		if b.Bins < minBins {
			continue
		}
		if found == 0 {
			lo = b.MeanPower
		}
		hi = b.MeanPower
		found++
	}
	if found < 2 || hi == 0 {
		return math.NaN()
	}
	return lo / hi
}
