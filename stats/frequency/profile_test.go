package frequency

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-rednoise/internal/testutil"
)

const tolerance = 1e-12

func TestProfileOctaveEdges(t *testing.T) {
	p := NewProfile(2)
	p.Add(testutil.ConstantSpectrum(1, 16))

	bands := p.Bands()
	wantCounts := []int64{1, 2, 4, 8}
	if len(bands) != len(wantCounts) {
		t.Fatalf("bands = %d, want %d", len(bands), len(wantCounts))
	}
	for i, b := range bands {
		if b.Bins != wantCounts[i] {
			t.Fatalf("band %d: bins = %d, want %d", i, b.Bins, wantCounts[i])
		}
		if b.LoBin != int64(1)<<i || b.HiBin != int64(2)<<i {
			t.Fatalf("band %d: edges [%d, %d)", i, b.LoBin, b.HiBin)
		}
		if math.Abs(b.LoHz-float64(b.LoBin)/2) > tolerance {
			t.Fatalf("band %d: LoHz = %v", i, b.LoHz)
		}
		if math.Abs(b.MeanPower-1) > tolerance || math.Abs(b.Flatness-1) > tolerance {
			t.Fatalf("band %d: mean=%v flatness=%v", i, b.MeanPower, b.Flatness)
		}
	}
	if p.Bins() != 16 {
		t.Fatalf("Bins = %d, want 16", p.Bins())
	}
}

func TestProfileStreamingMatchesSingleAdd(t *testing.T) {
	in := testutil.RedSpectrum(3, 5000, 1, 100, 1)

	whole := NewProfile(10)
	whole.Add(in)

	chunked := NewProfile(10)
	for i := 0; i < len(in); i += 37 {
		chunked.Add(in[i:min(i+37, len(in))])
	}

	a, b := whole.Bands(), chunked.Bands()
	if len(a) != len(b) {
		t.Fatalf("band count %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Bins != b[i].Bins || math.Abs(a[i].MeanPower-b[i].MeanPower) > 1e-9*a[i].MeanPower {
			t.Fatalf("band %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestProfileWhiteFlatness(t *testing.T) {
	p := NewProfile(1)
	p.Add(testutil.WhiteSpectrum(8, 2, 1<<16))

	eulerGamma := 0.5772156649015329
	last := p.Bands()[len(p.Bands())-1]
	if math.Abs(last.Flatness-math.Exp(-eulerGamma)) > 0.02 {
		t.Fatalf("flatness = %v, want ~%v", last.Flatness, math.Exp(-eulerGamma))
	}
	if r := p.Redness(256); math.Abs(r-1) > 0.3 {
		t.Fatalf("redness = %v, want ~1", r)
	}
}

func TestProfileRedness(t *testing.T) {
	p := NewProfile(1)
	p.Add(testutil.RedSpectrum(8, 1<<14, 1, 1e4, 1))
	if r := p.Redness(16); r < 10 {
		t.Fatalf("redness = %v, want >> 1", r)
	}
	if !math.IsNaN(NewProfile(1).Redness(1)) {
		t.Fatal("empty profile redness should be NaN")
	}
}

func TestProfileZeroPowerFlatness(t *testing.T) {
	p := NewProfile(1)
	p.Add([]complex128{5, 0, 1, 1})
	bands := p.Bands()
	if bands[0].Flatness != 0 {
		t.Fatalf("flatness with zero bin = %v, want 0", bands[0].Flatness)
	}
}
