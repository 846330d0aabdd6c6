package audio

import (
	"math"
	"testing"
)

func TestFrequencyForYearMonotonic(t *testing.T) {
	prev := 0.0
	for y := 1600; y <= 1800; y++ {
		f := FrequencyForYear(y)
		if f < prev {
			t.Fatalf("frequency decreased at %d: %v < %v", y, f, prev)
		}
		prev = f
	}
}

func TestFrequencyForYearEndpoints(t *testing.T) {
	lo := FrequencyForYear(1600)
	hi := FrequencyForYear(1800)
	if lo >= hi {
		t.Fatalf("expected rising span, got %v .. %v", lo, hi)
	}
	if math.Abs(lo-261.63) > 0.5 {
		t.Fatalf("base pitch should anchor at C4, got %v", lo)
	}
	if hi > midiToFreq(baseMIDI+12*octaveSpan) {
		t.Fatalf("top pitch %v exceeds the two-octave lattice", hi)
	}
}

func TestFrequencyForYearClampsDomain(t *testing.T) {
	if FrequencyForYear(1000) != FrequencyForYear(1600) {
		t.Fatal("years before the domain should clamp to 1600")
	}
	if FrequencyForYear(2026) != FrequencyForYear(1800) {
		t.Fatal("years after the domain should clamp to 1800")
	}
}

func TestMidiToFreqReference(t *testing.T) {
	if f := midiToFreq(69); math.Abs(f-440) > 1e-9 {
		t.Fatalf("A4 = %v, want 440", f)
	}
	if f := midiToFreq(60); math.Abs(f-261.6255653) > 1e-6 {
		t.Fatalf("C4 = %v", f)
	}
}
