// Package audio synthesizes the per-year sound bursts and owns the output
// device. Everything here degrades to silence when no audio device is
// available; the rest of the application never notices.
package audio

import "math"

// Pentatonic offsets in semitones. Adjacent years land on consonant
// intervals, so rapid sweeps sound like an arpeggio instead of a cluster.
var pentatonic = [...]int{0, 2, 4, 7, 9}

const (
	yearMin = 1600
	yearMax = 1800

	baseMIDI   = 60 // C4
	octaveSpan = 2  // lattice covers baseMIDI .. baseMIDI+24
)

// FrequencyForYear maps a year onto an ascending pentatonic lattice
// anchored at C4 and spanning two octaves. Monotonic non-decreasing in the
// year: both the octave index and the in-octave degree only grow as the
// normalized year grows.
func FrequencyForYear(year int) float64 {
	if year < yearMin {
		year = yearMin
	}
	if year > yearMax {
		year = yearMax
	}
	t := float64(year-yearMin) / float64(yearMax-yearMin)

	degrees := octaveSpan * len(pentatonic)
	d := int(t * float64(degrees))
	if d >= degrees {
		d = degrees - 1
	}
	midi := baseMIDI + 12*(d/len(pentatonic)) + pentatonic[d%len(pentatonic)]
	return midiToFreq(float64(midi))
}

// midiToFreq is the standard equal-tempered conversion, A4 = 440 Hz.
func midiToFreq(midi float64) float64 {
	return 440 * math.Pow(2, (midi-69)/12)
}
