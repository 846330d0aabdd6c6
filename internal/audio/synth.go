package audio

import (
	"math"
	"math/rand"
)

// Arpeggio detune offsets, in semitones above the year's base pitch.
var arpeggio = [...]int{0, 2, 4, 7, 9, 12}

const (
	maxNotes = 16

	loudnessBase  = 0.12
	loudnessScale = 0.45
	loudnessCap   = 0.55
	loudnessKnee  = 300 // count at which loudness growth saturates

	noteSpacingFrames = sampleRate * 14 / 1000 // ~14 ms between notes
	noteJitterFrames  = sampleRate * 6 / 1000  // +/- 6 ms
)

// Burst turns a (year, count) event into a short cluster of tones. The
// note count grows logarithmically with the point count and the total
// loudness is hard-capped, so a year with ten thousand grants is denser
// and a little louder than one with three, never a wall of sound.
type Burst struct {
	sink *Sink
	rng  *rand.Rand
}

// NewBurst creates a synthesizer feeding the given sink. A nil sink makes
// every Play a no-op.
func NewBurst(sink *Sink, seed int64) *Burst {
	return &Burst{sink: sink, rng: rand.New(rand.NewSource(seed))}
}

// Play schedules one burst for a year that just became visible with count
// points. Silent no-op when the sink is absent or not yet running.
func (b *Burst) Play(year, count int) {
	if b == nil || b.sink == nil || !b.sink.Running() {
		return
	}
	if count < 0 {
		count = 0
	}

	scheduleBurst(b.sink.Schedule, b.rng, year, count, b.sink.Now())
}

// scheduleBurst derives the burst shape and queues its notes through add.
// Shared by live playback and offline rendering.
func scheduleBurst(add func(freq, gain float64, start int64), rng *rand.Rand, year, count int, at int64) {
	notes := noteCountFor(count)
	perNote := loudnessFor(count) / math.Sqrt(float64(notes))
	base := FrequencyForYear(year)

	for i := 0; i < notes; i++ {
		freq := base * math.Pow(2, float64(arpeggio[i%len(arpeggio)])/12)
		start := at + int64(i*noteSpacingFrames) + jitter(rng)
		if start < at {
			start = at
		}
		add(freq, perNote, start)
	}
}

func jitter(rng *rand.Rand) int64 {
	return int64(rng.Intn(2*noteJitterFrames+1) - noteJitterFrames)
}

// noteCountFor maps a point count onto 1..16 notes, logarithmically.
func noteCountFor(count int) int {
	n := int(math.Round(2 * math.Log2(float64(count)+1)))
	if n < 1 {
		n = 1
	}
	if n > maxNotes {
		n = maxNotes
	}
	return n
}

// loudnessFor compresses the point count into a bounded total loudness.
func loudnessFor(count int) float64 {
	t := math.Log1p(float64(count)) / math.Log1p(loudnessKnee)
	if t > 1 {
		t = 1
	}
	l := loudnessBase + loudnessScale*t
	if l < 0 {
		l = 0
	}
	if l > loudnessCap {
		l = loudnessCap
	}
	return l
}
