package audio

import (
	"math"
	"math/rand"
	"testing"
)

func TestNoteCountBounded(t *testing.T) {
	for _, count := range []int{0, 1, 10, 300, 1000, 1_000_000} {
		n := noteCountFor(count)
		if n < 1 || n > maxNotes {
			t.Fatalf("noteCountFor(%d) = %d, want 1..%d", count, n, maxNotes)
		}
	}
	if noteCountFor(0) != 1 {
		t.Fatal("a zero count still plays a single marker note when asked")
	}
	if noteCountFor(1_000_000) != maxNotes {
		t.Fatal("huge counts should saturate the note cap")
	}
}

func TestLoudnessCapped(t *testing.T) {
	prev := -1.0
	for _, count := range []int{0, 1, 10, 300, 1000, 1_000_000} {
		l := loudnessFor(count)
		if l < 0 || l > loudnessCap {
			t.Fatalf("loudnessFor(%d) = %v, want 0..%v", count, l, loudnessCap)
		}
		if l < prev {
			t.Fatalf("loudness decreased at count %d", count)
		}
		prev = l
	}
	if loudnessFor(300) != loudnessFor(1_000_000) {
		t.Fatal("loudness should saturate past the knee")
	}
}

func TestPerNoteGainSpreadsEnergy(t *testing.T) {
	for _, count := range []int{1, 50, 5000} {
		notes := noteCountFor(count)
		perNote := loudnessFor(count) / math.Sqrt(float64(notes))
		if perNote > loudnessCap {
			t.Fatalf("per-note gain %v exceeds loudness cap for count %d", perNote, count)
		}
	}
}

func TestPlayWithoutSinkIsNoOp(t *testing.T) {
	var b *Burst
	b.Play(1650, 10) // nil receiver

	b = NewBurst(nil, 1)
	b.Play(1650, 10) // nil sink

	b = NewBurst(NewSink(0.9), 1)
	b.Play(1650, 10) // sink constructed but never resumed
}

func TestScheduleBurstShape(t *testing.T) {
	type note struct {
		freq, gain float64
		start      int64
	}
	var notes []note
	add := func(freq, gain float64, start int64) {
		notes = append(notes, note{freq, gain, start})
	}

	const at = int64(100_000)
	scheduleBurst(add, rand.New(rand.NewSource(7)), 1700, 42, at)

	want := noteCountFor(42)
	if len(notes) != want {
		t.Fatalf("scheduled %d notes, want %d", len(notes), want)
	}
	base := FrequencyForYear(1700)
	for i, n := range notes {
		if n.start < at {
			t.Fatalf("note %d scheduled before the burst start", i)
		}
		if n.freq < base || n.freq > base*2+1e-9 {
			t.Fatalf("note %d detuned outside one octave: %v (base %v)", i, n.freq, base)
		}
		if n.gain <= 0 || n.gain > loudnessCap {
			t.Fatalf("note %d gain out of range: %v", i, n.gain)
		}
	}
}
