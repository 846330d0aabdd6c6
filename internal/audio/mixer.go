package audio

import (
	"encoding/binary"
	"sync"
)

// mixer is the pull end of the audio graph. The output device reads s16le
// stereo frames from it on its own goroutine; scheduling happens from the
// UI goroutine, so the voice list and clock sit behind a mutex. Chain per
// frame: sum of live voices -> master gain -> limiter -> quantize.
type mixer struct {
	mu     sync.Mutex
	voices []*voice
	pos    int64 // frames rendered so far; the scheduling clock
	gain   float64
	lim    *limiter
}

func newMixer(masterGain float64) *mixer {
	return &mixer{gain: masterGain, lim: newLimiter()}
}

// now returns the current scheduling clock in frames.
func (m *mixer) now() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pos
}

// add schedules a voice. Voices starting in the past still play their
// remaining tail.
func (m *mixer) add(v *voice) {
	m.mu.Lock()
	m.voices = append(m.voices, v)
	m.mu.Unlock()
}

// setGain updates the master gain, clamped to [0, 1].
func (m *mixer) setGain(g float64) {
	if g < 0 {
		g = 0
	}
	if g > 1 {
		g = 1
	}
	m.mu.Lock()
	m.gain = g
	m.mu.Unlock()
}

// Read renders len(p)/frameSize frames of interleaved stereo s16le. It
// never returns an error: an idle mixer renders silence, which keeps the
// device player running and the clock advancing.
func (m *mixer) Read(p []byte) (int, error) {
	frames := len(p) / frameSize
	if frames == 0 {
		return 0, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := 0; i < frames; i++ {
		var sum float64
		for _, v := range m.voices {
			sum += v.sample(m.pos)
		}
		s := m.lim.process(sum * m.gain)

		q := int16(s * 32767)
		off := i * frameSize
		binary.LittleEndian.PutUint16(p[off:], uint16(q))
		binary.LittleEndian.PutUint16(p[off+2:], uint16(q))
		m.pos++
	}

	m.compact()
	return frames * frameSize, nil
}

// compact drops voices that have fully played out. Caller holds mu.
func (m *mixer) compact() {
	live := m.voices[:0]
	for _, v := range m.voices {
		if !v.done(m.pos) {
			live = append(live, v)
		}
	}
	for i := len(live); i < len(m.voices); i++ {
		m.voices[i] = nil
	}
	m.voices = live
}
