package audio

import "math"

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 2 // 16-bit = 2 bytes
	frameSize    = channelCount * bitDepth

	attackFrames  = sampleRate * 2 / 1000   // 2 ms linear attack
	releaseFrames = sampleRate * 12 / 1000  // 12 ms linear release
	noteFrames    = sampleRate * 180 / 1000 // total note length
	decayPerFrame = 0.99962                 // exponential decay, ~60 ms time constant
)

// voice is a single scheduled sine tone with a linear attack, exponential
// decay and linear release. Sample positions are absolute mixer frames so
// voices can be scheduled ahead of the playback clock.
type voice struct {
	freq  float64
	gain  float64
	start int64

	phase float64
	decay float64
}

func newVoice(freq, gain float64, startFrame int64) *voice {
	return &voice{freq: freq, gain: gain, start: startFrame, decay: 1}
}

// done reports whether the voice has fully played out at frame.
func (v *voice) done(frame int64) bool {
	return frame >= v.start+noteFrames
}

// sample returns the voice's contribution at the given absolute frame.
// Frames before the start are silent; the oscillator phase only advances
// once the voice is live, keeping attacks click free.
func (v *voice) sample(frame int64) float64 {
	n := frame - v.start
	if n < 0 || n >= noteFrames {
		return 0
	}

	env := v.decay
	v.decay *= decayPerFrame
	if n < attackFrames {
		env *= float64(n) / float64(attackFrames)
	}
	if rem := noteFrames - n; rem < releaseFrames {
		env *= float64(rem) / float64(releaseFrames)
	}

	s := math.Sin(v.phase) * env * v.gain
	v.phase += 2 * math.Pi * v.freq / sampleRate
	if v.phase > 2*math.Pi {
		v.phase -= 2 * math.Pi
	}
	return s
}
