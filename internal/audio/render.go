package audio

import (
	"encoding/binary"
	"errors"
	"io"
	"math/rand"
	"time"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/svanbekk/grantmap/internal/dataset"
)

// RenderSweep renders a complete auto-play sweep offline and writes it as
// a 16-bit stereo WAV. The same voices and limiter as live playback feed
// the file, so the export is sample-exact with what a sweep sounds like,
// minus device latency.
func RenderSweep(h *dataset.Histogram, interval time.Duration, out io.WriteSeeker) error {
	b, ok := h.Bounds()
	if !ok {
		return errors.New("dataset has no dated points")
	}

	m := newMixer(0.9)
	rng := rand.New(rand.NewSource(1))
	add := func(freq, gain float64, start int64) {
		m.add(newVoice(freq, gain, start))
	}

	framesPerYear := int64(float64(sampleRate) * interval.Seconds())
	if framesPerYear < 1 {
		framesPerYear = 1
	}
	for y := b.MinYear; y <= b.MaxYear; y++ {
		count := h.Count(y)
		if count == 0 {
			continue
		}
		scheduleBurst(add, rng, y, count, int64(y-b.MinYear)*framesPerYear)
	}

	// Tail covers the last burst's arpeggio plus its decay.
	total := int64(b.MaxYear-b.MinYear+1)*framesPerYear +
		int64(maxNotes*noteSpacingFrames+noteJitterFrames+noteFrames)

	enc := wav.NewEncoder(out, sampleRate, 16, channelCount, 1)
	const chunkFrames = 4096
	raw := make([]byte, chunkFrames*frameSize)
	buf := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: channelCount, SampleRate: sampleRate},
		SourceBitDepth: 16,
	}

	for rendered := int64(0); rendered < total; {
		frames := chunkFrames
		if rem := total - rendered; rem < chunkFrames {
			frames = int(rem)
		}
		n, _ := m.Read(raw[:frames*frameSize])
		frames = n / frameSize

		buf.Data = buf.Data[:0]
		for i := 0; i < frames*channelCount; i++ {
			buf.Data = append(buf.Data, int(int16(binary.LittleEndian.Uint16(raw[i*2:]))))
		}
		if err := enc.Write(buf); err != nil {
			return err
		}
		rendered += int64(frames)
	}

	return enc.Close()
}
