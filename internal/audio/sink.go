package audio

import (
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Sink owns the audio output graph: one oto context driving one player
// that pulls from the mixer. Construction never touches the device;
// Init is lazy and idempotent, and a failed Init leaves the sink silent
// forever without affecting anything else.
type Sink struct {
	mu      sync.Mutex
	mix     *mixer
	ctx     *oto.Context
	player  *oto.Player
	ready   chan struct{}
	initErr error
	started bool
}

// NewSink creates an uninitialized sink with the given master gain.
func NewSink(masterGain float64) *Sink {
	return &Sink{mix: newMixer(masterGain)}
}

// Init constructs the oto context on first call; later calls are no-ops.
// An error is remembered and re-returned, never retried with a second
// context: oto contexts are process-wide.
func (s *Sink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started || s.initErr != nil {
		return s.initErr
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		s.initErr = err
		return err
	}
	s.ctx = ctx
	s.ready = ready
	s.started = true
	return nil
}

// Resume attempts to get the output running. Safe to call repeatedly: it
// initializes if needed, waits briefly for the device, and starts the
// player once. Platforms that gate audio behind a user gesture succeed on
// the first Resume issued from a gesture; callers retry on each gesture
// until Running reports true.
func (s *Sink) Resume() {
	if err := s.Init(); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player != nil {
		if !s.player.IsPlaying() {
			s.player.Play()
		}
		return
	}

	select {
	case <-s.ready:
	case <-time.After(50 * time.Millisecond):
		return // device not up yet; next gesture retries
	}

	s.player = s.ctx.NewPlayer(s.mix)
	s.player.Play()
}

// Running reports whether the output device is actively pulling samples.
func (s *Sink) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player != nil && s.player.IsPlaying()
}

// Now returns the scheduling clock in frames, 0 before initialization.
func (s *Sink) Now() int64 {
	return s.mix.now()
}

// Schedule queues a tone. Silent no-op until the sink is running.
func (s *Sink) Schedule(freq, gain float64, startFrame int64) {
	if !s.Running() {
		return
	}
	s.mix.add(newVoice(freq, gain, startFrame))
}

// SetGain adjusts the master gain stage.
func (s *Sink) SetGain(g float64) {
	s.mix.setGain(g)
}

// Close stops the output player. The context itself has no close; it is
// released with the process.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player != nil {
		s.player.Pause()
		s.player = nil
	}
}
