package playback

import "github.com/svanbekk/grantmap/internal/dataset"

// RenderSync turns completed frames into de-duplicated per-year events.
// The caller reports the upper year bound of each frame after it has been
// drawn; the first frame showing a given year emits (year, count) exactly
// once if that year has data. Years with no data are still remembered as
// seen so they are not re-checked every frame.
type RenderSync struct {
	hist     *dataset.Histogram
	emit     func(year, count int)
	lastYear int
	seen     bool
}

// NewRenderSync creates a sync against the given histogram. emit may be
// nil, which reduces the sync to pure bookkeeping.
func NewRenderSync(hist *dataset.Histogram, emit func(year, count int)) *RenderSync {
	return &RenderSync{hist: hist, emit: emit}
}

// FrameRendered records that a frame with the given upper bound reached
// the screen. At most one emission per distinct year between resets.
func (s *RenderSync) FrameRendered(upper int) {
	if s.seen && upper == s.lastYear {
		return
	}
	s.lastYear = upper
	s.seen = true

	count := s.hist.Count(upper)
	if count > 0 && s.emit != nil {
		s.emit(upper, count)
	}
}

// Reset clears the de-duplication state so a new sweep re-triggers every
// year. Called whenever a sweep starts.
func (s *RenderSync) Reset() {
	s.seen = false
}
