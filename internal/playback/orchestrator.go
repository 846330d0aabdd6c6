package playback

import (
	"sync"
	"time"

	"github.com/svanbekk/grantmap/internal/audio"
	"github.com/svanbekk/grantmap/internal/dataset"
	"github.com/svanbekk/grantmap/internal/filter"
)

// Callbacks are the collaborator-facing outputs. Any field may be nil.
// They are invoked on the goroutine that caused the change: the UI
// goroutine for manual edits and frame reports, the driver's timer
// goroutine for sweep ticks.
type Callbacks struct {
	OnStatsUpdate      func(visible, total int)
	OnYearDistribution func(years map[int]int)
	OnYearBounds       func(b dataset.Bounds)
	OnRenderedYearTick func(year, count int)
}

// Orchestrator owns the single filter.Range slot and wires the pieces
// together: driver ticks move the range, rendered frames feed the sync,
// sync emissions reach the synthesizer unless muted. Manual range writes
// always cancel an active sweep, so the range has exactly one writer at a
// time.
type Orchestrator struct {
	mu     sync.Mutex
	rng    filter.Range
	epoch  uint64 // bumped on every new writer; stale sweep ticks become inert
	muted  bool
	driver *Driver
	rsync  *RenderSync
	synth  *audio.Burst
	hist   *dataset.Histogram
	soft   int
	cb     Callbacks
}

// NewOrchestrator wires a playback engine over the histogram. synth may
// be nil (silent engine). soft is the soft-band width in years applied
// around driver-published ranges.
func NewOrchestrator(hist *dataset.Histogram, synth *audio.Burst, soft int, cb Callbacks) *Orchestrator {
	o := &Orchestrator{synth: synth, hist: hist, soft: soft, cb: cb}
	o.driver = NewDriver()
	o.rsync = NewRenderSync(hist, o.yearVisible)

	o.rng = filter.NewRange(dataset.DomainMin, dataset.DomainMax, soft)
	if cb.OnYearDistribution != nil {
		cb.OnYearDistribution(hist.Years())
	}
	if cb.OnYearBounds != nil {
		if b, ok := hist.Bounds(); ok {
			cb.OnYearBounds(b)
		}
	}
	o.publishStats()
	return o
}

// Play starts a sweep across the whole span of years present in the data.
// Rejected while a sweep is running or when the dataset has no dated
// points.
func (o *Orchestrator) Play(interval time.Duration) bool {
	b, ok := o.hist.Bounds()
	if !ok {
		return false
	}
	return o.PlayRange(b.MinYear, b.MaxYear, interval)
}

// PlayRange starts a sweep over [startYear, endYear]. The de-duplication
// state resets first so a re-play re-triggers sound for every year.
func (o *Orchestrator) PlayRange(startYear, endYear int, interval time.Duration) bool {
	if o.driver.State() == Running {
		return false
	}
	o.rsync.Reset()

	o.mu.Lock()
	o.epoch++
	epoch := o.epoch
	o.mu.Unlock()

	return o.driver.Start(startYear, endYear, interval, func(lower, upper int) {
		o.applySweepRange(epoch, lower, upper)
	}, nil)
}

// Stop cancels an active sweep. The last applied range stays on screen;
// bumping the epoch makes any tick already in flight inert.
func (o *Orchestrator) Stop() {
	o.driver.Stop()
	o.mu.Lock()
	o.epoch++
	o.mu.Unlock()
}

// State reports the driver's lifecycle state.
func (o *Orchestrator) State() State {
	return o.driver.State()
}

// Done exposes the driver's completion channel for the active sweep.
func (o *Orchestrator) Done() <-chan struct{} {
	return o.driver.Done()
}

// Range returns the current filter range.
func (o *Orchestrator) Range() filter.Range {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rng
}

// SetRange applies a manual range write from the slider. An active sweep
// is cancelled first: direct input always wins over the animator.
func (o *Orchestrator) SetRange(r filter.Range) {
	o.driver.Stop()
	o.mu.Lock()
	o.epoch++
	o.rng = r.Clamp()
	o.mu.Unlock()
	o.publishStats()
}

// applySweepRange is the per-sweep range callback. A tick whose sweep was
// cancelled after the driver dispatched it carries a stale epoch and is
// dropped, so a cancelled timer can never overwrite a newer writer.
func (o *Orchestrator) applySweepRange(epoch uint64, lower, upper int) {
	o.mu.Lock()
	if epoch != o.epoch {
		o.mu.Unlock()
		return
	}
	o.rng = filter.NewRange(lower, upper, o.soft)
	o.mu.Unlock()
	o.publishStats()
}

// FrameRendered reports that a frame showing the given upper bound was
// drawn. This is the only path that can trigger sound. Like the slider
// writes it must come from the UI goroutine; RenderSync itself is not
// locked.
func (o *Orchestrator) FrameRendered(upper int) {
	o.rsync.FrameRendered(upper)
}

// yearVisible is RenderSync's emission callback.
func (o *Orchestrator) yearVisible(year, count int) {
	o.mu.Lock()
	muted := o.muted
	o.mu.Unlock()

	if !muted && o.synth != nil {
		o.synth.Play(year, count)
	}
	if o.cb.OnRenderedYearTick != nil {
		o.cb.OnRenderedYearTick(year, count)
	}
}

// Stats returns the point counts for the current range: points with a
// nonzero filter weight, and the dated total.
func (o *Orchestrator) Stats() (visible, total int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.hist.CountBetween(o.rng.SoftLower, o.rng.SoftUpper), o.hist.Total()
}

// SetMuted toggles the sound trigger without touching sweep state.
func (o *Orchestrator) SetMuted(muted bool) {
	o.mu.Lock()
	o.muted = muted
	o.mu.Unlock()
}

// Muted reports the mute flag.
func (o *Orchestrator) Muted() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.muted
}

func (o *Orchestrator) publishStats() {
	if o.cb.OnStatsUpdate == nil {
		return
	}
	o.mu.Lock()
	visible := o.hist.CountBetween(o.rng.SoftLower, o.rng.SoftUpper)
	o.mu.Unlock()
	o.cb.OnStatsUpdate(visible, o.hist.Total())
}
