// Package playback coordinates the year sweep: a timer-driven range
// animator, a frame-ordered sound trigger, and the orchestrator wiring
// them to the filter and the synthesizer.
package playback

import (
	"sync"
	"time"
)

// State is the sweep lifecycle. The Driver is its only writer.
type State int

const (
	Idle State = iota
	Running
	Finished
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "idle"
	}
}

// Driver advances the visible upper year bound on a fixed wall-clock
// cadence, publishing a left-anchored range on every tick. One owned
// timer at a time; a generation counter makes a cancelled timer inert
// even if its callback is already in flight. Callbacks are bound per
// Start, so a consumer can tell which sweep an update belongs to.
type Driver struct {
	mu       sync.Mutex
	state    State
	start    int
	end      int
	current  int
	interval time.Duration
	timer    *time.Timer
	gen      uint64

	onRange  func(lower, upper int)
	onFinish func()
	done     chan struct{}
}

// NewDriver creates an idle driver.
func NewDriver() *Driver {
	return &Driver{done: make(chan struct{})}
}

// Start begins a sweep from startYear to endYear at one year per
// interval. Rejected (returns false) while a sweep is already running;
// from Idle or Finished it re-arms. onRange receives every published
// range and onFinish fires once at the end year; either may be nil, both
// run off the driver's lock on the goroutine that triggered the
// transition. The first range {startYear, startYear} publishes
// immediately. startYear >= endYear degenerates to an instant finish.
func (d *Driver) Start(startYear, endYear int, interval time.Duration, onRange func(lower, upper int), onFinish func()) bool {
	if interval <= 0 {
		interval = 55 * time.Millisecond
	}

	d.mu.Lock()
	if d.state == Running {
		d.mu.Unlock()
		return false
	}
	d.gen++
	gen := d.gen
	d.state = Running
	d.start = startYear
	d.end = endYear
	d.current = startYear
	d.interval = interval
	d.onRange = onRange
	d.onFinish = onFinish
	d.done = make(chan struct{})

	finished := startYear >= endYear
	if finished {
		d.state = Finished
	}
	done := d.done
	d.mu.Unlock()

	// Publish before arming the timer so no tick can overtake the
	// initial range.
	if onRange != nil {
		onRange(startYear, startYear)
	}
	if finished {
		if onFinish != nil {
			onFinish()
		}
		// Closed after the callbacks so Done() observers see a
		// fully settled sweep.
		close(done)
		return true
	}
	d.arm(gen)
	return true
}

// arm schedules the next tick unless the sweep was cancelled meanwhile.
func (d *Driver) arm(gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen || d.state != Running {
		return
	}
	d.timer = time.AfterFunc(d.interval, func() { d.tick(gen) })
}

func (d *Driver) tick(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.state != Running {
		d.mu.Unlock()
		return
	}
	d.current++
	if d.current > d.end {
		d.current = d.end
	}
	lower, upper := d.start, d.current

	finished := d.current == d.end
	if finished {
		d.state = Finished
	}
	d.timer = nil
	done := d.done
	onRange, onFinish := d.onRange, d.onFinish
	d.mu.Unlock()

	if onRange != nil {
		onRange(lower, upper)
	}
	if finished {
		if onFinish != nil {
			onFinish()
		}
		close(done)
		return
	}
	d.arm(gen)
}

// Stop cancels any pending tick and returns to Idle. Idempotent and legal
// in every state. The last published range stays as-is: stopping never
// snaps the view back.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.state == Running {
		close(d.done)
	}
	d.state = Idle
}

// State returns the current lifecycle state.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Current returns the upper bound the driver has advanced to.
func (d *Driver) Current() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// Done returns a channel that closes when the active sweep finishes or is
// stopped. Each Start installs a fresh channel.
func (d *Driver) Done() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.done
}
