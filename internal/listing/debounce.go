package listing

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of suggestion requests. Each call schedules the
// given work after the configured delay and cancels any pending run; results
// are applied only if no newer request was issued in the meantime, so the
// last request issued wins regardless of completion order.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	seq   uint64
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given delay. A zero delay still
// preserves last-writer-wins semantics.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Do schedules compute after the delay and hands its output to apply, unless
// a newer call supersedes this one first. Superseded computations are
// discarded, not interrupted.
func (d *Debouncer) Do(compute func() []string, apply func([]string)) {
	d.mu.Lock()
	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		result := compute()
		d.mu.Lock()
		latest := d.seq == seq
		d.mu.Unlock()
		if latest {
			apply(result)
		}
	})
	d.mu.Unlock()
}

// Cancel discards any pending computation.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
