// Package debounce delays a changing value until it has been stable for a
// quiet period.
package debounce

import (
	"sync"
	"time"
)

// Debouncer commits the last value passed to Set once no further Set has
// arrived for the configured delay. The trailing value is never dropped,
// and nothing is committed after Stop returns.
type Debouncer[T any] struct {
	mu      sync.Mutex
	delay   time.Duration
	commit  func(T)
	timer   *time.Timer
	pending T
	armed   bool
	seq     uint64
	stopped bool
}

// New returns a Debouncer that calls commit on its own goroutine.
func New[T any](delay time.Duration, commit func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, commit: commit}
}

// Set records v and restarts the quiet period.
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.pending = v
	d.armed = true
	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(seq) })
}

func (d *Debouncer[T]) fire(seq uint64) {
	d.mu.Lock()
	if d.stopped || !d.armed || seq != d.seq {
		d.mu.Unlock()
		return
	}
	v := d.pending
	d.armed = false
	d.mu.Unlock()

	d.commit(v)
}

// Flush commits a pending value immediately on the calling goroutine.
// It reports whether there was anything to commit.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if d.stopped || !d.armed {
		d.mu.Unlock()
		return false
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	v := d.pending
	d.armed = false
	d.seq++
	d.mu.Unlock()

	d.commit(v)
	return true
}

// Pending reports whether a value is waiting for its quiet period.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.armed
}

// Stop discards any pending value. Later calls to Set are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.armed = false
	if d.timer != nil {
		d.timer.Stop()
	}
}
