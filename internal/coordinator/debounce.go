package coordinator

import (
	"sync"
	"time"
)

// Debouncer collapses a rapid burst of calls into the last one: each
// Schedule cancels the previous pending timer, so only the call that
// survives the quiet window fires. A superseded timer is stopped, not
// merely ignored.
type Debouncer struct {
	mu    sync.Mutex
	wait  time.Duration
	timer *time.Timer
}

func NewDebouncer(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait}
}

// Schedule arms fn to run after the quiet window, replacing any pending
// invocation.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, fn)
}

// Cancel drops any pending invocation without firing it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
