package scheduler

import (
	"sort"
	"sync"
	"time"
)

// Fake is a deterministic scheduler driven by the test: time moves only via
// Advance, render opportunities happen only via Paint. No goroutines.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*fakeTimer
	paints []func()
}

type fakeTimer struct {
	deadline time.Time
	seq      int // preserves registration order among equal deadlines
	fn       func()
	stopped  bool
	fired    bool
}

// NewFake creates a fake scheduler with an arbitrary fixed epoch.
func NewFake() *Fake {
	return &Fake{now: time.Unix(0, 0)}
}

// Now returns the virtual clock reading.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) AfterDelay(d time.Duration, fn func()) CancelFunc {
	f.mu.Lock()
	t := &fakeTimer{
		deadline: f.now.Add(d),
		seq:      f.seq,
		fn:       fn,
	}
	f.seq++
	f.timers = append(f.timers, t)
	f.mu.Unlock()

	return func() bool {
		f.mu.Lock()
		defer f.mu.Unlock()
		if t.fired || t.stopped {
			return false
		}
		t.stopped = true
		return true
	}
}

func (f *Fake) AfterPaint(fn func()) {
	f.mu.Lock()
	f.paints = append(f.paints, fn)
	f.mu.Unlock()
}

// Advance moves the virtual clock forward by d, firing due timers in deadline
// order. Callbacks run outside the internal lock so they may schedule or
// cancel freely; timers they register only fire if still within d.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	f.mu.Unlock()

	for {
		t := f.popDue(target)
		if t == nil {
			break
		}
		t.fn()
	}

	f.mu.Lock()
	f.now = target
	f.mu.Unlock()
}

// popDue removes and returns the earliest unstopped timer due at or before
// target, advancing the clock to its deadline; nil when none remain.
func (f *Fake) popDue(target time.Time) *fakeTimer {
	f.mu.Lock()
	defer f.mu.Unlock()

	sort.SliceStable(f.timers, func(i, j int) bool {
		if f.timers[i].deadline.Equal(f.timers[j].deadline) {
			return f.timers[i].seq < f.timers[j].seq
		}
		return f.timers[i].deadline.Before(f.timers[j].deadline)
	})

	for i, t := range f.timers {
		if t.stopped {
			continue
		}
		if t.deadline.After(target) {
			break
		}
		t.fired = true
		f.timers = append(f.timers[:i:i], f.timers[i+1:]...)
		f.now = t.deadline
		return t
	}

	// Drop exhausted timers so the slice doesn't grow unbounded.
	live := f.timers[:0]
	for _, t := range f.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	f.timers = live
	return nil
}

// Paint runs one render opportunity: every callback registered before this
// call runs once; callbacks they register wait for the next Paint.
func (f *Fake) Paint() {
	f.mu.Lock()
	batch := f.paints
	f.paints = nil
	f.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
}

// PaintAll pumps render opportunities until no paint callbacks remain.
func (f *Fake) PaintAll() {
	for {
		f.mu.Lock()
		pending := len(f.paints)
		f.mu.Unlock()
		if pending == 0 {
			return
		}
		f.Paint()
	}
}

// PendingTimers reports how many delay callbacks are armed.
func (f *Fake) PendingTimers() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, t := range f.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}
