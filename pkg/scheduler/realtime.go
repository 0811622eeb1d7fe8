package scheduler

import (
	"sync"
	"time"
)

// defaultPaintInterval approximates one display frame at 60Hz.
const defaultPaintInterval = 16 * time.Millisecond

// Realtime schedules callbacks on the system clock.
// All methods are safe for concurrent use.
type Realtime struct {
	paintInterval time.Duration
}

// RealtimeOption configures a Realtime scheduler.
type RealtimeOption func(*Realtime)

// WithPaintInterval overrides the render-opportunity interval.
// Non-positive values are ignored.
func WithPaintInterval(d time.Duration) RealtimeOption {
	return func(r *Realtime) {
		if d > 0 {
			r.paintInterval = d
		}
	}
}

// NewRealtime creates a scheduler backed by the system clock.
func NewRealtime(opts ...RealtimeOption) *Realtime {
	r := &Realtime{
		paintInterval: defaultPaintInterval,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Realtime) AfterDelay(d time.Duration, fn func()) CancelFunc {
	var (
		mu    sync.Mutex
		fired bool
	)

	t := time.AfterFunc(d, func() {
		mu.Lock()
		fired = true
		mu.Unlock()
		fn()
	})

	return func() bool {
		mu.Lock()
		defer mu.Unlock()
		if fired {
			return false
		}
		return t.Stop()
	}
}

func (r *Realtime) AfterPaint(fn func()) {
	time.AfterFunc(r.paintInterval, fn)
}
