package scheduler

import "time"

// CancelFunc stops a pending callback. It reports whether the callback was
// still pending; false means it already ran or was already cancelled.
// Safe to call multiple times.
type CancelFunc func() bool

// Scheduler defers callbacks to a later point of the same execution context.
type Scheduler interface {
	// AfterDelay runs fn once after d elapses.
	AfterDelay(d time.Duration, fn func()) CancelFunc

	// AfterPaint runs fn at the next render opportunity.
	AfterPaint(fn func())
}
