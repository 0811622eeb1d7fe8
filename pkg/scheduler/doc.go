// Package scheduler abstracts deferred execution behind a small interface so
// timing-dependent logic can run against a real clock in production and a
// manually driven clock in tests.
//
// Two suspension points are modelled:
//
//   - AfterDelay defers a callback by a fixed duration (countdowns, removal
//     delays). The returned CancelFunc stops a pending callback; cancelling
//     an already-fired callback is a no-op.
//
//   - AfterPaint defers a callback to the next render opportunity. Nesting
//     AfterPaint calls spreads work across consecutive render opportunities,
//     which is how enter transitions are made observable.
//
// Realtime implements the interface on the system clock. Fake implements it
// on a virtual clock advanced explicitly by the test:
//
//	fake := scheduler.NewFake()
//	fake.AfterDelay(5*time.Second, fn)
//	fake.Advance(5 * time.Second) // fn runs here, deterministically
package scheduler
