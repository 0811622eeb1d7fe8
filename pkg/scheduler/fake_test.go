package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toastkit/pkg/scheduler"
)

func TestFakeAfterDelay(t *testing.T) {
	t.Parallel()

	t.Run("fires in deadline order", func(t *testing.T) {
		t.Parallel()
		f := scheduler.NewFake()

		var order []string
		f.AfterDelay(3*time.Second, func() { order = append(order, "c") })
		f.AfterDelay(1*time.Second, func() { order = append(order, "a") })
		f.AfterDelay(2*time.Second, func() { order = append(order, "b") })

		f.Advance(5 * time.Second)
		assert.Equal(t, []string{"a", "b", "c"}, order)
		assert.Zero(t, f.PendingTimers())
	})

	t.Run("equal deadlines keep registration order", func(t *testing.T) {
		t.Parallel()
		f := scheduler.NewFake()

		var order []int
		for i := range 3 {
			f.AfterDelay(time.Second, func() { order = append(order, i) })
		}

		f.Advance(time.Second)
		assert.Equal(t, []int{0, 1, 2}, order)
	})

	t.Run("does not fire before deadline", func(t *testing.T) {
		t.Parallel()
		f := scheduler.NewFake()

		fired := false
		f.AfterDelay(5*time.Second, func() { fired = true })

		f.Advance(4 * time.Second)
		assert.False(t, fired)
		assert.Equal(t, 1, f.PendingTimers())

		f.Advance(time.Second)
		assert.True(t, fired)
	})

	t.Run("cancel prevents firing and is idempotent", func(t *testing.T) {
		t.Parallel()
		f := scheduler.NewFake()

		fired := false
		cancel := f.AfterDelay(time.Second, func() { fired = true })

		require.True(t, cancel())
		assert.False(t, cancel(), "second cancel reports nothing pending")

		f.Advance(2 * time.Second)
		assert.False(t, fired)
	})

	t.Run("cancel after firing reports false", func(t *testing.T) {
		t.Parallel()
		f := scheduler.NewFake()

		cancel := f.AfterDelay(time.Second, func() {})
		f.Advance(time.Second)
		assert.False(t, cancel())
	})

	t.Run("callback may reschedule within the same advance", func(t *testing.T) {
		t.Parallel()
		f := scheduler.NewFake()

		var order []string
		f.AfterDelay(time.Second, func() {
			order = append(order, "first")
			f.AfterDelay(time.Second, func() { order = append(order, "second") })
		})

		f.Advance(2 * time.Second)
		assert.Equal(t, []string{"first", "second"}, order)
	})
}

func TestFakePaint(t *testing.T) {
	t.Parallel()

	t.Run("nested paints wait for the next opportunity", func(t *testing.T) {
		t.Parallel()
		f := scheduler.NewFake()

		var order []string
		f.AfterPaint(func() {
			order = append(order, "outer")
			f.AfterPaint(func() { order = append(order, "inner") })
		})

		f.Paint()
		assert.Equal(t, []string{"outer"}, order)

		f.Paint()
		assert.Equal(t, []string{"outer", "inner"}, order)
	})

	t.Run("PaintAll drains nested registrations", func(t *testing.T) {
		t.Parallel()
		f := scheduler.NewFake()

		n := 0
		f.AfterPaint(func() {
			n++
			f.AfterPaint(func() { n++ })
		})

		f.PaintAll()
		assert.Equal(t, 2, n)
	})
}

func TestRealtimeAfterDelay(t *testing.T) {
	t.Parallel()

	r := scheduler.NewRealtime()

	done := make(chan struct{})
	r.AfterDelay(5*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback never fired")
	}
}

func TestRealtimeCancel(t *testing.T) {
	t.Parallel()

	r := scheduler.NewRealtime()

	cancel := r.AfterDelay(time.Hour, func() { t.Error("cancelled callback fired") })
	assert.True(t, cancel())
	assert.False(t, cancel())
}
