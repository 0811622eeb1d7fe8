package toast_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dmitrymomot/toastkit/pkg/scheduler"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// engineModel drives a manager through a random operation sequence and checks
// engine invariants after every step.
type engineModel struct {
	m       *toast.Manager
	fake    *scheduler.Fake
	handles []*toast.Handle
	tags    []string // tag used at creation, parallel to handles
	limit   int
}

func newEngineModel(limit int) *engineModel {
	fake := scheduler.NewFake()
	m := toast.MustNew(toast.NoopRenderer{},
		toast.WithScheduler(fake),
		toast.WithLogger(slog.New(slog.DiscardHandler)),
		toast.WithConfig(toast.Config{AutoHideLimit: limit}),
	)
	m.SurfaceReady()
	return &engineModel{m: m, fake: fake, limit: limit}
}

// tagPool cycles a few values so replacement collisions actually happen;
// empty means untagged.
var tagPool = []string{"", "", "alpha", "beta"}

// apply interprets one operation code against the engine.
func (em *engineModel) apply(op int) {
	switch op % 4 {
	case 0: // notify with auto-hide
		tag := tagPool[op%len(tagPool)]
		em.handles = append(em.handles, em.m.Notify("msg", toast.WithTag(tag)))
		em.tags = append(em.tags, tag)
	case 1: // notify without auto-hide
		tag := tagPool[op%len(tagPool)]
		em.handles = append(em.handles, em.m.Notify("sticky", toast.WithTag(tag), toast.WithAutoHide(false)))
		em.tags = append(em.tags, tag)
	case 2: // close an arbitrary existing notification
		if len(em.handles) > 0 {
			em.handles[op%len(em.handles)].Close()
		}
	case 3: // let some countdowns and removals run out
		em.fake.Advance(time.Duration(op%7) * time.Second)
	}
}

// check verifies the engine invariants after one operation.
func (em *engineModel) check() bool {
	// Slot bound: never more running countdowns than the limit.
	if em.m.RunningCountdowns() > em.limit {
		return false
	}

	// Count consistency: the open counter matches the handles' states.
	// Tag uniqueness: at most one open notification per non-empty tag.
	open := 0
	openPerTag := make(map[string]int)
	for i, h := range em.handles {
		if h.State() != toast.StateOpen {
			continue
		}
		open++
		if tag := em.tags[i]; tag != "" {
			openPerTag[tag]++
			if openPerTag[tag] > 1 {
				return false
			}
		}
	}
	return em.m.OpenCount() == open
}

func TestEngineProperties(t *testing.T) {
	t.Parallel()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("invariants hold under any op sequence", prop.ForAll(
		func(ops []int, limit int) bool {
			em := newEngineModel(limit)
			defer em.m.Close()

			for _, op := range ops {
				em.apply(op)
				if !em.check() {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 63)),
		gen.IntRange(1, 4),
	))

	properties.Property("closing twice equals closing once", prop.ForAll(
		func(extraCloses int) bool {
			em := newEngineModel(3)
			defer em.m.Close()

			h := em.m.Notify("msg", toast.WithAutoHide(false))
			other := em.m.Notify("other", toast.WithAutoHide(false))

			for range extraCloses + 1 {
				h.Close()
			}

			return h.State() == toast.StateClosed &&
				other.State() == toast.StateOpen &&
				em.m.OpenCount() == 1
		},
		gen.IntRange(0, 5),
	))

	properties.TestingRun(t)
}
