// Package toast implements the lifecycle and scheduling engine for transient
// on-screen notification messages: queuing, displaying, auto-hiding, and
// replacing messages by tag.
//
// The engine owns a small state machine per notification (queued -> open ->
// closed), a global concurrency limiter bounding how many notifications run
// an auto-hide countdown at once, and a tag-based replacement protocol
// guaranteeing at most one open notification per tag. Everything visual is
// delegated to an injected Renderer; everything timed goes through an
// injected Scheduler, so the engine is fully deterministic under test.
//
// # Architecture
//
//   - Notification: one queued or displayed message with immutable options
//     and lifecycle state.
//   - Renderer: mounts, unmounts and animates notifications; forwards user
//     input (click-to-close, hover-to-pause) back into the Manager.
//   - Manager: public entry point (Notify), pre-ready queue, tag replacement,
//     auto-hide slot management, global pause/resume.
//
// # Basic Usage
//
//	manager, err := toast.New(renderer)
//	if err != nil {
//	    // handle error
//	}
//	defer manager.Close()
//
//	manager.SurfaceReady()
//
//	handle := manager.Notify("Saved!",
//	    toast.WithTag("save status"),
//	    toast.WithTitle("Success"),
//	)
//
//	// Later, from anywhere:
//	handle.Close()
//
// Notify never fails: malformed tags and categories silently degrade to
// "absent", and lifecycle calls in the wrong order (closing twice, resuming a
// notification that does not auto-hide) are defined as no-ops.
//
// # Observing the engine
//
// Lifecycle events are published to an in-memory bus so outer transports
// (SSE, websockets, test probes) can watch the engine without the core
// knowing about them:
//
//	sub := manager.Subscribe(ctx)
//	for ev := range sub.C() {
//	    fmt.Println(ev.Type, ev.ID)
//	}
package toast
