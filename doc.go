// Package toastkit manages transient on-screen notification messages
// ("toasts"): queuing, displaying, auto-hiding, and replacing messages by tag.
//
// The root package re-exports the core engine from pkg/toast for convenient
// single-import use. The engine itself is renderer-agnostic: all visual work
// goes through an injected Renderer, all timing through an injectable
// Scheduler, so the lifecycle logic is fully deterministic under test.
//
// Key Features:
//
//   - Per-notification lifecycle state machine (queued -> open -> closed)
//   - Auto-hide countdowns bounded by a global concurrency limit
//   - Tag-based replacement: one open notification per tag, replaced in place
//   - FIFO buffering of notifications created before the surface is ready
//   - Lifecycle event bus for outer transports (SSE, websockets, probes)
//
// Basic Usage:
//
//	manager, err := toastkit.New(renderer)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer manager.Close()
//
//	manager.SurfaceReady()
//
//	handle := manager.Notify("Profile saved",
//		toastkit.WithTitle("Success"),
//		toastkit.WithTag("profile status"),
//	)
//
//	// Close early, e.g. on navigation:
//	handle.Close()
//
// Subpackages expose the individual building blocks: pkg/toast (engine),
// pkg/scheduler (deterministic timing), pkg/events (lifecycle bus),
// pkg/sanitizer (label normalisation), pkg/statemachine, pkg/logger and
// pkg/config.
package toastkit
