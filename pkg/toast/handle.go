package toast

import "github.com/dmitrymomot/toastkit/pkg/statemachine"

// Handle is the caller's grip on a notification. It stays valid for the
// notification's whole life; once the notification is closed every mutating
// call becomes a no-op rather than an error.
type Handle struct {
	m *Manager
	n *Notification
}

// ID returns the notification's opaque identity.
func (h *Handle) ID() string {
	return h.n.id
}

// State returns the notification's current lifecycle state.
func (h *Handle) State() statemachine.State {
	return h.n.State()
}

// Paused reports whether the auto-hide countdown is currently suspended.
func (h *Handle) Paused() bool {
	h.m.mu.Lock()
	defer h.m.mu.Unlock()
	return h.n.paused
}

// Pause suspends the notification's countdown.
func (h *Handle) Pause() {
	h.m.mu.Lock()
	defer h.m.mu.Unlock()
	if h.m.closed {
		return
	}
	h.m.pause(h.n)
}

// Resume restarts the countdown from the full duration. No-op for
// notifications that do not auto-hide.
func (h *Handle) Resume() {
	h.m.mu.Lock()
	defer h.m.mu.Unlock()
	if h.m.closed {
		return
	}
	h.m.resume(h.n)
}

// Close closes the notification. Closing twice, or closing one that never
// opened, is a no-op.
func (h *Handle) Close() {
	h.m.mu.Lock()
	defer h.m.mu.Unlock()
	if h.m.closed {
		return
	}
	h.m.close(h.n)
}
