package toast

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/toastkit/pkg/sanitizer"
	"github.com/dmitrymomot/toastkit/pkg/scheduler"
	"github.com/dmitrymomot/toastkit/pkg/statemachine"
)

// Lifecycle states of a notification.
const (
	StateQueued = statemachine.StringState("queued")
	StateOpen   = statemachine.StringState("open")
	StateClosed = statemachine.StringState("closed")
)

// Lifecycle events.
const (
	eventStart = statemachine.StringEvent("start")
	eventClose = statemachine.StringEvent("close")
)

// newLifecycle builds the one-way queued -> open -> closed machine.
// The absence of any transition back into open structurally guarantees a
// notification never re-opens.
func newLifecycle() *statemachine.Machine {
	return statemachine.MustNew(StateQueued,
		statemachine.WithTransition(StateQueued, StateOpen, eventStart),
		statemachine.WithTransition(StateOpen, StateClosed, eventClose),
	)
}

// Options is a notification's immutable configuration.
type Options struct {
	// AutoHide makes the notification close itself after the countdown.
	AutoHide bool

	// Tag limits concurrent open notifications to one per tag; a new
	// notification with the same tag replaces the old one in place.
	// Sanitized at creation; a tag that sanitizes to empty is dropped.
	Tag string

	// Title is an optional heading.
	Title string

	// Category is an optional classification label, sanitized like Tag.
	Category string
}

// NotifyOption customizes a single notification.
type NotifyOption func(*Options)

// WithAutoHide toggles the auto-hide countdown. Defaults to true.
func WithAutoHide(autoHide bool) NotifyOption {
	return func(o *Options) { o.AutoHide = autoHide }
}

// WithTag sets the replacement tag.
func WithTag(tag string) NotifyOption {
	return func(o *Options) { o.Tag = tag }
}

// WithTitle sets the heading.
func WithTitle(title string) NotifyOption {
	return func(o *Options) { o.Title = title }
}

// WithCategory sets the classification label.
func WithCategory(category string) NotifyOption {
	return func(o *Options) { o.Category = category }
}

// cleanLabel normalises free-text classification labels into safe identifiers.
var cleanLabel = sanitizer.Compose(
	sanitizer.Trim,
	sanitizer.Identifier,
)

// Notification is one queued or displayed message. The Manager owns its
// lifecycle; the Renderer correlates its visual node by ID.
type Notification struct {
	id      string
	content any
	opts    Options

	sm *statemachine.Machine

	// paused tracks whether the countdown is suspended; a notification is
	// born paused and only runs while holding an auto-hide slot.
	paused bool

	// autoHide mirrors opts.AutoHide but is cleared at close time so a
	// half-closed notification never occupies a countdown slot.
	autoHide bool

	cancelHide   scheduler.CancelFunc
	cancelRemove scheduler.CancelFunc
}

func newNotification(content any, opts ...NotifyOption) *Notification {
	o := Options{AutoHide: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.Tag = cleanLabel(o.Tag)
	o.Category = cleanLabel(o.Category)

	return &Notification{
		id:       uuid.New().String(),
		content:  content,
		opts:     o,
		sm:       newLifecycle(),
		paused:   true,
		autoHide: o.AutoHide,
	}
}

// ID returns the notification's opaque identity.
func (n *Notification) ID() string {
	return n.id
}

// Content returns the message payload, opaque to the engine.
func (n *Notification) Content() any {
	return n.content
}

// Options returns the notification's immutable configuration.
func (n *Notification) Options() Options {
	return n.opts
}

// State returns the current lifecycle state.
func (n *Notification) State() statemachine.State {
	return n.sm.Current()
}

// open reports whether the notification is currently displayed.
func (n *Notification) open() bool {
	return n.sm.Current() == StateOpen
}

// eligible reports whether the notification competes for an auto-hide slot.
func (n *Notification) eligible() bool {
	return n.autoHide && n.open()
}
