package toastkit

import (
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// Core engine types, re-exported for single-import use.
type (
	Manager       = toast.Manager
	ManagerOption = toast.ManagerOption
	Handle        = toast.Handle
	Notification  = toast.Notification
	NotifyOption  = toast.NotifyOption
	Options       = toast.Options
	Renderer      = toast.Renderer
	NoopRenderer  = toast.NoopRenderer
	MountOptions  = toast.MountOptions
	Box           = toast.Box
	Config        = toast.Config
	Event         = toast.Event
	EventType     = toast.EventType
)

// Lifecycle states.
const (
	StateQueued = toast.StateQueued
	StateOpen   = toast.StateOpen
	StateClosed = toast.StateClosed
)

// New creates a notification manager rendering through the given Renderer.
func New(renderer Renderer, opts ...ManagerOption) (*Manager, error) {
	return toast.New(renderer, opts...)
}

// MustNew creates a notification manager and panics on construction failure.
func MustNew(renderer Renderer, opts ...ManagerOption) *Manager {
	return toast.MustNew(renderer, opts...)
}

// LoadConfig reads the engine configuration from environment variables.
func LoadConfig() (Config, error) {
	return toast.LoadConfig()
}

// Manager construction options.
var (
	WithLogger    = toast.WithLogger
	WithScheduler = toast.WithScheduler
	WithConfig    = toast.WithConfig
)

// Per-notification options.
var (
	WithAutoHide = toast.WithAutoHide
	WithTag      = toast.WithTag
	WithTitle    = toast.WithTitle
	WithCategory = toast.WithCategory
)
