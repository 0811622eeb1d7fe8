package toast

import (
	"time"

	"github.com/dmitrymomot/toastkit/pkg/config"
)

// Config holds the engine's process-wide tunables.
type Config struct {
	// AutoHideDuration is the full countdown length for auto-hiding notifications.
	AutoHideDuration time.Duration `env:"TOAST_AUTO_HIDE_DURATION" envDefault:"5s"`

	// AutoHideLimit bounds how many notifications run a countdown at once.
	AutoHideLimit int `env:"TOAST_AUTO_HIDE_LIMIT" envDefault:"3"`

	// RemoveDelay is the post-close pause that lets the exit animation finish
	// before the notification's node is detached.
	RemoveDelay time.Duration `env:"TOAST_REMOVE_DELAY" envDefault:"300ms"`

	// EventBuffer is the per-subscriber buffer of the lifecycle event bus.
	EventBuffer int `env:"TOAST_EVENT_BUFFER" envDefault:"16"`
}

// DefaultConfig returns the engine defaults without touching the environment.
func DefaultConfig() Config {
	return Config{
		AutoHideDuration: 5 * time.Second,
		AutoHideLimit:    3,
		RemoveDelay:      300 * time.Millisecond,
		EventBuffer:      16,
	}
}

// LoadConfig reads the engine configuration from environment variables,
// falling back to defaults for unset values.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) normalized() Config {
	if c.AutoHideDuration <= 0 {
		c.AutoHideDuration = 5 * time.Second
	}
	if c.AutoHideLimit <= 0 {
		c.AutoHideLimit = 3
	}
	if c.RemoveDelay < 0 {
		c.RemoveDelay = 0
	}
	if c.EventBuffer <= 0 {
		c.EventBuffer = 16
	}
	return c
}
