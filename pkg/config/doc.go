// Package config loads configuration structs from environment variables.
//
// Values are parsed with caarlos0/env field tags; a .env file is loaded once
// per process before the first parse, if present.
//
//	type EngineConfig struct {
//	    AutoHideDuration time.Duration `env:"TOAST_AUTO_HIDE_DURATION" envDefault:"5s"`
//	    AutoHideLimit    int           `env:"TOAST_AUTO_HIDE_LIMIT" envDefault:"3"`
//	}
//
//	var cfg EngineConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
package config
