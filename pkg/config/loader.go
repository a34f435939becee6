package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the given configuration struct from environment
// variables, honoring `env` and `envDefault` field tags. A .env file in
// the working directory is loaded once per process when present; its
// absence is not an error.
//
// Example:
//
//	type TrackerConfig struct {
//		Version        string        `env:"TRACK_VERSION" envDefault:"1.0.0"`
//		SessionTimeout time.Duration `env:"TRACK_SESSION_TIMEOUT" envDefault:"30m"`
//	}
//
//	var cfg TrackerConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the tracker cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
