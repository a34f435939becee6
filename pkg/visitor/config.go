package visitor

import "time"

// Config holds visitor/session configuration.
type Config struct {
	// SessionTimeout is the idle gap after which a new session begins.
	SessionTimeout time.Duration `env:"TRACK_SESSION_TIMEOUT" envDefault:"30m"`
}

// DefaultConfig returns the default visitor/session configuration.
func DefaultConfig() Config {
	return Config{
		SessionTimeout: 30 * time.Minute,
	}
}
