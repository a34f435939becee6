package trackkit

import "time"

// Config holds tracker-wide configuration. Component packages own their
// more specific knobs; these are the ones deployments actually turn.
type Config struct {
	// Version stamps every emitted payload.
	Version string `env:"TRACK_VERSION" envDefault:"1.0.0"`

	// StoragePrefix namespaces every tracking key in the store.
	StoragePrefix string `env:"TRACK_STORAGE_PREFIX" envDefault:"fendix_"`

	// SessionTimeout is the idle gap after which a new session begins.
	SessionTimeout time.Duration `env:"TRACK_SESSION_TIMEOUT" envDefault:"30m"`

	// ScrollMilestones are the reported scroll depths in percent.
	ScrollMilestones []int `env:"TRACK_SCROLL_MILESTONES" envDefault:"50,90"`

	// TimeMilestones are the reported time-on-page marks.
	TimeMilestones []time.Duration `env:"TRACK_TIME_MILESTONES" envDefault:"30s,120s"`

	// Debug enables storage and emission traces on the tracker's logger.
	Debug bool `env:"TRACK_DEBUG" envDefault:"false"`
}

// DefaultConfig returns the default tracker configuration.
func DefaultConfig() Config {
	return Config{
		Version:          "1.0.0",
		StoragePrefix:    "fendix_",
		SessionTimeout:   30 * time.Minute,
		ScrollMilestones: []int{50, 90},
		TimeMilestones:   []time.Duration{30 * time.Second, 2 * time.Minute},
	}
}
