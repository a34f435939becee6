package datalayer

import (
	"log/slog"
	"maps"
	"time"
)

// Config holds emitter configuration.
type Config struct {
	// Version stamps every payload so downstream consumers can tell which
	// tracker revision produced an event.
	Version string `env:"TRACK_VERSION" envDefault:"1.0.0"`
}

// DefaultConfig returns the default emitter configuration.
func DefaultConfig() Config {
	return Config{Version: "1.0.0"}
}

// Emitter stamps payloads and pushes them into the sink. Every payload
// gains the event name, an ISO-8601 timestamp and the tracker version.
type Emitter struct {
	sink Sink
	cfg  Config
	log  *slog.Logger
}

// Option is a functional option for configuring the Emitter.
type Option func(*Emitter)

// WithConfig sets custom configuration.
func WithConfig(cfg Config) Option {
	return func(e *Emitter) {
		e.cfg = cfg
	}
}

// WithVersion sets the version stamp.
func WithVersion(version string) Option {
	return func(e *Emitter) {
		e.cfg.Version = version
	}
}

// WithLogger sets the logger used for debug traces of emitted events.
func WithLogger(log *slog.Logger) Option {
	return func(e *Emitter) {
		e.log = log
	}
}

// NewEmitter creates an emitter pushing into the given sink.
func NewEmitter(sink Sink, opts ...Option) *Emitter {
	e := &Emitter{
		sink: sink,
		cfg:  DefaultConfig(),
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Emit stamps the payload and pushes it. The caller's map is not mutated.
func (e *Emitter) Emit(event string, payload map[string]any) {
	stamped := make(map[string]any, len(payload)+3)
	maps.Copy(stamped, payload)
	stamped["event"] = event
	stamped["_timestamp"] = time.Now().Format(time.RFC3339)
	stamped["_version"] = e.cfg.Version

	e.sink.Push(event, stamped)
	e.log.Debug("event emitted", "event", event)
}
