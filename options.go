package trackkit

import (
	"log/slog"

	"github.com/fendixhq/trackkit/pkg/behavior"
	"github.com/fendixhq/trackkit/pkg/clicks"
	"github.com/fendixhq/trackkit/pkg/datalayer"
	"github.com/fendixhq/trackkit/pkg/kv"
	"github.com/fendixhq/trackkit/pkg/page"
)

// Option is a functional option for configuring the Tracker.
type Option func(*Tracker)

// WithConfig sets custom tracker configuration.
func WithConfig(cfg Config) Option {
	return func(t *Tracker) {
		t.cfg = cfg
	}
}

// WithStore sets the persistence backend. The tracker namespaces its keys,
// so the store may be shared with other data.
func WithStore(store kv.Store) Option {
	return func(t *Tracker) {
		t.backend = store
	}
}

// WithSink sets the event queue the tracker emits into.
func WithSink(sink datalayer.Sink) Option {
	return func(t *Tracker) {
		t.sink = sink
	}
}

// WithLogger sets the tracker's logger.
func WithLogger(log *slog.Logger) Option {
	return func(t *Tracker) {
		t.log = log
	}
}

// WithSiteConfig replaces the default site structure tables used for
// classification.
func WithSiteConfig(site page.SiteConfig) Option {
	return func(t *Tracker) {
		t.classifier = page.NewClassifier(page.WithSiteConfig(site))
	}
}

// WithBehaviorConfig replaces the default category and collection names
// used for insight derivation.
func WithBehaviorConfig(cfg behavior.Config) Option {
	return func(t *Tracker) {
		t.analyzer = behavior.NewAnalyzer(behavior.WithConfig(cfg))
	}
}

// WithClicksConfig replaces the default click classification markers.
func WithClicksConfig(cfg clicks.Config) Option {
	return func(t *Tracker) {
		t.clickCfg = &cfg
	}
}

// WithVersion overrides the payload version stamp.
func WithVersion(version string) Option {
	return func(t *Tracker) {
		t.cfg.Version = version
	}
}
