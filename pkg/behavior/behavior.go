package behavior

import (
	"github.com/fendixhq/trackkit/pkg/history"
	"github.com/fendixhq/trackkit/pkg/visitor"
)

// Stage is the coarse funnel position derived from content exposure and
// engagement volume.
type Stage string

const (
	StageDiscovery     Stage = "discovery"
	StageAwareness     Stage = "awareness"
	StageInterest      Stage = "interest"
	StageConsideration Stage = "consideration"
)

// Config names the categories and collections the analyzer watches.
type Config struct {
	ServiceCategory   string
	ContentCategory   string
	ContactCategory   string
	AboutCategory     string
	ServiceCollection string
	ContentCollection string

	// InterestPageviews is the session pageview count that must be exceeded
	// for the interest stage.
	InterestPageviews int
}

// DefaultConfig returns the stock category and collection names.
func DefaultConfig() Config {
	return Config{
		ServiceCategory:   "service",
		ContentCategory:   "content",
		ContactCategory:   "contact",
		AboutCategory:     "about",
		ServiceCollection: "diensten",
		ContentCollection: "resources",
		InterestPageviews: 3,
	}
}

// Insights is the derived, ephemeral view recomputed on every pageview.
type Insights struct {
	PreviousPage string

	HasSeenServices  bool
	HasSeenResources bool
	HasSeenContact   bool
	HasSeenAbout     bool

	// Unique item slugs seen per collection, in first-seen order.
	ServicesViewed  []string
	ResourcesViewed []string

	JourneyStage Stage
}

// Analyzer derives behavior insights from history and session state.
type Analyzer struct {
	cfg Config
}

// Option is a functional option for configuring the Analyzer.
type Option func(*Analyzer)

// WithConfig replaces the default category and collection names.
func WithConfig(cfg Config) Option {
	return func(a *Analyzer) {
		a.cfg = cfg
	}
}

// NewAnalyzer creates an analyzer with default configuration unless
// overridden by options.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze is a pure function of the given history and session: no state, no
// persistence, identical inputs yield identical insights.
//
// Exposure flags look at the whole cross-session history; the interest
// threshold looks at the current session's pageview count. That blend is
// deliberate and preserved from the original behavior.
func (a *Analyzer) Analyze(h history.History, s visitor.Session) Insights {
	return Insights{
		PreviousPage: s.PreviousPage(),

		HasSeenServices:  a.seenCategory(h, a.cfg.ServiceCategory),
		HasSeenResources: a.seenCategory(h, a.cfg.ContentCategory),
		HasSeenContact:   a.seenExactCategory(h, a.cfg.ContactCategory),
		HasSeenAbout:     a.seenExactCategory(h, a.cfg.AboutCategory),

		ServicesViewed:  uniqueSlugs(h, a.cfg.ServiceCollection),
		ResourcesViewed: uniqueSlugs(h, a.cfg.ContentCollection),

		JourneyStage: a.journeyStage(h, s),
	}
}

// journeyStage is a priority cascade, not independent conditions; the order
// must not be rearranged. Only item-level service exposure counts here, not
// the service list page.
func (a *Analyzer) journeyStage(h history.History, s visitor.Session) Stage {
	seenServices := a.seenExactCategory(h, a.cfg.ServiceCategory)

	switch {
	case a.seenExactCategory(h, a.cfg.ContactCategory):
		return StageConsideration
	case seenServices && s.Pageviews > a.cfg.InterestPageviews:
		return StageInterest
	case seenServices:
		return StageAwareness
	default:
		return StageDiscovery
	}
}

// seenCategory matches the category itself and its "-list" variant.
func (a *Analyzer) seenCategory(h history.History, category string) bool {
	for _, p := range h.Pages {
		if p.Category == category || p.Category == category+"-list" {
			return true
		}
	}
	return false
}

func (a *Analyzer) seenExactCategory(h history.History, category string) bool {
	for _, p := range h.Pages {
		if p.Category == category {
			return true
		}
	}
	return false
}

func uniqueSlugs(h history.History, collection string) []string {
	seen := make(map[string]struct{})
	var slugs []string
	for _, p := range h.Pages {
		if p.Collection != collection || p.Slug == "" {
			continue
		}
		if _, ok := seen[p.Slug]; ok {
			continue
		}
		seen[p.Slug] = struct{}{}
		slugs = append(slugs, p.Slug)
	}
	return slugs
}
