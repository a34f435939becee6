package trackkit

import (
	"context"
	"log/slog"
	"time"

	"github.com/fendixhq/trackkit/pkg/behavior"
	"github.com/fendixhq/trackkit/pkg/clicks"
	"github.com/fendixhq/trackkit/pkg/datalayer"
	"github.com/fendixhq/trackkit/pkg/engagement"
	"github.com/fendixhq/trackkit/pkg/forms"
	"github.com/fendixhq/trackkit/pkg/history"
	"github.com/fendixhq/trackkit/pkg/kv"
	"github.com/fendixhq/trackkit/pkg/page"
	"github.com/fendixhq/trackkit/pkg/scroll"
	"github.com/fendixhq/trackkit/pkg/visitor"
)

// Tracker runs the pageview pipeline: classify, resolve visitor and
// session, record history, derive insights, emit. One Tracker serves one
// visitor's store; create it once and call Page per pageview.
type Tracker struct {
	cfg Config
	log *slog.Logger

	backend kv.Store
	store   *kv.Namespaced
	sink    datalayer.Sink
	emitter *datalayer.Emitter

	classifier *page.Classifier
	visitors   *visitor.Manager
	histories  *history.Tracker
	analyzer   *behavior.Analyzer
	clicks     *clicks.Classifier
	clickCfg   *clicks.Config
}

// New creates a tracker. Without options it runs on an in-memory store and
// a buffering memory sink, which is what tests and dry runs want; real
// deployments inject their own store and sink.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		cfg: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.log == nil {
		t.log = slog.Default()
	}
	if t.backend == nil {
		t.backend = kv.NewMemoryStore()
	}
	if t.sink == nil {
		t.sink = datalayer.NewMemorySink()
	}
	if t.classifier == nil {
		t.classifier = page.NewClassifier()
	}
	if t.analyzer == nil {
		t.analyzer = behavior.NewAnalyzer()
	}

	t.store = kv.Namespace(t.backend, t.cfg.StoragePrefix)
	t.emitter = datalayer.NewEmitter(t.sink,
		datalayer.WithVersion(t.cfg.Version),
		datalayer.WithLogger(t.log),
	)
	t.visitors = visitor.NewManager(t.store,
		visitor.WithSessionTimeout(t.cfg.SessionTimeout),
		visitor.WithLogger(t.log),
	)
	t.histories = history.NewTracker(t.store, history.WithLogger(t.log))
	if t.clickCfg != nil {
		t.clicks = clicks.NewClassifier(t.emitter, clicks.WithConfig(*t.clickCfg))
	} else {
		t.clicks = clicks.NewClassifier(t.emitter)
	}

	return t
}

// Pageview is the per-page tracking handle returned by Page. It carries
// the resolved state for the pageview plus the interaction trackers wired
// to it.
type Pageview struct {
	Page     page.Descriptor
	Visitor  visitor.Visitor
	Session  visitor.Session
	History  history.History
	Insights behavior.Insights

	tracker    *Tracker
	scroll     *scroll.Tracker
	engagement *engagement.Watcher
	forms      *forms.Watcher
}

// Page runs the full pipeline for one pageview and emits the page_view
// event. It never fails: unreadable state degrades to fresh records and
// the event is emitted with whatever could be derived.
func (t *Tracker) Page(ctx context.Context, pc page.Context) *Pageview {
	d := t.classifier.Classify(pc)
	v, s := t.visitors.Ensure(ctx)
	h := t.histories.Record(ctx, d, s)
	ins := t.analyzer.Analyze(h, *s)

	t.emitter.Emit(datalayer.EventPageView, pageviewPayload(d, v, *s, ins))

	return &Pageview{
		Page:     d,
		Visitor:  v,
		Session:  *s,
		History:  h,
		Insights: ins,

		tracker:    t,
		scroll:     scroll.NewTracker(t.emitter, d, t.cfg.ScrollMilestones...),
		engagement: engagement.Start(t.emitter, d, t.cfg.TimeMilestones...),
		forms:      forms.NewWatcher(t.store, t.emitter, d, forms.WithLogger(t.log)),
	}
}

func pageviewPayload(d page.Descriptor, v visitor.Visitor, s visitor.Session, ins behavior.Insights) map[string]any {
	return map[string]any{
		"page_path":     d.Path,
		"page_title":    d.Title,
		"page_type":     string(d.Type),
		"page_category": d.Category,

		"cms_collection": d.Collection,
		"cms_slug":       d.Slug,
		"cms_item_name":  d.ItemName,

		"meta_description": d.MetaDescription,
		"og_title":         d.OGTitle,

		"visitor_id":       v.ID,
		"visitor_status":   v.Status(),
		"visitor_count":    v.VisitCount,
		"days_since_first": v.DaysSinceFirst(time.Now()),

		"session_id":        s.ID,
		"session_pageviews": s.Pageviews,

		"previous_page":          ins.PreviousPage,
		"has_seen_services":      ins.HasSeenServices,
		"has_seen_resources":     ins.HasSeenResources,
		"has_seen_contact":       ins.HasSeenContact,
		"journey_stage":          string(ins.JourneyStage),
		"services_viewed_count":  len(ins.ServicesViewed),
		"resources_viewed_count": len(ins.ResourcesViewed),
	}
}

// Scroll feeds one scroll sample to the pageview's milestone tracker.
func (p *Pageview) Scroll(y, viewport, document int) {
	p.scroll.Offset(y, viewport, document)
}

// Click classifies one click on this page.
func (p *Pageview) Click(c clicks.Click) {
	p.tracker.clicks.Handle(p.Page, c)
}

// FormStart reports the first interaction with a form on this page.
func (p *Pageview) FormStart(f forms.Form) {
	p.forms.Start(f)
}

// FormSubmit reports a form submission on this page.
func (p *Pageview) FormSubmit(ctx context.Context, f forms.Form) {
	p.forms.Submit(ctx, f)
}

// FormSuccess reports a confirmed form submission on this page.
func (p *Pageview) FormSuccess(f forms.Form) {
	p.forms.Success(f)
}

// Close releases the pageview's timers. Call it when the visitor leaves
// the page; skipping it only risks late engaged_time events, which are
// acceptable lost work.
func (p *Pageview) Close() error {
	return p.engagement.Close()
}
