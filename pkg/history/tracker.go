package history

import (
	"context"
	"log/slog"
	"time"

	"github.com/fendixhq/trackkit/pkg/kv"
	"github.com/fendixhq/trackkit/pkg/page"
	"github.com/fendixhq/trackkit/pkg/visitor"
)

// Key is the store key for the global history record.
const Key = "history"

// Tracker appends each pageview to the current session's page list and to
// the capped global history. It is called once per pageview, after
// classification and session resolution.
type Tracker struct {
	store kv.Store
	log   *slog.Logger
}

// Option is a functional option for configuring the Tracker.
type Option func(*Tracker)

// WithLogger sets the logger for storage failures.
func WithLogger(log *slog.Logger) Option {
	return func(t *Tracker) {
		t.log = log
	}
}

// NewTracker creates a tracker persisting through the given store.
func NewTracker(store kv.Store, opts ...Option) *Tracker {
	t := &Tracker{
		store: store,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Record registers the pageview on both lists and returns the updated
// global history.
//
// The session gets the page appended and its pageview counter bumped; the
// global history gets the page prepended, is truncated to MaxEntries, and
// its running total bumped. Revisits are not deduplicated. Both records are
// persisted best-effort.
func (t *Tracker) Record(ctx context.Context, d page.Descriptor, sess *visitor.Session) History {
	sess.Pages = append(sess.Pages, visitor.PageVisit{
		Path:     d.Path,
		Type:     d.Type,
		Category: d.Category,
		Time:     time.Now(),
	})
	sess.Pageviews++
	t.persist(ctx, visitor.SessionKey, sess)

	h := t.load(ctx)
	h.Pages = append([]Entry{{
		Path:       d.Path,
		Type:       d.Type,
		Category:   d.Category,
		Collection: d.Collection,
		Slug:       d.Slug,
	}}, h.Pages...)
	if len(h.Pages) > MaxEntries {
		h.Pages = h.Pages[:MaxEntries]
	}
	h.Total++
	t.persist(ctx, Key, h)

	return h
}

// load returns the stored history, or a zero record when it is absent or
// unreadable.
func (t *Tracker) load(ctx context.Context) History {
	var h History
	if err := kv.GetJSON(ctx, t.store, Key, &h); err != nil {
		return History{}
	}
	return h
}

func (t *Tracker) persist(ctx context.Context, key string, v any) {
	if err := kv.SetJSON(ctx, t.store, key, v); err != nil {
		t.log.DebugContext(ctx, "storage error", "key", key, "error", err)
	}
}
