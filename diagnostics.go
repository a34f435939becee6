package trackkit

import (
	"context"

	"github.com/fendixhq/trackkit/pkg/forms"
	"github.com/fendixhq/trackkit/pkg/history"
	"github.com/fendixhq/trackkit/pkg/kv"
	"github.com/fendixhq/trackkit/pkg/visitor"
)

// Diagnostics is a read-only snapshot of the tracker's persisted state.
// Fields are nil when the corresponding record is absent or unreadable.
type Diagnostics struct {
	Visitor        *visitor.Visitor
	Session        *visitor.Session
	History        *history.History
	SubmittedForms []string
}

// Diagnostics loads the current stored state for inspection. It is a
// debugging aid, not part of the tracking contract, and never fails.
func (t *Tracker) Diagnostics(ctx context.Context) Diagnostics {
	var d Diagnostics

	var v visitor.Visitor
	if err := kv.GetJSON(ctx, t.store, visitor.VisitorKey, &v); err == nil {
		d.Visitor = &v
	}

	var s visitor.Session
	if err := kv.GetJSON(ctx, t.store, visitor.SessionKey, &s); err == nil {
		d.Session = &s
	}

	var h history.History
	if err := kv.GetJSON(ctx, t.store, history.Key, &h); err == nil {
		d.History = &h
	}

	_ = kv.GetJSON(ctx, t.store, forms.SubmittedKey, &d.SubmittedForms)

	return d
}

// ClearAll wipes every tracking key in the store's namespace. Data outside
// the namespace is untouched.
func (t *Tracker) ClearAll(ctx context.Context) error {
	return t.store.Clear(ctx)
}
