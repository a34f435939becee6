package forms

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/fendixhq/trackkit/pkg/datalayer"
	"github.com/fendixhq/trackkit/pkg/kv"
	"github.com/fendixhq/trackkit/pkg/page"
)

// SubmittedKey is the store key for the list of form ids the visitor ever
// submitted. The list persists across sessions to back is_first_submit.
const SubmittedKey = "forms_submitted"

// Form identifies one form instance on the page.
type Form struct {
	ID   string
	Name string
}

// Identify resolves a form's id and name through the same fallback chains
// the markup allows: id, then a data-name attribute, then a positional
// placeholder.
func Identify(id, dataName, name string, index int) Form {
	f := Form{ID: id, Name: dataName}
	if f.ID == "" {
		f.ID = dataName
	}
	if f.ID == "" {
		f.ID = fmt.Sprintf("form-%d", index)
	}
	if f.Name == "" {
		f.Name = name
	}
	if f.Name == "" {
		f.Name = fmt.Sprintf("Form %d", index+1)
	}
	return f
}

// Watcher tracks the form funnel on one page: start on first interaction,
// submit with first-ever-submit detection, success on confirmation.
type Watcher struct {
	store   kv.Store
	emitter *datalayer.Emitter
	page    page.Descriptor
	log     *slog.Logger

	mu      sync.Mutex
	started map[string]bool
}

// Option is a functional option for configuring the Watcher.
type Option func(*Watcher)

// WithLogger sets the logger for storage failures.
func WithLogger(log *slog.Logger) Option {
	return func(w *Watcher) {
		w.log = log
	}
}

// NewWatcher creates a form watcher for one page.
func NewWatcher(store kv.Store, emitter *datalayer.Emitter, d page.Descriptor, opts ...Option) *Watcher {
	w := &Watcher{
		store:   store,
		emitter: emitter,
		page:    d,
		log:     slog.Default(),
		started: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start reports the first interaction with a form. Repeated interactions
// with the same form are ignored.
func (w *Watcher) Start(f Form) {
	w.mu.Lock()
	already := w.started[f.ID]
	w.started[f.ID] = true
	w.mu.Unlock()
	if already {
		return
	}

	w.emitter.Emit(datalayer.EventFormStart, map[string]any{
		"form_id":   f.ID,
		"form_name": f.Name,
		"page_path": w.page.Path,
	})
}

// Submit reports a form submission. The first submission of a given form
// id across the visitor's whole stored lifetime is flagged; the submitted
// list is persisted best-effort.
func (w *Watcher) Submit(ctx context.Context, f Form) {
	var submitted []string
	if err := kv.GetJSON(ctx, w.store, SubmittedKey, &submitted); err != nil {
		submitted = nil
	}

	isFirst := !slices.Contains(submitted, f.ID)
	if isFirst {
		submitted = append(submitted, f.ID)
		if err := kv.SetJSON(ctx, w.store, SubmittedKey, submitted); err != nil {
			w.log.DebugContext(ctx, "storage error", "key", SubmittedKey, "error", err)
		}
	}

	w.emitter.Emit(datalayer.EventFormSubmit, map[string]any{
		"form_id":         f.ID,
		"form_name":       f.Name,
		"is_first_submit": isFirst,
		"page_path":       w.page.Path,
		"page_type":       string(w.page.Type),
	})
}

// Success reports a confirmed submission, observed through whatever success
// marker the page surfaces.
func (w *Watcher) Success(f Form) {
	w.emitter.Emit(datalayer.EventFormSuccess, map[string]any{
		"form_id":   f.ID,
		"form_name": f.Name,
		"page_path": w.page.Path,
	})
}
