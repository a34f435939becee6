package forms_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fendixhq/trackkit/pkg/datalayer"
	"github.com/fendixhq/trackkit/pkg/forms"
	"github.com/fendixhq/trackkit/pkg/kv"
	"github.com/fendixhq/trackkit/pkg/page"
)

func setup(store kv.Store) (*forms.Watcher, *datalayer.MemorySink) {
	sink := datalayer.NewMemorySink()
	d := page.Descriptor{Path: "/contact", Type: page.TypeStatic}
	return forms.NewWatcher(store, datalayer.NewEmitter(sink), d), sink
}

func TestIdentify(t *testing.T) {
	tests := []struct {
		name                   string
		id, dataName, formName string
		index                  int
		want                   forms.Form
	}{
		{
			name: "id and data-name",
			id:   "contact-form", dataName: "Contact Form",
			want: forms.Form{ID: "contact-form", Name: "Contact Form"},
		},
		{
			name:     "data-name fills a missing id",
			dataName: "Contact Form",
			want:     forms.Form{ID: "Contact Form", Name: "Contact Form"},
		},
		{
			name:     "name attribute as name fallback",
			id:       "f1",
			formName: "newsletter",
			want:     forms.Form{ID: "f1", Name: "newsletter"},
		},
		{
			name:  "positional fallbacks",
			index: 2,
			want:  forms.Form{ID: "form-2", Name: "Form 3"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, forms.Identify(tt.id, tt.dataName, tt.formName, tt.index))
		})
	}
}

func TestWatcher(t *testing.T) {
	ctx := context.Background()
	form := forms.Form{ID: "contact-form", Name: "Contact Form"}

	t.Run("start fires once per form", func(t *testing.T) {
		w, sink := setup(kv.NewMemoryStore())

		w.Start(form)
		w.Start(form)
		w.Start(forms.Form{ID: "other", Name: "Other"})

		events := sink.Named(datalayer.EventFormStart)
		require.Len(t, events, 2)
		assert.Equal(t, "contact-form", events[0].Payload["form_id"])
		assert.Equal(t, "Contact Form", events[0].Payload["form_name"])
		assert.Equal(t, "/contact", events[0].Payload["page_path"])
	})

	t.Run("first submit is flagged and persisted", func(t *testing.T) {
		store := kv.NewMemoryStore()
		w, sink := setup(store)

		w.Submit(ctx, form)
		w.Submit(ctx, form)

		events := sink.Named(datalayer.EventFormSubmit)
		require.Len(t, events, 2)
		assert.Equal(t, true, events[0].Payload["is_first_submit"])
		assert.Equal(t, false, events[1].Payload["is_first_submit"])
		assert.Equal(t, "static", events[0].Payload["page_type"])

		var submitted []string
		require.NoError(t, kv.GetJSON(ctx, store, forms.SubmittedKey, &submitted))
		assert.Equal(t, []string{"contact-form"}, submitted)
	})

	t.Run("first-submit memory spans watcher instances", func(t *testing.T) {
		store := kv.NewMemoryStore()
		w1, _ := setup(store)
		w1.Submit(ctx, form)

		w2, sink := setup(store)
		w2.Submit(ctx, form)

		events := sink.Named(datalayer.EventFormSubmit)
		require.Len(t, events, 1)
		assert.Equal(t, false, events[0].Payload["is_first_submit"])
	})

	t.Run("malformed submitted list fails open", func(t *testing.T) {
		store := kv.NewMemoryStore()
		require.NoError(t, store.Set(ctx, forms.SubmittedKey, []byte("{oops")))
		w, sink := setup(store)

		w.Submit(ctx, form)

		events := sink.Named(datalayer.EventFormSubmit)
		require.Len(t, events, 1)
		assert.Equal(t, true, events[0].Payload["is_first_submit"])
	})

	t.Run("success carries the form identity", func(t *testing.T) {
		w, sink := setup(kv.NewMemoryStore())

		w.Success(form)

		events := sink.Named(datalayer.EventFormSuccess)
		require.Len(t, events, 1)
		assert.Equal(t, "contact-form", events[0].Payload["form_id"])
		assert.Equal(t, "/contact", events[0].Payload["page_path"])
	})
}
