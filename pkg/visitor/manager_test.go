package visitor_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fendixhq/trackkit/pkg/kv"
	"github.com/fendixhq/trackkit/pkg/visitor"
)

func TestManager_Ensure(t *testing.T) {
	ctx := context.Background()

	t.Run("first pageview creates visitor and session", func(t *testing.T) {
		store := kv.NewMemoryStore()
		m := visitor.NewManager(store)

		v, s := m.Ensure(ctx)

		assert.NotEmpty(t, v.ID)
		assert.Equal(t, 1, v.VisitCount, "session creation increments the count once")
		assert.Equal(t, "new", v.Status())
		require.NotNil(t, v.LastVisit)

		require.NotNil(t, s)
		assert.NotEmpty(t, s.ID)
		assert.Zero(t, s.Pageviews)
		assert.Empty(t, s.Pages)

		var stored visitor.Visitor
		require.NoError(t, kv.GetJSON(ctx, store, visitor.VisitorKey, &stored))
		assert.Equal(t, v.ID, stored.ID)

		var storedSession visitor.Session
		require.NoError(t, kv.GetJSON(ctx, store, visitor.SessionKey, &storedSession))
		assert.Equal(t, s.ID, storedSession.ID)
	})

	t.Run("continuing session keeps id and count", func(t *testing.T) {
		store := kv.NewMemoryStore()
		m := visitor.NewManager(store)

		v1, s1 := m.Ensure(ctx)
		v2, s2 := m.Ensure(ctx)

		assert.Equal(t, v1.ID, v2.ID)
		assert.Equal(t, v1.VisitCount, v2.VisitCount, "no increment within a continuing session")
		assert.Equal(t, s1.ID, s2.ID)
		assert.False(t, s2.LastActivity.Before(s1.LastActivity))
	})

	t.Run("idle past timeout supersedes the session", func(t *testing.T) {
		store := kv.NewMemoryStore()
		m := visitor.NewManager(store)

		stale := visitor.Session{
			ID:           "stale",
			Start:        time.Now().Add(-time.Hour),
			LastActivity: time.Now().Add(-40 * time.Minute),
			Pageviews:    7,
			Pages:        []visitor.PageVisit{{Path: "/old"}},
		}
		require.NoError(t, kv.SetJSON(ctx, store, visitor.SessionKey, stale))
		require.NoError(t, kv.SetJSON(ctx, store, visitor.VisitorKey, visitor.Visitor{
			ID:         "vis-1",
			FirstVisit: time.Now().Add(-48 * time.Hour),
			VisitCount: 3,
		}))

		v, s := m.Ensure(ctx)

		assert.Equal(t, "vis-1", v.ID, "visitor identity survives session rollover")
		assert.Equal(t, 4, v.VisitCount, "exactly one increment per supersession")
		require.NotNil(t, v.LastVisit)

		assert.NotEqual(t, "stale", s.ID)
		assert.Zero(t, s.Pageviews, "old session data is not merged")
		assert.Empty(t, s.Pages)
	})

	t.Run("session within timeout is kept", func(t *testing.T) {
		store := kv.NewMemoryStore()
		m := visitor.NewManager(store, visitor.WithSessionTimeout(30*time.Minute))

		alive := visitor.Session{
			ID:           "alive",
			Start:        time.Now().Add(-20 * time.Minute),
			LastActivity: time.Now().Add(-10 * time.Minute),
			Pageviews:    2,
		}
		require.NoError(t, kv.SetJSON(ctx, store, visitor.SessionKey, alive))
		require.NoError(t, kv.SetJSON(ctx, store, visitor.VisitorKey, visitor.Visitor{ID: "vis-1", VisitCount: 2}))

		v, s := m.Ensure(ctx)

		assert.Equal(t, "alive", s.ID)
		assert.Equal(t, 2, s.Pageviews)
		assert.Equal(t, 2, v.VisitCount)
	})

	t.Run("malformed visitor state fails open", func(t *testing.T) {
		store := kv.NewMemoryStore()
		require.NoError(t, store.Set(ctx, visitor.VisitorKey, []byte("{broken")))
		m := visitor.NewManager(store)

		v, _ := m.Ensure(ctx)

		assert.NotEmpty(t, v.ID)
		assert.Equal(t, 1, v.VisitCount)
	})

	t.Run("malformed session state starts a fresh session", func(t *testing.T) {
		store := kv.NewMemoryStore()
		require.NoError(t, store.Set(ctx, visitor.SessionKey, []byte("not json")))
		m := visitor.NewManager(store)

		_, s := m.Ensure(ctx)

		require.NotNil(t, s)
		assert.Zero(t, s.Pageviews)
	})
}

func TestVisitor(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		assert.Equal(t, "new", visitor.Visitor{VisitCount: 0}.Status())
		assert.Equal(t, "new", visitor.Visitor{VisitCount: 1}.Status())
		assert.Equal(t, "returning", visitor.Visitor{VisitCount: 2}.Status())
	})

	t.Run("days since first visit", func(t *testing.T) {
		now := time.Now()
		v := visitor.Visitor{FirstVisit: now.Add(-50 * time.Hour)}
		assert.Equal(t, 2, v.DaysSinceFirst(now))
		assert.Equal(t, 0, visitor.Visitor{FirstVisit: now.Add(time.Hour)}.DaysSinceFirst(now))
	})
}

func TestSession(t *testing.T) {
	now := time.Now()

	t.Run("expiry", func(t *testing.T) {
		var absent *visitor.Session
		assert.True(t, absent.Expired(now, 30*time.Minute))

		idle := &visitor.Session{LastActivity: now.Add(-31 * time.Minute)}
		assert.True(t, idle.Expired(now, 30*time.Minute))

		exact := &visitor.Session{LastActivity: now.Add(-30 * time.Minute)}
		assert.False(t, exact.Expired(now, 30*time.Minute), "expiry is strictly greater than the timeout")

		fresh := &visitor.Session{LastActivity: now}
		assert.False(t, fresh.Expired(now, 30*time.Minute))
	})

	t.Run("previous page", func(t *testing.T) {
		s := visitor.NewSession(now)
		assert.Empty(t, s.PreviousPage())

		s.Pages = append(s.Pages, visitor.PageVisit{Path: "/a"})
		assert.Empty(t, s.PreviousPage())

		s.Pages = append(s.Pages, visitor.PageVisit{Path: "/b"})
		assert.Equal(t, "/a", s.PreviousPage())
	})

	t.Run("ulid ids sort chronologically", func(t *testing.T) {
		a := visitor.NewSession(now.Add(-time.Minute))
		b := visitor.NewSession(now)
		assert.Less(t, a.ID, b.ID)
	})
}
