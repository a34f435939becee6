package visitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/fendixhq/trackkit/pkg/kv"
)

// Store keys; shared with the history tracker, which persists the session
// again after appending the current page.
const (
	VisitorKey = "visitor"
	SessionKey = "session"
)

// Manager resolves a consistent (Visitor, Session) pair for the current
// pageview and persists both. It is idempotent per pageview and never
// returns an error: unreadable state is replaced with fresh records and
// write failures are logged and dropped.
type Manager struct {
	store kv.Store
	cfg   Config
	log   *slog.Logger
}

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithConfig sets custom configuration.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		m.cfg = cfg
	}
}

// WithSessionTimeout sets the idle gap after which a session is superseded.
func WithSessionTimeout(timeout time.Duration) Option {
	return func(m *Manager) {
		m.cfg.SessionTimeout = timeout
	}
}

// WithLogger sets the logger for storage failures.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// NewManager creates a manager persisting through the given store.
func NewManager(store kv.Store, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		cfg:   DefaultConfig(),
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Ensure loads or creates the visitor and session for the current pageview.
//
// A session is superseded when it is absent or idle past the timeout; only
// then does the visitor's visit count increment and the visitor record get
// persisted. In all cases the session's last activity is refreshed and the
// session persisted.
func (m *Manager) Ensure(ctx context.Context) (Visitor, *Session) {
	now := time.Now()

	v := m.loadVisitor(ctx, now)
	s := m.loadSession(ctx)

	if s.Expired(now, m.cfg.SessionTimeout) {
		v.VisitCount++
		lastVisit := now
		v.LastVisit = &lastVisit
		m.persist(ctx, VisitorKey, v)

		s = NewSession(now)
	}

	s.LastActivity = now
	m.persist(ctx, SessionKey, s)

	return v, s
}

func (m *Manager) loadVisitor(ctx context.Context, now time.Time) Visitor {
	var v Visitor
	if err := kv.GetJSON(ctx, m.store, VisitorKey, &v); err != nil {
		return NewVisitor(now)
	}
	return v
}

func (m *Manager) loadSession(ctx context.Context) *Session {
	var s Session
	if err := kv.GetJSON(ctx, m.store, SessionKey, &s); err != nil {
		return nil
	}
	return &s
}

func (m *Manager) persist(ctx context.Context, key string, v any) {
	if err := kv.SetJSON(ctx, m.store, key, v); err != nil {
		m.log.DebugContext(ctx, "storage error", "key", key, "error", err)
	}
}
