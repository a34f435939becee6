package visitor

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/fendixhq/trackkit/pkg/page"
)

// PageVisit is the compact per-session page record.
type PageVisit struct {
	Path     string    `json:"path"`
	Type     page.Type `json:"type"`
	Category string    `json:"category,omitempty"`
	Time     time.Time `json:"time"`
}

// Session is a bounded run of pageviews with no idle gap exceeding the
// timeout. It is superseded by a fresh session on expiry, never destroyed
// explicitly.
type Session struct {
	ID           string      `json:"id"`
	Start        time.Time   `json:"start"`
	LastActivity time.Time   `json:"lastActivity"`
	Pageviews    int         `json:"pageviews"`
	Pages        []PageVisit `json:"pages"`
}

// NewSession creates a fresh session starting now. The ID is a ULID, so it
// encodes the creation time and sorts chronologically.
func NewSession(now time.Time) *Session {
	return &Session{
		ID:           ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		Start:        now,
		LastActivity: now,
		Pageviews:    0,
		Pages:        []PageVisit{},
	}
}

// Expired reports whether the session must be superseded: it is absent, or
// the idle gap since its last activity exceeds the timeout.
func (s *Session) Expired(now time.Time, timeout time.Duration) bool {
	return s == nil || now.Sub(s.LastActivity) > timeout
}

// PreviousPage returns the path of the second-to-last page in this session,
// or "" when fewer than two pages were seen.
func (s *Session) PreviousPage() string {
	if s == nil || len(s.Pages) < 2 {
		return ""
	}
	return s.Pages[len(s.Pages)-2].Path
}
