package history

import "github.com/fendixhq/trackkit/pkg/page"

// MaxEntries caps the rolling page list. The total counter is never capped.
const MaxEntries = 50

// Entry is the compact cross-session page record, most recent first.
type Entry struct {
	Path       string    `json:"path"`
	Type       page.Type `json:"type"`
	Category   string    `json:"category,omitempty"`
	Collection string    `json:"collection,omitempty"`
	Slug       string    `json:"slug,omitempty"`
}

// History is the capped global pageview history spanning sessions.
type History struct {
	Pages []Entry `json:"pages"`
	Total int     `json:"total"`
}
