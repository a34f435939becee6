package visitor

import (
	"time"

	"github.com/google/uuid"
)

// Visitor is the persistent identity tied to one tracking store, spanning
// many sessions. The ID is assigned at creation and never changes.
type Visitor struct {
	ID         string     `json:"id"`
	FirstVisit time.Time  `json:"firstVisit"`
	VisitCount int        `json:"visitCount"`
	LastVisit  *time.Time `json:"lastVisit,omitempty"`
}

// NewVisitor creates a first-time visitor. VisitCount starts at zero; it is
// incremented when a session begins, never per pageview.
func NewVisitor(now time.Time) Visitor {
	return Visitor{
		ID:         uuid.NewString(),
		FirstVisit: now,
		VisitCount: 0,
	}
}

// Status labels the visitor "new" on their first visit and "returning"
// afterwards.
func (v Visitor) Status() string {
	if v.VisitCount <= 1 {
		return "new"
	}
	return "returning"
}

// DaysSinceFirst returns the whole days elapsed since the first visit.
func (v Visitor) DaysSinceFirst(now time.Time) int {
	if now.Before(v.FirstVisit) {
		return 0
	}
	return int(now.Sub(v.FirstVisit).Hours() / 24)
}
