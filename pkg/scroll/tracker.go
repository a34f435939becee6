package scroll

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/fendixhq/trackkit/pkg/datalayer"
	"github.com/fendixhq/trackkit/pkg/page"
)

// DefaultMilestones are the scroll depths (percent) reported when no custom
// milestones are configured.
var DefaultMilestones = []int{50, 90}

// Tracker turns raw scroll samples into milestone events. Each milestone
// fires at most once per page. Redundant samples arriving while one is
// being processed are dropped, not queued.
type Tracker struct {
	emitter    *datalayer.Emitter
	page       page.Descriptor
	milestones []int

	inFlight atomic.Bool
	mu       sync.Mutex
	reached  map[int]bool
}

// NewTracker creates a scroll tracker for one page. Without explicit
// milestones the defaults apply.
func NewTracker(emitter *datalayer.Emitter, d page.Descriptor, milestones ...int) *Tracker {
	if len(milestones) == 0 {
		milestones = DefaultMilestones
	}
	return &Tracker{
		emitter:    emitter,
		page:       d,
		milestones: milestones,
		reached:    make(map[int]bool),
	}
}

// Offset processes one scroll sample: the vertical offset, the viewport
// height and the full document height, all in the same unit. Samples on
// non-scrollable pages emit nothing.
func (t *Tracker) Offset(y, viewport, document int) {
	if !t.inFlight.CompareAndSwap(false, true) {
		return
	}
	defer t.inFlight.Store(false)

	scrollable := document - viewport
	if scrollable <= 0 {
		return
	}
	percent := int(math.Round(float64(y) / float64(scrollable) * 100))

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, milestone := range t.milestones {
		if percent >= milestone && !t.reached[milestone] {
			t.reached[milestone] = true
			t.emitter.Emit(datalayer.EventScroll, map[string]any{
				"scroll_depth": milestone,
				"page_path":    t.page.Path,
				"page_type":    string(t.page.Type),
			})
		}
	}
}

// Reached reports whether the given milestone already fired.
func (t *Tracker) Reached(milestone int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.reached[milestone]
}
