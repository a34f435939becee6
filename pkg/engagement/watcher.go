package engagement

import (
	"sync"
	"time"

	"github.com/fendixhq/trackkit/pkg/datalayer"
	"github.com/fendixhq/trackkit/pkg/page"
)

// DefaultMilestones are the time-on-page marks reported when no custom
// milestones are configured.
var DefaultMilestones = []time.Duration{30 * time.Second, 2 * time.Minute}

// Watcher emits an engaged_time event for every milestone the visitor
// stays on the page. Timers are best-effort: a timer that fires after
// navigation is acceptable lost work, and Close only cancels what has not
// fired yet.
type Watcher struct {
	mu     sync.Mutex
	timers []*time.Timer
	closed bool
}

// Start arms one timer per milestone for the given page. Without explicit
// milestones the defaults apply.
func Start(emitter *datalayer.Emitter, d page.Descriptor, milestones ...time.Duration) *Watcher {
	if len(milestones) == 0 {
		milestones = DefaultMilestones
	}

	w := &Watcher{}
	for _, m := range milestones {
		seconds := int(m.Seconds())
		w.timers = append(w.timers, time.AfterFunc(m, func() {
			emitter.Emit(datalayer.EventEngagedTime, map[string]any{
				"seconds":   seconds,
				"page_path": d.Path,
				"page_type": string(d.Type),
			})
		}))
	}
	return w
}

// Close cancels all pending timers. Already-fired milestones are unaffected.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	for _, t := range w.timers {
		t.Stop()
	}
	return nil
}
