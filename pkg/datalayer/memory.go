package datalayer

import (
	"maps"
	"sync"
)

// MemorySink buffers events in order of arrival. It backs tests and the
// diagnostics view; production deployments typically bridge Push into a tag
// manager's queue instead.
type MemorySink struct {
	mu     sync.RWMutex
	events []Event
}

// NewMemorySink creates an empty buffering sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Push appends the event to the buffer.
func (s *MemorySink) Push(event string, payload map[string]any) {
	stored := make(map[string]any, len(payload))
	maps.Copy(stored, payload)

	s.mu.Lock()
	s.events = append(s.events, Event{Name: event, Payload: stored})
	s.mu.Unlock()
}

// Events returns a snapshot of everything pushed so far.
func (s *MemorySink) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Named returns the buffered events carrying the given name.
func (s *MemorySink) Named(event string) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Event
	for _, e := range s.events {
		if e.Name == event {
			out = append(out, e)
		}
	}
	return out
}

// Reset drops all buffered events.
func (s *MemorySink) Reset() {
	s.mu.Lock()
	s.events = nil
	s.mu.Unlock()
}
