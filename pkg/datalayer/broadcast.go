package datalayer

import (
	"context"
	"sync"
)

// BroadcastSink fans events out to subscriber channels, dropping for slow
// consumers rather than blocking the emitting pageview path. It bridges
// the tracker to external queue consumers (a tag-manager forwarder, an
// event logger) without coupling the pipeline to any of them.
type BroadcastSink struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
	bufferSize  int
	closed      bool
}

// NewBroadcastSink creates a fan-out sink. Each subscriber gets a buffered
// channel of the given size; a minimum of 1 is enforced so sends stay
// non-blocking.
func NewBroadcastSink(bufferSize int) *BroadcastSink {
	return &BroadcastSink{
		subscribers: make(map[chan Event]struct{}),
		bufferSize:  max(bufferSize, 1),
	}
}

// Subscribe registers a new consumer. The subscription is removed when the
// context is cancelled. A closed sink returns an already-closed channel.
func (b *BroadcastSink) Subscribe(ctx context.Context) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.bufferSize)
	if b.closed {
		close(ch)
		return ch
	}
	b.subscribers[ch] = struct{}{}

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			b.unsubscribe(ch)
		}()
	}

	return ch
}

// Push delivers the event to every subscriber whose buffer has room.
// Events are dropped for full buffers; the push itself never blocks.
func (b *BroadcastSink) Push(event string, payload map[string]any) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for ch := range b.subscribers {
		select {
		case ch <- Event{Name: event, Payload: payload}:
		default:
		}
	}
}

// Close shuts the sink down and closes all subscriber channels. It is safe
// to call multiple times.
func (b *BroadcastSink) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for ch := range b.subscribers {
		close(ch)
	}
	clear(b.subscribers)
	return nil
}

func (b *BroadcastSink) unsubscribe(ch chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subscribers[ch]; ok {
		delete(b.subscribers, ch)
		close(ch)
	}
}
