// Package datalayer is the event emission boundary of the tracker.
//
// The tracker owns nothing past the Sink interface: pushes are
// fire-and-forget appends into an externally owned queue, with no retry
// and no delivery guarantee. The Emitter decorates every payload with the
// event name, an ISO-8601 timestamp and a version stamp before pushing.
//
// Two sinks ship with the package: MemorySink buffers events for tests and
// diagnostics, and BroadcastSink fans events out to subscriber channels
// with drop-on-full semantics so a slow consumer can never stall a
// pageview.
package datalayer
