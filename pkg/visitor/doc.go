// Package visitor maintains the persistent visitor identity and the
// rolling session for the tracking pipeline.
//
// A Visitor is created once per tracking store and keeps a stable UUID. A
// Session groups pageviews separated by idle gaps no longer than the
// configured timeout (30 minutes by default); once the gap is exceeded the
// old session is superseded by a fresh one and the visitor's visit count
// increments, exactly once per supersession.
//
// The Manager fails open everywhere: missing or unreadable stored state is
// replaced with fresh records, and storage write failures are logged at
// debug level and dropped. Ensure therefore never returns an error; in the
// worst case the pipeline emits less-informed events.
package visitor
