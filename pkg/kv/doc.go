// Package kv provides the key-value persistence boundary used by the
// tracking pipeline for visitor, session, history and form state.
//
// The package is storage-agnostic: anything that satisfies the Store
// interface can be plugged in. A concurrent in-memory implementation ships
// out of the box, and a Redis implementation covers deployments where
// tracking state must survive the process.
//
// Keys are plain strings; values are opaque byte blobs. The tracking
// pipeline stores JSON through the GetJSON/SetJSON helpers and treats every
// read failure, missing key or malformed value alike, as absent state to be
// recreated. Writes are best-effort and never retried.
//
// Namespace wraps any Store with a key prefix so that several consumers can
// share one backend, and so diagnostics can wipe exactly the tracking keys:
//
//	store := kv.Namespace(kv.NewMemoryStore(), "fendix_")
//	_ = kv.SetJSON(ctx, store, "visitor", v) // stored as "fendix_visitor"
package kv
