package kv

import "context"

// Store is the persistence boundary for tracking state. Values are opaque
// byte blobs; callers decide on the encoding. Implementations must be safe
// for concurrent use.
//
// Writes are best-effort: the tracking pipeline logs and continues when a
// Set fails, so implementations should not assume callers retry.
type Store interface {
	// Get retrieves a value by key. Returns ErrNotFound for missing keys.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under the given key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists all keys currently present in the store.
	Keys(ctx context.Context) ([]string, error)
}
