package kv

import (
	"context"
	"strings"
)

// Namespaced wraps a Store so that every key is transparently prefixed.
// It lets multiple trackers (or a tracker plus unrelated data) share one
// backend without key collisions, and makes a scoped wipe possible.
type Namespaced struct {
	inner  Store
	prefix string
}

// Namespace wraps store with the given key prefix. An empty prefix returns
// a wrapper that behaves exactly like the inner store.
func Namespace(store Store, prefix string) *Namespaced {
	return &Namespaced{inner: store, prefix: prefix}
}

// Get retrieves a value by its unprefixed key.
func (n *Namespaced) Get(ctx context.Context, key string) ([]byte, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

// Set stores a value under its prefixed key.
func (n *Namespaced) Set(ctx context.Context, key string, value []byte) error {
	return n.inner.Set(ctx, n.prefix+key, value)
}

// Delete removes a key from the namespace.
func (n *Namespaced) Delete(ctx context.Context, key string) error {
	return n.inner.Delete(ctx, n.prefix+key)
}

// Keys lists the keys inside the namespace, with the prefix stripped.
func (n *Namespaced) Keys(ctx context.Context) ([]string, error) {
	all, err := n.inner.Keys(ctx)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(all))
	for _, k := range all {
		if strings.HasPrefix(k, n.prefix) {
			keys = append(keys, strings.TrimPrefix(k, n.prefix))
		}
	}
	return keys, nil
}

// Clear deletes every key inside the namespace. Keys outside the namespace
// are untouched.
func (n *Namespaced) Clear(ctx context.Context) error {
	keys, err := n.Keys(ctx)
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := n.Delete(ctx, k); err != nil {
			return err
		}
	}
	return nil
}
