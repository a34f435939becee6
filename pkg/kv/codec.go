package kv

import (
	"context"
	"encoding/json"
)

// GetJSON loads and unmarshals the value stored under key. Missing keys
// return ErrNotFound; malformed values return the unmarshal error. Callers
// in the tracking pipeline treat both the same way: absent, start fresh.
func GetJSON[T any](ctx context.Context, store Store, key string, v *T) error {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// SetJSON marshals v and stores it under key.
func SetJSON[T any](ctx context.Context, store Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, raw)
}
