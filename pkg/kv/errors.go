package kv

import "errors"

var (
	// ErrNotFound indicates the key is not present in the store
	ErrNotFound = errors.New("kv.not_found")

	// ErrInvalidKey indicates an empty or otherwise unusable key
	ErrInvalidKey = errors.New("kv.invalid_key")

	// ErrFailedToParseRedisConnString indicates the Redis connection URL is malformed
	ErrFailedToParseRedisConnString = errors.New("kv.redis_conn_string_invalid")

	// ErrRedisNotReady indicates the Redis server did not respond to ping before retries ran out
	ErrRedisNotReady = errors.New("kv.redis_not_ready")
)
