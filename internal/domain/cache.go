package domain

import (
	"context"
	"time"
)

// CacheError represents an error originating from the cache.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key is not found in the cache.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache is the key/value store used for quiz sessions and Bible passages.
type Cache interface {
	// Get returns ErrCacheMiss if the key is not found.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key. An expiration of 0 keeps the key until deleted.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// SetNX stores value only if key does not exist and reports whether it did.
	SetNX(ctx context.Context, key string, value string, expiration time.Duration) (bool, error)

	// Delete reports whether the key existed.
	Delete(ctx context.Context, key string) (bool, error)

	Ping(ctx context.Context) error

	// Expire refreshes the time to live of an existing key.
	Expire(ctx context.Context, key string, expiration time.Duration) error
}
