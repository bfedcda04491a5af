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

// Cache defines the interface (port) for caching operations.
// Implementations of this interface will be the adapters (e.g.
// RedisCacheAdapter). The list operations exist for the chat service,
// which keeps each session's bounded message history as a list.
type Cache interface {
	// Get retrieves an item from the cache.
	// It returns ErrCacheMiss if the key is not found.
	Get(ctx context.Context, key string) (string, error)

	// Set adds an item to the cache, overwriting an existing item if
	// one exists. If expiration is 0 the item is cached indefinitely.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Delete removes an item from the cache.
	// It should not return an error if the key is not found.
	Delete(ctx context.Context, key string) error

	// Ping checks the health of the cache service.
	Ping(ctx context.Context) error

	// RPush appends values to the list stored at key.
	RPush(ctx context.Context, key string, values ...string) error

	// LRange returns the elements of the list stored at key between
	// start and stop (inclusive, negative indexes count from the end).
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)

	// LTrim trims the list stored at key to the given range.
	LTrim(ctx context.Context, key string, start, stop int64) error

	// Expire sets an expiration time on key.
	Expire(ctx context.Context, key string, expiration time.Duration) error
}
