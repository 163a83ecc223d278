package cache

import "context"

// Store is a TTL-bound byte cache for vendor API responses. A cache
// failure is never fatal: implementations report misses instead of
// errors on Get, and log-and-continue on Set.
type Store interface {
	// Get returns the cached payload for key. The second return is false
	// when the key is absent, expired or unreadable.
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set stores payload under key, replacing any previous entry.
	Set(ctx context.Context, key string, payload []byte)
	// Clear drops every cached entry.
	Clear(ctx context.Context) error
}
