package cache

import (
	"strings"
	"time"
)

// Cache stores rendered skip payloads keyed by title, preference
// fingerprint, and output format.
type Cache interface {
	// Get returns the cached payload and true when present and fresh.
	Get(key string) (string, bool)

	// Set stores a payload under key for the given TTL. A non-positive
	// ttl falls back to the cache default.
	Set(key string, value string, ttl time.Duration)

	// Invalidate removes every entry whose key starts with prefix.
	// Returns the number of entries removed.
	Invalidate(prefix string) int

	// Clear drops all entries.
	Clear()

	// Stop terminates background maintenance. Safe to call once.
	Stop()
}

// Key builds a cache key from its parts. Parts are joined with "|" so a
// title prefix selects every fingerprint and format derived from it.
func Key(parts ...string) string {
	return strings.Join(parts, "|")
}

// TitlePrefix is the invalidation prefix covering every cached payload
// for a title.
func TitlePrefix(titleID string) string {
	return "skips|" + titleID + "|"
}
