package ports

// Cache is a key-value store whose entries expire after a fixed time to live.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type Cache interface {
	// Get returns the value stored under key, if present and not expired.
	Get(key string) (any, bool)

	// Set stores value under key, replacing any previous entry.
	Set(key string, value any)

	// Invalidate removes every entry whose key starts with prefix and returns
	// the number of removed entries.
	Invalidate(prefix string) int

	// Clear removes every entry.
	Clear()

	// Len returns the number of stored entries, expired or not.
	Len() int
}
