package common

import (
	"encoding/json"
	"time"
)

// CacheInterface is a string key/value store with per-entry expiry. Both
// backends hold JSON text so a cached value decodes to the same Go type
// whichever one is configured.
type CacheInterface interface {
	Set(key, payload string, ttl time.Duration)

	// Get reports false on a miss or when the backend is unreachable.
	Get(key string) (string, bool)

	Delete(keys ...string)
	Close() error
}

// CachedJSON returns the value cached under key, or calls loader and caches
// its result. A nil cache always loads.
func CachedJSON[T any](c CacheInterface, key string, ttl time.Duration, loader func() (T, error)) (T, bool, error) {
	var out T
	if c != nil {
		if raw, found := c.Get(key); found && json.Unmarshal([]byte(raw), &out) == nil {
			return out, true, nil
		}
	}

	out, err := loader()
	if err != nil {
		return out, false, err
	}

	if c != nil {
		if data, err := json.Marshal(out); err == nil {
			c.Set(key, string(data), ttl)
		}
	}
	return out, false, nil
}
