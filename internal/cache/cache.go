package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Store is the contract the cache-aside layer needs from a cache backend.
// Get reports found=false for both absent and expired keys.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// GetOrCompute returns the cached value for key if present, otherwise runs
// compute, stores its JSON-encoded result under key with the given TTL and
// returns it. Store failures propagate to the caller unmodified; compute is
// never invoked on a hit.
func GetOrCompute[T any](ctx context.Context, store Store, key string, ttl time.Duration, compute func() (T, error)) (T, error) {
	var result T

	data, found, err := store.Get(ctx, key)
	if err != nil {
		return result, fmt.Errorf("cache: failed to read key %q: %w", key, err)
	}
	if found {
		if err := json.Unmarshal(data, &result); err != nil {
			return result, fmt.Errorf("cache: failed to decode cached value for key %q: %w", key, err)
		}
		return result, nil
	}

	result, err = compute()
	if err != nil {
		return result, err
	}

	data, err = json.Marshal(result)
	if err != nil {
		return result, fmt.Errorf("cache: failed to encode value for key %q: %w", key, err)
	}
	if err := store.Set(ctx, key, data, ttl); err != nil {
		return result, fmt.Errorf("cache: failed to write key %q: %w", key, err)
	}

	return result, nil
}
