package cache

import (
	"context"
	"errors"
)

var ErrStale = errors.New("cache entry is stale")

// Store keeps encoded read results. Every key belongs to a scope (address and kind) with a
// generation counter; invalidating a scope bumps its generation.
type Store interface {
	Get(ctx context.Context, key Key) ([]byte, bool, error)
	// Set writes value only if the scope of key is still at generation.
	Set(ctx context.Context, key Key, value []byte, generation uint64) error
	Generation(ctx context.Context, key Key) (uint64, error)
	Invalidate(ctx context.Context, p Predicate) error
}
