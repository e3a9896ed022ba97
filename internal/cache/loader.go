package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"usdcdash/internal/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Loader reads through a Store and coalesces identical concurrent misses.
type Loader struct {
	logs        *zap.SugaredLogger
	store       Store
	group       singleflight.Group
	loadTimeout time.Duration
}

func NewLoader(logger *zap.SugaredLogger, store Store, loadTimeout time.Duration) *Loader {
	return &Loader{
		logs:        logger,
		store:       store,
		loadTimeout: loadTimeout,
	}
}

// Invalidate drops every cached read matching p.
func (l *Loader) Invalidate(ctx context.Context, p Predicate) error {
	return l.store.Invalidate(ctx, p)
}

// Fetch returns the cached value for key or runs load once for all concurrent callers.
// The shared load is detached from the caller that started it and bounded by the loader
// timeout; each caller can still give up through its own ctx. A result whose scope was
// invalidated while loading is returned to the callers that joined before the
// invalidation but not stored.
func Fetch[T any](ctx context.Context, l *Loader, key Key, load func(context.Context) (T, error)) (T, error) {
	var zero T

	raw, ok, err := l.store.Get(ctx, key)
	if err != nil {
		l.logs.Warnw("cache read failed",
			"key", key.String(),
			"error", err)
	}
	if ok {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			metrics.ObserveCache(string(key.Kind), true)
			return cached, nil
		}
		l.logs.Warnw("cache entry undecodable",
			"key", key.String(),
			"error", err)
	}
	metrics.ObserveCache(string(key.Kind), false)

	// Loads are shared per generation, so a read issued after an invalidation never
	// joins a load that started before it.
	generation, genErr := l.store.Generation(ctx, key)
	flight := fmt.Sprintf("%s@%d", key, generation)
	if genErr != nil {
		flight = fmt.Sprintf("%s@unversioned", key)
	}

	ch := l.group.DoChan(flight, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.loadTimeout)
		defer cancel()

		value, err := load(loadCtx)
		if err != nil {
			return nil, err
		}

		if genErr != nil {
			l.logs.Warnw("cache generation unavailable, result not stored",
				"key", key.String(),
				"error", genErr)
			return value, nil
		}

		encoded, err := json.Marshal(value)
		if err != nil {
			l.logs.Warnw("cache encode failed",
				"key", key.String(),
				"error", err)
			return value, nil
		}

		if err := l.store.Set(loadCtx, key, encoded, generation); err != nil {
			if errors.Is(err, ErrStale) {
				l.logs.Infow("discarding result invalidated during load", "key", key.String())
			} else {
				l.logs.Warnw("cache write failed",
					"key", key.String(),
					"error", err)
			}
		}

		return value, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}
