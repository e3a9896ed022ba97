package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares cached reads between instances. Entry keys embed the generation of
// their scope, so bumping the generation orphans old entries until their TTL runs out.
type RedisStore struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client redis.Cmdable, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *RedisStore) Get(ctx context.Context, key Key) ([]byte, bool, error) {
	generation, err := s.Generation(ctx, key)
	if err != nil {
		return nil, false, err
	}

	value, err := s.client.Get(ctx, s.entryKey(key, generation)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key Key, value []byte, generation uint64) error {
	current, err := s.Generation(ctx, key)
	if err != nil {
		return err
	}
	if current != generation {
		return ErrStale
	}

	if err := s.client.Set(ctx, s.entryKey(key, generation), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

func (s *RedisStore) Generation(ctx context.Context, key Key) (uint64, error) {
	generation, err := s.client.Get(ctx, s.generationKey(scopeOf(key))).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get generation: %w", err)
	}

	return generation, nil
}

func (s *RedisStore) Invalidate(ctx context.Context, p Predicate) error {
	pipe := s.client.TxPipeline()
	for _, sc := range p.scopes() {
		pipe.Incr(ctx, s.generationKey(sc))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis bump generations: %w", err)
	}

	return nil
}

func (s *RedisStore) generationKey(sc scope) string {
	return fmt.Sprintf("%s:gen:%s", s.prefix, sc)
}

func (s *RedisStore) entryKey(key Key, generation uint64) string {
	return fmt.Sprintf("%s:%s:%d:%s", s.prefix, scopeOf(key), generation, key.Params)
}
