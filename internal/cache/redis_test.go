package cache_test

import (
	"context"
	"errors"
	"strconv"
	"time"
	"usdcdash/internal/cache"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"
)

// mapRedis serves the handful of commands the store issues from a map.
type mapRedis struct {
	redis.Cmdable
	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func (m *mapRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if m.err != nil {
		return redis.NewStringResult("", m.err)
	}
	value, ok := m.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (m *mapRedis) Set(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		m.values[key] = string(v)
	case string:
		m.values[key] = v
	}
	m.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (m *mapRedis) TxPipeline() redis.Pipeliner {
	return &mapPipeline{redis: m}
}

type mapPipeline struct {
	redis.Pipeliner
	redis *mapRedis
	incrs []string
}

func (p *mapPipeline) Incr(_ context.Context, key string) *redis.IntCmd {
	p.incrs = append(p.incrs, key)
	return redis.NewIntResult(0, nil)
}

func (p *mapPipeline) Exec(context.Context) ([]redis.Cmder, error) {
	for _, key := range p.incrs {
		current, _ := strconv.ParseUint(p.redis.values[key], 10, 64)
		p.redis.values[key] = strconv.FormatUint(current+1, 10)
	}
	return nil, nil
}

var _ = Describe("RedisStore", func() {
	var (
		ctx     context.Context
		client  *mapRedis
		store   *cache.RedisStore
		balance cache.Key
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = &mapRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
		store = cache.NewRedisStore(client, "usdcdash", time.Minute)
		balance = cache.NewKey(cache.KindBalance, "0xabc", "")
	})

	It("should miss on an empty store", func() {
		_, ok, err := store.Get(ctx, balance)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("should return what was set at the current generation", func() {
		Expect(store.Set(ctx, balance, []byte("42"), 0)).To(Succeed())

		value, ok, err := store.Get(ctx, balance)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(string(value)).To(Equal("42"))

		for _, ttl := range client.ttls {
			Expect(ttl).To(Equal(time.Minute))
		}
	})

	It("should orphan entries on invalidation", func() {
		Expect(store.Set(ctx, balance, []byte("42"), 0)).To(Succeed())
		Expect(store.Invalidate(ctx, cache.Predicate{Address: "0xabc"})).To(Succeed())

		generation, err := store.Generation(ctx, balance)
		Expect(err).NotTo(HaveOccurred())
		Expect(generation).To(BeEquivalentTo(1))

		_, ok, err := store.Get(ctx, balance)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("should refuse a write from an older generation", func() {
		Expect(store.Invalidate(ctx, cache.Predicate{Address: "0xabc"})).To(Succeed())
		Expect(store.Set(ctx, balance, []byte("old"), 0)).To(MatchError(cache.ErrStale))
	})

	It("should wrap connection failures", func() {
		client.err = errors.New("connection refused")

		_, _, err := store.Get(ctx, balance)
		Expect(err).To(MatchError(ContainSubstring("redis get generation")))
	})
})
