package cache_test

import (
	"context"
	"time"
	"usdcdash/internal/cache"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Predicate", func() {
	var predicate cache.Predicate

	BeforeEach(func() {
		predicate = cache.Predicate{Address: "0xABC", Kinds: []cache.Kind{cache.KindBalance, cache.KindDetails}}
	})

	It("should match scoped keys of the listed kinds case-insensitively", func() {
		Expect(predicate.Matches(cache.NewKey(cache.KindBalance, "0xabc", ""))).To(BeTrue())
		Expect(predicate.Matches(cache.NewKey(cache.KindTransactions, "0xabc", "p"))).To(BeFalse())
		Expect(predicate.Matches(cache.NewKey(cache.KindBalance, "0xdef", ""))).To(BeFalse())
	})

	It("should match unscoped keys of the listed kinds", func() {
		Expect(predicate.Matches(cache.NewKey(cache.KindDetails, "", "0xhash"))).To(BeTrue())
	})

	It("should match every kind when none are listed", func() {
		all := cache.Predicate{Address: "0xabc"}
		Expect(all.Matches(cache.NewKey(cache.KindTransactions, "0xabc", "p"))).To(BeTrue())
		Expect(all.Matches(cache.NewKey(cache.KindBalance, "0xabc", ""))).To(BeTrue())
	})
})

var _ = Describe("MemoryStore", func() {
	var (
		store *cache.MemoryStore
		ctx   context.Context
		key   cache.Key
		now   time.Time
	)

	BeforeEach(func() {
		now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		cache.TimeNow = func() time.Time { return now }
		store = cache.NewMemoryStore(2, time.Minute)
		ctx = context.Background()
		key = cache.NewKey(cache.KindTransactions, "0xAbC", "desc:1:100::")
	})

	AfterEach(func() {
		cache.TimeNow = time.Now
	})

	It("should return what was set", func() {
		Expect(store.Set(ctx, key, []byte("v"), 0)).To(Succeed())
		value, ok, err := store.Get(ctx, key)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal([]byte("v")))
	})

	It("should miss after the ttl", func() {
		Expect(store.Set(ctx, key, []byte("v"), 0)).To(Succeed())
		now = now.Add(2 * time.Minute)
		_, ok, err := store.Get(ctx, key)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("should evict the least recently used entry", func() {
		other := cache.NewKey(cache.KindBalance, "0xabc", "")
		third := cache.NewKey(cache.KindBalance, "0xdef", "")
		Expect(store.Set(ctx, key, []byte("1"), 0)).To(Succeed())
		Expect(store.Set(ctx, other, []byte("2"), 0)).To(Succeed())
		Expect(store.Set(ctx, third, []byte("3"), 0)).To(Succeed())

		_, ok, _ := store.Get(ctx, key)
		Expect(ok).To(BeFalse())
		Expect(store.Len()).To(Equal(2))
	})

	When("a scope is invalidated", func() {
		var (
			balance  cache.Key
			stranger cache.Key
		)

		BeforeEach(func() {
			balance = cache.NewKey(cache.KindBalance, "0xabc", "")
			stranger = cache.NewKey(cache.KindBalance, "0xdef", "")
			store = cache.NewMemoryStore(10, time.Minute)
			Expect(store.Set(ctx, key, []byte("t"), 0)).To(Succeed())
			Expect(store.Set(ctx, balance, []byte("b"), 0)).To(Succeed())
			Expect(store.Set(ctx, stranger, []byte("s"), 0)).To(Succeed())

			Expect(store.Invalidate(ctx, cache.Predicate{Address: "0xABC"})).To(Succeed())
		})

		It("should drop the matching entries only", func() {
			_, ok, _ := store.Get(ctx, key)
			Expect(ok).To(BeFalse())
			_, ok, _ = store.Get(ctx, balance)
			Expect(ok).To(BeFalse())
			_, ok, _ = store.Get(ctx, stranger)
			Expect(ok).To(BeTrue())
		})

		It("should bump the generation", func() {
			generation, err := store.Generation(ctx, balance)
			Expect(err).NotTo(HaveOccurred())
			Expect(generation).To(Equal(uint64(1)))

			generation, err = store.Generation(ctx, stranger)
			Expect(err).NotTo(HaveOccurred())
			Expect(generation).To(BeZero())
		})

		It("should refuse writes from the previous generation", func() {
			Expect(store.Set(ctx, balance, []byte("old"), 0)).To(MatchError(cache.ErrStale))
			Expect(store.Set(ctx, balance, []byte("new"), 1)).To(Succeed())
		})
	})
})
