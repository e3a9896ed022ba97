package cache

import (
	"context"
	"sync"
	"time"

	"github.com/golang/groupcache/lru"
)

var TimeNow = time.Now

type memoryEntry struct {
	value      []byte
	generation uint64
	expires    time.Time
}

// MemoryStore is an in-process LRU store with per-entry TTL.
type MemoryStore struct {
	mu          sync.Mutex
	entries     *lru.Cache
	keys        map[Key]struct{}
	generations map[scope]uint64
	ttl         time.Duration
}

func NewMemoryStore(maxEntries int, ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries:     lru.New(maxEntries),
		keys:        make(map[Key]struct{}),
		generations: make(map[scope]uint64),
		ttl:         ttl,
	}
	s.entries.OnEvicted = func(key lru.Key, _ interface{}) {
		delete(s.keys, key.(Key))
	}
	return s
}

func (s *MemoryStore) Get(_ context.Context, key Key) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.entries.Get(key)
	if !ok {
		return nil, false, nil
	}

	entry := raw.(memoryEntry)
	if entry.generation != s.generations[scopeOf(key)] || (s.ttl > 0 && TimeNow().After(entry.expires)) {
		s.entries.Remove(key)
		return nil, false, nil
	}

	return entry.value, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key Key, value []byte, generation uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generations[scopeOf(key)] != generation {
		return ErrStale
	}

	s.entries.Add(key, memoryEntry{
		value:      value,
		generation: generation,
		expires:    TimeNow().Add(s.ttl),
	})
	s.keys[key] = struct{}{}

	return nil
}

func (s *MemoryStore) Generation(_ context.Context, key Key) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.generations[scopeOf(key)], nil
}

func (s *MemoryStore) Invalidate(_ context.Context, p Predicate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sc := range p.scopes() {
		s.generations[sc]++
	}

	for key := range s.keys {
		if p.Matches(key) {
			s.entries.Remove(key)
		}
	}

	return nil
}

// Len reports the number of live entries, expired ones included until they are read.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.entries.Len()
}
