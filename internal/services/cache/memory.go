package cache

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

const memoryBackend = "memory"

// MemoryCache is a size-bounded in-process cache. When full it drops expired
// entries first, then the entries closest to expiry.
type MemoryCache struct {
	mu       sync.RWMutex
	items    map[string]*entry
	maxBytes int64
	size     int64
	now      func() time.Time

	hits, misses, sets, evictions atomic.Int64

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

type entry struct {
	value  []byte
	expiry time.Time
	size   int64
}

// NewMemoryCache creates a memory cache holding at most maxSizeMB megabytes.
// A non-positive size means unbounded.
func NewMemoryCache(maxSizeMB int64) *MemoryCache {
	mc := &MemoryCache{
		items:    make(map[string]*entry),
		maxBytes: maxSizeMB * 1024 * 1024,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}

	mc.wg.Add(1)
	go mc.janitor(time.Minute)

	return mc
}

// Get retrieves a value from the cache
func (mc *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	mc.mu.RLock()
	e, ok := mc.items[key]
	mc.mu.RUnlock()

	if ok && mc.now().Before(e.expiry) {
		mc.hits.Add(1)
		recordLookup(memoryBackend, true)
		return e.value, true
	}

	mc.misses.Add(1)
	recordLookup(memoryBackend, false)
	return nil, false
}

// Set stores a value in the cache with a TTL. Non-positive TTLs are ignored.
func (mc *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	e := &entry{
		value:  value,
		expiry: mc.now().Add(ttl),
		size:   int64(len(key) + len(value)),
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	if old, ok := mc.items[key]; ok {
		mc.size -= old.size
		delete(mc.items, key)
	}
	mc.makeRoomLocked(e.size)
	mc.items[key] = e
	mc.size += e.size
	mc.sets.Add(1)
	return nil
}

// Delete removes a value from the cache
func (mc *MemoryCache) Delete(_ context.Context, key string) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if e, ok := mc.items[key]; ok {
		delete(mc.items, key)
		mc.size -= e.size
	}
	return nil
}

// Stats returns cache statistics
func (mc *MemoryCache) Stats() Stats {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	return Stats{
		Hits:      mc.hits.Load(),
		Misses:    mc.misses.Load(),
		Sets:      mc.sets.Load(),
		Evictions: mc.evictions.Load(),
		Size:      mc.size,
		MaxSize:   mc.maxBytes,
		Items:     len(mc.items),
	}
}

// Close stops the background janitor. Safe to call more than once.
func (mc *MemoryCache) Close() error {
	mc.stopOnce.Do(func() { close(mc.stopCh) })
	mc.wg.Wait()
	return nil
}

func (mc *MemoryCache) janitor(interval time.Duration) {
	defer mc.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.mu.Lock()
			mc.removeExpiredLocked()
			mc.mu.Unlock()
		case <-mc.stopCh:
			return
		}
	}
}

func (mc *MemoryCache) removeExpiredLocked() {
	now := mc.now()
	for key, e := range mc.items {
		if !now.Before(e.expiry) {
			delete(mc.items, key)
			mc.size -= e.size
			mc.evictions.Add(1)
		}
	}
}

func (mc *MemoryCache) makeRoomLocked(needed int64) {
	if mc.maxBytes <= 0 || mc.size+needed <= mc.maxBytes {
		return
	}

	mc.removeExpiredLocked()
	if mc.size+needed <= mc.maxBytes {
		return
	}

	keys := make([]string, 0, len(mc.items))
	for k := range mc.items {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return mc.items[keys[i]].expiry.Before(mc.items[keys[j]].expiry)
	})

	for _, k := range keys {
		if mc.size+needed <= mc.maxBytes {
			return
		}
		mc.size -= mc.items[k].size
		delete(mc.items, k)
		mc.evictions.Add(1)
	}
}
