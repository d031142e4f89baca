package loader

import (
	"os"
	"slices"
	"sync"
	"time"

	"github.com/couchcryptid/weather-overview/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// CachedLoader wraps a Source with an in-memory LRU cache keyed by path.
// A cached table is served only while the file's size and modification time
// are unchanged.
type CachedLoader struct {
	inner   Source
	cache   *lruCache
	lookups *prometheus.CounterVec // labels: result={hit,miss}
}

// NewCachedLoader creates a cache decorator around a source. lookups may be nil.
func NewCachedLoader(inner Source, maxEntries int, lookups *prometheus.CounterVec) *CachedLoader {
	return &CachedLoader{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		lookups: lookups,
	}
}

// Load returns the cached table for path when the file is unchanged, and
// otherwise loads and caches it. Failed loads are not cached.
func (c *CachedLoader) Load(path string) (domain.Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		c.cache.delete(path)
		c.observe("miss")
		return c.inner.Load(path)
	}

	stamp := fileStamp{size: info.Size(), modTime: info.ModTime()}
	if table, ok := c.cache.get(path, stamp); ok {
		c.observe("hit")
		return slices.Clone(table), nil
	}
	c.observe("miss")

	table, err := c.inner.Load(path)
	if err != nil {
		return nil, err
	}
	c.cache.put(path, stamp, table)
	return slices.Clone(table), nil
}

func (c *CachedLoader) observe(result string) {
	if c.lookups != nil {
		c.lookups.WithLabelValues(result).Inc()
	}
}

// fileStamp identifies one version of a file on disk.
type fileStamp struct {
	size    int64
	modTime time.Time
}

func (s fileStamp) equal(o fileStamp) bool {
	return s.size == o.size && s.modTime.Equal(o.modTime)
}

// lruCache is a simple thread-safe LRU cache of loaded tables.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	stamp fileStamp
	value domain.Table
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

// get returns the table for key if it was cached for the same file stamp.
// A stale entry is dropped.
func (c *lruCache) get(key string, stamp fileStamp) (domain.Table, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !e.stamp.equal(stamp) {
		delete(c.entries, key)
		c.remove(e)
		return nil, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, stamp fileStamp, value domain.Table) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.stamp = stamp
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, stamp: stamp, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		delete(c.entries, key)
		c.remove(e)
	}
}

func (c *lruCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
