// Package image turns raster images into terminal output: Kitty, iTerm2
// and Sixel escape sequences via go-termimg, or 24-bit halfblock text.
package image

import (
	"container/list"
	"fmt"
	"sync"
)

// CacheKey identifies one rendered frame. The face changes at most once
// per frame, so the pixel hash is what usually differs between keys.
type CacheKey struct {
	Protocol  string
	Width     int
	Height    int
	ImageHash [32]byte
}

// String formats the key for logs.
func (k CacheKey) String() string {
	return fmt.Sprintf("%s:%dx%d:%x", k.Protocol, k.Width, k.Height, k.ImageHash[:8])
}

// CacheStats is a point-in-time view of a Cache.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Entries   int
	SizeBytes int64
}

type frame struct {
	key CacheKey
	out string
}

// Cache keeps recently rendered frames, bounded by the total byte length
// of their output. A still clock (the second hand hidden or the same
// second redrawn) is served from here.
type Cache struct {
	mu        sync.Mutex
	items     map[CacheKey]*list.Element
	order     *list.List // front is most recent
	maxBytes  int64
	usedBytes int64
	stats     CacheStats
}

// NewCache creates a cache of maxMB megabytes, 32 if maxMB <= 0.
func NewCache(maxMB int) *Cache {
	if maxMB <= 0 {
		maxMB = 32
	}
	return &Cache{
		items:    make(map[CacheKey]*list.Element),
		order:    list.New(),
		maxBytes: int64(maxMB) << 20,
	}
}

// Get returns the frame stored under key and marks it most recent.
func (c *Cache) Get(key CacheKey) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		return "", false
	}
	c.stats.Hits++
	c.order.MoveToFront(e)
	return e.Value.(*frame).out, true
}

// Put stores out under key, then drops least recent frames until the
// cache fits. A single frame larger than the cache is kept alone.
func (c *Cache) Put(key CacheKey, out string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		c.remove(e)
	}
	c.items[key] = c.order.PushFront(&frame{key: key, out: out})
	c.usedBytes += int64(len(out))

	for c.usedBytes > c.maxBytes && c.order.Len() > 1 {
		c.remove(c.order.Back())
		c.stats.Evictions++
	}
}

// Invalidate drops every frame. Counters are kept.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.items)
	c.order.Init()
	c.usedBytes = 0
}

// Stats returns the hit, miss and eviction counters with the current
// entry count and size.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.stats
	st.Entries = c.order.Len()
	st.SizeBytes = c.usedBytes
	return st
}

// remove unlinks e. Caller holds c.mu.
func (c *Cache) remove(e *list.Element) {
	f := c.order.Remove(e).(*frame)
	delete(c.items, f.key)
	c.usedBytes -= int64(len(f.out))
}

func makeCacheKey(protocol string, width, height int, sum [32]byte) CacheKey {
	return CacheKey{Protocol: protocol, Width: width, Height: height, ImageHash: sum}
}
