package proxy

import (
	"context"
	"sync"
	"time"
)

// popularKey is the cache key for the popular-videos list.
const popularKey = "__popular__"

// CachedLib is the caching proxy. It implements VideoLib, delegating misses
// to the wrapped library and serving hits from an in-memory TTL cache.
type CachedLib struct {
	wrapped VideoLib
	ttl     time.Duration
	now     func() time.Time

	mu      sync.RWMutex
	videos  map[string]videoEntry
	popular []Video
	popAt   time.Time

	hits   int
	misses int
}

type videoEntry struct {
	video    Video
	storedAt time.Time
}

// NewCached wraps lib with a TTL cache.
func NewCached(lib VideoLib, ttl time.Duration) *CachedLib {
	return &CachedLib{
		wrapped: lib,
		ttl:     ttl,
		now:     time.Now,
		videos:  make(map[string]videoEntry),
	}
}

// Popular returns the cached list when fresh, otherwise delegates.
func (c *CachedLib) Popular(ctx context.Context) ([]Video, error) {
	c.mu.RLock()
	cached, fresh := c.popular, c.fresh(c.popAt)
	c.mu.RUnlock()

	if cached != nil && fresh {
		c.recordHit()
		return cached, nil
	}

	videos, err := c.wrapped.Popular(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.popular = videos
	c.popAt = c.now()
	c.misses++
	c.mu.Unlock()
	return videos, nil
}

// Video returns the cached video when fresh, otherwise delegates.
func (c *CachedLib) Video(ctx context.Context, id string) (Video, error) {
	c.mu.RLock()
	entry, ok := c.videos[id]
	c.mu.RUnlock()

	if ok && c.fresh(entry.storedAt) {
		c.recordHit()
		return entry.video, nil
	}

	video, err := c.wrapped.Video(ctx, id)
	if err != nil {
		return Video{}, err
	}

	c.mu.Lock()
	c.videos[id] = videoEntry{video: video, storedAt: c.now()}
	c.misses++
	c.mu.Unlock()
	return video, nil
}

// Reset drops every cached entry.
func (c *CachedLib) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.videos = make(map[string]videoEntry)
	c.popular = nil
	c.popAt = time.Time{}
}

// Stats reports cache hits and misses so far.
func (c *CachedLib) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

func (c *CachedLib) fresh(storedAt time.Time) bool {
	return !storedAt.IsZero() && c.now().Sub(storedAt) < c.ttl
}

func (c *CachedLib) recordHit() {
	c.mu.Lock()
	c.hits++
	c.mu.Unlock()
}
