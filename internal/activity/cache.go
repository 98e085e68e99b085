package activity

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/tourze/raffle-core/internal/domain"
)

// activityCache provides an in-memory LRU cache for activity lookups with
// time-based expiration. Only the row is cached; the time gate is always
// recomputed from the clock so a cached activity cannot extend its window.
type activityCache struct {
	lru *expirable.LRU[int64, *domain.Activity]
}

// newActivityCache creates a new activity cache with the specified size and TTL
func newActivityCache(size int, ttl time.Duration) *activityCache {
	return &activityCache{
		lru: expirable.NewLRU[int64, *domain.Activity](size, nil, ttl),
	}
}

func (c *activityCache) Get(id int64) (*domain.Activity, bool) {
	return c.lru.Get(id)
}

func (c *activityCache) Set(id int64, activity *domain.Activity) {
	c.lru.Add(id, activity)
}

// Invalidate removes an activity from the cache
func (c *activityCache) Invalidate(id int64) {
	c.lru.Remove(id)
}

// Clear removes all entries from the cache
func (c *activityCache) Clear() {
	c.lru.Purge()
}
