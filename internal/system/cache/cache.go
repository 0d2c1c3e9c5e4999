/*
 * Copyright (c) 2025, Sales Journey (https://salesjourney.io).
 *
 * Sales Journey licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package cache provides an in-memory cache with TTL expiry and LRU eviction.
package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/salesjourney/onboard/internal/system/log"
)

// inMemoryCache is a size-bounded TTL cache with LRU eviction.
type inMemoryCache[T any] struct {
	name        string
	entries     map[CacheKey]*cacheEntry[T]
	accessOrder *list.List
	elements    map[CacheKey]*list.Element
	mu          sync.Mutex
	maxSize     int
	ttl         time.Duration
	hitCount    int64
	missCount   int64
}

func newInMemoryCache[T any](name string, maxSize int, ttl time.Duration) *inMemoryCache[T] {
	if maxSize <= 0 {
		maxSize = defaultCacheSize
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL * time.Second
	}

	return &inMemoryCache[T]{
		name:        name,
		entries:     make(map[CacheKey]*cacheEntry[T]),
		accessOrder: list.New(),
		elements:    make(map[CacheKey]*list.Element),
		maxSize:     maxSize,
		ttl:         ttl,
	}
}

// set adds or refreshes an entry, evicting the least recently used entry
// when the cache is full.
func (c *inMemoryCache[T]) set(key CacheKey, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := &cacheEntry[T]{
		value:      value,
		expiryTime: time.Now().Add(c.ttl),
	}

	if element, exists := c.elements[key]; exists {
		c.entries[key] = entry
		c.accessOrder.MoveToFront(element)
		return
	}

	c.entries[key] = entry
	c.elements[key] = c.accessOrder.PushFront(key)

	if len(c.entries) > c.maxSize {
		c.evictOldest()
	}
}

// get retrieves a live entry, updating the access order on a hit.
func (c *inMemoryCache[T]) get(key CacheKey) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[key]
	if !exists {
		c.missCount++
		var zero T
		return zero, false
	}

	if time.Now().After(entry.expiryTime) {
		c.deleteLocked(key)
		c.missCount++
		var zero T
		return zero, false
	}

	c.accessOrder.MoveToFront(c.elements[key])
	c.hitCount++
	return entry.value, true
}

func (c *inMemoryCache[T]) delete(key CacheKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleteLocked(key)
}

func (c *inMemoryCache[T]) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[CacheKey]*cacheEntry[T])
	c.elements = make(map[CacheKey]*list.Element)
	c.accessOrder.Init()
	c.hitCount = 0
	c.missCount = 0
}

func (c *inMemoryCache[T]) stats() CacheStat {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStat{
		Enabled:   true,
		Size:      len(c.entries),
		MaxSize:   c.maxSize,
		HitCount:  c.hitCount,
		MissCount: c.missCount,
	}
}

// cleanupExpired removes all expired entries.
func (c *inMemoryCache[T]) cleanupExpired() {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "InMemoryCache"),
		log.String("name", c.name))

	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	cleaned := 0
	for key, entry := range c.entries {
		if now.After(entry.expiryTime) {
			c.deleteLocked(key)
			cleaned++
		}
	}

	if cleaned > 0 {
		logger.Debug("Expired cache entries cleaned", log.Int("count", cleaned))
	}
}

func (c *inMemoryCache[T]) evictOldest() {
	oldest := c.accessOrder.Back()
	if oldest == nil {
		return
	}
	c.deleteLocked(oldest.Value.(CacheKey))
}

func (c *inMemoryCache[T]) deleteLocked(key CacheKey) {
	if element, exists := c.elements[key]; exists {
		c.accessOrder.Remove(element)
		delete(c.elements, key)
	}
	delete(c.entries, key)
}
