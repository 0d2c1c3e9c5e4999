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

package cache

import (
	"reflect"
	"sync"
	"time"

	"github.com/salesjourney/onboard/internal/system/config"
	"github.com/salesjourney/onboard/internal/system/log"
)

const loggerComponentName = "CacheManager"

// CacheManagerInterface defines the interface for cache managers.
type CacheManagerInterface[T any] interface {
	Set(key CacheKey, value T) error
	Get(key CacheKey) (T, bool)
	Delete(key CacheKey) error
	Clear() error
	IsEnabled() bool
	GetStats() CacheStat
}

// CacheManager implements CacheManagerInterface over an in-memory cache.
type CacheManager[T any] struct {
	enabled bool
	cache   *inMemoryCache[T]
}

// NewCacheManager creates a cache manager for the named cache, applying the
// per-cache configuration overrides from the server configuration.
func NewCacheManager[T any](cacheName string) CacheManagerInterface[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String("cacheName", cacheName))

	cacheConfig := config.GetOnboardRuntime().Config.Cache
	cacheProperty := getCacheProperty(cacheConfig, cacheName)

	if cacheConfig.Disabled || cacheProperty.Disabled {
		logger.Debug("Caching is disabled, returning empty cache manager")
		return &CacheManager[T]{enabled: false}
	}

	size := cacheProperty.Size
	if size <= 0 {
		size = cacheConfig.Size
	}
	ttl := cacheProperty.TTL
	if ttl <= 0 {
		ttl = cacheConfig.TTL
	}

	cm := &CacheManager[T]{
		enabled: true,
		cache:   newInMemoryCache[T](cacheName, size, time.Duration(ttl)*time.Second),
	}
	cm.startCleanupRoutine(getCleanupInterval(cacheConfig))

	return cm
}

// Set stores a value in the cache.
func (cm *CacheManager[T]) Set(key CacheKey, value T) error {
	if cm.enabled {
		cm.cache.set(key, value)
	}
	return nil
}

// Get retrieves a value from the cache.
func (cm *CacheManager[T]) Get(key CacheKey) (T, bool) {
	if !cm.enabled {
		var zero T
		return zero, false
	}
	return cm.cache.get(key)
}

// Delete removes a value from the cache.
func (cm *CacheManager[T]) Delete(key CacheKey) error {
	if cm.enabled {
		cm.cache.delete(key)
	}
	return nil
}

// Clear removes all entries in the cache.
func (cm *CacheManager[T]) Clear() error {
	if cm.enabled {
		cm.cache.clear()
	}
	return nil
}

// IsEnabled returns whether the cache manager is enabled.
func (cm *CacheManager[T]) IsEnabled() bool {
	return cm.enabled
}

// GetStats returns cache statistics.
func (cm *CacheManager[T]) GetStats() CacheStat {
	if !cm.enabled {
		return CacheStat{Enabled: false}
	}
	return cm.cache.stats()
}

// startCleanupRoutine starts a background sweep of expired entries.
func (cm *CacheManager[T]) startCleanupRoutine(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			cm.cache.cleanupExpired()
		}
	}()
}

// getCacheProperty retrieves the cache property for the specified cache name.
func getCacheProperty(cacheConfig config.CacheConfig, cacheName string) config.CacheProperty {
	for _, property := range cacheConfig.Properties {
		if property.Name == cacheName {
			return property
		}
	}
	return config.CacheProperty{}
}

// getCleanupInterval retrieves the cleanup interval from the cache configuration.
func getCleanupInterval(cacheConfig config.CacheConfig) time.Duration {
	interval := cacheConfig.CleanupInterval
	if interval <= 0 {
		interval = defaultCleanupInterval
	}
	return time.Duration(interval) * time.Second
}

// cacheStore is a singleton that holds all cache managers.
type cacheStore struct {
	caches map[string]interface{}
	mu     sync.RWMutex
}

var (
	storeInstance *cacheStore
	storeOnce     sync.Once
)

func getCacheStore() *cacheStore {
	storeOnce.Do(func() {
		storeInstance = &cacheStore{
			caches: make(map[string]interface{}),
		}
	})
	return storeInstance
}

// GetCacheManager returns a singleton cache manager for the given type and cache name.
func GetCacheManager[T any](cacheName string) CacheManagerInterface[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	cs := getCacheStore()

	var t T
	typeName := reflect.TypeOf(&t).Elem().String()
	cacheKey := cacheName + ":" + typeName

	cs.mu.RLock()
	if cm, exists := cs.caches[cacheKey]; exists {
		cs.mu.RUnlock()
		if retCM, ok := cm.(CacheManagerInterface[T]); ok {
			return retCM
		}
		logger.Warn("Type mismatch for cache manager", log.String("cacheName", cacheName),
			log.String("expectedType", typeName))
		return nil
	}
	cs.mu.RUnlock()

	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cm, exists := cs.caches[cacheKey]; exists {
		if retCM, ok := cm.(CacheManagerInterface[T]); ok {
			return retCM
		}
		logger.Warn("Type mismatch for cache manager", log.String("cacheName", cacheName),
			log.String("expectedType", typeName))
		return nil
	}

	newCM := NewCacheManager[T](cacheName)
	cs.caches[cacheKey] = newCM

	return newCM
}

// ResetCacheStore clears the cache manager store. Used in tests.
func ResetCacheStore() {
	if storeInstance != nil {
		storeInstance.mu.Lock()
		storeInstance.caches = make(map[string]interface{})
		storeInstance.mu.Unlock()
	}
}
