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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type InMemoryCacheTestSuite struct {
	suite.Suite
}

func TestInMemoryCacheSuite(t *testing.T) {
	suite.Run(t, new(InMemoryCacheTestSuite))
}

func (suite *InMemoryCacheTestSuite) TestSetAndGet() {
	c := newInMemoryCache[string]("TestCache", 10, time.Minute)
	key := CacheKey{Key: "flow-1"}

	c.set(key, "detail")
	value, ok := c.get(key)

	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "detail", value)
}

func (suite *InMemoryCacheTestSuite) TestGetMiss() {
	c := newInMemoryCache[string]("TestCache", 10, time.Minute)

	value, ok := c.get(CacheKey{Key: "flow-missing"})

	assert.False(suite.T(), ok)
	assert.Empty(suite.T(), value)
}

func (suite *InMemoryCacheTestSuite) TestExpiredEntryMisses() {
	c := newInMemoryCache[string]("TestCache", 10, 10*time.Millisecond)
	key := CacheKey{Key: "flow-1"}

	c.set(key, "detail")
	time.Sleep(20 * time.Millisecond)

	_, ok := c.get(key)
	assert.False(suite.T(), ok)
}

func (suite *InMemoryCacheTestSuite) TestLRUEviction() {
	c := newInMemoryCache[string]("TestCache", 2, time.Minute)

	c.set(CacheKey{Key: "flow-1"}, "a")
	c.set(CacheKey{Key: "flow-2"}, "b")

	// Touch flow-1 so flow-2 becomes the eviction candidate.
	_, ok := c.get(CacheKey{Key: "flow-1"})
	assert.True(suite.T(), ok)

	c.set(CacheKey{Key: "flow-3"}, "c")

	_, ok = c.get(CacheKey{Key: "flow-2"})
	assert.False(suite.T(), ok)
	_, ok = c.get(CacheKey{Key: "flow-1"})
	assert.True(suite.T(), ok)
	_, ok = c.get(CacheKey{Key: "flow-3"})
	assert.True(suite.T(), ok)
}

func (suite *InMemoryCacheTestSuite) TestDeleteAndClear() {
	c := newInMemoryCache[string]("TestCache", 10, time.Minute)
	key := CacheKey{Key: "flow-1"}

	c.set(key, "detail")
	c.delete(key)
	_, ok := c.get(key)
	assert.False(suite.T(), ok)

	c.set(key, "detail")
	c.clear()
	_, ok = c.get(key)
	assert.False(suite.T(), ok)
	assert.Equal(suite.T(), 0, c.stats().Size)
}

func (suite *InMemoryCacheTestSuite) TestStatsCountHitsAndMisses() {
	c := newInMemoryCache[string]("TestCache", 10, time.Minute)
	key := CacheKey{Key: "flow-1"}

	c.set(key, "detail")
	c.get(key)
	c.get(CacheKey{Key: "flow-missing"})

	stats := c.stats()
	assert.True(suite.T(), stats.Enabled)
	assert.Equal(suite.T(), 1, stats.Size)
	assert.Equal(suite.T(), int64(1), stats.HitCount)
	assert.Equal(suite.T(), int64(1), stats.MissCount)
}

func (suite *InMemoryCacheTestSuite) TestCleanupExpiredSweepsDeadEntries() {
	c := newInMemoryCache[string]("TestCache", 10, 10*time.Millisecond)

	c.set(CacheKey{Key: "flow-1"}, "a")
	c.set(CacheKey{Key: "flow-2"}, "b")
	time.Sleep(20 * time.Millisecond)

	c.cleanupExpired()
	assert.Equal(suite.T(), 0, c.stats().Size)
}

type DisabledCacheManagerTestSuite struct {
	suite.Suite
}

func TestDisabledCacheManagerSuite(t *testing.T) {
	suite.Run(t, new(DisabledCacheManagerTestSuite))
}

func (suite *DisabledCacheManagerTestSuite) TestDisabledManagerNeverHits() {
	manager := &CacheManager[string]{enabled: false}
	key := CacheKey{Key: "flow-1"}

	assert.False(suite.T(), manager.IsEnabled())
	assert.NoError(suite.T(), manager.Set(key, "detail"))

	value, ok := manager.Get(key)
	assert.False(suite.T(), ok)
	assert.Empty(suite.T(), value)

	assert.NoError(suite.T(), manager.Delete(key))
	assert.NoError(suite.T(), manager.Clear())
	assert.False(suite.T(), manager.GetStats().Enabled)
}

func (suite *DisabledCacheManagerTestSuite) TestCacheKeyToString() {
	assert.Equal(suite.T(), "flow-1", CacheKey{Key: "flow-1"}.ToString())
}
