// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"container/list"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gldraw/glcore"
)

// DefaultAnalysisCacheSize is the number of analyzed shader sources kept.
const DefaultAnalysisCacheSize = 128

// analysisKey identifies one shader source for one stage.
type analysisKey struct {
	stage  glcore.Enum
	source string
}

// analysis is the immutable outcome of analyzing a source. Exactly one of
// unit and errs is set.
type analysis struct {
	unit *shaderUnit
	errs []string
}

type analysisEntry struct {
	key   analysisKey
	value analysis
}

// analysisCache is an LRU of analysis results shared by every device in
// the process. Test suites compile the same few sources many times, often
// from parallel tests, so it is safe for concurrent use.
type analysisCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[analysisKey]*list.Element
	lru      *list.List // front is most recently used

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

func newAnalysisCache(capacity int) *analysisCache {
	if capacity <= 0 {
		capacity = DefaultAnalysisCacheSize
	}
	return &analysisCache{
		capacity: capacity,
		entries:  make(map[analysisKey]*list.Element),
		lru:      list.New(),
	}
}

// getOrAnalyze returns the cached result for key or runs create and keeps
// its result. create runs under the lock so a source is analyzed once.
func (c *analysisCache) getOrAnalyze(key analysisKey, create func() analysis) analysis {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.lru.MoveToFront(el)
		c.hits.Add(1)
		return el.Value.(*analysisEntry).value
	}
	c.misses.Add(1)

	value := create()
	for c.lru.Len() >= c.capacity {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*analysisEntry).key)
		c.evictions.Add(1)
	}
	c.entries[key] = c.lru.PushFront(&analysisEntry{key: key, value: value})
	return value
}

func (c *analysisCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func (c *analysisCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[analysisKey]*list.Element)
	c.lru.Init()
}

// CacheStats reports the shared shader analysis cache.
type CacheStats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns hits/(hits+misses), or 0 before any lookup.
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

var analyses = newAnalysisCache(DefaultAnalysisCacheSize)

// AnalysisCacheStats returns statistics of the shader analysis cache shared
// by all headless devices.
func AnalysisCacheStats() CacheStats {
	return CacheStats{
		Len:       analyses.len(),
		Capacity:  analyses.capacity,
		Hits:      analyses.hits.Load(),
		Misses:    analyses.misses.Load(),
		Evictions: analyses.evictions.Load(),
	}
}

// ResetAnalysisCache empties the shader analysis cache and zeroes its
// counters.
func ResetAnalysisCache() {
	analyses.clear()
	analyses.hits.Store(0)
	analyses.misses.Store(0)
	analyses.evictions.Store(0)
}
