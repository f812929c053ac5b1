package loader

import (
	"container/list"
	"sync"
	"time"

	"briefly/briefly/types"
)

const defaultMemoMaxEntries = 256

// memoCache is a TTL'd LRU over acquisition results. Purely a
// performance optimization: entries are appended, aged out, or evicted,
// never explicitly invalidated.
type memoCache struct {
	mu         sync.Mutex
	entries    map[string]*list.Element
	order      *list.List
	maxEntries int
}

type memoCacheEntry struct {
	key       string
	docs      []types.Document
	expiresAt time.Time
}

func newMemoCache(maxEntries int) *memoCache {
	if maxEntries <= 0 {
		maxEntries = defaultMemoMaxEntries
	}

	return &memoCache{
		entries:    make(map[string]*list.Element, maxEntries),
		order:      list.New(),
		maxEntries: maxEntries,
	}
}

func (c *memoCache) get(key string, now time.Time) ([]types.Document, bool) {
	if c == nil || key == "" {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	entry := elem.Value.(*memoCacheEntry)
	if now.After(entry.expiresAt) {
		c.removeElement(elem)
		return nil, false
	}

	c.order.MoveToFront(elem)
	return entry.docs, true
}

func (c *memoCache) set(key string, docs []types.Document, expiresAt, now time.Time) {
	if c == nil || key == "" || len(docs) == 0 || !expiresAt.After(now) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		entry := elem.Value.(*memoCacheEntry)
		entry.docs = docs
		entry.expiresAt = expiresAt
		c.order.MoveToFront(elem)
		return
	}

	elem := c.order.PushFront(&memoCacheEntry{
		key:       key,
		docs:      docs,
		expiresAt: expiresAt,
	})
	c.entries[key] = elem

	c.evictExpiredLocked(now)
	c.enforceSizeLimitLocked()
}

func (c *memoCache) evictExpiredLocked(now time.Time) {
	for elem := c.order.Back(); elem != nil; {
		prev := elem.Prev()
		if now.After(elem.Value.(*memoCacheEntry).expiresAt) {
			c.removeElement(elem)
		}
		elem = prev
	}
}

func (c *memoCache) enforceSizeLimitLocked() {
	for len(c.entries) > c.maxEntries {
		elem := c.order.Back()
		if elem == nil {
			return
		}
		c.removeElement(elem)
	}
}

func (c *memoCache) removeElement(elem *list.Element) {
	delete(c.entries, elem.Value.(*memoCacheEntry).key)
	c.order.Remove(elem)
}
