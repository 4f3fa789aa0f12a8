package ner

import (
	"container/list"
	"context"
	"sync"
)

// Cache is an LRU of recognition results keyed by text.
type Cache struct {
	capacity int
	entries  map[string]*list.Element
	lru      *list.List
	mu       sync.Mutex
}

type cacheEntry struct {
	key   string
	value Entities
}

// NewCache creates a cache holding at most capacity results.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = 1
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		lru:      list.New(),
	}
}

// Get returns the cached entities for key if present.
func (c *Cache) Get(key string) (Entities, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.lru.MoveToFront(elem)
		return elem.Value.(*cacheEntry).value, true
	}
	return Entities{}, false
}

// Set stores the entities for key, evicting the least recently used entry at capacity.
func (c *Cache) Set(key string, value Entities) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.lru.MoveToFront(elem)
		elem.Value.(*cacheEntry).value = value
		return
	}

	c.entries[key] = c.lru.PushFront(&cacheEntry{key: key, value: value})
	if c.lru.Len() > c.capacity {
		if oldest := c.lru.Back(); oldest != nil {
			c.lru.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

type cachedRecognizer struct {
	next  Recognizer
	cache *Cache
}

// Cached wraps r so repeated texts are recognized once. Errors are not cached.
func Cached(r Recognizer, capacity int) Recognizer {
	return &cachedRecognizer{next: r, cache: NewCache(capacity)}
}

func (c *cachedRecognizer) Recognize(ctx context.Context, text string) (Entities, error) {
	if ents, ok := c.cache.Get(text); ok {
		return ents, nil
	}
	ents, err := c.next.Recognize(ctx, text)
	if err != nil {
		return Entities{}, err
	}
	c.cache.Set(text, ents)
	return ents, nil
}

func (c *cachedRecognizer) Close() error {
	return c.next.Close()
}
