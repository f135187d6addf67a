// Package cache provides a small LRU used to memoize rendered snippet
// previews, which are expensive to produce on every cursor move.
package cache

import (
	"container/list"
	"fmt"
)

type PreviewCache struct {
	size      int
	evictList *list.List
	items     map[string]*list.Element
}

type entry struct {
	key   string
	value string
}

func NewPreviewCache(size int) *PreviewCache {
	return &PreviewCache{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}
}

// Key builds the cache key for a rendered preview. The modification
// timestamp is part of the key so edits naturally miss.
func Key(id, modified string, width int) string {
	return fmt.Sprintf("%s|%s|%d", id, modified, width)
}

func (c *PreviewCache) Get(key string) (string, bool) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		return ele.Value.(*entry).value, true
	}
	return "", false
}

func (c *PreviewCache) Put(key, value string) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		ele.Value.(*entry).value = value
		return
	}

	ele := c.evictList.PushFront(&entry{key, value})
	c.items[key] = ele

	if c.evictList.Len() > c.size {
		c.removeOldest()
	}
}

func (c *PreviewCache) removeOldest() {
	ele := c.evictList.Back()
	if ele != nil {
		c.removeElement(ele)
	}
}

func (c *PreviewCache) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	kv := e.Value.(*entry)
	delete(c.items, kv.key)
}
