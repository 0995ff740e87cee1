package cache

import (
	"sync"

	"emoji-catalog/core/model"
)

// IndexedCache holds categories addressed by position.
type IndexedCache struct {
	mu     sync.RWMutex
	slots  []*model.EmojiCategory
	byName map[string]int
}

// NewIndexedCache creates an empty positional cache.
func NewIndexedCache() *IndexedCache {
	return &IndexedCache{byName: make(map[string]int)}
}

// ReconcileAt records that the listing has name at index and returns the
// live category for name.
//
//   - name already at index: nothing moves.
//   - name cached at another slot and index in range: the two slots swap.
//   - name unknown and index in range: the new category takes index and the
//     previous occupant is appended at the end.
//   - name unknown and index out of range: the new category is appended.
//   - name cached and index out of range: nothing moves. This only happens
//     when a listing repeats a name.
func (c *IndexedCache) ReconcileAt(index int, name string) *model.EmojiCategory {
	c.mu.Lock()
	defer c.mu.Unlock()

	inRange := index >= 0 && index < len(c.slots)

	if old, ok := c.byName[name]; ok {
		cat := c.slots[old]
		if old == index || !inRange {
			return cat
		}
		c.place(c.slots[index], old)
		c.place(cat, index)
		return cat
	}

	cat := model.NewEmojiCategory(name, len(c.slots))
	if !inRange {
		c.slots = append(c.slots, cat)
		c.byName[name] = cat.Index()
		return cat
	}

	displaced := c.slots[index]
	c.slots = append(c.slots, nil)
	c.place(displaced, len(c.slots)-1)
	c.place(cat, index)
	return cat
}

// place puts cat at index; the caller holds the write lock.
func (c *IndexedCache) place(cat *model.EmojiCategory, index int) {
	c.slots[index] = cat
	c.byName[cat.Name()] = index
	cat.SetIndex(index)
}

// Lookup returns the category currently at index. Out-of-range indices
// report false; callers treat that as "not resolved yet".
func (c *IndexedCache) Lookup(index int) (*model.EmojiCategory, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if index < 0 || index >= len(c.slots) {
		return nil, false
	}
	return c.slots[index], true
}

// LookupName returns the category with name, wherever it currently sits.
func (c *IndexedCache) LookupName(name string) (*model.EmojiCategory, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return c.slots[i], true
}

// Len returns the number of cached categories.
func (c *IndexedCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.slots)
}

// Snapshot returns the categories in slot order.
func (c *IndexedCache) Snapshot() []*model.EmojiCategory {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*model.EmojiCategory, len(c.slots))
	copy(out, c.slots)
	return out
}
