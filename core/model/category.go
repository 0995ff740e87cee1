package model

import (
	"encoding/json"
	"sync/atomic"
)

// EmojiCategory is a named category. Its name never changes; its index is
// its current position in the upstream listing and moves when the listing
// is reordered.
type EmojiCategory struct {
	name  string
	index atomic.Int64
}

// NewEmojiCategory creates a category at index.
func NewEmojiCategory(name string, index int) *EmojiCategory {
	c := &EmojiCategory{name: name}
	c.index.Store(int64(index))
	return c
}

// Name returns the category name.
func (c *EmojiCategory) Name() string { return c.name }

// Index returns the category's current position.
func (c *EmojiCategory) Index() int { return int(c.index.Load()) }

// SetIndex moves the category. Only the indexed cache should call it.
func (c *EmojiCategory) SetIndex(index int) { c.index.Store(int64(index)) }

// MarshalJSON encodes the category as {"name": ..., "index": ...}.
func (c *EmojiCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name  string `json:"name"`
		Index int    `json:"index"`
	}{c.name, c.Index()})
}

// CategoryResolver finds the category currently at an index.
type CategoryResolver interface {
	Lookup(index int) (*EmojiCategory, bool)
}

// CategoryRef is a weak reference to a category by index. It does not keep
// the category alive in any cache; it only remembers where to look.
//
// Once a ref has resolved it keeps returning the same category. Take a new
// ref from Emoji.Category to observe later reorderings.
type CategoryRef struct {
	index    int
	resolver CategoryResolver
	resolved atomic.Pointer[EmojiCategory]
}

// NewCategoryRef creates a reference to the category at index.
func NewCategoryRef(index int, resolver CategoryResolver) *CategoryRef {
	return &CategoryRef{index: index, resolver: resolver}
}

// Index returns the referenced position.
func (r *CategoryRef) Index() int { return r.index }

// Resolve returns the referenced category. It reports false while the index
// is not populated, which is not an error: the category listing may simply
// not have been fetched yet.
func (r *CategoryRef) Resolve() (*EmojiCategory, bool) {
	if c := r.resolved.Load(); c != nil {
		return c, true
	}
	if r.resolver == nil {
		return nil, false
	}
	c, ok := r.resolver.Lookup(r.index)
	if !ok || c == nil {
		return nil, false
	}
	r.resolved.CompareAndSwap(nil, c)
	return r.resolved.Load(), true
}
