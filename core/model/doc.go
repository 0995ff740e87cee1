// Package model defines the catalog entities and how a decoded field-map is
// applied onto them.
//
// Emoji and EmojiPack are identified by an integer id and are mutated in
// place whenever the same id is reconciled again, so a pointer obtained
// earlier keeps observing fresh data. A field missing from the incoming map
// keeps its current value.
//
// EmojiCategory is identified by name but addressed by its position in the
// upstream listing; its position is owned by the indexed cache.
//
// PageStats is a plain value produced fresh on every request.
//
// All entity accessors are safe for concurrent use. An update is validated
// in full before anything is assigned, so readers observe either the state
// before or after an update, never a mix of both.
package model
