package model

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sync"

	"emoji-catalog/core/decode"
)

// Emoji is a single catalog emoji.
type Emoji struct {
	mu sync.RWMutex

	id          int
	title       string
	slug        string
	imageURL    *url.URL
	description string
	category    int
	license     string
	source      string
	faves       int
	submittedBy string
	width       int
	height      int
	filesize    int

	categories CategoryResolver
}

// NewEmoji allocates an empty emoji whose category reference resolves
// against categories. categories may be nil, in which case the reference
// never resolves.
func NewEmoji(categories CategoryResolver) *Emoji {
	return &Emoji{categories: categories}
}

// Apply merges fields into the emoji. The image field is required for an
// emoji that has never been populated.
func (e *Emoji) Apply(fields decode.FieldMap) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := fields.IntOr("id", e.id)
	record := fmt.Sprintf("emoji %d", id)

	image, err := applyURL(record, fields, "image", e.imageURL, true)
	if err != nil {
		return err
	}

	e.id = id
	e.imageURL = image
	e.title = fields.StringOr("title", e.title)
	e.slug = fields.StringOr("slug", e.slug)
	e.description = fields.StringOr("description", e.description)
	e.category = fields.IntOr("category", e.category)
	e.license = fields.StringOr("license", e.license)
	e.source = fields.StringOr("source", e.source)
	e.faves = fields.IntOr("faves", e.faves)
	e.submittedBy = fields.StringOr("submitted_by", e.submittedBy)
	e.width = fields.IntOr("width", e.width)
	e.height = fields.IntOr("height", e.height)
	e.filesize = fields.IntOr("filesize", e.filesize)
	return nil
}

// ID returns the emoji id.
func (e *Emoji) ID() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.id
}

// Title returns the emoji title.
func (e *Emoji) Title() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.title
}

// Slug returns the URL slug.
func (e *Emoji) Slug() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.slug
}

// ImageURL returns the image URL.
func (e *Emoji) ImageURL() *url.URL {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.imageURL
}

// Description returns the emoji description.
func (e *Emoji) Description() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.description
}

// Category returns a fresh weak reference to the emoji's category. It
// resolves only once the category listing has been fetched.
func (e *Emoji) Category() *CategoryRef {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return NewCategoryRef(e.category, e.categories)
}

// License returns the license, absent when empty or "0".
func (e *Emoji) License() (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.license == "" || e.license == "0" {
		return "", false
	}
	return e.license, true
}

// Source returns the source, absent when empty.
func (e *Emoji) Source() (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.source, e.source != ""
}

// Faves returns the fave count as of the last refresh.
func (e *Emoji) Faves() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.faves
}

// SubmittedBy returns the submitter name.
func (e *Emoji) SubmittedBy() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.submittedBy
}

// Width returns the image width, absent when zero.
func (e *Emoji) Width() (int, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.width, e.width != 0
}

// Height returns the image height, absent when zero.
func (e *Emoji) Height() (int, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.height, e.height != 0
}

// Filesize returns the image file size, absent when zero.
func (e *Emoji) Filesize() (int, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.filesize, e.filesize != 0
}

// emojiJSON mirrors the upstream wire shape. Absent optional fields are omitted.
type emojiJSON struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Category    int    `json:"category"`
	License     string `json:"license,omitempty"`
	Source      string `json:"source,omitempty"`
	Faves       int    `json:"faves"`
	SubmittedBy string `json:"submitted_by"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	Filesize    int    `json:"filesize,omitempty"`
}

// MarshalJSON encodes the emoji in the upstream wire shape.
func (e *Emoji) MarshalJSON() ([]byte, error) {
	e.mu.RLock()
	out := emojiJSON{
		ID:          e.id,
		Title:       e.title,
		Slug:        e.slug,
		Image:       urlString(e.imageURL),
		Description: e.description,
		Category:    e.category,
		Source:      e.source,
		Faves:       e.faves,
		SubmittedBy: e.submittedBy,
		Width:       e.width,
		Height:      e.height,
		Filesize:    e.filesize,
	}
	if e.license != "0" {
		out.License = e.license
	}
	e.mu.RUnlock()

	return json.Marshal(out)
}
