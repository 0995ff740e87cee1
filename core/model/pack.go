package model

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sync"

	"emoji-catalog/core/decode"
)

// EmojiPack is a downloadable bundle of emojis.
type EmojiPack struct {
	mu sync.RWMutex

	id          int
	name        string
	description string
	slug        string
	imageURL    *url.URL
	downloadURL *url.URL
	size        int
}

// NewEmojiPack allocates an empty pack.
func NewEmojiPack() *EmojiPack {
	return &EmojiPack{}
}

// Apply merges fields into the pack. The download field is required for a
// pack that has never been populated.
func (p *EmojiPack) Apply(fields decode.FieldMap) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := fields.IntOr("id", p.id)
	record := fmt.Sprintf("pack %d", id)

	image, err := applyURL(record, fields, "image", p.imageURL, false)
	if err != nil {
		return err
	}
	download, err := applyURL(record, fields, "download", p.downloadURL, true)
	if err != nil {
		return err
	}

	p.id = id
	p.imageURL = image
	p.downloadURL = download
	p.name = fields.StringOr("name", p.name)
	p.description = fields.StringOr("description", p.description)
	p.slug = fields.StringOr("slug", p.slug)
	p.size = fields.IntOr("amount", p.size)
	return nil
}

// ID returns the pack id.
func (p *EmojiPack) ID() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.id
}

// Name returns the pack name.
func (p *EmojiPack) Name() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.name
}

// Description returns the pack description.
func (p *EmojiPack) Description() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.description
}

// Slug returns the URL slug.
func (p *EmojiPack) Slug() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.slug
}

// ImageURL returns the preview image URL, or nil if the pack has none.
func (p *EmojiPack) ImageURL() *url.URL {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.imageURL
}

// DownloadURL returns the archive download URL.
func (p *EmojiPack) DownloadURL() *url.URL {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.downloadURL
}

// Size returns the number of emojis in the pack.
func (p *EmojiPack) Size() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.size
}

type packJSON struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	Image       string `json:"image,omitempty"`
	Download    string `json:"download"`
	Amount      int    `json:"amount"`
}

// MarshalJSON encodes the pack in the upstream wire shape.
func (p *EmojiPack) MarshalJSON() ([]byte, error) {
	p.mu.RLock()
	out := packJSON{
		ID:          p.id,
		Name:        p.name,
		Description: p.description,
		Slug:        p.slug,
		Image:       urlString(p.imageURL),
		Download:    urlString(p.downloadURL),
		Amount:      p.size,
	}
	p.mu.RUnlock()

	return json.Marshal(out)
}
