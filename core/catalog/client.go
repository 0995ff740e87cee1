package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"emoji-catalog/core/cache"
	"emoji-catalog/core/decode"
	"emoji-catalog/core/errdefs"
	"emoji-catalog/core/model"
	"emoji-catalog/core/transport"

	"github.com/aquilax/truncate"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	kindEmoji    = "emoji"
	kindPack     = "pack"
	kindCategory = "category"

	// bodyExcerpt bounds how much of an undecodable body is logged.
	bodyExcerpt = 96
)

// Client fetches the catalog and owns its caches.
type Client struct {
	fetcher    transport.Fetcher
	emojis     *cache.RecordCache[*model.Emoji]
	packs      *cache.RecordCache[*model.EmojiPack]
	categories *cache.IndexedCache
	logger     *zap.Logger
	metrics    *Metrics
}

// New creates a Client with empty caches.
func New(fetcher transport.Fetcher, opts ...Option) *Client {
	categories := cache.NewIndexedCache()
	c := &Client{
		fetcher:    fetcher,
		categories: categories,
		emojis: cache.NewRecordCache(kindEmoji, func() *model.Emoji {
			return model.NewEmoji(categories)
		}),
		packs:  cache.NewRecordCache(kindPack, model.NewEmojiPack),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RefreshEmojis fetches every emoji and returns them in listing order.
func (c *Client) RefreshEmojis(ctx context.Context) ([]*model.Emoji, error) {
	var out []*model.Emoji
	err := c.refresh(ctx, transport.ListAllEmojis, func(body string) (int, error) {
		var err error
		out, err = reconcileRecords(c.emojis, body)
		c.metrics.setSize(kindEmoji, c.emojis.Len())
		return len(out), err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RefreshPacks fetches every emoji pack and returns them in listing order.
func (c *Client) RefreshPacks(ctx context.Context) ([]*model.EmojiPack, error) {
	var out []*model.EmojiPack
	err := c.refresh(ctx, transport.ListAllPacks, func(body string) (int, error) {
		var err error
		out, err = reconcileRecords(c.packs, body)
		c.metrics.setSize(kindPack, c.packs.Len())
		return len(out), err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RefreshCategories fetches the category listing and returns the categories
// in listing order. Positions are reconciled strictly in that order.
func (c *Client) RefreshCategories(ctx context.Context) ([]*model.EmojiCategory, error) {
	var out []*model.EmojiCategory
	err := c.refresh(ctx, transport.ListAllCategories, func(body string) (int, error) {
		names, err := decode.Strings(body)
		if err != nil {
			return 0, err
		}
		out = make([]*model.EmojiCategory, len(names))
		for i, name := range names {
			out[i] = c.categories.ReconcileAt(i, name)
		}
		c.metrics.setSize(kindCategory, c.categories.Len())
		return len(out), nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RequestStats fetches the current site statistics. The result is not cached.
func (c *Client) RequestStats(ctx context.Context) (model.PageStats, error) {
	var stats model.PageStats
	err := c.refresh(ctx, transport.ListWebsiteStats, func(body string) (int, error) {
		var fields decode.FieldMap
		if err := decode.Into(body, &fields); err != nil {
			return 0, err
		}
		stats = model.NewPageStats(fields)
		return 1, nil
	})
	return stats, err
}

// RefreshEmojisAsync runs RefreshEmojis on its own goroutine.
func (c *Client) RefreshEmojisAsync(ctx context.Context) *Pending[[]*model.Emoji] {
	return runAsync(ctx, c.RefreshEmojis)
}

// RefreshPacksAsync runs RefreshPacks on its own goroutine.
func (c *Client) RefreshPacksAsync(ctx context.Context) *Pending[[]*model.EmojiPack] {
	return runAsync(ctx, c.RefreshPacks)
}

// RefreshCategoriesAsync runs RefreshCategories on its own goroutine.
func (c *Client) RefreshCategoriesAsync(ctx context.Context) *Pending[[]*model.EmojiCategory] {
	return runAsync(ctx, c.RefreshCategories)
}

// RequestStatsAsync runs RequestStats on its own goroutine.
func (c *Client) RequestStatsAsync(ctx context.Context) *Pending[model.PageStats] {
	return runAsync(ctx, c.RequestStats)
}

// Summary reports the collection sizes returned by RefreshAll.
type Summary struct {
	Emojis     int `json:"emojis"`
	Packs      int `json:"packs"`
	Categories int `json:"categories"`
}

// RefreshAll refreshes emojis, packs and categories concurrently. It
// returns the first failure; collections that succeeded stay refreshed.
func (c *Client) RefreshAll(ctx context.Context) (Summary, error) {
	var s Summary
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		emojis, err := c.RefreshEmojis(gctx)
		s.Emojis = len(emojis)
		return err
	})
	g.Go(func() error {
		packs, err := c.RefreshPacks(gctx)
		s.Packs = len(packs)
		return err
	})
	g.Go(func() error {
		categories, err := c.RefreshCategories(gctx)
		s.Categories = len(categories)
		return err
	})

	err := g.Wait()
	return s, err
}

// LookupEmoji returns a cached emoji without network access.
func (c *Client) LookupEmoji(id int) (*model.Emoji, bool) {
	return c.emojis.Lookup(id)
}

// LookupPack returns a cached pack without network access.
func (c *Client) LookupPack(id int) (*model.EmojiPack, bool) {
	return c.packs.Lookup(id)
}

// LookupCategory returns the category currently at index.
func (c *Client) LookupCategory(index int) (*model.EmojiCategory, bool) {
	return c.categories.Lookup(index)
}

// RequestEmojiByID refreshes the emoji cache and returns the emoji with id.
// It fails with errdefs.ErrNotFound if the emoji is still unknown.
func (c *Client) RequestEmojiByID(ctx context.Context, id int) (*model.Emoji, error) {
	if _, err := c.RefreshEmojis(ctx); err != nil {
		return nil, err
	}
	e, ok := c.emojis.Lookup(id)
	if !ok {
		return nil, &errdefs.NotFoundError{Kind: kindEmoji, ID: id}
	}
	return e, nil
}

// RequestPackByID refreshes the pack cache and returns the pack with id.
// It fails with errdefs.ErrNotFound if the pack is still unknown.
func (c *Client) RequestPackByID(ctx context.Context, id int) (*model.EmojiPack, error) {
	if _, err := c.RefreshPacks(ctx); err != nil {
		return nil, err
	}
	p, ok := c.packs.Lookup(id)
	if !ok {
		return nil, &errdefs.NotFoundError{Kind: kindPack, ID: id}
	}
	return p, nil
}

// Snapshot is the cached state at one point in time.
type Snapshot struct {
	Emojis     []*model.Emoji         `json:"emojis"`
	Packs      []*model.EmojiPack     `json:"packs"`
	Categories []*model.EmojiCategory `json:"categories"`
}

// Snapshot returns the cached records. Emojis and packs are ordered by id,
// categories by position.
func (c *Client) Snapshot() Snapshot {
	return Snapshot{
		Emojis:     c.emojis.Snapshot(),
		Packs:      c.packs.Snapshot(),
		Categories: c.categories.Snapshot(),
	}
}

// refresh fetches endpoint and hands the body to apply, logging and
// recording the outcome.
func (c *Client) refresh(ctx context.Context, endpoint transport.Endpoint, apply func(body string) (int, error)) error {
	start := time.Now()
	l := c.logger.With(zap.String("endpoint", endpoint.String()))
	l.Debug("Refresh started")

	body, err := c.fetcher.Fetch(ctx, endpoint)
	if err != nil {
		return c.refreshFailed(l, endpoint, start, err)
	}

	n, err := apply(body)
	if err != nil {
		l = l.With(zap.String("body", truncate.Truncate(body, bodyExcerpt, "...", truncate.PositionMiddle)))
		return c.refreshFailed(l, endpoint, start, err)
	}

	elapsed := time.Since(start)
	c.metrics.observe(endpoint, "ok", elapsed)
	l.Debug("Refresh finished", zap.Int("count", n), zap.Duration("elapsed", elapsed))
	return nil
}

func (c *Client) refreshFailed(l *zap.Logger, endpoint transport.Endpoint, start time.Time, err error) error {
	c.metrics.observe(endpoint, outcome(err), time.Since(start))
	l.Warn("Refresh failed", zap.Error(err))
	return fmt.Errorf("refresh %s: %w", endpoint, err)
}

// reconcileRecords decodes a record collection and reconciles it in order.
func reconcileRecords[T cache.Record](c *cache.RecordCache[T], body string) ([]T, error) {
	fields, err := decode.Objects(body)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(fields))
	for _, f := range fields {
		rec, err := c.Reconcile(f)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func outcome(err error) string {
	switch {
	case errors.Is(err, errdefs.ErrTransport):
		return "transport"
	case errors.Is(err, errdefs.ErrDecoding):
		return "decoding"
	default:
		return "error"
	}
}
