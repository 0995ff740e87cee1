package emoji

import (
	"context"
	"time"

	"emoji-catalog/core/catalog"
	"emoji-catalog/core/model"

	"go.uber.org/zap"
)

// Service serves catalog data to the HTTP mirror.
type Service struct {
	client *catalog.Client
	logger *zap.Logger
}

// NewService creates a new emoji service.
func NewService(client *catalog.Client, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Emojis returns the cached emojis ordered by id, refreshing first when asked.
func (s *Service) Emojis(ctx context.Context, refresh bool) ([]*model.Emoji, error) {
	if refresh {
		return s.client.RefreshEmojis(ctx)
	}
	return s.client.Snapshot().Emojis, nil
}

// Emoji returns the emoji with id, fetching the collection on a cache miss.
func (s *Service) Emoji(ctx context.Context, id int) (*model.Emoji, error) {
	if e, ok := s.client.LookupEmoji(id); ok {
		return e, nil
	}
	return s.client.RequestEmojiByID(ctx, id)
}

// Packs returns the cached packs ordered by id, refreshing first when asked.
func (s *Service) Packs(ctx context.Context, refresh bool) ([]*model.EmojiPack, error) {
	if refresh {
		return s.client.RefreshPacks(ctx)
	}
	return s.client.Snapshot().Packs, nil
}

// Pack returns the pack with id, fetching the collection on a cache miss.
func (s *Service) Pack(ctx context.Context, id int) (*model.EmojiPack, error) {
	if p, ok := s.client.LookupPack(id); ok {
		return p, nil
	}
	return s.client.RequestPackByID(ctx, id)
}

// Categories returns the cached categories in position order.
func (s *Service) Categories(ctx context.Context, refresh bool) ([]*model.EmojiCategory, error) {
	if refresh {
		return s.client.RefreshCategories(ctx)
	}
	return s.client.Snapshot().Categories, nil
}

// Category returns the category currently at index.
func (s *Service) Category(index int) (*model.EmojiCategory, bool) {
	return s.client.LookupCategory(index)
}

// Stats always asks the remote service; stats are never cached.
func (s *Service) Stats(ctx context.Context) (model.PageStats, error) {
	return s.client.RequestStats(ctx)
}

// RefreshAll refreshes every cached collection.
func (s *Service) RefreshAll(ctx context.Context) (catalog.Summary, error) {
	return s.client.RefreshAll(ctx)
}

// RunRefreshLoop refreshes the caches every interval until ctx is done.
// Failures are logged and the loop keeps going.
func (s *Service) RunRefreshLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("Periodic refresh enabled", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			summary, err := s.client.RefreshAll(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				s.logger.Warn("Periodic refresh failed", zap.Error(err))
				continue
			}
			s.logger.Info("Periodic refresh completed",
				zap.Int("emojis", summary.Emojis),
				zap.Int("packs", summary.Packs),
				zap.Int("categories", summary.Categories))
		}
	}
}
