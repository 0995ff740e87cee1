package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"time"

	"emoji-catalog/core/catalog"
	"emoji-catalog/core/model"
	"emoji-catalog/core/storage"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const timestampLayout = "20060102T150405Z"

// Document is the JSON body written for each snapshot.
type Document struct {
	CreatedAt  time.Time              `json:"created_at"`
	Emojis     []*model.Emoji         `json:"emojis"`
	Packs      []*model.EmojiPack     `json:"packs"`
	Categories []*model.EmojiCategory `json:"categories"`
}

// Result describes a written snapshot.
type Result struct {
	Object     string    `json:"object"`
	Size       int64     `json:"size"`
	Emojis     int       `json:"emojis"`
	Packs      int       `json:"packs"`
	Categories int       `json:"categories"`
	CreatedAt  time.Time `json:"created_at"`
	Pruned     []string  `json:"pruned,omitempty"`
}

// Object is a stored snapshot.
type Object struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Service exports the catalog caches to object storage.
type Service struct {
	catalog *catalog.Client
	client  storage.Client
	cfg     storage.Config
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates a new snapshot service.
func NewService(c *catalog.Client, client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	return &Service{
		catalog: c,
		client:  client,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// Export writes the current cache contents as one JSON object. Snapshots
// beyond the configured retention are removed afterwards.
func (s *Service) Export(ctx context.Context) (*Result, error) {
	if err := storage.EnsureBucket(ctx, s.client, s.cfg.Bucket, s.cfg.Region); err != nil {
		return nil, err
	}

	snap := s.catalog.Snapshot()
	doc := Document{
		CreatedAt:  s.now().UTC(),
		Emojis:     snap.Emojis,
		Packs:      snap.Packs,
		Categories: snap.Categories,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	key := s.objectName(doc.CreatedAt)
	_, err = s.client.PutObject(ctx, s.cfg.Bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("upload snapshot %s: %w", key, err)
	}

	res := &Result{
		Object:     key,
		Size:       int64(len(data)),
		Emojis:     len(doc.Emojis),
		Packs:      len(doc.Packs),
		Categories: len(doc.Categories),
		CreatedAt:  doc.CreatedAt,
	}
	s.logger.Info("Snapshot exported",
		zap.String("object", key),
		zap.Int64("size", res.Size),
		zap.Int("emojis", res.Emojis),
		zap.Int("packs", res.Packs),
		zap.Int("categories", res.Categories))

	if s.cfg.Retain > 0 {
		pruned, err := s.Prune(ctx, s.cfg.Retain)
		if err != nil {
			// The snapshot itself is stored.
			s.logger.Warn("Snapshot pruning failed", zap.Error(err))
		}
		res.Pruned = pruned
	}
	return res, nil
}

// List returns the stored snapshots, oldest first.
func (s *Service) List(ctx context.Context) ([]Object, error) {
	var out []Object
	for obj := range s.client.ListObjects(ctx, s.cfg.Bucket, minio.ListObjectsOptions{
		Prefix:    s.prefix(),
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list snapshots: %w", obj.Err)
		}
		out = append(out, Object{Key: obj.Key, Size: obj.Size, LastModified: obj.LastModified})
	}
	// Keys start with a UTC timestamp, so lexical order is chronological.
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Prune removes all but the newest keep snapshots and returns the removed keys.
func (s *Service) Prune(ctx context.Context, keep int) ([]string, error) {
	objects, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if keep < 0 || len(objects) <= keep {
		return nil, nil
	}

	var removed []string
	for _, obj := range objects[:len(objects)-keep] {
		if err := s.client.RemoveObject(ctx, s.cfg.Bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			return removed, fmt.Errorf("remove snapshot %s: %w", obj.Key, err)
		}
		removed = append(removed, obj.Key)
	}
	s.logger.Info("Old snapshots pruned", zap.Int("removed", len(removed)))
	return removed, nil
}

func (s *Service) prefix() string {
	if s.cfg.Prefix == "" {
		return ""
	}
	return s.cfg.Prefix + "/"
}

func (s *Service) objectName(at time.Time) string {
	name := fmt.Sprintf("%s-%s.json", at.Format(timestampLayout), uuid.NewString()[:8])
	return path.Join(s.cfg.Prefix, name)
}
