// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small Client interface used by the
// snapshot feature. Both AWS S3 and self-hosted MinIO instances are supported.
//
// # Operations
//
//   - BucketExists / MakeBucket: used by EnsureBucket before the first export.
//   - PutObject: uploads a snapshot document.
//   - ListObjects: lists earlier snapshots under a prefix.
//   - RemoveObject: prunes snapshots beyond the retention count.
//
// The Client interface is mocked in core/storage/mocks for unit tests.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
