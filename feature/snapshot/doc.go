// Package snapshot exports the catalog caches to object storage.
//
// Each export writes one JSON document holding the cached emojis, packs and
// categories to `<prefix>/<UTC timestamp>-<id>.json` in the configured bucket.
// Snapshots are write-only: nothing in the application reads them back, so
// the caches still start empty after a restart.
//
// When storage.retain is set, older snapshots beyond that count are removed
// after every export.
package snapshot
