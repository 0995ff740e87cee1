// Package emoji provides a read-only HTTP mirror of the emoji.gg catalog.
//
// The mirror serves the in-memory caches of a catalog.Client. List routes
// return cached data unless refresh=true is given; single-record routes fall
// back to a lookup-after-refresh on a cache miss.
//
// # Routes
//
//   - GET  /emojis, /emojis/:id
//   - GET  /packs, /packs/:id
//   - GET  /categories, /categories/:index
//   - GET  /stats
//   - POST /refresh
//
// Errors map to statuses through StatusFor: not found is 404, transport and
// decoding failures are 502.
//
// The Service also runs the optional periodic refresh loop started by the
// `start` command.
package emoji
