// Package catalog is the entry point of the emoji.gg client.
//
// A Client sequences Transport → Decoder → Cache for each entity kind:
// it fetches a collection, decodes it, reconciles every element into the
// kind's cache in the order received and returns the live instances in that
// same order. A failure at any step fails the whole refresh; elements
// reconciled before the failure stay reconciled.
//
// # Usage
//
//	fetcher, _ := transport.NewClient(cfg.Client)
//	client := catalog.New(fetcher, catalog.WithLogger(log))
//
//	emojis, err := client.RefreshEmojis(ctx)
//
//	// Deferred: the fetch runs on its own goroutine.
//	pending := client.RefreshCategoriesAsync(ctx)
//	categories, err := pending.Wait(ctx)
//
//	// Lookup without network access.
//	e, ok := client.LookupEmoji(42)
//
//	// Refresh, then look up; errdefs.ErrNotFound if still unknown.
//	e, err := client.RequestEmojiByID(ctx, 42)
//
// Concurrent refreshes are not deduplicated: two callers racing on the same
// kind each issue their own request, and their reconciliations may
// interleave.
package catalog
