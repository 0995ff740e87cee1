// Package transport issues the GET requests against the emoji.gg API.
//
// The API exposes four fixed collection endpoints, enumerated by Endpoint.
// Client resolves them against a configurable base URL, applies a
// client-side rate limit and connection timeouts, and returns the raw body
// text. It knows nothing about JSON.
//
// # Usage
//
//	client, err := transport.NewClient(cfg.Client)
//	body, err := client.Fetch(ctx, transport.ListAllEmojis)
//
// Failures (dial errors, timeouts, non-2xx status) are returned as
// *errdefs.TransportError. Nothing is retried.
package transport
