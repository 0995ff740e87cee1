// Package server holds the HTTP mirror server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure and its validation, such as the periodic refresh
// interval of the catalog caches.
//
// # Configuration
//
// The Config struct defines the HTTP port, whether the catalog is fetched
// before listening, the periodic refresh interval and the Swagger toggle.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the start command.
package server
