package server

// Config holds configuration for the HTTP mirror server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// RefreshOnStart fetches every collection before the server starts listening.
	RefreshOnStart bool `mapstructure:"refresh_on_start" default:"true"`
	// RefreshIntervalSeconds re-fetches every collection periodically; 0 disables it.
	RefreshIntervalSeconds int `mapstructure:"refresh_interval_seconds" default:"0"`
	// SwaggerEnabled exposes the API documentation under /swagger.
	SwaggerEnabled bool `mapstructure:"swagger_enabled" default:"true"`
}

// MinRefreshIntervalSeconds is the smallest accepted periodic refresh interval.
const MinRefreshIntervalSeconds = 60

// IsValidRefreshInterval checks the configured periodic refresh interval.
func (c Config) IsValidRefreshInterval() bool {
	return c.RefreshIntervalSeconds == 0 || c.RefreshIntervalSeconds >= MinRefreshIntervalSeconds
}
