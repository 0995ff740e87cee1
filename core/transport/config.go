package transport

// Config holds configuration for the emoji.gg API client.
type Config struct {
	// BaseURL is the scheme and host of the API.
	BaseURL string `mapstructure:"base_url" default:"https://emoji.gg"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"emoji-catalog/1.0"`
	// TimeoutSeconds bounds connection setup and the whole request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// RateLimit is the number of requests per second; 0 disables limiting.
	RateLimit float64 `mapstructure:"rate_limit" default:"2"`
	// RateBurst is the limiter bucket size.
	RateBurst int `mapstructure:"rate_burst" default:"4"`
}
