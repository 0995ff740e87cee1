// Package config provides configuration management for the emoji catalog client.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// partial configuration.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Client: emoji.gg base URL, user agent, timeout and rate limit (CLIENT_*)
//   - Server: HTTP mirror port and refresh behavior (SERVER_*)
//   - Storage: S3/MinIO credentials and bucket for snapshots (STORAGE_*)
//   - Log: Logging level and format (LOG_*)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Client.BaseURL)
package config
