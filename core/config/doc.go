// Package config provides configuration management for the catalog service.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file, and validates the result with go-playground/validator.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP listen port and application name
//   - Upstream: backend catalog API base URL and optional timeout
//   - Log: Logging level and format
//   - Metrics: Prometheus endpoint toggle and path
//
// Nested keys map to environment variables by replacing dots with underscores,
// so upstream.base_url is read from UPSTREAM_BASE_URL.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Upstream.BaseURL)
package config
