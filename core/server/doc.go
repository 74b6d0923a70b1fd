// Package server holds the HTTP server configuration and the system routes.
//
// While the main application entry point handles the server startup, this package
// defines the listen settings and the routes every deployment carries regardless
// of which features are enabled.
//
// # Routes
//
//   - GET /healthz: liveness probe.
//   - GET /metrics: Prometheus exposition (path configurable, can be disabled).
//
// # Usage
//
// The start command embeds Config via core/config and calls RegisterSystemRoutes
// before loading features.
package server
