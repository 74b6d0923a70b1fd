// Package logger builds the service's zap logger and ties it to Fiber requests.
//
// # Levels and Encoding
//
// A "debug" level selects zap's development config; any other level selects the
// production config at that level. Format "console" gives colored human output,
// "json" gives one object per line.
//
// # Request Correlation
//
// WithRayID attaches the request's RayID (see core/middleware/rayid) so every
// line logged while serving a request can be grouped. Middleware logs the start
// and end of each request with that RayID.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "json"})
//	app.Use(rayid.New(), logger.Middleware(log))
//
//	// In a request handler:
//	logger.WithRayID(log, c).Error("Handler failed", zap.Error(err))
package logger
