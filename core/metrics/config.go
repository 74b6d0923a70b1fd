package metrics

// Config holds configuration for the Prometheus endpoint.
type Config struct {
	// Enabled exposes the metrics endpoint when true.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Path is the route the metrics endpoint is mounted on.
	Path string `mapstructure:"path" default:"/metrics" validate:"required,startswith=/"`
}
