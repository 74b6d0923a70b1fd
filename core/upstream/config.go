package upstream

// Config holds configuration for the backend catalog API.
type Config struct {
	// BaseURL is the address every catalog request is built from (e.g. https://api.example.com).
	BaseURL string `mapstructure:"base_url" default:"" validate:"required,url"`
	// TimeoutSeconds caps a whole request. Zero keeps the http.Client default (no timeout).
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"0" validate:"gte=0"`
}
