package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080" validate:"required,numeric"`
	// Name is the application name reported by Fiber and the health endpoint.
	Name string `mapstructure:"name" default:"catalog-web"`
	// ReadTimeoutSeconds bounds reading an inbound request. Zero disables it.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"10" validate:"gte=0"`
}

// Addr returns the listen address for Fiber.
func (c Config) Addr() string {
	return ":" + c.Port
}
