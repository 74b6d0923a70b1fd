package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the request/response header carrying the RayID.
	HeaderName = "X-Ray-ID"
	// LocalsKey is the fiber.Ctx locals key the RayID is stored under.
	LocalsKey = "ray_id"
)

// Config configures the RayID middleware.
type Config struct {
	// Generator returns a new RayID. Defaults to a random UUID.
	Generator func() string
	// TrustHeader reuses an incoming X-Ray-ID instead of generating one.
	TrustHeader bool
}

// New creates the RayID middleware.
func New(config ...Config) fiber.Handler {
	cfg := Config{TrustHeader: true}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Generator == nil {
		cfg.Generator = uuid.NewString
	}

	return func(c *fiber.Ctx) error {
		rid := ""
		if cfg.TrustHeader {
			rid = c.Get(HeaderName)
		}
		if rid == "" {
			rid = cfg.Generator()
		}

		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}

// FromContext returns the RayID stored on c, or an empty string.
func FromContext(c *fiber.Ctx) string {
	if rid, ok := c.Locals(LocalsKey).(string); ok {
		return rid
	}
	return ""
}
