package server

import (
	"errors"

	"catalog-web/core/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Name   string `json:"name"`
}

// RegisterSystemRoutes mounts the health probe and, when enabled, the metrics endpoint.
func RegisterSystemRoutes(app fiber.Router, cfg Config, metricsCfg metrics.Config, m *metrics.Manager) {
	app.Get("/healthz", HandleHealth(cfg.Name))

	if metricsCfg.Enabled && m != nil {
		app.Get(metricsCfg.Path, adaptor.HTTPHandler(m.Handler()))
	}
}

// HandleHealth reports liveness.
// @Summary Health Check
// @Description Reports that the process is up. Does not contact the backend API.
// @Tags system
// @Produce json
// @Success 200 {object} server.HealthResponse "Healthy"
// @Router /healthz [get]
func HandleHealth(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(HealthResponse{Status: "ok", Name: name})
	}
}

// MetricsMiddleware counts every request by matched route and status.
func MetricsMiddleware(m *metrics.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}
		m.RecordHTTPRequest(c.Route().Path, c.Method(), status)
		return err
	}
}
