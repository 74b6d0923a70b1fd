package logger_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"catalog-web/core/logger"
	"catalog-web/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  logger.Config
		want zapcore.Level
	}{
		{"DebugConsole", logger.Config{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{"InfoJSON", logger.Config{Level: "info", Format: "json"}, zapcore.InfoLevel},
		{"WarnJSON", logger.Config{Level: "warn", Format: "json"}, zapcore.WarnLevel},
		{"UnknownFallsBackToInfo", logger.Config{Level: "loud", Format: "json"}, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := zap.New(core)

	app := fiber.New()
	app.Use(rayid.New(rayid.Config{Generator: func() string { return "ray-1" }}))
	app.Use(logger.Middleware(l))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/fail", func(c *fiber.Ctx) error { return errors.New("broken") })

	t.Run("Success", func(t *testing.T) {
		_, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
		require.NoError(t, err)

		entries := logs.TakeAll()
		require.Len(t, entries, 2)
		assert.Equal(t, "Request started", entries[0].Message)
		assert.Equal(t, "Request completed", entries[1].Message)
		assert.Equal(t, "ray-1", entries[0].ContextMap()["ray_id"])
		assert.EqualValues(t, 200, entries[1].ContextMap()["status"])
	})

	t.Run("Error", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)

		entries := logs.FilterMessage("Request error").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	})
}
