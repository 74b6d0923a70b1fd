package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog-web/core/config"
	"catalog-web/core/loader"
	"catalog-web/core/logger"
	"catalog-web/core/metrics"
	"catalog-web/core/middleware/rayid"
	"catalog-web/core/server"
	"catalog-web/core/upstream"
	"catalog-web/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "catalog-web/docs/swagger"
)

// @title Catalog Web API
// @version 1.0
// @description Server-side loader for catalog item pages.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog web server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		m := metrics.NewManager()

		app, err := newApp(cfg, logg, m)
		if err != nil {
			logg.Fatal("Failed to build application", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("upstream", cfg.Upstream.BaseURL),
			)
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// newApp wires middleware, system routes and features onto a fresh Fiber app.
func newApp(cfg *config.Config, logg *zap.Logger, m *metrics.Manager) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:               cfg.Server.Name,
		DisableStartupMessage: true,
		ReadTimeout:           time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
	})

	// RayID must be first so every later log line carries it
	app.Use(rayid.New())
	app.Use(logger.Middleware(logg))
	if cfg.Metrics.Enabled {
		app.Use(server.MetricsMiddleware(m))
	}

	server.RegisterSystemRoutes(app, cfg.Server, cfg.Metrics, m)
	app.Get("/swagger/*", swagger.HandlerDefault)

	doer := upstream.Instrument(upstream.NewClient(cfg.Upstream), m)
	feature, err := catalog.NewFeature(cfg.Upstream.BaseURL, doer, logg)
	if err != nil {
		return nil, err
	}

	mgr := loader.NewManager(logg)
	mgr.Register(feature)
	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}

func init() {
	RootCmd.AddCommand(startCmd)
}
