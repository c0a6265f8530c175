package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hub-sync/core/loader"
	"hub-sync/core/logger"
	"hub-sync/core/middleware/auth"
	"hub-sync/core/middleware/requestid"
	"hub-sync/core/slack"
	"hub-sync/feature/hubsync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "hub-sync/docs/swagger"
)

// @title Hub Sync API
// @version 1.0
// @description Synchronizes hub coordinators from the roster into Slack user groups.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd exposes sync triggers over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve HTTP endpoints that trigger or preview a sync",
	Long: `Starts an HTTP server exposing:
  GET  /health        liveness
  GET  /swagger/*     API documentation
  GET  /hubs/preview  dry-run report
  POST /hubs/sync     full sync report

Concurrent sync requests share a single run.`,
	RunE: runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	lister, err := newLister(cfg)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// Request ID first so every later log line can carry it
	app.Use(requestid.New())
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRequestID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// Public
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

	mgr := loader.NewManager()
	mgr.Register(hubsync.NewFeature(lister, slack.NewClient(cfg.Slack), cfg.Sync, logg))
	if err := mgr.LoadAll(app); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
		errCh <- app.Listen(cfg.Server.Address())
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-sig:
		logg.Info("Shutting down server...")
		return app.Shutdown()
	}
}
