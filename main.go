package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"golang.org/x/sync/errgroup"

	"videothingy/zoom-editor/config"
	_ "videothingy/zoom-editor/docs"
	"videothingy/zoom-editor/handlers"
	"videothingy/zoom-editor/internal/session"
	"videothingy/zoom-editor/middleware"
)

// @title Zoom Editor API
// @version 1.0
// @description Zoom block management for the browser video editor.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := config.InitLogger(cfg.LogLevel)

	sessions := session.NewManager(cfg.Zoom, cfg.SessionTTL, logger)
	h := handlers.NewApplicationHandler(sessions, logger)

	app := NewApp(cfg, h)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infof("Starting Zoom Editor API on %s (add policy %s)", cfg.Addr(), cfg.Zoom.AddPolicy)
		return app.Listen(cfg.Addr())
	})
	g.Go(func() error {
		return sessions.Run(ctx, cfg.SessionSweepInterval)
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down Zoom Editor API...")
		return app.Shutdown()
	})

	if err := g.Wait(); err != nil {
		logger.Fatalf("Zoom Editor API stopped with error: %v", err)
	}
	logger.Info("Zoom Editor API shut down gracefully.")
}

// NewApp builds the fiber application with middleware and routes.
func NewApp(cfg *config.Config, h *handlers.ApplicationHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "zoom-editor",
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))
	app.Use(middleware.RequestLogger(h.Logger))

	// Health check route
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "ok",
			"message":  "Zoom Editor API is healthy",
			"sessions": h.Sessions.Len(),
		})
	})

	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// API v1 routes
	apiV1 := app.Group("/api/v1")
	h.Register(apiV1)

	return app
}
