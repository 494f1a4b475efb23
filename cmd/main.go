// Package main wires the HTTP server for the GitHub stats dashboard.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/nahidn4p/git-stat-generator/config"
	"github.com/nahidn4p/git-stat-generator/internal/cache"
	"github.com/nahidn4p/git-stat-generator/internal/github"
	"github.com/nahidn4p/git-stat-generator/internal/transport/http/middleware"
	handlers_fiber "github.com/nahidn4p/git-stat-generator/internal/transport/http/server/handlers-fiber"
	"github.com/nahidn4p/git-stat-generator/internal/usecase"
	"github.com/nahidn4p/git-stat-generator/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	store, err := cache.New(ctx, cfg.Cache.Backend, log, cfg)
	if err != nil {
		log.Errorw("cache initialization error", "error", err)
		return
	}
	if err := store.OnStart(ctx); err != nil {
		log.Errorw("cache start error", "error", err)
		return
	}
	defer func() {
		_ = store.OnStop(context.Background())
	}()

	gh := github.New(log, cfg.GitHub)
	uc := usecase.New(log, ctx, gh, store, cfg)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	serv.Get("/", h.GetHome)
	serv.Get("/u/:username", h.GetStats)
	serv.Post("/set-theme", h.PostSetTheme)
	serv.Get("/badge/:username", h.GetBadge)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
