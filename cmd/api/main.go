package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/helpdesk/internal/api/http"
	"github.com/spec-kit/helpdesk/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk/internal/config"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/observability"
	"github.com/spec-kit/helpdesk/internal/repository"
	"github.com/spec-kit/helpdesk/internal/seed"
	"github.com/spec-kit/helpdesk/internal/service"
	"github.com/spec-kit/helpdesk/internal/session"
	"github.com/spec-kit/helpdesk/internal/view"
	"github.com/spec-kit/helpdesk/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	tickets, err := seed.Load(cfg.Dashboard.SeedFile)
	if err != nil {
		logger.Fatal("failed to load seed", zap.Error(err))
	}
	ticketRepo, err := repository.NewMemoryTicketRepository(tickets)
	if err != nil {
		logger.Fatal("invalid seed", zap.Error(err))
	}
	logger.Info("tickets loaded", zap.Int("count", len(tickets)), zap.String("seed_file", cfg.Dashboard.SeedFile))

	renderer, err := view.NewRenderer(cfg.Dashboard.TemplateDir)
	if err != nil {
		logger.Fatal("failed to load templates", zap.Error(err))
	}
	if _, err := renderer.Validate(); err != nil {
		logger.Fatal("invalid templates", zap.Error(err))
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartActivityWorker(service.NewActivityService(dispatcher, logger, metrics))

	ticketService := service.NewTicketService(ticketRepo)
	sessions := session.NewStore(cfg.Session.TTL(), dispatcher)

	sweeper, err := worker.NewSessionSweeper(cfg.Session.SweepSchedule, sessions, logger, metrics)
	if err != nil {
		logger.Fatal("failed to schedule session sweeper", zap.Error(err))
	}
	sweeper.Start()
	defer sweeper.Stop()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	catalog := view.CatalogFor(cfg.Dashboard.Locale)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, ticketService, sessions, renderer),
		Dashboard: handlers.NewDashboardHandler(ticketService, sessions, renderer, catalog),
		Tickets:   handlers.NewTicketsHandler(ticketService),
		Metrics:   metrics.Handler(),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()
	logger.Info("dashboard listening", zap.String("addr", cfg.App.Addr()), zap.String("locale", catalog.Tag.String()))

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
