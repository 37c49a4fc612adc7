package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"golang.org/x/time/rate"

	"github.com/sindicato-golf/rounds/app/eventbus"
	"github.com/sindicato-golf/rounds/app/modules/course"
	coursedb "github.com/sindicato-golf/rounds/app/modules/course/infrastructure/repositories"
	"github.com/sindicato-golf/rounds/app/modules/player"
	"github.com/sindicato-golf/rounds/app/modules/round"
	roundqueue "github.com/sindicato-golf/rounds/app/modules/round/infrastructure/queue"
	rounddb "github.com/sindicato-golf/rounds/app/modules/round/infrastructure/repositories"
	"github.com/sindicato-golf/rounds/app/shared/attr"
	"github.com/sindicato-golf/rounds/app/shared/httpmw"
	"github.com/sindicato-golf/rounds/app/shared/observability"
	"github.com/sindicato-golf/rounds/config"
	"github.com/sindicato-golf/rounds/db/bundb"
)

const shutdownTimeout = 10 * time.Second

// App owns every long-lived component: database, event bus, job queue, and
// the two HTTP listeners.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	db       *bun.DB
	eventBus eventbus.EventBus
	queue    *roundqueue.Service
	registry *prometheus.Registry

	CourseModule *course.Module
	PlayerModule *player.Module
	RoundModule  *round.Module

	httpServer    *http.Server
	metricsServer *http.Server
	healthChecks  []healthCheck
}

// NewApp wires the application together. Nothing is listening yet when it
// returns; Run starts the servers and the queue workers.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := observability.NewLogger(cfg.Observability.Environment)

	db, err := bundb.NewBunDB(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	var bus eventbus.EventBus = eventbus.NoOp{}
	if cfg.NATS.URL != "" {
		bus, err = eventbus.New(ctx, cfg.NATS.URL, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect event bus: %w", err)
		}
	} else {
		logger.WarnContext(ctx, "NATS URL not configured, events will be dropped")
	}

	registry := prometheus.NewRegistry()
	tracer := otel.Tracer("github.com/sindicato-golf/rounds")

	httpRouter := chi.NewRouter()
	limiter := httpmw.NewIPRateLimiter(rate.Limit(cfg.HTTP.RateLimitPerSecond), cfg.HTTP.RateLimitBurst)
	httpRouter.Use(httpmw.RateLimitMiddleware(limiter))
	httpRouter.Use(httpmw.CORSMiddleware(cfg.HTTP.AllowedOrigins))

	courseModule := course.NewModule(ctx,
		logger,
		observability.NewOperationMetrics(registry, "course"),
		tracer,
		db,
		httpRouter,
	)
	playerModule := player.NewModule(ctx,
		logger,
		observability.NewOperationMetrics(registry, "player"),
		tracer,
		bus,
		db,
		httpRouter,
	)

	worker := roundqueue.NewHandicapRevisionWorker(
		&rounddb.RoundDBImpl{DB: db},
		&coursedb.CourseDBImpl{DB: db},
		playerModule.Service,
		logger,
	)
	queue, err := roundqueue.NewService(ctx, db, logger, cfg.Postgres.DSN,
		observability.NewOperationMetrics(registry, "queue"), worker)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize job queue: %w", err)
	}

	roundModule := round.NewModule(ctx,
		logger,
		observability.NewOperationMetrics(registry, "round"),
		tracer,
		bus,
		queue,
		db,
		httpRouter,
	)

	a := &App{
		cfg:          cfg,
		logger:       logger,
		db:           db,
		eventBus:     bus,
		queue:        queue,
		registry:     registry,
		CourseModule: courseModule,
		PlayerModule: playerModule,
		RoundModule:  roundModule,
		healthChecks: []healthCheck{
			{name: "database", check: db.PingContext},
			{name: "queue", check: queue.HealthCheck},
		},
	}

	httpRouter.Get("/healthz", a.handleHealthz)
	httpRouter.Route("/api/admin", func(r chi.Router) {
		r.Get("/stats", a.handleAdminStats)
	})

	a.httpServer = &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           httpRouter,
		ReadHeaderTimeout: 5 * time.Second,
	}

	metricsMux := chi.NewRouter()
	metricsMux.Handle("/metrics", observability.MetricsHandler(registry))
	a.metricsServer = &http.Server{
		Addr:              cfg.Observability.MetricsAddress,
		Handler:           metricsMux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return a, nil
}

// Run starts the queue workers and both HTTP listeners, then blocks until
// ctx is cancelled and everything has shut down.
func (a *App) Run(ctx context.Context) error {
	if err := a.queue.Start(ctx); err != nil {
		return fmt.Errorf("failed to start job queue: %w", err)
	}

	errCh := make(chan error, 2)
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		a.logger.InfoContext(ctx, "API listening", attr.String("address", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("api server: %w", err)
		}
	}()
	go func() {
		defer wg.Done()
		a.logger.InfoContext(ctx, "Metrics listening", attr.String("address", a.metricsServer.Addr))
		if err := a.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("metrics server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	a.shutdown()
	wg.Wait()
	return runErr
}

func (a *App) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.logger.InfoContext(ctx, "Shutting down")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.ErrorContext(ctx, "API server shutdown failed", attr.Error(err))
	}
	if err := a.metricsServer.Shutdown(ctx); err != nil {
		a.logger.ErrorContext(ctx, "Metrics server shutdown failed", attr.Error(err))
	}
	if err := a.queue.Stop(ctx); err != nil {
		a.logger.ErrorContext(ctx, "Queue shutdown failed", attr.Error(err))
	}
	if err := a.eventBus.Close(); err != nil {
		a.logger.ErrorContext(ctx, "Event bus close failed", attr.Error(err))
	}
	if err := a.db.Close(); err != nil {
		a.logger.ErrorContext(ctx, "Database close failed", attr.Error(err))
	}
}
