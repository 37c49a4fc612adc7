package roundqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/uptrace/bun"

	roundservice "github.com/sindicato-golf/rounds/app/modules/round/application"
	"github.com/sindicato-golf/rounds/app/shared/attr"
	"github.com/sindicato-golf/rounds/app/shared/observability"
)

// Service runs the background job queue on River. It enqueues handicap
// revision jobs when rounds finish and works them off the same Postgres the
// rounds live in.
type Service struct {
	client  *river.Client[pgx.Tx]
	pool    *pgxpool.Pool
	logger  *slog.Logger
	db      *bun.DB
	metrics observability.Metrics
}

var _ roundservice.JobEnqueuer = (*Service)(nil)

// NewService creates the River-backed queue service. River requires pgx, so
// the service owns its own pool next to the bun DB.
func NewService(
	ctx context.Context,
	bunDB *bun.DB,
	logger *slog.Logger,
	dsn string,
	metrics observability.Metrics,
	worker *HandicapRevisionWorker,
) (*Service, error) {
	ctxLogger := logger.With(
		attr.String("component", "river_queue"),
	)

	ctxLogger.Info("Initializing queue service")

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, worker)

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10},
		},
		Workers: workers,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create River client: %w", err)
	}

	return &Service{
		client:  riverClient,
		pool:    pool,
		logger:  ctxLogger,
		db:      bunDB,
		metrics: metrics,
	}, nil
}

// Start starts the queue workers.
func (s *Service) Start(ctx context.Context) error {
	s.logger.Info("Starting queue service")
	if err := s.client.Start(ctx); err != nil {
		return fmt.Errorf("failed to start River client: %w", err)
	}
	return nil
}

// Stop drains and stops the queue workers, then closes the pool.
func (s *Service) Stop(ctx context.Context) error {
	s.logger.Info("Stopping queue service")
	if err := s.client.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop River client: %w", err)
	}
	s.pool.Close()
	return nil
}

// EnqueueHandicapRevision queues the revision job for a finished round.
// ByArgs uniqueness makes finishing the same round twice harmless.
func (s *Service) EnqueueHandicapRevision(ctx context.Context, roundID string) error {
	s.metrics.RecordOperationAttempt(ctx, "EnqueueHandicapRevision")
	start := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, "EnqueueHandicapRevision", time.Since(start))
	}()

	jobResult, err := s.client.Insert(ctx, HandicapRevisionJob{RoundID: roundID}, &river.InsertOpts{
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
		},
	})
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "EnqueueHandicapRevision")
		return fmt.Errorf("failed to enqueue handicap revision: %w", err)
	}

	s.metrics.RecordOperationSuccess(ctx, "EnqueueHandicapRevision")
	s.logger.InfoContext(ctx, "Handicap revision job enqueued",
		attr.RoundID("round_id", roundID),
		attr.Int("job_id", int(jobResult.Job.ID)),
	)
	return nil
}

// HealthCheck verifies the queue tables are reachable.
func (s *Service) HealthCheck(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("river client is nil")
	}

	var count int
	err := s.db.NewSelect().
		Table("river_job").
		ColumnExpr("COUNT(*)").
		Scan(ctx, &count)
	if err != nil {
		return fmt.Errorf("queue health check failed: %w", err)
	}
	return nil
}
