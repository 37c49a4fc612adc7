package roundservice

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sindicato-golf/rounds/app/eventbus"
	coursedb "github.com/sindicato-golf/rounds/app/modules/course/infrastructure/repositories"
	rounddb "github.com/sindicato-golf/rounds/app/modules/round/infrastructure/repositories"
	roundtime "github.com/sindicato-golf/rounds/app/modules/round/time_utils"
	"github.com/sindicato-golf/rounds/app/shared/attr"
	"github.com/sindicato-golf/rounds/app/shared/observability"
	"github.com/sindicato-golf/rounds/app/shared/results"
)

// JobEnqueuer schedules background work triggered by round lifecycle events.
// The queue package implements it on top of river.
type JobEnqueuer interface {
	EnqueueHandicapRevision(ctx context.Context, roundID string) error
}

// NoOpEnqueuer discards jobs; used by tests and when the queue is disabled.
type NoOpEnqueuer struct{}

func (NoOpEnqueuer) EnqueueHandicapRevision(context.Context, string) error { return nil }

// RoundService implements the Service interface.
type RoundService struct {
	repo      rounddb.Repository
	courses   coursedb.Repository
	templates rounddb.TemplateRepository
	EventBus  eventbus.EventBus
	jobs      JobEnqueuer
	logger    *slog.Logger
	metrics   observability.Metrics
	tracer    trace.Tracer
	db        *bun.DB
	clock     roundtime.Clock
	dates     *roundtime.Parser
}

// NewRoundService creates a new RoundService.
func NewRoundService(
	repo rounddb.Repository,
	courses coursedb.Repository,
	templates rounddb.TemplateRepository,
	bus eventbus.EventBus,
	jobs JobEnqueuer,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
	db *bun.DB,
) *RoundService {
	return &RoundService{
		repo:      repo,
		courses:   courses,
		templates: templates,
		EventBus:  bus,
		jobs:      jobs,
		logger:    logger,
		metrics:   metrics,
		tracer:    tracer,
		db:        db,
		clock:     roundtime.RealClock{},
		dates:     roundtime.NewParser(),
	}
}

// WithClock swaps the clock; tests pin time with this.
func (s *RoundService) WithClock(clock roundtime.Clock) *RoundService {
	s.clock = clock
	return s
}

// operationFunc is the generic signature for service operation functions.
type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// withTelemetry wraps a round operation with tracing, metrics, and panic recovery.
func withTelemetry[S any, F any](
	s *RoundService,
	ctx context.Context,
	operationName string,
	roundID string,
	op operationFunc[S, F],
) (results.OperationResult[S, F], error) {
	return withOpTelemetry(s, ctx, operationName, "round_id", roundID, op)
}

// withOpTelemetry is withTelemetry keyed by an arbitrary entity; template
// operations use it with "template_id".
func withOpTelemetry[S any, F any](
	s *RoundService,
	ctx context.Context,
	operationName string,
	idKey string,
	entityID string,
	op operationFunc[S, F],
) (result results.OperationResult[S, F], err error) {

	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String(idKey, entityID),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	s.logger.InfoContext(ctx, operationName+" triggered",
		attr.String("operation", operationName),
		attr.RoundID(idKey, entityID),
		attr.ExtractCorrelationID(ctx),
	)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.RoundID(idKey, entityID),
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.RoundID(idKey, entityID),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.IsFailure() {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.RoundID(idKey, entityID),
			attr.Any("failure_payload", *result.Failure),
		)
	}

	if result.IsSuccess() {
		s.logger.InfoContext(ctx, operationName+" completed successfully",
			attr.String("operation", operationName),
			attr.RoundID(idKey, entityID),
			attr.ExtractCorrelationID(ctx),
		)
		s.metrics.RecordOperationSuccess(ctx, operationName)
	}

	return result, nil
}

// runInTx ensures the operation runs within a transaction.
func runInTx[S any, F any](
	s *RoundService,
	ctx context.Context,
	fn func(ctx context.Context, db bun.IDB) (results.OperationResult[S, F], error),
) (results.OperationResult[S, F], error) {
	if s.db == nil {
		return fn(ctx, nil)
	}

	var result results.OperationResult[S, F]
	err := s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var txErr error
		result, txErr = fn(ctx, tx)
		return txErr
	})

	return result, err
}
