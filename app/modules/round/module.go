package round

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	"github.com/sindicato-golf/rounds/app/eventbus"
	coursedb "github.com/sindicato-golf/rounds/app/modules/course/infrastructure/repositories"
	roundservice "github.com/sindicato-golf/rounds/app/modules/round/application"
	roundhandlers "github.com/sindicato-golf/rounds/app/modules/round/infrastructure/handlers"
	rounddb "github.com/sindicato-golf/rounds/app/modules/round/infrastructure/repositories"
	"github.com/sindicato-golf/rounds/app/shared/observability"
)

// Module wires the round service and its HTTP surface.
type Module struct {
	Service  roundservice.Service
	handlers *roundhandlers.RoundHandlers
	logger   *slog.Logger
}

// NewModule creates the round module and registers its routes on httpRouter.
func NewModule(
	ctx context.Context,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
	eventBus eventbus.EventBus,
	jobs roundservice.JobEnqueuer,
	db *bun.DB,
	httpRouter chi.Router,
) *Module {
	logger.InfoContext(ctx, "Initializing round module")

	service := roundservice.NewRoundService(
		&rounddb.RoundDBImpl{DB: db},
		&coursedb.CourseDBImpl{DB: db},
		&rounddb.TemplateDBImpl{DB: db},
		eventBus,
		jobs,
		logger,
		metrics,
		tracer,
		db,
	)

	handlers := roundhandlers.NewRoundHandlers(service, logger)

	httpRouter.Route("/api/rounds", func(r chi.Router) {
		r.Post("/", handlers.HandleCreateRound)
		r.Get("/", handlers.HandleListRounds)
		r.Route("/{roundID}", func(r chi.Router) {
			r.Get("/", handlers.HandleGetRound)
			r.Delete("/", handlers.HandleDeleteRound)
			r.Put("/scores", handlers.HandleRecordScore)
			r.Patch("/finish", handlers.HandleFinishRound)
			r.Get("/scorecard", handlers.HandleGetScorecard)
			r.Get("/standings", handlers.HandleGetStandings)
			r.Get("/match", handlers.HandleGetMatchStatus)
			r.Get("/export", handlers.HandleExportScorecard)
		})
	})

	httpRouter.Route("/api/templates", func(r chi.Router) {
		r.Post("/", handlers.HandleCreateTemplate)
		r.Get("/", handlers.HandleListTemplates)
		r.Route("/{templateID}", func(r chi.Router) {
			r.Get("/", handlers.HandleGetTemplate)
			r.Put("/", handlers.HandleUpdateTemplate)
			r.Delete("/", handlers.HandleDeleteTemplate)
			r.Patch("/favorite", handlers.HandleToggleFavorite)
		})
	})

	return &Module{
		Service:  service,
		handlers: handlers,
		logger:   logger,
	}
}
