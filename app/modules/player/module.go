package player

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	"github.com/sindicato-golf/rounds/app/eventbus"
	playerservice "github.com/sindicato-golf/rounds/app/modules/player/application"
	playerhandlers "github.com/sindicato-golf/rounds/app/modules/player/infrastructure/handlers"
	playerdb "github.com/sindicato-golf/rounds/app/modules/player/infrastructure/repositories"
	"github.com/sindicato-golf/rounds/app/shared/observability"
)

// Module wires the player service and its HTTP surface.
type Module struct {
	Service  playerservice.Service
	handlers *playerhandlers.PlayerHandlers
	logger   *slog.Logger
}

// NewModule creates the player module and registers its routes on httpRouter.
func NewModule(
	ctx context.Context,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
	eventBus eventbus.EventBus,
	db *bun.DB,
	httpRouter chi.Router,
) *Module {
	logger.InfoContext(ctx, "Initializing player module")

	service := playerservice.NewPlayerService(
		&playerdb.PlayerDBImpl{DB: db},
		eventBus,
		logger,
		metrics,
		tracer,
		db,
	)

	handlers := playerhandlers.NewPlayerHandlers(service, logger)

	httpRouter.Route("/api/players", func(r chi.Router) {
		r.Post("/", handlers.HandleCreateProfile)
		r.Get("/", handlers.HandleListProfiles)
		r.Route("/{profileID}", func(r chi.Router) {
			r.Get("/", handlers.HandleGetProfile)
			r.Put("/handicap", handlers.HandleSetHandicap)
			r.Get("/handicap-history", handlers.HandleGetHandicapHistory)
			r.Get("/handicap-chart", handlers.HandleHandicapChart)
		})
	})

	return &Module{
		Service:  service,
		handlers: handlers,
		logger:   logger,
	}
}
