package course

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	courseservice "github.com/sindicato-golf/rounds/app/modules/course/application"
	coursehandlers "github.com/sindicato-golf/rounds/app/modules/course/infrastructure/handlers"
	coursedb "github.com/sindicato-golf/rounds/app/modules/course/infrastructure/repositories"
	"github.com/sindicato-golf/rounds/app/shared/observability"
)

// Module wires the course service and its HTTP surface.
type Module struct {
	Service  courseservice.Service
	handlers *coursehandlers.CourseHandlers
	logger   *slog.Logger
}

// NewModule creates the course module and registers its routes on httpRouter.
func NewModule(
	ctx context.Context,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
	db *bun.DB,
	httpRouter chi.Router,
) *Module {
	logger.InfoContext(ctx, "Initializing course module")

	service := courseservice.NewCourseService(
		&coursedb.CourseDBImpl{DB: db},
		logger,
		metrics,
		tracer,
		db,
	)

	handlers := coursehandlers.NewCourseHandlers(service, logger)

	httpRouter.Route("/api/courses", func(r chi.Router) {
		r.Post("/", handlers.HandleCreateCourse)
		r.Get("/", handlers.HandleListCourses)
		r.Get("/{courseID}", handlers.HandleGetCourse)
	})

	return &Module{
		Service:  service,
		handlers: handlers,
		logger:   logger,
	}
}
