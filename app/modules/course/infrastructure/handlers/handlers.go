package coursehandlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	courseservice "github.com/sindicato-golf/rounds/app/modules/course/application"
	coursetypes "github.com/sindicato-golf/rounds/app/modules/course/domain/types"
	"github.com/sindicato-golf/rounds/app/shared/attr"
)

// CourseHandlers serves the course HTTP API.
type CourseHandlers struct {
	service courseservice.Service
	logger  *slog.Logger
}

// NewCourseHandlers creates a new CourseHandlers instance.
func NewCourseHandlers(service courseservice.Service, logger *slog.Logger) *CourseHandlers {
	return &CourseHandlers{
		service: service,
		logger:  logger,
	}
}

func (h *CourseHandlers) respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to encode response",
			attr.Error(err),
		)
	}
}

// HandleCreateCourse registers a new course.
func (h *CourseHandlers) HandleCreateCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var course coursetypes.Course
	if err := json.NewDecoder(r.Body).Decode(&course); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CreateCourse(ctx, &course)
	if err != nil {
		h.logger.ErrorContext(ctx, "Create course failed", attr.Error(err))
		http.Error(w, "failed to create course", http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		http.Error(w, result.Failure.Reason, http.StatusBadRequest)
		return
	}

	h.respondJSON(w, r, http.StatusCreated, result.Success.Course)
}

// HandleGetCourse returns one course by ID.
func (h *CourseHandlers) HandleGetCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	courseID := chi.URLParam(r, "courseID")

	result, err := h.service.GetCourse(ctx, courseID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Get course failed",
			attr.Error(err),
			attr.String("course_id", courseID),
		)
		http.Error(w, "failed to fetch course", http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		http.Error(w, "course not found", http.StatusNotFound)
		return
	}

	h.respondJSON(w, r, http.StatusOK, result.Success)
}

// HandleListCourses returns every registered course.
func (h *CourseHandlers) HandleListCourses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	courses, err := h.service.ListCourses(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "List courses failed", attr.Error(err))
		http.Error(w, "failed to fetch courses", http.StatusInternalServerError)
		return
	}

	h.respondJSON(w, r, http.StatusOK, courses)
}
