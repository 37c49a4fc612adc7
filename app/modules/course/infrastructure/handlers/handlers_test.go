package coursehandlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	courseservice "github.com/sindicato-golf/rounds/app/modules/course/application"
	coursetypes "github.com/sindicato-golf/rounds/app/modules/course/domain/types"
	"github.com/sindicato-golf/rounds/app/shared/observability"
	"github.com/sindicato-golf/rounds/app/shared/results"
)

// FakeCourseService is a programmable courseservice.Service for handler tests.
type FakeCourseService struct {
	CreateCourseFunc func(ctx context.Context, course *coursetypes.Course) (results.OperationResult[courseservice.CourseCreated, courseservice.CourseValidationFailed], error)
	GetCourseFunc    func(ctx context.Context, courseID string) (results.OperationResult[*coursetypes.Course, courseservice.CourseNotFound], error)
	ListCoursesFunc  func(ctx context.Context) ([]coursetypes.Course, error)
}

var _ courseservice.Service = (*FakeCourseService)(nil)

func (f *FakeCourseService) CreateCourse(ctx context.Context, course *coursetypes.Course) (results.OperationResult[courseservice.CourseCreated, courseservice.CourseValidationFailed], error) {
	return f.CreateCourseFunc(ctx, course)
}

func (f *FakeCourseService) GetCourse(ctx context.Context, courseID string) (results.OperationResult[*coursetypes.Course, courseservice.CourseNotFound], error) {
	return f.GetCourseFunc(ctx, courseID)
}

func (f *FakeCourseService) ListCourses(ctx context.Context) ([]coursetypes.Course, error) {
	return f.ListCoursesFunc(ctx)
}

func newTestRouter(svc courseservice.Service) chi.Router {
	h := NewCourseHandlers(svc, observability.NoOpLogger)
	r := chi.NewRouter()
	r.Post("/courses", h.HandleCreateCourse)
	r.Get("/courses", h.HandleListCourses)
	r.Get("/courses/{courseID}", h.HandleGetCourse)
	return r
}

func TestHandleCreateCourse(t *testing.T) {
	t.Run("created course comes back as JSON", func(t *testing.T) {
		svc := &FakeCourseService{
			CreateCourseFunc: func(ctx context.Context, course *coursetypes.Course) (results.OperationResult[courseservice.CourseCreated, courseservice.CourseValidationFailed], error) {
				course.ID = "course-1"
				return results.Success[courseservice.CourseCreated, courseservice.CourseValidationFailed](courseservice.CourseCreated{Course: course}), nil
			},
		}
		router := newTestRouter(svc)

		body := `{"name":"Club Campestre","holes":18,"par":72}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(body)))

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), "course-1") {
			t.Errorf("body = %s", rec.Body.String())
		}
	})

	t.Run("validation failure maps to 400", func(t *testing.T) {
		svc := &FakeCourseService{
			CreateCourseFunc: func(ctx context.Context, course *coursetypes.Course) (results.OperationResult[courseservice.CourseCreated, courseservice.CourseValidationFailed], error) {
				return results.Failure[courseservice.CourseCreated, courseservice.CourseValidationFailed](courseservice.CourseValidationFailed{Reason: "course needs at least one tee"}), nil
			},
		}
		router := newTestRouter(svc)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(`{}`)))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "at least one tee") {
			t.Errorf("body = %s", rec.Body.String())
		}
	})
}

func TestHandleGetCourse(t *testing.T) {
	t.Run("unknown course maps to 404", func(t *testing.T) {
		svc := &FakeCourseService{
			GetCourseFunc: func(ctx context.Context, courseID string) (results.OperationResult[*coursetypes.Course, courseservice.CourseNotFound], error) {
				return results.Failure[*coursetypes.Course, courseservice.CourseNotFound](courseservice.CourseNotFound{CourseID: courseID}), nil
			},
		}
		router := newTestRouter(svc)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/courses/ghost", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d", rec.Code)
		}
	})
}

func TestHandleListCourses(t *testing.T) {
	svc := &FakeCourseService{
		ListCoursesFunc: func(ctx context.Context) ([]coursetypes.Course, error) {
			return []coursetypes.Course{{ID: "course-1", Name: "Club Campestre"}}, nil
		},
	}
	router := newTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/courses", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Club Campestre") {
		t.Errorf("body = %s", rec.Body.String())
	}
}
