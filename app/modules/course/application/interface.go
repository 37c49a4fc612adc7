package courseservice

import (
	"context"

	coursetypes "github.com/sindicato-golf/rounds/app/modules/course/domain/types"
	"github.com/sindicato-golf/rounds/app/shared/results"
)

// CourseCreated is the success payload for CreateCourse.
type CourseCreated struct {
	Course *coursetypes.Course
}

// CourseValidationFailed is the handled failure payload for CreateCourse.
type CourseValidationFailed struct {
	Reason string
}

// CourseNotFound is the handled failure payload for course lookups.
type CourseNotFound struct {
	CourseID string
}

// Service is the course application surface.
type Service interface {
	CreateCourse(ctx context.Context, course *coursetypes.Course) (results.OperationResult[CourseCreated, CourseValidationFailed], error)
	GetCourse(ctx context.Context, courseID string) (results.OperationResult[*coursetypes.Course, CourseNotFound], error)
	ListCourses(ctx context.Context) ([]coursetypes.Course, error)
}
