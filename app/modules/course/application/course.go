package courseservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	coursetypes "github.com/sindicato-golf/rounds/app/modules/course/domain/types"
	coursedb "github.com/sindicato-golf/rounds/app/modules/course/infrastructure/repositories"
	"github.com/sindicato-golf/rounds/app/shared/results"
)

// CreateCourse validates and persists a course. Invalid course data is a
// handled failure, not an error.
func (s *CourseService) CreateCourse(ctx context.Context, course *coursetypes.Course) (results.OperationResult[CourseCreated, CourseValidationFailed], error) {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}

	return withTelemetry(s, ctx, "CreateCourse", course.ID, func(ctx context.Context) (results.OperationResult[CourseCreated, CourseValidationFailed], error) {
		if err := course.Validate(); err != nil {
			return results.Failure[CourseCreated, CourseValidationFailed](CourseValidationFailed{Reason: err.Error()}), nil
		}

		now := time.Now().UTC()
		course.CreatedAt = now
		course.UpdatedAt = now

		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[CourseCreated, CourseValidationFailed], error) {
			if err := s.repo.CreateCourse(ctx, db, course); err != nil {
				return results.OperationResult[CourseCreated, CourseValidationFailed]{}, err
			}
			return results.Success[CourseCreated, CourseValidationFailed](CourseCreated{Course: course}), nil
		})
	})
}

// GetCourse fetches a course by ID.
func (s *CourseService) GetCourse(ctx context.Context, courseID string) (results.OperationResult[*coursetypes.Course, CourseNotFound], error) {
	return withTelemetry(s, ctx, "GetCourse", courseID, func(ctx context.Context) (results.OperationResult[*coursetypes.Course, CourseNotFound], error) {
		course, err := s.repo.GetCourse(ctx, nil, courseID)
		if err != nil {
			if errors.Is(err, coursedb.ErrCourseNotFound) {
				return results.Failure[*coursetypes.Course, CourseNotFound](CourseNotFound{CourseID: courseID}), nil
			}
			return results.OperationResult[*coursetypes.Course, CourseNotFound]{}, err
		}
		return results.Success[*coursetypes.Course, CourseNotFound](course), nil
	})
}

// ListCourses returns all saved courses ordered by name.
func (s *CourseService) ListCourses(ctx context.Context) ([]coursetypes.Course, error) {
	return s.repo.ListCourses(ctx, nil)
}
