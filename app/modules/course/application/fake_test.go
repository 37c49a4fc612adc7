package courseservice

import (
	"context"

	"github.com/uptrace/bun"

	coursetypes "github.com/sindicato-golf/rounds/app/modules/course/domain/types"
	coursedb "github.com/sindicato-golf/rounds/app/modules/course/infrastructure/repositories"
)

// FakeCourseRepository provides a programmable stub for the coursedb.Repository interface.
type FakeCourseRepository struct {
	trace []string

	CreateCourseFunc func(ctx context.Context, db bun.IDB, course *coursetypes.Course) error
	GetCourseFunc    func(ctx context.Context, db bun.IDB, courseID string) (*coursetypes.Course, error)
	ListCoursesFunc  func(ctx context.Context, db bun.IDB) ([]coursetypes.Course, error)
	CountCoursesFunc func(ctx context.Context, db bun.IDB) (int, error)

	LastCreated *coursetypes.Course
}

func NewFakeCourseRepository() *FakeCourseRepository {
	return &FakeCourseRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeCourseRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeCourseRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeCourseRepository) CreateCourse(ctx context.Context, db bun.IDB, course *coursetypes.Course) error {
	f.record("CreateCourse")
	f.LastCreated = course
	if f.CreateCourseFunc != nil {
		return f.CreateCourseFunc(ctx, db, course)
	}
	return nil
}

func (f *FakeCourseRepository) GetCourse(ctx context.Context, db bun.IDB, courseID string) (*coursetypes.Course, error) {
	f.record("GetCourse")
	if f.GetCourseFunc != nil {
		return f.GetCourseFunc(ctx, db, courseID)
	}
	return nil, coursedb.ErrCourseNotFound
}

func (f *FakeCourseRepository) ListCourses(ctx context.Context, db bun.IDB) ([]coursetypes.Course, error) {
	f.record("ListCourses")
	if f.ListCoursesFunc != nil {
		return f.ListCoursesFunc(ctx, db)
	}
	return []coursetypes.Course{}, nil
}

func (f *FakeCourseRepository) CountCourses(ctx context.Context, db bun.IDB) (int, error) {
	f.record("CountCourses")
	if f.CountCoursesFunc != nil {
		return f.CountCoursesFunc(ctx, db)
	}
	return 0, nil
}

var _ coursedb.Repository = (*FakeCourseRepository)(nil)
