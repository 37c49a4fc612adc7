package coursedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	coursetypes "github.com/sindicato-golf/rounds/app/modules/course/domain/types"
)

// ErrCourseNotFound is returned when a course ID does not exist.
var ErrCourseNotFound = errors.New("course not found")

// Repository is the course persistence boundary.
type Repository interface {
	CreateCourse(ctx context.Context, db bun.IDB, course *coursetypes.Course) error
	GetCourse(ctx context.Context, db bun.IDB, courseID string) (*coursetypes.Course, error)
	ListCourses(ctx context.Context, db bun.IDB) ([]coursetypes.Course, error)
	CountCourses(ctx context.Context, db bun.IDB) (int, error)
}

// CourseDBImpl is the bun-backed course repository.
type CourseDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*CourseDBImpl)(nil)

func (r *CourseDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *CourseDBImpl) CreateCourse(ctx context.Context, db bun.IDB, course *coursetypes.Course) error {
	model := FromDomain(course)
	if _, err := r.idb(db).NewInsert().Model(model).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert course %s: %w", course.ID, err)
	}
	return nil
}

func (r *CourseDBImpl) GetCourse(ctx context.Context, db bun.IDB, courseID string) (*coursetypes.Course, error) {
	var model Course
	err := r.idb(db).NewSelect().
		Model(&model).
		Where("id = ?", courseID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to fetch course %s: %w", courseID, err)
	}
	return model.ToDomain(), nil
}

func (r *CourseDBImpl) ListCourses(ctx context.Context, db bun.IDB) ([]coursetypes.Course, error) {
	var models []Course
	err := r.idb(db).NewSelect().
		Model(&models).
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	courses := make([]coursetypes.Course, 0, len(models))
	for i := range models {
		courses = append(courses, *models[i].ToDomain())
	}
	return courses, nil
}

func (r *CourseDBImpl) CountCourses(ctx context.Context, db bun.IDB) (int, error) {
	count, err := r.idb(db).NewSelect().Model((*Course)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return count, nil
}
