package roundservice

import (
	"time"

	"go.opentelemetry.io/otel/trace/noop"

	coursetypes "github.com/sindicato-golf/rounds/app/modules/course/domain/types"
	"github.com/sindicato-golf/rounds/app/shared/observability"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2025, 8, 16, 15, 30, 0, 0, time.UTC)

type testEnv struct {
	svc       *RoundService
	rounds    *FakeRoundRepository
	courses   *FakeCourseRepository
	templates *FakeTemplateRepository
	bus       *FakeEventBus
	jobs      *FakeEnqueuer
}

func newTestEnv() *testEnv {
	rounds := NewFakeRoundRepository()
	courses := NewFakeCourseRepository()
	templates := NewFakeTemplateRepository()
	bus := &FakeEventBus{}
	jobs := &FakeEnqueuer{}

	svc := NewRoundService(
		rounds,
		courses,
		templates,
		bus,
		jobs,
		observability.NoOpLogger,
		observability.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
		nil,
	).WithClock(fixedClock{t: testNow})

	courses.Courses["course-18"] = testCourse18()
	courses.Courses["course-9"] = testCourse9()

	return &testEnv{svc: svc, rounds: rounds, courses: courses, templates: templates, bus: bus, jobs: jobs}
}

// testCourse18 is a flat par-4 course with stroke indexes 1..18 in hole
// order, so stroke distribution in tests is easy to reason about.
func testCourse18() *coursetypes.Course {
	holes := make([]coursetypes.HoleData, 0, 18)
	for i := 1; i <= 18; i++ {
		holes = append(holes, coursetypes.HoleData{Number: i, Par: 4, StrokeIndex: i, Distance: 320})
	}
	return &coursetypes.Course{
		ID:    "course-18",
		Name:  "Club Campestre",
		Holes: 18,
		Par:   72,
		Tees: []coursetypes.Tee{
			{Name: "blue", Slope: 128, Rating: 72.5},
			{Name: "white", Slope: 113, Rating: 70.0},
		},
		HolesData: holes,
	}
}

func testCourse9() *coursetypes.Course {
	holes := make([]coursetypes.HoleData, 0, 9)
	for i := 1; i <= 9; i++ {
		holes = append(holes, coursetypes.HoleData{Number: i, Par: 4, StrokeIndex: i, Distance: 300})
	}
	return &coursetypes.Course{
		ID:    "course-9",
		Name:  "Executive Nine",
		Holes: 9,
		Par:   36,
		Tees: []coursetypes.Tee{
			{Name: "white", Slope: 113, Rating: 34.5},
		},
		HolesData: holes,
	}
}
