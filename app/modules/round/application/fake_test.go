package roundservice

import (
	"context"
	"sort"
	"time"

	"github.com/uptrace/bun"

	coursetypes "github.com/sindicato-golf/rounds/app/modules/course/domain/types"
	coursedb "github.com/sindicato-golf/rounds/app/modules/course/infrastructure/repositories"
	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
	rounddb "github.com/sindicato-golf/rounds/app/modules/round/infrastructure/repositories"
)

// FakeRoundRepository is an in-memory rounddb.Repository with programmable
// overrides. The default behavior stores rounds in a map and enforces the
// optimistic updated_at check the way the real repository does.
type FakeRoundRepository struct {
	trace  []string
	Rounds map[string]*roundtypes.Round

	CreateRoundFunc func(ctx context.Context, db bun.IDB, round *roundtypes.Round) error
	GetRoundFunc    func(ctx context.Context, db bun.IDB, roundID string) (*roundtypes.Round, error)
	UpdateRoundFunc func(ctx context.Context, db bun.IDB, round *roundtypes.Round, expectedUpdatedAt time.Time) error
}

func NewFakeRoundRepository() *FakeRoundRepository {
	return &FakeRoundRepository{
		trace:  []string{},
		Rounds: make(map[string]*roundtypes.Round),
	}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeRoundRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeRoundRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeRoundRepository) CreateRound(ctx context.Context, db bun.IDB, round *roundtypes.Round) error {
	f.record("CreateRound")
	if f.CreateRoundFunc != nil {
		return f.CreateRoundFunc(ctx, db, round)
	}
	now := time.Now().UTC()
	round.CreatedAt = now
	round.UpdatedAt = now
	f.Rounds[round.ID] = cloneRound(round)
	return nil
}

func (f *FakeRoundRepository) GetRound(ctx context.Context, db bun.IDB, roundID string) (*roundtypes.Round, error) {
	f.record("GetRound")
	if f.GetRoundFunc != nil {
		return f.GetRoundFunc(ctx, db, roundID)
	}
	stored, ok := f.Rounds[roundID]
	if !ok {
		return nil, rounddb.ErrRoundNotFound
	}
	return cloneRound(stored), nil
}

func (f *FakeRoundRepository) ListRoundsByOwner(ctx context.Context, db bun.IDB, ownerID string) ([]roundtypes.Round, error) {
	f.record("ListRoundsByOwner")
	var out []roundtypes.Round
	for _, r := range f.Rounds {
		if r.OwnerID == ownerID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *FakeRoundRepository) UpdateRound(ctx context.Context, db bun.IDB, round *roundtypes.Round, expectedUpdatedAt time.Time) error {
	f.record("UpdateRound")
	if f.UpdateRoundFunc != nil {
		return f.UpdateRoundFunc(ctx, db, round, expectedUpdatedAt)
	}
	stored, ok := f.Rounds[round.ID]
	if !ok {
		return rounddb.ErrRoundNotFound
	}
	if !stored.UpdatedAt.Equal(expectedUpdatedAt) {
		return rounddb.ErrStaleRound
	}
	round.UpdatedAt = time.Now().UTC()
	f.Rounds[round.ID] = cloneRound(round)
	return nil
}

// cloneRound deep-copies a round so stored state cannot alias what callers
// mutate, mirroring a real database round trip.
func cloneRound(r *roundtypes.Round) *roundtypes.Round {
	out := *r
	out.CompletedHoles = append([]int(nil), r.CompletedHoles...)
	out.SindicatoPoints = append([]int(nil), r.SindicatoPoints...)
	out.Players = make([]roundtypes.Player, len(r.Players))
	for i, p := range r.Players {
		cp := p
		cp.Scores = make(map[int]roundtypes.Score, len(p.Scores))
		for k, v := range p.Scores {
			cp.Scores[k] = v
		}
		out.Players[i] = cp
	}
	return &out
}

func (f *FakeRoundRepository) CountRounds(ctx context.Context, db bun.IDB) (int, error) {
	f.record("CountRounds")
	return len(f.Rounds), nil
}

func (f *FakeRoundRepository) CountRoundsSince(ctx context.Context, db bun.IDB, since time.Time) (int, error) {
	f.record("CountRoundsSince")
	n := 0
	for _, r := range f.Rounds {
		if !r.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (f *FakeRoundRepository) DeleteRound(ctx context.Context, db bun.IDB, roundID string) error {
	f.record("DeleteRound")
	if _, ok := f.Rounds[roundID]; !ok {
		return rounddb.ErrRoundNotFound
	}
	delete(f.Rounds, roundID)
	return nil
}

var _ rounddb.Repository = (*FakeRoundRepository)(nil)

// FakeTemplateRepository is an in-memory rounddb.TemplateRepository.
type FakeTemplateRepository struct {
	Templates map[string]*roundtypes.RoundTemplate
}

func NewFakeTemplateRepository() *FakeTemplateRepository {
	return &FakeTemplateRepository{Templates: make(map[string]*roundtypes.RoundTemplate)}
}

func (f *FakeTemplateRepository) CreateTemplate(ctx context.Context, db bun.IDB, template *roundtypes.RoundTemplate) error {
	now := time.Now().UTC()
	template.CreatedAt = now
	template.UpdatedAt = now
	stored := *template
	f.Templates[template.ID] = &stored
	return nil
}

func (f *FakeTemplateRepository) GetTemplate(ctx context.Context, db bun.IDB, templateID string) (*roundtypes.RoundTemplate, error) {
	stored, ok := f.Templates[templateID]
	if !ok {
		return nil, rounddb.ErrTemplateNotFound
	}
	out := *stored
	return &out, nil
}

func (f *FakeTemplateRepository) ListTemplatesByOwner(ctx context.Context, db bun.IDB, ownerID string) ([]roundtypes.RoundTemplate, error) {
	var out []roundtypes.RoundTemplate
	for _, t := range f.Templates {
		if t.OwnerID == ownerID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsFavorite != out[j].IsFavorite {
			return out[i].IsFavorite
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (f *FakeTemplateRepository) UpdateTemplate(ctx context.Context, db bun.IDB, template *roundtypes.RoundTemplate) error {
	if _, ok := f.Templates[template.ID]; !ok {
		return rounddb.ErrTemplateNotFound
	}
	template.UpdatedAt = time.Now().UTC()
	stored := *template
	f.Templates[template.ID] = &stored
	return nil
}

func (f *FakeTemplateRepository) DeleteTemplate(ctx context.Context, db bun.IDB, templateID string) error {
	if _, ok := f.Templates[templateID]; !ok {
		return rounddb.ErrTemplateNotFound
	}
	delete(f.Templates, templateID)
	return nil
}

var _ rounddb.TemplateRepository = (*FakeTemplateRepository)(nil)

// FakeCourseRepository serves a fixed set of courses.
type FakeCourseRepository struct {
	Courses map[string]*coursetypes.Course
}

func NewFakeCourseRepository() *FakeCourseRepository {
	return &FakeCourseRepository{Courses: make(map[string]*coursetypes.Course)}
}

func (f *FakeCourseRepository) CreateCourse(ctx context.Context, db bun.IDB, course *coursetypes.Course) error {
	f.Courses[course.ID] = course
	return nil
}

func (f *FakeCourseRepository) GetCourse(ctx context.Context, db bun.IDB, courseID string) (*coursetypes.Course, error) {
	course, ok := f.Courses[courseID]
	if !ok {
		return nil, coursedb.ErrCourseNotFound
	}
	return course, nil
}

func (f *FakeCourseRepository) ListCourses(ctx context.Context, db bun.IDB) ([]coursetypes.Course, error) {
	var out []coursetypes.Course
	for _, c := range f.Courses {
		out = append(out, *c)
	}
	return out, nil
}

func (f *FakeCourseRepository) CountCourses(ctx context.Context, db bun.IDB) (int, error) {
	return len(f.Courses), nil
}

var _ coursedb.Repository = (*FakeCourseRepository)(nil)

// FakeEventBus captures published events.
type FakeEventBus struct {
	Published []PublishedEvent
	FailWith  error
}

type PublishedEvent struct {
	Subject string
	Payload any
}

func (f *FakeEventBus) Publish(ctx context.Context, subject string, payload any) error {
	f.Published = append(f.Published, PublishedEvent{Subject: subject, Payload: payload})
	return f.FailWith
}

func (f *FakeEventBus) Close() error { return nil }

// FakeEnqueuer captures handicap revision jobs.
type FakeEnqueuer struct {
	RoundIDs []string
	FailWith error
}

func (f *FakeEnqueuer) EnqueueHandicapRevision(ctx context.Context, roundID string) error {
	f.RoundIDs = append(f.RoundIDs, roundID)
	return f.FailWith
}
