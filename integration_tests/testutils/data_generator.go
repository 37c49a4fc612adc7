package testutils

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	coursetypes "github.com/sindicato-golf/rounds/app/modules/course/domain/types"
	playertypes "github.com/sindicato-golf/rounds/app/modules/player/domain/types"
	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
)

// TestDataGenerator produces realistic domain objects for integration tests.
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a generator; pass a seed for reproducible data.
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}

	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

// Seed returns the seed in use, for reproducing failures.
func (g *TestDataGenerator) Seed() int64 { return g.seed }

// GenerateCourse builds an 18-hole course with two tees and plausible
// slope/rating numbers.
func (g *TestDataGenerator) GenerateCourse() *coursetypes.Course {
	holes := make([]coursetypes.HoleData, 0, 18)
	strokeIndexes := seq(1, 18)
	g.faker.ShuffleInts(strokeIndexes)
	par := 0
	for i := 1; i <= 18; i++ {
		holePar := g.faker.RandomInt([]int{3, 4, 4, 4, 5})
		par += holePar
		holes = append(holes, coursetypes.HoleData{
			Number:      i,
			Par:         holePar,
			StrokeIndex: strokeIndexes[i-1],
			Distance:    g.faker.Number(90, 550),
		})
	}

	return &coursetypes.Course{
		ID:    uuid.New().String(),
		Name:  g.faker.City() + " Golf Club",
		Holes: 18,
		Par:   par,
		Tees: []coursetypes.Tee{
			{Name: "blue", Slope: g.faker.Number(115, 140), Rating: float64(g.faker.Number(690, 750)) / 10},
			{Name: "white", Slope: g.faker.Number(105, 125), Rating: float64(g.faker.Number(670, 720)) / 10},
		},
		HolesData: holes,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

// GenerateProfile builds a player profile with an index inside the legal
// range.
func (g *TestDataGenerator) GenerateProfile() *playertypes.Profile {
	return &playertypes.Profile{
		ID:            uuid.New().String(),
		Name:          g.faker.Name(),
		HandicapIndex: float64(g.faker.Number(0, 360)) / 10,
		DefaultTeeBox: g.faker.RandomString([]string{"blue", "white"}),
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
}

// GenerateRound builds an unscored stroke play round on the given course
// with the requested number of players.
func (g *TestDataGenerator) GenerateRound(course *coursetypes.Course, playerCount int) *roundtypes.Round {
	players := make([]roundtypes.Player, 0, playerCount)
	for i := 0; i < playerCount; i++ {
		tee := course.Tees[g.faker.Number(0, len(course.Tees)-1)]
		players = append(players, roundtypes.Player{
			ID:            uuid.New().String(),
			Name:          g.faker.FirstName(),
			HandicapIndex: float64(g.faker.Number(0, 280)) / 10,
			TeeBox:        tee.Name,
			TeeSlope:      tee.Slope,
			Scores:        map[int]roundtypes.Score{},
		})
	}

	now := time.Now().UTC()
	return &roundtypes.Round{
		ID:                 uuid.New().String(),
		OwnerID:            uuid.New().String(),
		CourseID:           course.ID,
		CourseName:         course.Name,
		RoundDate:          now.Truncate(24 * time.Hour),
		CourseLength:       roundtypes.CourseLength18,
		GameMode:           roundtypes.GameModeStroke,
		UseHandicap:        true,
		HandicapPercentage: roundtypes.HandicapFull,
		CurrentHole:        1,
		CompletedHoles:     []int{},
		Players:            players,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func seq(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
