package rounddb

import (
	"time"

	"github.com/uptrace/bun"

	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
)

// Round is the persistence model for a recorded round. Players (with their
// sparse per-hole score maps) and completed holes are stored as JSONB: the
// round document is read and written as a unit, matching how score entry
// works hole by hole on a phone.
type Round struct {
	bun.BaseModel `bun:"table:rounds,alias:r"`

	ID                 string                  `bun:"id,pk,type:uuid"`
	OwnerID            string                  `bun:"owner_id,notnull"`
	CourseID           string                  `bun:"course_id,nullzero"`
	CourseName         string                  `bun:"course_name,nullzero"`
	RoundDate          time.Time               `bun:"round_date,notnull"`
	CourseLength       roundtypes.CourseLength `bun:"course_length,notnull"`
	GameMode           roundtypes.GameMode     `bun:"game_mode,notnull"`
	UseHandicap        bool                    `bun:"use_handicap,notnull"`
	HandicapPercentage int                     `bun:"handicap_percentage,notnull,default:100"`
	SindicatoPoints    []int                   `bun:"sindicato_points,type:jsonb,nullzero"`
	TeamMode           *roundtypes.TeamMode    `bun:"team_mode,nullzero"`
	BestBallPoints     *int                    `bun:"best_ball_points,nullzero"`
	WorstBallPoints    *int                    `bun:"worst_ball_points,nullzero"`
	CurrentHole        int                     `bun:"current_hole,notnull"`
	CompletedHoles     []int                   `bun:"completed_holes,type:jsonb"`
	Players            []roundtypes.Player     `bun:"players,type:jsonb"`
	Finished           bool                    `bun:"finished,notnull"`
	CreatedAt          time.Time               `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt          time.Time               `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// ToDomain converts the persistence model to the domain round.
func (m *Round) ToDomain() *roundtypes.Round {
	return &roundtypes.Round{
		ID:                 m.ID,
		OwnerID:            m.OwnerID,
		CourseID:           m.CourseID,
		CourseName:         m.CourseName,
		RoundDate:          m.RoundDate,
		CourseLength:       m.CourseLength,
		GameMode:           m.GameMode,
		UseHandicap:        m.UseHandicap,
		HandicapPercentage: m.HandicapPercentage,
		SindicatoPoints:    m.SindicatoPoints,
		TeamMode:           m.TeamMode,
		BestBallPoints:     m.BestBallPoints,
		WorstBallPoints:    m.WorstBallPoints,
		CurrentHole:        m.CurrentHole,
		CompletedHoles:     m.CompletedHoles,
		Players:            m.Players,
		Finished:           m.Finished,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// FromDomain converts a domain round to its persistence model.
func FromDomain(r *roundtypes.Round) *Round {
	return &Round{
		ID:                 r.ID,
		OwnerID:            r.OwnerID,
		CourseID:           r.CourseID,
		CourseName:         r.CourseName,
		RoundDate:          r.RoundDate,
		CourseLength:       r.CourseLength,
		GameMode:           r.GameMode,
		UseHandicap:        r.UseHandicap,
		HandicapPercentage: r.HandicapPercentage,
		SindicatoPoints:    r.SindicatoPoints,
		TeamMode:           r.TeamMode,
		BestBallPoints:     r.BestBallPoints,
		WorstBallPoints:    r.WorstBallPoints,
		CurrentHole:        r.CurrentHole,
		CompletedHoles:     r.CompletedHoles,
		Players:            r.Players,
		Finished:           r.Finished,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
