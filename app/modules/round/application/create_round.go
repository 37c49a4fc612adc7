package roundservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/sindicato-golf/rounds/app/eventbus"
	coursetypes "github.com/sindicato-golf/rounds/app/modules/course/domain/types"
	coursedb "github.com/sindicato-golf/rounds/app/modules/course/infrastructure/repositories"
	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
	scoring "github.com/sindicato-golf/rounds/app/modules/scoring/engine"
	"github.com/sindicato-golf/rounds/app/shared/attr"
	"github.com/sindicato-golf/rounds/app/shared/results"
)

// RoundCreatedPayload is published on round.created.
type RoundCreatedPayload struct {
	RoundID  string              `json:"round_id"`
	OwnerID  string              `json:"owner_id"`
	CourseID string              `json:"course_id"`
	GameMode roundtypes.GameMode `json:"game_mode"`
	Players  int                 `json:"players"`
}

// CreateRound validates the setup, freezes every player's playing handicap,
// and persists the round. Handicaps are computed once here; later edits to a
// profile's index never change a round already underway.
func (s *RoundService) CreateRound(ctx context.Context, input CreateRoundInput) (results.OperationResult[RoundCreated, RoundValidationFailed], error) {
	roundID := uuid.NewString()

	return withTelemetry(s, ctx, "CreateRound", roundID, func(ctx context.Context) (results.OperationResult[RoundCreated, RoundValidationFailed], error) {
		fail := func(reason string) (results.OperationResult[RoundCreated, RoundValidationFailed], error) {
			return results.Failure[RoundCreated, RoundValidationFailed](RoundValidationFailed{Reason: reason}), nil
		}

		course, err := s.courses.GetCourse(ctx, nil, input.CourseID)
		if err != nil {
			if errors.Is(err, coursedb.ErrCourseNotFound) {
				return fail(fmt.Sprintf("course %s does not exist", input.CourseID))
			}
			return results.OperationResult[RoundCreated, RoundValidationFailed]{}, err
		}

		if reason := validateSetup(input, course); reason != "" {
			return fail(reason)
		}

		roundDate, err := s.dates.ParseRoundDate(input.Date, s.clock)
		if err != nil {
			return fail(err.Error())
		}

		percentage := input.HandicapPercentage
		if percentage == 0 {
			percentage = roundtypes.HandicapFull
		}

		players := make([]roundtypes.Player, 0, len(input.Players))
		for _, in := range input.Players {
			tee, ok := course.Tee(in.TeeBox)
			if !ok {
				return fail(fmt.Sprintf("course has no tee %q", in.TeeBox))
			}

			p := roundtypes.Player{
				ID:            uuid.NewString(),
				ProfileID:     in.ProfileID,
				Name:          in.Name,
				HandicapIndex: in.HandicapIndex,
				TeeBox:        in.TeeBox,
				TeeSlope:      tee.Slope,
				Team:          in.Team,
				Scores:        make(map[int]roundtypes.Score),
			}
			if input.UseHandicap {
				p.PlayingHandicap = scoring.PlayingHandicap(in.HandicapIndex, tee.Slope, percentage)
			}
			players = append(players, p)
		}

		round := &roundtypes.Round{
			ID:                 roundID,
			OwnerID:            input.OwnerID,
			CourseID:           course.ID,
			CourseName:         course.Name,
			RoundDate:          roundDate,
			CourseLength:       input.CourseLength,
			GameMode:           input.GameMode,
			UseHandicap:        input.UseHandicap,
			HandicapPercentage: percentage,
			SindicatoPoints:    input.SindicatoPoints,
			TeamMode:           input.TeamMode,
			BestBallPoints:     input.BestBallPoints,
			WorstBallPoints:    input.WorstBallPoints,
			CurrentHole:        input.CourseLength.StartingHole(),
			CompletedHoles:     []int{},
			Players:            players,
		}
		if round.GameMode == roundtypes.GameModeSindicato && len(round.SindicatoPoints) == 0 {
			round.SindicatoPoints = scoring.DefaultSindicatoPoints
		}

		result, err := runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[RoundCreated, RoundValidationFailed], error) {
			if err := s.repo.CreateRound(ctx, db, round); err != nil {
				return results.OperationResult[RoundCreated, RoundValidationFailed]{}, err
			}
			return results.Success[RoundCreated, RoundValidationFailed](RoundCreated{Round: round}), nil
		})
		if err != nil || !result.IsSuccess() {
			return result, err
		}

		payload := RoundCreatedPayload{
			RoundID:  round.ID,
			OwnerID:  round.OwnerID,
			CourseID: round.CourseID,
			GameMode: round.GameMode,
			Players:  len(round.Players),
		}
		if pubErr := s.EventBus.Publish(ctx, eventbus.SubjectRoundCreated, payload); pubErr != nil {
			s.logger.WarnContext(ctx, "Failed to publish round created event",
				attr.RoundID("round_id", round.ID),
				attr.Error(pubErr),
			)
		}

		return result, nil
	})
}

func validateSetup(input CreateRoundInput, course *coursetypes.Course) string {
	switch input.GameMode {
	case roundtypes.GameModeStroke, roundtypes.GameModeStableford,
		roundtypes.GameModeSindicato, roundtypes.GameModeTeam, roundtypes.GameModeMatch:
	default:
		return fmt.Sprintf("unknown game mode %q", input.GameMode)
	}

	switch input.CourseLength {
	case roundtypes.CourseLength18, roundtypes.CourseLengthFront9, roundtypes.CourseLengthBack9:
	default:
		return fmt.Sprintf("unknown course length %q", input.CourseLength)
	}

	if course.Holes == 9 && input.CourseLength != roundtypes.CourseLengthFront9 {
		return "nine-hole course only supports the front nine"
	}

	if len(input.Players) == 0 {
		return "round needs at least one player"
	}
	for _, p := range input.Players {
		if p.Name == "" {
			return "every player needs a name"
		}
	}

	if input.HandicapPercentage != 0 &&
		input.HandicapPercentage != roundtypes.HandicapFull &&
		input.HandicapPercentage != roundtypes.HandicapThreeQuarter {
		return fmt.Sprintf("handicap percentage must be %d or %d", roundtypes.HandicapFull, roundtypes.HandicapThreeQuarter)
	}

	switch input.GameMode {
	case roundtypes.GameModeSindicato:
		if len(input.Players) < 2 {
			return "sindicato needs at least two players"
		}
		for _, pts := range input.SindicatoPoints {
			if pts < 0 {
				return "sindicato points must not be negative"
			}
		}
	case roundtypes.GameModeMatch:
		if len(input.Players) != 2 {
			return "match play needs exactly two players"
		}
	case roundtypes.GameModeTeam:
		if input.TeamMode == nil {
			return "team rounds need a team mode"
		}
		switch *input.TeamMode {
		case roundtypes.TeamModeBestBall, roundtypes.TeamModeGoodBadBall:
		default:
			return fmt.Sprintf("unknown team mode %q", *input.TeamMode)
		}
		var a, b int
		for _, p := range input.Players {
			if p.Team == nil {
				return fmt.Sprintf("player %q has no team assignment", p.Name)
			}
			switch *p.Team {
			case roundtypes.TeamA:
				a++
			case roundtypes.TeamB:
				b++
			default:
				return fmt.Sprintf("player %q has unknown team %q", p.Name, *p.Team)
			}
		}
		if a == 0 || b == 0 {
			return "both teams need at least one player"
		}
	}

	return ""
}
