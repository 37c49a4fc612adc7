package roundqueue

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/riverqueue/river"

	coursedb "github.com/sindicato-golf/rounds/app/modules/course/infrastructure/repositories"
	playerservice "github.com/sindicato-golf/rounds/app/modules/player/application"
	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
	rounddb "github.com/sindicato-golf/rounds/app/modules/round/infrastructure/repositories"
	scoring "github.com/sindicato-golf/rounds/app/modules/scoring/engine"
	"github.com/sindicato-golf/rounds/app/shared/attr"
)

// revisionWeight is how far one round moves the index toward its score
// differential. A single round nudges; it never rewrites the index.
const revisionWeight = 0.2

// HandicapRevisionWorker processes handicap_revision jobs.
type HandicapRevisionWorker struct {
	river.WorkerDefaults[HandicapRevisionJob]

	rounds  rounddb.Repository
	courses coursedb.Repository
	players playerservice.Service
	logger  *slog.Logger
}

// NewHandicapRevisionWorker creates the worker.
func NewHandicapRevisionWorker(
	rounds rounddb.Repository,
	courses coursedb.Repository,
	players playerservice.Service,
	logger *slog.Logger,
) *HandicapRevisionWorker {
	return &HandicapRevisionWorker{
		rounds:  rounds,
		courses: courses,
		players: players,
		logger:  logger,
	}
}

// Work revises the handicap index of every profile-linked player in the
// round. Players who did not finish all holes are skipped; a partial round
// says nothing reliable about playing ability.
func (w *HandicapRevisionWorker) Work(ctx context.Context, job *river.Job[HandicapRevisionJob]) error {
	roundID := job.Args.RoundID

	round, err := w.rounds.GetRound(ctx, nil, roundID)
	if err != nil {
		return fmt.Errorf("failed to load round %s: %w", roundID, err)
	}
	course, err := w.courses.GetCourse(ctx, nil, round.CourseID)
	if err != nil {
		return fmt.Errorf("failed to load course %s: %w", round.CourseID, err)
	}

	order := scoring.HolesForLength(round.CourseLength)

	for i := range round.Players {
		player := round.Players[i]
		if player.ProfileID == "" {
			continue
		}
		if !playedAllHoles(player, order) {
			w.logger.InfoContext(ctx, "Skipping handicap revision for incomplete round",
				attr.RoundID("round_id", roundID),
				attr.String("profile_id", player.ProfileID),
			)
			continue
		}

		tee, ok := course.Tee(player.TeeBox)
		if !ok {
			w.logger.WarnContext(ctx, "Player tee no longer on course, skipping revision",
				attr.RoundID("round_id", roundID),
				attr.String("tee", player.TeeBox),
			)
			continue
		}

		gross := scoring.TotalStrokes(player, round.CourseLength)
		differential := ScoreDifferential(gross, tee.Rating, tee.Slope)
		if round.CourseLength.IsNineHoles() {
			// A nine-hole differential counts as half an eighteen-hole round.
			differential *= 2
		}

		newIndex := RevisedIndex(player.HandicapIndex, differential)

		result, err := w.players.ReviseHandicap(ctx, player.ProfileID, newIndex, roundID)
		if err != nil {
			return fmt.Errorf("failed to revise handicap for profile %s: %w", player.ProfileID, err)
		}
		if result.IsFailure() {
			w.logger.WarnContext(ctx, "Profile vanished before handicap revision",
				attr.String("profile_id", player.ProfileID),
				attr.RoundID("round_id", roundID),
			)
		}
	}

	return nil
}

func playedAllHoles(player roundtypes.Player, order []int) bool {
	for _, h := range order {
		if _, ok := player.Scores[h]; !ok {
			return false
		}
	}
	return true
}

// ScoreDifferential is the USGA score differential: how the gross score
// relates to the course rating, normalized to neutral slope.
func ScoreDifferential(grossStrokes int, courseRating float64, slope int) float64 {
	return (float64(grossStrokes) - courseRating) * 113 / float64(slope)
}

// RevisedIndex moves the current index a fixed fraction toward the round's
// differential, rounded to one decimal the way indexes are published.
func RevisedIndex(currentIndex, differential float64) float64 {
	revised := currentIndex + revisionWeight*(differential-currentIndex)
	return math.Round(revised*10) / 10
}
