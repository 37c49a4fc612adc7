package roundtypes

import "time"

// GameMode selects how a round is scored.
type GameMode string

const (
	GameModeStroke     GameMode = "stroke"
	GameModeStableford GameMode = "stableford"
	GameModeSindicato  GameMode = "sindicato"
	GameModeTeam       GameMode = "team"
	GameModeMatch      GameMode = "match"
)

// CourseLength selects which holes a round is played over.
type CourseLength string

const (
	CourseLength18     CourseLength = "18"
	CourseLengthFront9 CourseLength = "front9"
	CourseLengthBack9  CourseLength = "back9"
)

// IsNineHoles reports whether the length covers nine holes.
func (l CourseLength) IsNineHoles() bool {
	return l == CourseLengthFront9 || l == CourseLengthBack9
}

// StartingHole is the first hole played for this length.
func (l CourseLength) StartingHole() int {
	if l == CourseLengthBack9 {
		return 10
	}
	return 1
}

// TeamMode selects the team comparison format.
type TeamMode string

const (
	TeamModeBestBall    TeamMode = "bestBall"
	TeamModeGoodBadBall TeamMode = "goodBadBall"
)

// TeamID identifies one of the two team sides.
type TeamID string

const (
	TeamA TeamID = "A"
	TeamB TeamID = "B"
)

// Handicap percentage is one of exactly {100, 75}.
const (
	HandicapFull         = 100
	HandicapThreeQuarter = 75
)

// Score is one completed hole for one player. Strokes is always >= 1; a hole
// that has not been played has no Score entry at all.
type Score struct {
	Strokes int `json:"strokes"`
	Putts   int `json:"putts"`
}

// Player is a participant in a round. Scores is sparse: one entry per
// completed hole, keyed by hole number. "Not played" is the absence of a key,
// never a zero Score.
type Player struct {
	ID              string        `json:"id"`
	ProfileID       string        `json:"profile_id,omitempty"`
	Name            string        `json:"name"`
	HandicapIndex   float64       `json:"handicap_index"`
	TeeBox          string        `json:"tee_box"`
	TeeSlope        int           `json:"tee_slope"`
	Team            *TeamID       `json:"team,omitempty"`
	PlayingHandicap int           `json:"playing_handicap"`
	Scores          map[int]Score `json:"scores"`
}

// ScoreFor returns the player's score on the given hole, if played.
func (p *Player) ScoreFor(hole int) (Score, bool) {
	s, ok := p.Scores[hole]
	return s, ok
}

// Round is a single recorded round: configuration fixed at setup plus the
// mutable play state (current hole, completed holes, player scores).
type Round struct {
	ID                 string       `json:"id"`
	OwnerID            string       `json:"owner_id"`
	CourseID           string       `json:"course_id"`
	CourseName         string       `json:"course_name"`
	RoundDate          time.Time    `json:"round_date"`
	CourseLength       CourseLength `json:"course_length"`
	GameMode           GameMode     `json:"game_mode"`
	UseHandicap        bool         `json:"use_handicap"`
	HandicapPercentage int          `json:"handicap_percentage"`
	SindicatoPoints    []int        `json:"sindicato_points,omitempty"`
	TeamMode           *TeamMode    `json:"team_mode,omitempty"`
	BestBallPoints     *int         `json:"best_ball_points,omitempty"`
	WorstBallPoints    *int         `json:"worst_ball_points,omitempty"`
	CurrentHole        int          `json:"current_hole"`
	CompletedHoles     []int        `json:"completed_holes"`
	Players            []Player     `json:"players"`
	Finished           bool         `json:"finished"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// Player returns the round participant with the given ID.
func (r *Round) Player(id string) (*Player, bool) {
	for i := range r.Players {
		if r.Players[i].ID == id {
			return &r.Players[i], true
		}
	}
	return nil, false
}

// IsCompleted reports whether the given hole has been completed in this round.
func (r *Round) IsCompleted(hole int) bool {
	for _, h := range r.CompletedHoles {
		if h == hole {
			return true
		}
	}
	return false
}

// TeamRoster returns the players assigned to the given team side.
func (r *Round) TeamRoster(team TeamID) []Player {
	var roster []Player
	for _, p := range r.Players {
		if p.Team != nil && *p.Team == team {
			roster = append(roster, p)
		}
	}
	return roster
}
