package roundservice

import (
	"context"
	"time"

	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
	"github.com/sindicato-golf/rounds/app/shared/results"
)

// PlayerInput describes one participant at round creation.
type PlayerInput struct {
	ProfileID     string             `json:"profile_id,omitempty"`
	Name          string             `json:"name"`
	HandicapIndex float64            `json:"handicap_index"`
	TeeBox        string             `json:"tee_box"`
	Team          *roundtypes.TeamID `json:"team,omitempty"`
}

// CreateRoundInput is the round setup request. Date accepts an ISO date or
// natural language ("yesterday", "last saturday"); empty means today.
type CreateRoundInput struct {
	OwnerID            string                  `json:"owner_id"`
	CourseID           string                  `json:"course_id"`
	Date               string                  `json:"date,omitempty"`
	CourseLength       roundtypes.CourseLength `json:"course_length"`
	GameMode           roundtypes.GameMode     `json:"game_mode"`
	UseHandicap        bool                    `json:"use_handicap"`
	HandicapPercentage int                     `json:"handicap_percentage,omitempty"`
	SindicatoPoints    []int                   `json:"sindicato_points,omitempty"`
	TeamMode           *roundtypes.TeamMode    `json:"team_mode,omitempty"`
	BestBallPoints     *int                    `json:"best_ball_points,omitempty"`
	WorstBallPoints    *int                    `json:"worst_ball_points,omitempty"`
	Players            []PlayerInput           `json:"players"`
}

// RecordScoreInput records one player's result on one hole. Re-recording a
// hole overwrites the previous score.
type RecordScoreInput struct {
	RoundID  string `json:"round_id"`
	PlayerID string `json:"player_id"`
	Hole     int    `json:"hole"`
	Strokes  int    `json:"strokes"`
	Putts    int    `json:"putts"`
}

// RoundCreated is the success payload for CreateRound.
type RoundCreated struct {
	Round *roundtypes.Round
}

// RoundValidationFailed is the handled failure payload for CreateRound.
type RoundValidationFailed struct {
	Reason string
}

// RoundNotFound is the handled failure payload for round lookups.
type RoundNotFound struct {
	RoundID string
}

// ScoreRecorded is the success payload for RecordScore.
type ScoreRecorded struct {
	Round         *roundtypes.Round
	HoleCompleted bool
}

// ScoreRejected is the handled failure payload for RecordScore. Conflict is
// set when another device saved the round first; the client should reload and
// retry. NotFound is set when the round does not exist.
type ScoreRejected struct {
	Reason   string
	Conflict bool
	NotFound bool
}

// RoundDeleted is the success payload for DeleteRound.
type RoundDeleted struct {
	RoundID string
}

// TemplateInput is the round template setup request, shared by create and
// update. The course name is resolved from CourseID, never taken from the
// client.
type TemplateInput struct {
	OwnerID            string                  `json:"owner_id"`
	Name               string                  `json:"name"`
	CourseID           string                  `json:"course_id"`
	CourseLength       roundtypes.CourseLength `json:"course_length"`
	GameMode           roundtypes.GameMode     `json:"game_mode"`
	UseHandicap        bool                    `json:"use_handicap"`
	HandicapPercentage int                     `json:"handicap_percentage,omitempty"`
	SindicatoPoints    []int                   `json:"sindicato_points,omitempty"`
	TeamMode           *roundtypes.TeamMode    `json:"team_mode,omitempty"`
	BestBallPoints     *int                    `json:"best_ball_points,omitempty"`
	WorstBallPoints    *int                    `json:"worst_ball_points,omitempty"`
	PlayerIDs          []string                `json:"player_ids,omitempty"`
	DefaultTee         string                  `json:"default_tee,omitempty"`
	IsFavorite         bool                    `json:"is_favorite,omitempty"`
}

// TemplateSaved is the success payload for CreateTemplate and UpdateTemplate.
type TemplateSaved struct {
	Template *roundtypes.RoundTemplate
}

// TemplateRejected is the handled failure payload for template writes.
// NotFound is set when the template being updated does not exist.
type TemplateRejected struct {
	Reason   string
	NotFound bool
}

// TemplateNotFound is the handled failure payload for template lookups.
type TemplateNotFound struct {
	TemplateID string
}

// TemplateDeleted is the success payload for DeleteTemplate.
type TemplateDeleted struct {
	TemplateID string
}

// FavoriteToggled is the success payload for ToggleTemplateFavorite.
type FavoriteToggled struct {
	TemplateID string
	IsFavorite bool
}

// RoundFinished is the success payload for FinishRound.
type RoundFinished struct {
	Round *roundtypes.Round
}

// FinishRejected is the handled failure payload for FinishRound. NotFound is
// set when the round does not exist.
type FinishRejected struct {
	Reason   string
	NotFound bool
}

// ScorecardHole is one player's line on one hole of the scorecard view.
type ScorecardHole struct {
	Hole        int    `json:"hole"`
	Par         int    `json:"par"`
	StrokeIndex int    `json:"stroke_index"`
	Played      bool   `json:"played"`
	Strokes     int    `json:"strokes,omitempty"`
	Putts       int    `json:"putts,omitempty"`
	Net         int    `json:"net,omitempty"`
	Result      string `json:"result,omitempty"`
	Stableford  int    `json:"stableford"`
}

// ScorecardRow is one player's full scorecard line.
type ScorecardRow struct {
	PlayerID        string          `json:"player_id"`
	Name            string          `json:"name"`
	PlayingHandicap int             `json:"playing_handicap"`
	Holes           []ScorecardHole `json:"holes"`
	Out             int             `json:"out"`
	In              int             `json:"in"`
	Total           int             `json:"total"`
	NetTotal        int             `json:"net_total"`
	StablefordTotal int             `json:"stableford_total"`
	Putts           int             `json:"putts"`
}

// Scorecard is the full round view: every player, every hole, with totals.
type Scorecard struct {
	RoundID    string                  `json:"round_id"`
	CourseName string                  `json:"course_name"`
	Date       time.Time               `json:"date"`
	GameMode   roundtypes.GameMode     `json:"game_mode"`
	Length     roundtypes.CourseLength `json:"course_length"`
	Rows       []ScorecardRow          `json:"rows"`
}

// StandingsEntry is one player's position in an individual-mode standings
// table. Points holds net strokes for stroke play and points for stableford
// and sindicato.
type StandingsEntry struct {
	PlayerID string  `json:"player_id"`
	Name     string  `json:"name"`
	Points   float64 `json:"points"`
	Rank     int     `json:"rank"`
}

// TeamStandingsView is the two-side score for team modes.
type TeamStandingsView struct {
	TeamA  float64 `json:"team_a"`
	TeamB  float64 `json:"team_b"`
	Leader string  `json:"leader"`
}

// MatchStatusView is the match play state in golf notation.
type MatchStatusView struct {
	Score          int    `json:"score"`
	HolesPlayed    int    `json:"holes_played"`
	HolesRemaining int    `json:"holes_remaining"`
	Decided        bool   `json:"decided"`
	WinnerID       string `json:"winner_id,omitempty"`
	Status         string `json:"status"`
	FinalResult    string `json:"final_result,omitempty"`
}

// Standings is the mode-dependent standings view. Exactly one of Entries,
// Team, or Match is populated, keyed by Mode.
type Standings struct {
	RoundID string              `json:"round_id"`
	Mode    roundtypes.GameMode `json:"mode"`
	Entries []StandingsEntry    `json:"entries,omitempty"`
	Team    *TeamStandingsView  `json:"team,omitempty"`
	Match   *MatchStatusView    `json:"match,omitempty"`
}

// Service is the round application surface.
type Service interface {
	CreateRound(ctx context.Context, input CreateRoundInput) (results.OperationResult[RoundCreated, RoundValidationFailed], error)
	GetRound(ctx context.Context, roundID string) (results.OperationResult[*roundtypes.Round, RoundNotFound], error)
	ListRounds(ctx context.Context, ownerID string) ([]roundtypes.Round, error)
	DeleteRound(ctx context.Context, roundID string) (results.OperationResult[RoundDeleted, RoundNotFound], error)

	RecordScore(ctx context.Context, input RecordScoreInput) (results.OperationResult[ScoreRecorded, ScoreRejected], error)
	FinishRound(ctx context.Context, roundID string) (results.OperationResult[RoundFinished, FinishRejected], error)

	CreateTemplate(ctx context.Context, input TemplateInput) (results.OperationResult[TemplateSaved, TemplateRejected], error)
	GetTemplate(ctx context.Context, templateID string) (results.OperationResult[*roundtypes.RoundTemplate, TemplateNotFound], error)
	ListTemplates(ctx context.Context, ownerID string) ([]roundtypes.RoundTemplate, error)
	UpdateTemplate(ctx context.Context, templateID string, input TemplateInput) (results.OperationResult[TemplateSaved, TemplateRejected], error)
	DeleteTemplate(ctx context.Context, templateID string) (results.OperationResult[TemplateDeleted, TemplateNotFound], error)
	ToggleTemplateFavorite(ctx context.Context, templateID string) (results.OperationResult[FavoriteToggled, TemplateNotFound], error)

	GetScorecard(ctx context.Context, roundID string) (results.OperationResult[Scorecard, RoundNotFound], error)
	GetStandings(ctx context.Context, roundID string) (results.OperationResult[Standings, RoundNotFound], error)
	ExportScorecardXLSX(ctx context.Context, roundID string) ([]byte, string, error)
}
