package roundtypes

import "time"

// RoundTemplate is a saved round setup: the course, mode, and regular group a
// player starts the same round from week after week. Creating a round from a
// template only copies the configuration; scores always start empty.
type RoundTemplate struct {
	ID                 string       `json:"id"`
	OwnerID            string       `json:"owner_id"`
	Name               string       `json:"name"`
	CourseID           string       `json:"course_id"`
	CourseName         string       `json:"course_name"`
	CourseLength       CourseLength `json:"course_length"`
	GameMode           GameMode     `json:"game_mode"`
	UseHandicap        bool         `json:"use_handicap"`
	HandicapPercentage int          `json:"handicap_percentage"`
	SindicatoPoints    []int        `json:"sindicato_points,omitempty"`
	TeamMode           *TeamMode    `json:"team_mode,omitempty"`
	BestBallPoints     *int         `json:"best_ball_points,omitempty"`
	WorstBallPoints    *int         `json:"worst_ball_points,omitempty"`
	PlayerIDs          []string     `json:"player_ids"`
	DefaultTee         string       `json:"default_tee,omitempty"`
	IsFavorite         bool         `json:"is_favorite"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}
