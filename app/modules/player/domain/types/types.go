package playertypes

import (
	"fmt"
	"time"
)

// Profile is a saved player identity. Rounds may reference a profile or carry
// ad-hoc guests that exist only inside the round.
type Profile struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	HandicapIndex float64   `json:"handicap_index"`
	DefaultTeeBox string    `json:"default_tee_box,omitempty"`
	HomeCourseID  string    `json:"home_course_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Handicap index bounds follow the WHS maximum of 54.0 in either direction
// (plus handicaps are negative).
const (
	MinHandicapIndex = -10.0
	MaxHandicapIndex = 54.0
)

// Validate checks the profile at the boundary.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	if p.HandicapIndex < MinHandicapIndex || p.HandicapIndex > MaxHandicapIndex {
		return fmt.Errorf("handicap index %.1f out of range [%.1f, %.1f]",
			p.HandicapIndex, MinHandicapIndex, MaxHandicapIndex)
	}
	return nil
}

// HandicapSource records where a history entry came from.
type HandicapSource string

const (
	// HandicapSourceManual is an index entered or edited by hand.
	HandicapSourceManual HandicapSource = "manual"
	// HandicapSourceRevision is an index produced by the post-round
	// revision job.
	HandicapSourceRevision HandicapSource = "revision"
)

// HandicapEntry is one point in a profile's handicap history. Entries are
// append-only; the current index is the most recent entry.
type HandicapEntry struct {
	ID            string         `json:"id"`
	ProfileID     string         `json:"profile_id"`
	HandicapIndex float64        `json:"handicap_index"`
	Source        HandicapSource `json:"source"`
	RoundID       string         `json:"round_id,omitempty"`
	RecordedAt    time.Time      `json:"recorded_at"`
}
