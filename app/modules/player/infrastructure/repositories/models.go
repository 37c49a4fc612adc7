package playerdb

import (
	"time"

	"github.com/uptrace/bun"

	playertypes "github.com/sindicato-golf/rounds/app/modules/player/domain/types"
)

// Profile is the persistence model for a player profile.
type Profile struct {
	bun.BaseModel `bun:"table:player_profiles,alias:pp"`

	ID            string    `bun:"id,pk,type:uuid"`
	Name          string    `bun:"name,notnull"`
	HandicapIndex float64   `bun:"handicap_index,notnull"`
	DefaultTeeBox string    `bun:"default_tee_box"`
	HomeCourseID  string    `bun:"home_course_id,type:uuid,nullzero"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func (m *Profile) ToDomain() *playertypes.Profile {
	return &playertypes.Profile{
		ID:            m.ID,
		Name:          m.Name,
		HandicapIndex: m.HandicapIndex,
		DefaultTeeBox: m.DefaultTeeBox,
		HomeCourseID:  m.HomeCourseID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ProfileFromDomain(p *playertypes.Profile) *Profile {
	return &Profile{
		ID:            p.ID,
		Name:          p.Name,
		HandicapIndex: p.HandicapIndex,
		DefaultTeeBox: p.DefaultTeeBox,
		HomeCourseID:  p.HomeCourseID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// HandicapEntry is the persistence model for one handicap history row.
type HandicapEntry struct {
	bun.BaseModel `bun:"table:handicap_history,alias:hh"`

	ID            string    `bun:"id,pk,type:uuid"`
	ProfileID     string    `bun:"profile_id,type:uuid,notnull"`
	HandicapIndex float64   `bun:"handicap_index,notnull"`
	Source        string    `bun:"source,notnull"`
	RoundID       string    `bun:"round_id,type:uuid,nullzero"`
	RecordedAt    time.Time `bun:"recorded_at,nullzero,notnull,default:current_timestamp"`
}

func (m *HandicapEntry) ToDomain() *playertypes.HandicapEntry {
	return &playertypes.HandicapEntry{
		ID:            m.ID,
		ProfileID:     m.ProfileID,
		HandicapIndex: m.HandicapIndex,
		Source:        playertypes.HandicapSource(m.Source),
		RoundID:       m.RoundID,
		RecordedAt:    m.RecordedAt,
	}
}

func EntryFromDomain(e *playertypes.HandicapEntry) *HandicapEntry {
	return &HandicapEntry{
		ID:            e.ID,
		ProfileID:     e.ProfileID,
		HandicapIndex: e.HandicapIndex,
		Source:        string(e.Source),
		RoundID:       e.RoundID,
		RecordedAt:    e.RecordedAt,
	}
}
