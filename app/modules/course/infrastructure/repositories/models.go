package coursedb

import (
	"time"

	"github.com/uptrace/bun"

	coursetypes "github.com/sindicato-golf/rounds/app/modules/course/domain/types"
)

// Course is the persistence model for a saved course. Tees and per-hole data
// are JSONB documents; courses are small and always read whole.
type Course struct {
	bun.BaseModel `bun:"table:courses,alias:c"`

	ID        string                 `bun:"id,pk,type:uuid"`
	Name      string                 `bun:"name,notnull"`
	Holes     int                    `bun:"holes,notnull"`
	Par       int                    `bun:"par,notnull"`
	Tees      []coursetypes.Tee      `bun:"tees,type:jsonb"`
	HolesData []coursetypes.HoleData `bun:"holes_data,type:jsonb"`
	CreatedAt time.Time              `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time              `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// ToDomain converts the persistence model to the domain course.
func (m *Course) ToDomain() *coursetypes.Course {
	return &coursetypes.Course{
		ID:        m.ID,
		Name:      m.Name,
		Holes:     m.Holes,
		Par:       m.Par,
		Tees:      m.Tees,
		HolesData: m.HolesData,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts a domain course to its persistence model.
func FromDomain(c *coursetypes.Course) *Course {
	return &Course{
		ID:        c.ID,
		Name:      c.Name,
		Holes:     c.Holes,
		Par:       c.Par,
		Tees:      c.Tees,
		HolesData: c.HolesData,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
