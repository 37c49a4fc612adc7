package rounddb

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
)

// Repository is the round persistence boundary. The db argument allows a
// service-managed transaction (bun.Tx) or nil for the repository's own DB.
type Repository interface {
	CreateRound(ctx context.Context, db bun.IDB, round *roundtypes.Round) error
	GetRound(ctx context.Context, db bun.IDB, roundID string) (*roundtypes.Round, error)
	ListRoundsByOwner(ctx context.Context, db bun.IDB, ownerID string) ([]roundtypes.Round, error)
	// UpdateRound saves the round if its stored updated_at still equals
	// expectedUpdatedAt; otherwise it returns ErrStaleRound. This is the
	// optimistic overwrite used for concurrent score entry across devices.
	UpdateRound(ctx context.Context, db bun.IDB, round *roundtypes.Round, expectedUpdatedAt time.Time) error
	DeleteRound(ctx context.Context, db bun.IDB, roundID string) error
	CountRounds(ctx context.Context, db bun.IDB) (int, error)
	CountRoundsSince(ctx context.Context, db bun.IDB, since time.Time) (int, error)
}

// TemplateRepository is the round template persistence boundary.
type TemplateRepository interface {
	CreateTemplate(ctx context.Context, db bun.IDB, template *roundtypes.RoundTemplate) error
	GetTemplate(ctx context.Context, db bun.IDB, templateID string) (*roundtypes.RoundTemplate, error)
	// ListTemplatesByOwner returns the owner's templates, favorites first,
	// then by name.
	ListTemplatesByOwner(ctx context.Context, db bun.IDB, ownerID string) ([]roundtypes.RoundTemplate, error)
	UpdateTemplate(ctx context.Context, db bun.IDB, template *roundtypes.RoundTemplate) error
	DeleteTemplate(ctx context.Context, db bun.IDB, templateID string) error
}
