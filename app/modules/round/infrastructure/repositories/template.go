package rounddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
)

// Template is the persistence model for a saved round setup.
type Template struct {
	bun.BaseModel `bun:"table:round_templates,alias:rt"`

	ID                 string                  `bun:"id,pk,type:uuid"`
	OwnerID            string                  `bun:"owner_id,notnull"`
	Name               string                  `bun:"name,notnull"`
	CourseID           string                  `bun:"course_id,nullzero"`
	CourseName         string                  `bun:"course_name,nullzero"`
	CourseLength       roundtypes.CourseLength `bun:"course_length,notnull"`
	GameMode           roundtypes.GameMode     `bun:"game_mode,notnull"`
	UseHandicap        bool                    `bun:"use_handicap,notnull"`
	HandicapPercentage int                     `bun:"handicap_percentage,notnull,default:100"`
	SindicatoPoints    []int                   `bun:"sindicato_points,type:jsonb,nullzero"`
	TeamMode           *roundtypes.TeamMode    `bun:"team_mode,nullzero"`
	BestBallPoints     *int                    `bun:"best_ball_points,nullzero"`
	WorstBallPoints    *int                    `bun:"worst_ball_points,nullzero"`
	PlayerIDs          []string                `bun:"player_ids,type:jsonb"`
	DefaultTee         string                  `bun:"default_tee,nullzero"`
	IsFavorite         bool                    `bun:"is_favorite,notnull"`
	CreatedAt          time.Time               `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt          time.Time               `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// ToDomain converts the persistence model to the domain template.
func (m *Template) ToDomain() *roundtypes.RoundTemplate {
	return &roundtypes.RoundTemplate{
		ID:                 m.ID,
		OwnerID:            m.OwnerID,
		Name:               m.Name,
		CourseID:           m.CourseID,
		CourseName:         m.CourseName,
		CourseLength:       m.CourseLength,
		GameMode:           m.GameMode,
		UseHandicap:        m.UseHandicap,
		HandicapPercentage: m.HandicapPercentage,
		SindicatoPoints:    m.SindicatoPoints,
		TeamMode:           m.TeamMode,
		BestBallPoints:     m.BestBallPoints,
		WorstBallPoints:    m.WorstBallPoints,
		PlayerIDs:          m.PlayerIDs,
		DefaultTee:         m.DefaultTee,
		IsFavorite:         m.IsFavorite,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// TemplateFromDomain converts a domain template to its persistence model.
func TemplateFromDomain(t *roundtypes.RoundTemplate) *Template {
	return &Template{
		ID:                 t.ID,
		OwnerID:            t.OwnerID,
		Name:               t.Name,
		CourseID:           t.CourseID,
		CourseName:         t.CourseName,
		CourseLength:       t.CourseLength,
		GameMode:           t.GameMode,
		UseHandicap:        t.UseHandicap,
		HandicapPercentage: t.HandicapPercentage,
		SindicatoPoints:    t.SindicatoPoints,
		TeamMode:           t.TeamMode,
		BestBallPoints:     t.BestBallPoints,
		WorstBallPoints:    t.WorstBallPoints,
		PlayerIDs:          t.PlayerIDs,
		DefaultTee:         t.DefaultTee,
		IsFavorite:         t.IsFavorite,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

// TemplateDBImpl is the bun-backed template repository.
type TemplateDBImpl struct {
	DB *bun.DB
}

var _ TemplateRepository = (*TemplateDBImpl)(nil)

func (r *TemplateDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *TemplateDBImpl) CreateTemplate(ctx context.Context, db bun.IDB, template *roundtypes.RoundTemplate) error {
	model := TemplateFromDomain(template)
	if _, err := r.idb(db).NewInsert().Model(model).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert template %s: %w", template.ID, err)
	}
	return nil
}

func (r *TemplateDBImpl) GetTemplate(ctx context.Context, db bun.IDB, templateID string) (*roundtypes.RoundTemplate, error) {
	var model Template
	err := r.idb(db).NewSelect().
		Model(&model).
		Where("id = ?", templateID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to fetch template %s: %w", templateID, err)
	}
	return model.ToDomain(), nil
}

func (r *TemplateDBImpl) ListTemplatesByOwner(ctx context.Context, db bun.IDB, ownerID string) ([]roundtypes.RoundTemplate, error) {
	var models []Template
	err := r.idb(db).NewSelect().
		Model(&models).
		Where("owner_id = ?", ownerID).
		Order("is_favorite DESC", "name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates for owner %s: %w", ownerID, err)
	}

	templates := make([]roundtypes.RoundTemplate, 0, len(models))
	for i := range models {
		templates = append(templates, *models[i].ToDomain())
	}
	return templates, nil
}

func (r *TemplateDBImpl) UpdateTemplate(ctx context.Context, db bun.IDB, template *roundtypes.RoundTemplate) error {
	model := TemplateFromDomain(template)
	model.UpdatedAt = time.Now().UTC()

	res, err := r.idb(db).NewUpdate().
		Model(model).
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update template %s: %w", template.ID, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result for template %s: %w", template.ID, err)
	}
	if rows == 0 {
		return ErrTemplateNotFound
	}

	template.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *TemplateDBImpl) DeleteTemplate(ctx context.Context, db bun.IDB, templateID string) error {
	res, err := r.idb(db).NewDelete().
		Model((*Template)(nil)).
		Where("id = ?", templateID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete template %s: %w", templateID, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result for template %s: %w", templateID, err)
	}
	if rows == 0 {
		return ErrTemplateNotFound
	}
	return nil
}
