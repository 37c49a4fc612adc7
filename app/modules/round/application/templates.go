package roundservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	coursedb "github.com/sindicato-golf/rounds/app/modules/course/infrastructure/repositories"
	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
	rounddb "github.com/sindicato-golf/rounds/app/modules/round/infrastructure/repositories"
	"github.com/sindicato-golf/rounds/app/shared/results"
)

// CreateTemplate saves a round setup for reuse. The configuration is
// validated the same way round creation validates it, minus the players:
// templates hold profile references, not frozen handicaps.
func (s *RoundService) CreateTemplate(ctx context.Context, input TemplateInput) (results.OperationResult[TemplateSaved, TemplateRejected], error) {
	templateID := uuid.NewString()

	return withOpTelemetry(s, ctx, "CreateTemplate", "template_id", templateID, func(ctx context.Context) (results.OperationResult[TemplateSaved, TemplateRejected], error) {
		template, reject, err := s.buildTemplate(ctx, templateID, input)
		if err != nil {
			return results.OperationResult[TemplateSaved, TemplateRejected]{}, err
		}
		if reject != "" {
			return results.Failure[TemplateSaved, TemplateRejected](TemplateRejected{Reason: reject}), nil
		}

		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[TemplateSaved, TemplateRejected], error) {
			if err := s.templates.CreateTemplate(ctx, db, template); err != nil {
				return results.OperationResult[TemplateSaved, TemplateRejected]{}, err
			}
			return results.Success[TemplateSaved, TemplateRejected](TemplateSaved{Template: template}), nil
		})
	})
}

// GetTemplate fetches one template by ID.
func (s *RoundService) GetTemplate(ctx context.Context, templateID string) (results.OperationResult[*roundtypes.RoundTemplate, TemplateNotFound], error) {
	return withOpTelemetry(s, ctx, "GetTemplate", "template_id", templateID, func(ctx context.Context) (results.OperationResult[*roundtypes.RoundTemplate, TemplateNotFound], error) {
		template, err := s.templates.GetTemplate(ctx, nil, templateID)
		if err != nil {
			if errors.Is(err, rounddb.ErrTemplateNotFound) {
				return results.Failure[*roundtypes.RoundTemplate, TemplateNotFound](TemplateNotFound{TemplateID: templateID}), nil
			}
			return results.OperationResult[*roundtypes.RoundTemplate, TemplateNotFound]{}, err
		}
		return results.Success[*roundtypes.RoundTemplate, TemplateNotFound](template), nil
	})
}

// ListTemplates returns the owner's templates, favorites first.
func (s *RoundService) ListTemplates(ctx context.Context, ownerID string) ([]roundtypes.RoundTemplate, error) {
	return s.templates.ListTemplatesByOwner(ctx, nil, ownerID)
}

// UpdateTemplate replaces a template's configuration. The owner and favorite
// flag carry over from the stored template; favorites are flipped through
// ToggleTemplateFavorite.
func (s *RoundService) UpdateTemplate(ctx context.Context, templateID string, input TemplateInput) (results.OperationResult[TemplateSaved, TemplateRejected], error) {
	return withOpTelemetry(s, ctx, "UpdateTemplate", "template_id", templateID, func(ctx context.Context) (results.OperationResult[TemplateSaved, TemplateRejected], error) {
		stored, err := s.templates.GetTemplate(ctx, nil, templateID)
		if err != nil {
			if errors.Is(err, rounddb.ErrTemplateNotFound) {
				return results.Failure[TemplateSaved, TemplateRejected](TemplateRejected{
					Reason:   fmt.Sprintf("template %s does not exist", templateID),
					NotFound: true,
				}), nil
			}
			return results.OperationResult[TemplateSaved, TemplateRejected]{}, err
		}

		input.OwnerID = stored.OwnerID
		template, reject, err := s.buildTemplate(ctx, templateID, input)
		if err != nil {
			return results.OperationResult[TemplateSaved, TemplateRejected]{}, err
		}
		if reject != "" {
			return results.Failure[TemplateSaved, TemplateRejected](TemplateRejected{Reason: reject}), nil
		}
		template.IsFavorite = stored.IsFavorite
		template.CreatedAt = stored.CreatedAt

		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[TemplateSaved, TemplateRejected], error) {
			if err := s.templates.UpdateTemplate(ctx, db, template); err != nil {
				return results.OperationResult[TemplateSaved, TemplateRejected]{}, err
			}
			return results.Success[TemplateSaved, TemplateRejected](TemplateSaved{Template: template}), nil
		})
	})
}

// DeleteTemplate removes a saved template.
func (s *RoundService) DeleteTemplate(ctx context.Context, templateID string) (results.OperationResult[TemplateDeleted, TemplateNotFound], error) {
	return withOpTelemetry(s, ctx, "DeleteTemplate", "template_id", templateID, func(ctx context.Context) (results.OperationResult[TemplateDeleted, TemplateNotFound], error) {
		if err := s.templates.DeleteTemplate(ctx, nil, templateID); err != nil {
			if errors.Is(err, rounddb.ErrTemplateNotFound) {
				return results.Failure[TemplateDeleted, TemplateNotFound](TemplateNotFound{TemplateID: templateID}), nil
			}
			return results.OperationResult[TemplateDeleted, TemplateNotFound]{}, err
		}
		return results.Success[TemplateDeleted, TemplateNotFound](TemplateDeleted{TemplateID: templateID}), nil
	})
}

// ToggleTemplateFavorite flips the favorite flag and reports the new state.
func (s *RoundService) ToggleTemplateFavorite(ctx context.Context, templateID string) (results.OperationResult[FavoriteToggled, TemplateNotFound], error) {
	return withOpTelemetry(s, ctx, "ToggleTemplateFavorite", "template_id", templateID, func(ctx context.Context) (results.OperationResult[FavoriteToggled, TemplateNotFound], error) {
		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[FavoriteToggled, TemplateNotFound], error) {
			template, err := s.templates.GetTemplate(ctx, db, templateID)
			if err != nil {
				if errors.Is(err, rounddb.ErrTemplateNotFound) {
					return results.Failure[FavoriteToggled, TemplateNotFound](TemplateNotFound{TemplateID: templateID}), nil
				}
				return results.OperationResult[FavoriteToggled, TemplateNotFound]{}, err
			}

			template.IsFavorite = !template.IsFavorite
			if err := s.templates.UpdateTemplate(ctx, db, template); err != nil {
				return results.OperationResult[FavoriteToggled, TemplateNotFound]{}, err
			}

			return results.Success[FavoriteToggled, TemplateNotFound](FavoriteToggled{
				TemplateID: templateID,
				IsFavorite: template.IsFavorite,
			}), nil
		})
	})
}

// buildTemplate validates the input and resolves the course. A non-empty
// reject string is a handled validation failure.
func (s *RoundService) buildTemplate(ctx context.Context, templateID string, input TemplateInput) (*roundtypes.RoundTemplate, string, error) {
	if input.Name == "" {
		return nil, "template needs a name", nil
	}
	if reason := validateTemplateSetup(input); reason != "" {
		return nil, reason, nil
	}

	course, err := s.courses.GetCourse(ctx, nil, input.CourseID)
	if err != nil {
		if errors.Is(err, coursedb.ErrCourseNotFound) {
			return nil, fmt.Sprintf("course %s does not exist", input.CourseID), nil
		}
		return nil, "", err
	}

	percentage := input.HandicapPercentage
	if percentage == 0 {
		percentage = roundtypes.HandicapFull
	}

	return &roundtypes.RoundTemplate{
		ID:                 templateID,
		OwnerID:            input.OwnerID,
		Name:               input.Name,
		CourseID:           course.ID,
		CourseName:         course.Name,
		CourseLength:       input.CourseLength,
		GameMode:           input.GameMode,
		UseHandicap:        input.UseHandicap,
		HandicapPercentage: percentage,
		SindicatoPoints:    input.SindicatoPoints,
		TeamMode:           input.TeamMode,
		BestBallPoints:     input.BestBallPoints,
		WorstBallPoints:    input.WorstBallPoints,
		PlayerIDs:          input.PlayerIDs,
		DefaultTee:         input.DefaultTee,
		IsFavorite:         input.IsFavorite,
	}, "", nil
}

func validateTemplateSetup(input TemplateInput) string {
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

	if input.HandicapPercentage != 0 &&
		input.HandicapPercentage != roundtypes.HandicapFull &&
		input.HandicapPercentage != roundtypes.HandicapThreeQuarter {
		return fmt.Sprintf("handicap percentage must be %d or %d", roundtypes.HandicapFull, roundtypes.HandicapThreeQuarter)
	}

	for _, pts := range input.SindicatoPoints {
		if pts < 0 {
			return "sindicato points must not be negative"
		}
	}

	if input.GameMode == roundtypes.GameModeTeam {
		if input.TeamMode == nil {
			return "team templates need a team mode"
		}
		switch *input.TeamMode {
		case roundtypes.TeamModeBestBall, roundtypes.TeamModeGoodBadBall:
		default:
			return fmt.Sprintf("unknown team mode %q", *input.TeamMode)
		}
	}

	return ""
}
