package roundhandlers

import (
	"context"

	roundservice "github.com/sindicato-golf/rounds/app/modules/round/application"
	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
	"github.com/sindicato-golf/rounds/app/shared/results"
)

// FakeRoundService is a programmable roundservice.Service for handler tests.
type FakeRoundService struct {
	CreateRoundFunc         func(ctx context.Context, input roundservice.CreateRoundInput) (results.OperationResult[roundservice.RoundCreated, roundservice.RoundValidationFailed], error)
	GetRoundFunc            func(ctx context.Context, roundID string) (results.OperationResult[*roundtypes.Round, roundservice.RoundNotFound], error)
	ListRoundsFunc          func(ctx context.Context, ownerID string) ([]roundtypes.Round, error)
	DeleteRoundFunc         func(ctx context.Context, roundID string) (results.OperationResult[roundservice.RoundDeleted, roundservice.RoundNotFound], error)
	RecordScoreFunc         func(ctx context.Context, input roundservice.RecordScoreInput) (results.OperationResult[roundservice.ScoreRecorded, roundservice.ScoreRejected], error)
	FinishRoundFunc         func(ctx context.Context, roundID string) (results.OperationResult[roundservice.RoundFinished, roundservice.FinishRejected], error)
	CreateTemplateFunc      func(ctx context.Context, input roundservice.TemplateInput) (results.OperationResult[roundservice.TemplateSaved, roundservice.TemplateRejected], error)
	GetTemplateFunc         func(ctx context.Context, templateID string) (results.OperationResult[*roundtypes.RoundTemplate, roundservice.TemplateNotFound], error)
	ListTemplatesFunc       func(ctx context.Context, ownerID string) ([]roundtypes.RoundTemplate, error)
	UpdateTemplateFunc      func(ctx context.Context, templateID string, input roundservice.TemplateInput) (results.OperationResult[roundservice.TemplateSaved, roundservice.TemplateRejected], error)
	DeleteTemplateFunc      func(ctx context.Context, templateID string) (results.OperationResult[roundservice.TemplateDeleted, roundservice.TemplateNotFound], error)
	ToggleFavoriteFunc      func(ctx context.Context, templateID string) (results.OperationResult[roundservice.FavoriteToggled, roundservice.TemplateNotFound], error)
	GetScorecardFunc        func(ctx context.Context, roundID string) (results.OperationResult[roundservice.Scorecard, roundservice.RoundNotFound], error)
	GetStandingsFunc        func(ctx context.Context, roundID string) (results.OperationResult[roundservice.Standings, roundservice.RoundNotFound], error)
	ExportScorecardXLSXFunc func(ctx context.Context, roundID string) ([]byte, string, error)
}

var _ roundservice.Service = (*FakeRoundService)(nil)

func (f *FakeRoundService) CreateRound(ctx context.Context, input roundservice.CreateRoundInput) (results.OperationResult[roundservice.RoundCreated, roundservice.RoundValidationFailed], error) {
	return f.CreateRoundFunc(ctx, input)
}

func (f *FakeRoundService) GetRound(ctx context.Context, roundID string) (results.OperationResult[*roundtypes.Round, roundservice.RoundNotFound], error) {
	return f.GetRoundFunc(ctx, roundID)
}

func (f *FakeRoundService) ListRounds(ctx context.Context, ownerID string) ([]roundtypes.Round, error) {
	return f.ListRoundsFunc(ctx, ownerID)
}

func (f *FakeRoundService) DeleteRound(ctx context.Context, roundID string) (results.OperationResult[roundservice.RoundDeleted, roundservice.RoundNotFound], error) {
	return f.DeleteRoundFunc(ctx, roundID)
}

func (f *FakeRoundService) RecordScore(ctx context.Context, input roundservice.RecordScoreInput) (results.OperationResult[roundservice.ScoreRecorded, roundservice.ScoreRejected], error) {
	return f.RecordScoreFunc(ctx, input)
}

func (f *FakeRoundService) FinishRound(ctx context.Context, roundID string) (results.OperationResult[roundservice.RoundFinished, roundservice.FinishRejected], error) {
	return f.FinishRoundFunc(ctx, roundID)
}

func (f *FakeRoundService) CreateTemplate(ctx context.Context, input roundservice.TemplateInput) (results.OperationResult[roundservice.TemplateSaved, roundservice.TemplateRejected], error) {
	return f.CreateTemplateFunc(ctx, input)
}

func (f *FakeRoundService) GetTemplate(ctx context.Context, templateID string) (results.OperationResult[*roundtypes.RoundTemplate, roundservice.TemplateNotFound], error) {
	return f.GetTemplateFunc(ctx, templateID)
}

func (f *FakeRoundService) ListTemplates(ctx context.Context, ownerID string) ([]roundtypes.RoundTemplate, error) {
	return f.ListTemplatesFunc(ctx, ownerID)
}

func (f *FakeRoundService) UpdateTemplate(ctx context.Context, templateID string, input roundservice.TemplateInput) (results.OperationResult[roundservice.TemplateSaved, roundservice.TemplateRejected], error) {
	return f.UpdateTemplateFunc(ctx, templateID, input)
}

func (f *FakeRoundService) DeleteTemplate(ctx context.Context, templateID string) (results.OperationResult[roundservice.TemplateDeleted, roundservice.TemplateNotFound], error) {
	return f.DeleteTemplateFunc(ctx, templateID)
}

func (f *FakeRoundService) ToggleTemplateFavorite(ctx context.Context, templateID string) (results.OperationResult[roundservice.FavoriteToggled, roundservice.TemplateNotFound], error) {
	return f.ToggleFavoriteFunc(ctx, templateID)
}

func (f *FakeRoundService) GetScorecard(ctx context.Context, roundID string) (results.OperationResult[roundservice.Scorecard, roundservice.RoundNotFound], error) {
	return f.GetScorecardFunc(ctx, roundID)
}

func (f *FakeRoundService) GetStandings(ctx context.Context, roundID string) (results.OperationResult[roundservice.Standings, roundservice.RoundNotFound], error) {
	return f.GetStandingsFunc(ctx, roundID)
}

func (f *FakeRoundService) ExportScorecardXLSX(ctx context.Context, roundID string) ([]byte, string, error) {
	return f.ExportScorecardXLSXFunc(ctx, roundID)
}
