package roundhandlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	roundservice "github.com/sindicato-golf/rounds/app/modules/round/application"
	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
	"github.com/sindicato-golf/rounds/app/shared/observability"
	"github.com/sindicato-golf/rounds/app/shared/results"
)

func newTestRouter(svc roundservice.Service) chi.Router {
	h := NewRoundHandlers(svc, observability.NoOpLogger)
	r := chi.NewRouter()
	r.Post("/rounds", h.HandleCreateRound)
	r.Get("/rounds", h.HandleListRounds)
	r.Get("/rounds/{roundID}", h.HandleGetRound)
	r.Delete("/rounds/{roundID}", h.HandleDeleteRound)
	r.Put("/rounds/{roundID}/scores", h.HandleRecordScore)
	r.Patch("/rounds/{roundID}/finish", h.HandleFinishRound)
	r.Get("/rounds/{roundID}/scorecard", h.HandleGetScorecard)
	r.Get("/rounds/{roundID}/standings", h.HandleGetStandings)
	r.Get("/rounds/{roundID}/match", h.HandleGetMatchStatus)
	r.Get("/rounds/{roundID}/export", h.HandleExportScorecard)
	r.Post("/templates", h.HandleCreateTemplate)
	r.Get("/templates", h.HandleListTemplates)
	r.Get("/templates/{templateID}", h.HandleGetTemplate)
	r.Put("/templates/{templateID}", h.HandleUpdateTemplate)
	r.Delete("/templates/{templateID}", h.HandleDeleteTemplate)
	r.Patch("/templates/{templateID}/favorite", h.HandleToggleFavorite)
	return r
}

func TestHandleCreateRound(t *testing.T) {
	t.Run("created round comes back as JSON", func(t *testing.T) {
		svc := &FakeRoundService{
			CreateRoundFunc: func(ctx context.Context, input roundservice.CreateRoundInput) (results.OperationResult[roundservice.RoundCreated, roundservice.RoundValidationFailed], error) {
				round := &roundtypes.Round{ID: "round-1", CourseID: input.CourseID}
				return results.Success[roundservice.RoundCreated, roundservice.RoundValidationFailed](roundservice.RoundCreated{Round: round}), nil
			},
		}
		router := newTestRouter(svc)

		body := `{"owner_id":"owner-1","course_id":"course-18","game_mode":"stroke","course_length":"18_holes","players":[{"name":"Ana","tee_box":"white"}]}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rounds", strings.NewReader(body)))

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), `"round-1"`) {
			t.Errorf("body = %s", rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
	})

	t.Run("validation failure maps to 400 with the reason", func(t *testing.T) {
		svc := &FakeRoundService{
			CreateRoundFunc: func(ctx context.Context, input roundservice.CreateRoundInput) (results.OperationResult[roundservice.RoundCreated, roundservice.RoundValidationFailed], error) {
				return results.Failure[roundservice.RoundCreated, roundservice.RoundValidationFailed](roundservice.RoundValidationFailed{Reason: "match play requires exactly 2 players"}), nil
			},
		}
		router := newTestRouter(svc)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rounds", strings.NewReader(`{}`)))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "exactly 2 players") {
			t.Errorf("body = %s", rec.Body.String())
		}
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		router := newTestRouter(&FakeRoundService{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rounds", strings.NewReader(`{not json`)))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
	})
}

func TestHandleGetRound(t *testing.T) {
	t.Run("unknown round maps to 404", func(t *testing.T) {
		svc := &FakeRoundService{
			GetRoundFunc: func(ctx context.Context, roundID string) (results.OperationResult[*roundtypes.Round, roundservice.RoundNotFound], error) {
				return results.Failure[*roundtypes.Round, roundservice.RoundNotFound](roundservice.RoundNotFound{RoundID: roundID}), nil
			},
		}
		router := newTestRouter(svc)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rounds/ghost", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d", rec.Code)
		}
	})

	t.Run("infrastructure error maps to 500", func(t *testing.T) {
		svc := &FakeRoundService{
			GetRoundFunc: func(ctx context.Context, roundID string) (results.OperationResult[*roundtypes.Round, roundservice.RoundNotFound], error) {
				return results.OperationResult[*roundtypes.Round, roundservice.RoundNotFound]{}, fmt.Errorf("db down")
			},
		}
		router := newTestRouter(svc)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rounds/round-1", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d", rec.Code)
		}
	})
}

func TestHandleListRounds(t *testing.T) {
	t.Run("requires owner_id", func(t *testing.T) {
		router := newTestRouter(&FakeRoundService{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rounds", nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
	})

	t.Run("returns the owner's rounds", func(t *testing.T) {
		svc := &FakeRoundService{
			ListRoundsFunc: func(ctx context.Context, ownerID string) ([]roundtypes.Round, error) {
				if ownerID != "owner-1" {
					t.Errorf("ownerID = %q", ownerID)
				}
				return []roundtypes.Round{{ID: "round-1"}, {ID: "round-2"}}, nil
			},
		}
		router := newTestRouter(svc)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rounds?owner_id=owner-1", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "round-2") {
			t.Errorf("body = %s", rec.Body.String())
		}
	})
}

func TestHandleRecordScore(t *testing.T) {
	statusCases := []struct {
		name       string
		failure    roundservice.ScoreRejected
		wantStatus int
	}{
		{"plain rejection maps to 400", roundservice.ScoreRejected{Reason: "putts cannot exceed strokes"}, http.StatusBadRequest},
		{"stale round maps to 409", roundservice.ScoreRejected{Reason: "round was updated by another device", Conflict: true}, http.StatusConflict},
		{"unknown round maps to 404", roundservice.ScoreRejected{Reason: "round ghost does not exist", NotFound: true}, http.StatusNotFound},
	}

	for _, tc := range statusCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &FakeRoundService{
				RecordScoreFunc: func(ctx context.Context, input roundservice.RecordScoreInput) (results.OperationResult[roundservice.ScoreRecorded, roundservice.ScoreRejected], error) {
					return results.Failure[roundservice.ScoreRecorded, roundservice.ScoreRejected](tc.failure), nil
				},
			}
			router := newTestRouter(svc)

			body := `{"player_id":"p1","hole":1,"strokes":5,"putts":2}`
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/rounds/round-1/scores", strings.NewReader(body)))

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
		})
	}

	t.Run("round ID comes from the URL", func(t *testing.T) {
		var got roundservice.RecordScoreInput
		svc := &FakeRoundService{
			RecordScoreFunc: func(ctx context.Context, input roundservice.RecordScoreInput) (results.OperationResult[roundservice.ScoreRecorded, roundservice.ScoreRejected], error) {
				got = input
				return results.Success[roundservice.ScoreRecorded, roundservice.ScoreRejected](roundservice.ScoreRecorded{Round: &roundtypes.Round{ID: input.RoundID}}), nil
			},
		}
		router := newTestRouter(svc)

		body := `{"round_id":"spoofed","player_id":"p1","hole":1,"strokes":5,"putts":2}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/rounds/round-1/scores", strings.NewReader(body)))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if got.RoundID != "round-1" {
			t.Errorf("RoundID = %q, want round-1", got.RoundID)
		}
	})
}

func TestHandleFinishRound(t *testing.T) {
	t.Run("already finished maps to 409", func(t *testing.T) {
		svc := &FakeRoundService{
			FinishRoundFunc: func(ctx context.Context, roundID string) (results.OperationResult[roundservice.RoundFinished, roundservice.FinishRejected], error) {
				return results.Failure[roundservice.RoundFinished, roundservice.FinishRejected](roundservice.FinishRejected{Reason: "round is already finished"}), nil
			},
		}
		router := newTestRouter(svc)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/rounds/round-1/finish", nil))

		if rec.Code != http.StatusConflict {
			t.Fatalf("status = %d", rec.Code)
		}
	})

	t.Run("unknown round maps to 404", func(t *testing.T) {
		svc := &FakeRoundService{
			FinishRoundFunc: func(ctx context.Context, roundID string) (results.OperationResult[roundservice.RoundFinished, roundservice.FinishRejected], error) {
				return results.Failure[roundservice.RoundFinished, roundservice.FinishRejected](roundservice.FinishRejected{Reason: "round ghost does not exist", NotFound: true}), nil
			},
		}
		router := newTestRouter(svc)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/rounds/ghost/finish", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d", rec.Code)
		}
	})
}

func TestHandleExportScorecard(t *testing.T) {
	t.Run("sets download headers", func(t *testing.T) {
		svc := &FakeRoundService{
			ExportScorecardXLSXFunc: func(ctx context.Context, roundID string) ([]byte, string, error) {
				return []byte("workbook"), "scorecard-2025-08-16-round-1.xlsx", nil
			},
		}
		router := newTestRouter(svc)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rounds/round-1/export", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != xlsxContentType {
			t.Errorf("content type = %q", ct)
		}
		if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "scorecard-2025-08-16-round-1.xlsx") {
			t.Errorf("content disposition = %q", cd)
		}
	})

	t.Run("unknown round maps to 404", func(t *testing.T) {
		svc := &FakeRoundService{
			ExportScorecardXLSXFunc: func(ctx context.Context, roundID string) ([]byte, string, error) {
				return nil, "", fmt.Errorf("%w: %s", roundservice.ErrUnknownRound, roundID)
			},
		}
		router := newTestRouter(svc)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rounds/ghost/export", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d", rec.Code)
		}
	})
}

func TestHandleGetMatchStatus(t *testing.T) {
	t.Run("returns the match view", func(t *testing.T) {
		svc := &FakeRoundService{
			GetStandingsFunc: func(ctx context.Context, roundID string) (results.OperationResult[roundservice.Standings, roundservice.RoundNotFound], error) {
				return results.Success[roundservice.Standings, roundservice.RoundNotFound](roundservice.Standings{
					RoundID: roundID,
					Mode:    roundtypes.GameModeMatch,
					Match:   &roundservice.MatchStatusView{Score: 2, HolesPlayed: 5, HolesRemaining: 13, Status: "2 UP"},
				}), nil
			},
		}
		router := newTestRouter(svc)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rounds/round-1/match", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"2 UP"`) {
			t.Errorf("body = %s", rec.Body.String())
		}
	})

	t.Run("non-match round maps to 400", func(t *testing.T) {
		svc := &FakeRoundService{
			GetStandingsFunc: func(ctx context.Context, roundID string) (results.OperationResult[roundservice.Standings, roundservice.RoundNotFound], error) {
				return results.Success[roundservice.Standings, roundservice.RoundNotFound](roundservice.Standings{
					RoundID: roundID,
					Mode:    roundtypes.GameModeStroke,
					Entries: []roundservice.StandingsEntry{},
				}), nil
			},
		}
		router := newTestRouter(svc)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rounds/round-1/match", nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
	})
}

func TestHandleGetStandings(t *testing.T) {
	t.Run("returns the standings view", func(t *testing.T) {
		svc := &FakeRoundService{
			GetStandingsFunc: func(ctx context.Context, roundID string) (results.OperationResult[roundservice.Standings, roundservice.RoundNotFound], error) {
				return results.Success[roundservice.Standings, roundservice.RoundNotFound](roundservice.Standings{
					RoundID: roundID,
					Mode:    roundtypes.GameModeStableford,
					Entries: []roundservice.StandingsEntry{{PlayerID: "p1", Name: "Ana", Points: 24, Rank: 1}},
				}), nil
			},
		}
		router := newTestRouter(svc)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rounds/round-1/standings", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"stableford"`) {
			t.Errorf("body = %s", rec.Body.String())
		}
	})
}
