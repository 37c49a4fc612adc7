package roundservice

import (
	"context"
	"testing"
)

func TestRoundService_GetScorecard(t *testing.T) {
	ctx := context.Background()

	t.Run("per-hole net, result, and totals", func(t *testing.T) {
		env := newTestEnv()
		round := createTestRound(t, env, nil)
		anaID := round.Players[0].ID // playing handicap 10

		// Ana: hole 1 (SI 1, receives a stroke) gross 5, hole 11 (SI 11,
		// no stroke) gross 5.
		for _, rec := range []RecordScoreInput{
			{RoundID: round.ID, PlayerID: anaID, Hole: 1, Strokes: 5, Putts: 2},
			{RoundID: round.ID, PlayerID: anaID, Hole: 11, Strokes: 5, Putts: 2},
		} {
			if _, err := env.svc.RecordScore(ctx, rec); err != nil {
				t.Fatalf("recording: %v", err)
			}
		}

		res, err := env.svc.GetScorecard(ctx, round.ID)
		if err != nil {
			t.Fatalf("unexpected infra error: %v", err)
		}
		if res.Success == nil {
			t.Fatalf("expected scorecard, got %+v", res)
		}
		card := *res.Success

		if len(card.Rows) != 2 {
			t.Fatalf("rows = %d, want 2", len(card.Rows))
		}
		ana := card.Rows[0]
		if len(ana.Holes) != 18 {
			t.Fatalf("holes = %d, want 18", len(ana.Holes))
		}

		h1 := ana.Holes[0]
		if !h1.Played || h1.Strokes != 5 {
			t.Fatalf("hole 1 = %+v", h1)
		}
		if h1.Net != 4 {
			t.Errorf("hole 1 net = %d, want 4 (stroke received)", h1.Net)
		}
		if h1.Result != "par" {
			t.Errorf("hole 1 result = %q, want par", h1.Result)
		}
		if h1.Stableford != 2 {
			t.Errorf("hole 1 stableford = %d, want 2", h1.Stableford)
		}

		h11 := ana.Holes[10]
		if h11.Net != 5 {
			t.Errorf("hole 11 net = %d, want 5 (no stroke)", h11.Net)
		}
		if h11.Result != "bogey" {
			t.Errorf("hole 11 result = %q, want bogey", h11.Result)
		}

		if ana.Out != 5 || ana.In != 5 || ana.Total != 10 {
			t.Errorf("out/in/total = %d/%d/%d, want 5/5/10", ana.Out, ana.In, ana.Total)
		}
		if ana.NetTotal != 9 {
			t.Errorf("net total = %d, want 9", ana.NetTotal)
		}
		if ana.Putts != 4 {
			t.Errorf("putts = %d, want 4", ana.Putts)
		}

		unplayed := ana.Holes[2]
		if unplayed.Played || unplayed.Strokes != 0 || unplayed.Result != "" {
			t.Errorf("unplayed hole = %+v, want empty", unplayed)
		}
	})

	t.Run("gross results when handicap disabled", func(t *testing.T) {
		env := newTestEnv()
		round := createTestRound(t, env, func(in *CreateRoundInput) { in.UseHandicap = false })

		if _, err := env.svc.RecordScore(ctx, RecordScoreInput{
			RoundID: round.ID, PlayerID: round.Players[0].ID, Hole: 1, Strokes: 5, Putts: 2,
		}); err != nil {
			t.Fatalf("recording: %v", err)
		}

		res, err := env.svc.GetScorecard(ctx, round.ID)
		if err != nil {
			t.Fatalf("unexpected infra error: %v", err)
		}
		h1 := res.Success.Rows[0].Holes[0]
		if h1.Result != "bogey" {
			t.Errorf("hole 1 result = %q, want gross bogey", h1.Result)
		}
		if h1.Net != 5 {
			t.Errorf("hole 1 net = %d, want 5", h1.Net)
		}
	})

	t.Run("unknown round", func(t *testing.T) {
		env := newTestEnv()

		res, err := env.svc.GetScorecard(ctx, "ghost")
		if err != nil {
			t.Fatalf("unexpected infra error: %v", err)
		}
		if res.Failure == nil || res.Failure.RoundID != "ghost" {
			t.Fatalf("expected not-found failure, got %+v", res)
		}
	})
}
