package scoring

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	coursetypes "github.com/sindicato-golf/rounds/app/modules/course/domain/types"
	roundtypes "github.com/sindicato-golf/rounds/app/modules/round/domain/types"
)

func teamPlayer(id string, team roundtypes.TeamID, hcp int, scores map[int]roundtypes.Score) roundtypes.Player {
	return roundtypes.Player{ID: id, Team: &team, PlayingHandicap: hcp, Scores: scores}
}

func TestBestBallHolePoints(t *testing.T) {
	hole := coursetypes.HoleData{Number: 1, Par: 4, StrokeIndex: 9}

	tests := []struct {
		name       string
		players    []roundtypes.Player
		pointValue int
		want       TeamHolePoints
	}{
		{
			name: "lower best net wins the point",
			players: []roundtypes.Player{
				teamPlayer("a1", roundtypes.TeamA, 0, map[int]roundtypes.Score{1: {Strokes: 3}}),
				teamPlayer("a2", roundtypes.TeamA, 0, map[int]roundtypes.Score{1: {Strokes: 6}}),
				teamPlayer("b1", roundtypes.TeamB, 0, map[int]roundtypes.Score{1: {Strokes: 4}}),
			},
			pointValue: 1,
			want:       TeamHolePoints{TeamA: 1},
		},
		{
			name: "equal best nets split the point",
			players: []roundtypes.Player{
				teamPlayer("a1", roundtypes.TeamA, 0, map[int]roundtypes.Score{1: {Strokes: 3}}),
				teamPlayer("b1", roundtypes.TeamB, 0, map[int]roundtypes.Score{1: {Strokes: 3}}),
			},
			pointValue: 1,
			want:       TeamHolePoints{TeamA: 0.5, TeamB: 0.5},
		},
		{
			name: "custom point value",
			players: []roundtypes.Player{
				teamPlayer("a1", roundtypes.TeamA, 0, map[int]roundtypes.Score{1: {Strokes: 5}}),
				teamPlayer("b1", roundtypes.TeamB, 0, map[int]roundtypes.Score{1: {Strokes: 4}}),
			},
			pointValue: 2,
			want:       TeamHolePoints{TeamB: 2},
		},
		{
			name: "absent players are excluded from the best",
			players: []roundtypes.Player{
				teamPlayer("a1", roundtypes.TeamA, 0, nil),
				teamPlayer("a2", roundtypes.TeamA, 0, map[int]roundtypes.Score{1: {Strokes: 5}}),
				teamPlayer("b1", roundtypes.TeamB, 0, map[int]roundtypes.Score{1: {Strokes: 4}}),
			},
			pointValue: 1,
			want:       TeamHolePoints{TeamB: 1},
		},
		{
			name: "team with no completions skips the hole",
			players: []roundtypes.Player{
				teamPlayer("a1", roundtypes.TeamA, 0, map[int]roundtypes.Score{1: {Strokes: 3}}),
				teamPlayer("b1", roundtypes.TeamB, 0, nil),
			},
			pointValue: 1,
			want:       TeamHolePoints{},
		},
		{
			name:       "empty rosters are neutral",
			players:    nil,
			pointValue: 1,
			want:       TeamHolePoints{},
		},
		{
			name: "handicap strokes decide the hole",
			players: []roundtypes.Player{
				teamPlayer("a1", roundtypes.TeamA, 12, map[int]roundtypes.Score{1: {Strokes: 5}}), // net 4
				teamPlayer("b1", roundtypes.TeamB, 0, map[int]roundtypes.Score{1: {Strokes: 5}}),
			},
			pointValue: 1,
			want:       TeamHolePoints{TeamA: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BestBallHolePoints(hole, tt.players, tt.pointValue)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("BestBallHolePoints mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGoodBadBallHolePoints(t *testing.T) {
	hole := coursetypes.HoleData{Number: 1, Par: 4, StrokeIndex: 9}

	tests := []struct {
		name        string
		players     []roundtypes.Player
		bestPoints  int
		worstPoints int
		want        TeamHolePoints
	}{
		{
			name: "sweep both axes",
			players: []roundtypes.Player{
				teamPlayer("a1", roundtypes.TeamA, 0, map[int]roundtypes.Score{1: {Strokes: 3}}),
				teamPlayer("a2", roundtypes.TeamA, 0, map[int]roundtypes.Score{1: {Strokes: 4}}),
				teamPlayer("b1", roundtypes.TeamB, 0, map[int]roundtypes.Score{1: {Strokes: 5}}),
				teamPlayer("b2", roundtypes.TeamB, 0, map[int]roundtypes.Score{1: {Strokes: 6}}),
			},
			bestPoints:  1,
			worstPoints: 1,
			want:        TeamHolePoints{TeamA: 2},
		},
		{
			name: "split the axes",
			players: []roundtypes.Player{
				teamPlayer("a1", roundtypes.TeamA, 0, map[int]roundtypes.Score{1: {Strokes: 3}}), // best ball
				teamPlayer("a2", roundtypes.TeamA, 0, map[int]roundtypes.Score{1: {Strokes: 7}}), // worst ball loses
				teamPlayer("b1", roundtypes.TeamB, 0, map[int]roundtypes.Score{1: {Strokes: 4}}),
				teamPlayer("b2", roundtypes.TeamB, 0, map[int]roundtypes.Score{1: {Strokes: 5}}),
			},
			bestPoints:  1,
			worstPoints: 1,
			want:        TeamHolePoints{TeamA: 1, TeamB: 1},
		},
		{
			name: "tied axis splits its own value",
			players: []roundtypes.Player{
				teamPlayer("a1", roundtypes.TeamA, 0, map[int]roundtypes.Score{1: {Strokes: 4}}),
				teamPlayer("b1", roundtypes.TeamB, 0, map[int]roundtypes.Score{1: {Strokes: 4}}),
			},
			// single player is both best and worst ball
			bestPoints:  1,
			worstPoints: 1,
			want:        TeamHolePoints{TeamA: 1, TeamB: 1},
		},
		{
			name: "custom axis values",
			players: []roundtypes.Player{
				teamPlayer("a1", roundtypes.TeamA, 0, map[int]roundtypes.Score{1: {Strokes: 3}}),
				teamPlayer("a2", roundtypes.TeamA, 0, map[int]roundtypes.Score{1: {Strokes: 4}}),
				teamPlayer("b1", roundtypes.TeamB, 0, map[int]roundtypes.Score{1: {Strokes: 5}}),
				teamPlayer("b2", roundtypes.TeamB, 0, map[int]roundtypes.Score{1: {Strokes: 6}}),
			},
			bestPoints:  2,
			worstPoints: 3,
			want:        TeamHolePoints{TeamA: 5},
		},
		{
			name: "one empty side is neutral",
			players: []roundtypes.Player{
				teamPlayer("a1", roundtypes.TeamA, 0, map[int]roundtypes.Score{1: {Strokes: 3}}),
			},
			bestPoints:  1,
			worstPoints: 1,
			want:        TeamHolePoints{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GoodBadBallHolePoints(hole, tt.players, tt.bestPoints, tt.worstPoints)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GoodBadBallHolePoints mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTeamStandings(t *testing.T) {
	holes := []coursetypes.HoleData{
		{Number: 1, Par: 4, StrokeIndex: 1},
		{Number: 2, Par: 4, StrokeIndex: 2},
		{Number: 3, Par: 4, StrokeIndex: 3},
	}
	players := []roundtypes.Player{
		teamPlayer("a1", roundtypes.TeamA, 0, map[int]roundtypes.Score{1: {Strokes: 3}, 2: {Strokes: 5}}),
		teamPlayer("b1", roundtypes.TeamB, 0, map[int]roundtypes.Score{1: {Strokes: 4}, 2: {Strokes: 4}}),
	}

	// Hole 1 to A, hole 2 to B, hole 3 unplayed by both and skipped.
	got := TeamStandings(holes, players, roundtypes.TeamModeBestBall, 1, 0)
	want := TeamHolePoints{TeamA: 1, TeamB: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TeamStandings mismatch (-want +got):\n%s", diff)
	}
}
