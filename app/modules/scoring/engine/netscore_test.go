package scoring

import "testing"

func TestNetScore(t *testing.T) {
	tests := []struct {
		name        string
		gross       int
		hcp         int
		strokeIndex int
		want        int
	}{
		{"no handicap", 5, 0, 1, 5},
		{"one stroke received", 5, 9, 1, 4},
		{"no stroke on easy hole", 5, 9, 18, 5},
		{"two strokes above 18", 6, 20, 1, 4},
		{"negative handicap never adds strokes", 5, -5, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NetScore(tt.gross, tt.hcp, tt.strokeIndex); got != tt.want {
				t.Errorf("NetScore(%d, %d, %d) = %d, want %d", tt.gross, tt.hcp, tt.strokeIndex, got, tt.want)
			}
		})
	}
}

func TestStablefordPoints(t *testing.T) {
	tests := []struct {
		name        string
		gross       int
		par         int
		hcp         int
		strokeIndex int
		want        int
	}{
		{"net albatross", 2, 5, 0, 1, 5},
		{"net eagle", 3, 5, 0, 1, 4},
		{"net birdie", 4, 5, 0, 1, 3},
		{"net par", 4, 4, 0, 1, 2},
		{"net bogey", 5, 4, 0, 1, 1},
		{"net double bogey", 6, 4, 0, 1, 0},
		{"worse than double stays zero", 12, 4, 0, 1, 0},
		{"stroke received turns bogey into par", 5, 4, 9, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StablefordPoints(tt.gross, tt.par, tt.hcp, tt.strokeIndex)
			if got != tt.want {
				t.Errorf("StablefordPoints(%d, %d, %d, %d) = %d, want %d", tt.gross, tt.par, tt.hcp, tt.strokeIndex, got, tt.want)
			}
		})
	}
}

func TestStablefordPointsBounds(t *testing.T) {
	// Points never go negative and never exceed 5, whatever the inputs.
	for gross := 1; gross <= 15; gross++ {
		for par := 3; par <= 5; par++ {
			for hcp := 0; hcp <= 54; hcp++ {
				pts := StablefordPoints(gross, par, hcp, 1)
				if pts < 0 || pts > 5 {
					t.Fatalf("StablefordPoints(%d, %d, %d, 1) = %d out of [0, 5]", gross, par, hcp, pts)
				}
			}
		}
	}
}

func TestResultLabel(t *testing.T) {
	tests := []struct {
		name        string
		strokes     int
		par         int
		hcp         int
		strokeIndex int
		useHandicap bool
		want        Result
	}{
		{"gross birdie", 3, 4, 0, 1, false, ResultBirdie},
		{"gross par", 4, 4, 0, 1, false, ResultPar},
		{"gross triple plus", 8, 4, 0, 1, false, ResultTriplePlus},
		{"net par from bogey", 5, 4, 9, 1, true, ResultPar},
		{"handicap ignored when disabled", 5, 4, 9, 1, false, ResultBogey},
		{"net eagle", 3, 4, 18, 1, true, ResultEagle},
		{"gross albatross", 2, 5, 0, 1, false, ResultAlbatross},
		{"gross double bogey", 6, 4, 0, 1, false, ResultDoubleBogey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResultLabel(tt.strokes, tt.par, tt.hcp, tt.strokeIndex, tt.useHandicap)
			if got != tt.want {
				t.Errorf("ResultLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResultVsParIgnoresHandicap(t *testing.T) {
	// Display coloring always uses gross strokes.
	if got := ResultVsPar(5, 4); got != ResultBogey {
		t.Errorf("ResultVsPar(5, 4) = %q, want %q", got, ResultBogey)
	}
	if got := ResultVsPar(4, 4); got != ResultPar {
		t.Errorf("ResultVsPar(4, 4) = %q, want %q", got, ResultPar)
	}
}
