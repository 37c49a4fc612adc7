package roundqueue

import (
	"math"
	"testing"
)

func TestScoreDifferential(t *testing.T) {
	tests := []struct {
		name   string
		gross  int
		rating float64
		slope  int
		want   float64
	}{
		{"neutral slope", 85, 72.0, 113, 13.0},
		{"steep course shrinks the differential", 85, 72.0, 140, 10.49},
		{"under the rating goes negative", 70, 72.0, 113, -2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreDifferential(tt.gross, tt.rating, tt.slope)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("ScoreDifferential(%d, %v, %d) = %v, want %v",
					tt.gross, tt.rating, tt.slope, got, tt.want)
			}
		})
	}
}

func TestRevisedIndex(t *testing.T) {
	tests := []struct {
		name         string
		current      float64
		differential float64
		want         float64
	}{
		{"good round pulls the index down", 15.0, 10.0, 14.0},
		{"bad round pushes it up", 15.0, 25.0, 17.0},
		{"matching round leaves it alone", 15.0, 15.0, 15.0},
		{"rounds to one decimal", 10.0, 10.3, 10.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RevisedIndex(tt.current, tt.differential); got != tt.want {
				t.Errorf("RevisedIndex(%v, %v) = %v, want %v",
					tt.current, tt.differential, got, tt.want)
			}
		})
	}
}
