package coursetypes

import (
	"fmt"
	"time"
)

// Tee describes one tee box on a course.
type Tee struct {
	Name   string  `json:"name"`
	Slope  int     `json:"slope"`
	Rating float64 `json:"rating"`
}

// HoleData is the immutable per-hole course metadata. StrokeIndex ranks the
// hole by difficulty (1 = hardest, receives strokes first) and is unique
// within a course.
type HoleData struct {
	Number      int `json:"number"`
	Par         int `json:"par"`
	StrokeIndex int `json:"handicap"`
	Distance    int `json:"distance"`
}

// Course is a saved golf course with tee and per-hole data.
type Course struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Holes     int        `json:"holes"`
	Par       int        `json:"par"`
	Tees      []Tee      `json:"tees"`
	HolesData []HoleData `json:"holes_data"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Tee returns the tee with the given name, if present.
func (c *Course) Tee(name string) (Tee, bool) {
	for _, t := range c.Tees {
		if t.Name == name {
			return t, true
		}
	}
	return Tee{}, false
}

// Hole returns the hole data for the given hole number, if present.
func (c *Course) Hole(number int) (HoleData, bool) {
	for _, h := range c.HolesData {
		if h.Number == number {
			return h, true
		}
	}
	return HoleData{}, false
}

const (
	minSlope = 55
	maxSlope = 155
)

// Validate checks course data at the boundary so the scoring engine can assume
// well-formed input: stroke indices must form a permutation of 1..len(holes),
// pars must be 3/4/5, and tee slopes must be in the USGA range.
func (c *Course) Validate() error {
	if c.Holes != 9 && c.Holes != 18 {
		return fmt.Errorf("course must have 9 or 18 holes, got %d", c.Holes)
	}
	if len(c.HolesData) != c.Holes {
		return fmt.Errorf("course declares %d holes but has %d hole entries", c.Holes, len(c.HolesData))
	}
	if len(c.Tees) == 0 {
		return fmt.Errorf("course must have at least one tee")
	}

	for _, t := range c.Tees {
		if t.Slope < minSlope || t.Slope > maxSlope {
			return fmt.Errorf("tee %q slope %d out of range [%d, %d]", t.Name, t.Slope, minSlope, maxSlope)
		}
	}

	seenNumbers := make(map[int]bool, len(c.HolesData))
	seenIndices := make(map[int]bool, len(c.HolesData))
	for _, h := range c.HolesData {
		if h.Number < 1 || h.Number > 18 {
			return fmt.Errorf("hole number %d out of range [1, 18]", h.Number)
		}
		if seenNumbers[h.Number] {
			return fmt.Errorf("duplicate hole number %d", h.Number)
		}
		seenNumbers[h.Number] = true

		if h.Par < 3 || h.Par > 5 {
			return fmt.Errorf("hole %d par %d out of range [3, 5]", h.Number, h.Par)
		}

		if h.StrokeIndex < 1 || h.StrokeIndex > len(c.HolesData) {
			return fmt.Errorf("hole %d stroke index %d out of range [1, %d]", h.Number, h.StrokeIndex, len(c.HolesData))
		}
		if seenIndices[h.StrokeIndex] {
			return fmt.Errorf("duplicate stroke index %d on hole %d", h.StrokeIndex, h.Number)
		}
		seenIndices[h.StrokeIndex] = true
	}

	return nil
}
