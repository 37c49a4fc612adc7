package roundservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrUnknownRound is returned by exports when the round does not exist.
var ErrUnknownRound = errors.New("unknown round")

// ExportScorecardXLSX renders the round's scorecard as an xlsx workbook and
// returns the file bytes plus a download filename.
func (s *RoundService) ExportScorecardXLSX(ctx context.Context, roundID string) ([]byte, string, error) {
	result, err := s.GetScorecard(ctx, roundID)
	if err != nil {
		return nil, "", err
	}
	if result.IsFailure() {
		return nil, "", fmt.Errorf("%w: %s", ErrUnknownRound, roundID)
	}
	card := *result.Success

	data, err := renderScorecardXLSX(card)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render scorecard workbook: %w", err)
	}

	filename := fmt.Sprintf("scorecard-%s-%s.xlsx", card.Date.Format("2006-01-02"), roundID)
	return data, filename, nil
}

// playerColumns is gross, net, and stableford points per player.
const playerColumns = 3

func renderScorecardXLSX(card Scorecard) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Scorecard"
	f.SetSheetName(f.GetSheetName(0), sheet)

	setCell := func(col, row int, value any) error {
		axis, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, axis, value)
	}

	if err := setCell(1, 1, "Course"); err != nil {
		return nil, err
	}
	if err := setCell(2, 1, card.CourseName); err != nil {
		return nil, err
	}
	if err := setCell(1, 2, "Date"); err != nil {
		return nil, err
	}
	if err := setCell(2, 2, card.Date.Format("2006-01-02")); err != nil {
		return nil, err
	}
	if err := setCell(1, 3, "Mode"); err != nil {
		return nil, err
	}
	if err := setCell(2, 3, string(card.GameMode)); err != nil {
		return nil, err
	}

	const headerRow = 5
	headers := []string{"Hole", "Par", "SI"}
	for i, h := range headers {
		if err := setCell(i+1, headerRow, h); err != nil {
			return nil, err
		}
	}
	col := len(headers) + 1
	for _, row := range card.Rows {
		if err := setCell(col, headerRow, row.Name); err != nil {
			return nil, err
		}
		if err := setCell(col+1, headerRow, row.Name+" net"); err != nil {
			return nil, err
		}
		if err := setCell(col+2, headerRow, row.Name+" pts"); err != nil {
			return nil, err
		}
		col += playerColumns
	}

	if len(card.Rows) == 0 {
		return writeWorkbook(f)
	}

	// One row per hole, using the first player's hole list for course data.
	for i, hole := range card.Rows[0].Holes {
		r := headerRow + 1 + i
		if err := setCell(1, r, hole.Hole); err != nil {
			return nil, err
		}
		if err := setCell(2, r, hole.Par); err != nil {
			return nil, err
		}
		if err := setCell(3, r, hole.StrokeIndex); err != nil {
			return nil, err
		}

		col = len(headers) + 1
		for _, row := range card.Rows {
			if h := row.Holes[i]; h.Played {
				if err := setCell(col, r, h.Strokes); err != nil {
					return nil, err
				}
				if err := setCell(col+1, r, h.Net); err != nil {
					return nil, err
				}
				if err := setCell(col+2, r, h.Stableford); err != nil {
					return nil, err
				}
			}
			col += playerColumns
		}
	}

	// OUT, IN, TOT summary rows under the holes.
	summaryRow := headerRow + 1 + len(card.Rows[0].Holes)
	summaries := []struct {
		label string
		cells func(row ScorecardRow) (gross, net, pts int)
	}{
		{"OUT", func(row ScorecardRow) (int, int, int) {
			net, pts := nineSubtotals(row, false)
			return row.Out, net, pts
		}},
		{"IN", func(row ScorecardRow) (int, int, int) {
			net, pts := nineSubtotals(row, true)
			return row.In, net, pts
		}},
		{"TOT", func(row ScorecardRow) (int, int, int) {
			return row.Total, row.NetTotal, row.StablefordTotal
		}},
	}
	for i, s := range summaries {
		r := summaryRow + i
		if err := setCell(1, r, s.label); err != nil {
			return nil, err
		}
		col = len(headers) + 1
		for _, row := range card.Rows {
			gross, net, pts := s.cells(row)
			if err := setCell(col, r, gross); err != nil {
				return nil, err
			}
			if err := setCell(col+1, r, net); err != nil {
				return nil, err
			}
			if err := setCell(col+2, r, pts); err != nil {
				return nil, err
			}
			col += playerColumns
		}
	}

	return writeWorkbook(f)
}

// nineSubtotals sums net strokes and stableford points over the front nine,
// or the back nine when back is set. Unplayed holes contribute nothing.
func nineSubtotals(row ScorecardRow, back bool) (net, pts int) {
	for _, h := range row.Holes {
		if (h.Hole > 9) != back {
			continue
		}
		if h.Played {
			net += h.Net
			pts += h.Stableford
		}
	}
	return net, pts
}

func writeWorkbook(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
