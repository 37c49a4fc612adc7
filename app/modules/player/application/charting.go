package playerservice

import (
	"bytes"
	"context"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	playertypes "github.com/sindicato-golf/rounds/app/modules/player/domain/types"
)

var (
	chartLine       = drawing.Color{R: 0x1b, G: 0x5e, B: 0x20, A: 0xff}
	chartDot        = drawing.Color{R: 0xc8, G: 0xa4, B: 0x15, A: 0xff}
	chartBackground = drawing.Color{R: 0xfa, G: 0xfa, B: 0xf5, A: 0xff}
	chartText       = drawing.Color{R: 0x21, G: 0x21, B: 0x21, A: 0xff}
)

// HandicapChart renders the profile's handicap history as a PNG line chart.
func (s *PlayerService) HandicapChart(ctx context.Context, profileID string, since time.Time) ([]byte, error) {
	entries, err := s.repo.ListHandicapHistory(ctx, nil, profileID, since)
	if err != nil {
		return nil, err
	}
	return renderHandicapChart(entries)
}

func renderHandicapChart(entries []playertypes.HandicapEntry) ([]byte, error) {
	// go-chart needs at least two points for a time series.
	if len(entries) < 2 {
		return renderNoDataPlaceholder()
	}

	xValues := make([]time.Time, len(entries))
	yValues := make([]float64, len(entries))
	for i, e := range entries {
		xValues[i] = e.RecordedAt
		yValues[i] = e.HandicapIndex
	}

	mainSeries := chart.TimeSeries{
		Name:    "Handicap Index",
		XValues: xValues,
		YValues: yValues,
		Style: chart.Style{
			StrokeColor: chartLine,
			StrokeWidth: 2,
			DotWidth:    4,
			DotColor:    chartDot,
		},
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		Background: chart.Style{
			FillColor: chartBackground,
		},
		Canvas: chart.Style{
			FillColor: chartBackground,
		},
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
			Style: chart.Style{
				FontColor: chartText,
			},
		},
		YAxis: chart.YAxis{
			Name: "Handicap Index",
			Style: chart.Style{
				FontColor: chartText,
			},
			// Lower index means better play, so put it at the top.
			Range: &chart.ContinuousRange{
				Descending: true,
			},
		},
		Series: []chart.Series{mainSeries},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder() ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "Not enough handicap history"
	)

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			FillColor: chartBackground,
		},
		Canvas: chart.Style{
			FillColor: chartBackground,
		},
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontColor(chartText)
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
