// Package render turns view data into chart images and SVG fragments.
package render

import (
	"errors"
	"io"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Kim-dr/paper-explorer/pkg/analytics"
	"github.com/Kim-dr/paper-explorer/pkg/db"
)

// ErrNoData means there is nothing to plot. Callers suppress the chart
// rather than treating this as a failure.
var ErrNoData = errors.New("no data to chart")

func barStyle(hex string) chart.Style {
	return chart.Style{
		FillColor:   drawing.ColorFromHex(hex),
		StrokeColor: drawing.ColorFromHex(hex),
		StrokeWidth: 0,
	}
}

// yAxis pins the value range to [0, max]. Left to its own devices,
// go-chart derives the range from the bar values and rejects uniform
// inputs (min == max), which a single-year selection hits every time.
func yAxis(bars []chart.Value) chart.YAxis {
	max := 1.0
	for _, b := range bars {
		if b.Value > max {
			max = b.Value
		}
	}
	return chart.YAxis{
		Range: &chart.ContinuousRange{Min: 0, Max: max},
	}
}

// YearBarChart renders the publications-by-year bar chart as a PNG.
func YearBarChart(counts []db.YearCount, w io.Writer) error {
	if len(counts) == 0 {
		return ErrNoData
	}

	bars := make([]chart.Value, len(counts))
	for i, yc := range counts {
		bars[i] = chart.Value{
			Label: strconv.Itoa(yc.Year),
			Value: float64(yc.Count),
			Style: barStyle("4682b4"), // steelblue
		}
	}

	graph := chart.BarChart{
		Title:      "Research Publications by Year",
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Width:      640,
		Height:     400,
		BarWidth:   60,
		YAxis:      yAxis(bars),
		Bars:       bars,
	}
	return graph.Render(chart.PNG, w)
}

// WordBarChart renders the most-common-title-words bar chart as a PNG.
// At most maxBars words are drawn.
func WordBarChart(words []analytics.WordCount, maxBars int, w io.Writer) error {
	if len(words) == 0 {
		return ErrNoData
	}
	if maxBars > 0 && len(words) > maxBars {
		words = words[:maxBars]
	}

	bars := make([]chart.Value, len(words))
	for i, wc := range words {
		bars[i] = chart.Value{
			Label: wc.Word,
			Value: float64(wc.Count),
			Style: barStyle("90ee90"), // lightgreen
		}
	}

	graph := chart.BarChart{
		Title:      "Most Common Words in Paper Titles",
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Width:      900,
		Height:     400,
		BarWidth:   40,
		YAxis:      yAxis(bars),
		Bars:       bars,
	}
	return graph.Render(chart.PNG, w)
}
