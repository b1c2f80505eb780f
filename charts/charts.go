// Package charts renders the dashboard's status charts as base64 PNG images.
package charts

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"math"

	"todo-dashboard/models"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	Width  = 600
	Height = 600

	PieTitle = "Task Status Distribution"
	BarTitle = "Task Status Count"
	BarYAxis = "Number of Tasks"

	emptyLabel = "No tasks"
)

// ErrNegativeCount is returned when a status count is below zero.
var ErrNegativeCount = errors.New("status counts must not be negative")

// Series is one labelled, colored status bucket.
type Series struct {
	Label string
	Color string
	Value int64
}

// Charts holds both rendered images, base64 encoded.
type Charts struct {
	PieChart string
	BarChart string
}

func (c *Charts) PieDataURI() string {
	return "data:image/png;base64," + c.PieChart
}

func (c *Charts) BarDataURI() string {
	return "data:image/png;base64," + c.BarChart
}

// SeriesFor maps counts onto the fixed Done / In Progress / To Do buckets.
func SeriesFor(counts models.StatusCounts) []Series {
	return []Series{
		{Label: models.StatusDone.String(), Color: "4CAF50", Value: counts.Done},
		{Label: models.StatusInProgress.String(), Color: "FFA500", Value: counts.InProgress},
		{Label: models.StatusToDo.String(), Color: "2196F3", Value: counts.ToDo},
	}
}

// Render draws the pie and bar chart for counts.
func Render(counts models.StatusCounts) (*Charts, error) {
	if counts.Done < 0 || counts.InProgress < 0 || counts.ToDo < 0 {
		return nil, ErrNegativeCount
	}

	series := SeriesFor(counts)

	pie, err := renderPie(series, counts.Total())
	if err != nil {
		return nil, fmt.Errorf("rendering pie chart: %w", err)
	}
	bar, err := renderBar(series)
	if err != nil {
		return nil, fmt.Errorf("rendering bar chart: %w", err)
	}

	return &Charts{
		PieChart: base64.StdEncoding.EncodeToString(pie),
		BarChart: base64.StdEncoding.EncodeToString(bar),
	}, nil
}

func renderPie(series []Series, total int64) ([]byte, error) {
	var values []chart.Value
	for _, s := range series {
		if s.Value == 0 {
			continue
		}
		pct := float64(s.Value) / float64(total) * 100
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %.1f%%", s.Label, pct),
			Value: float64(s.Value),
			Style: chart.Style{FillColor: drawing.ColorFromHex(s.Color)},
		})
	}

	// go-chart refuses a pie without any positive slice
	if len(values) == 0 {
		values = []chart.Value{{
			Label: emptyLabel,
			Value: 1,
			Style: chart.Style{FillColor: drawing.ColorFromHex("BDBDBD")},
		}}
	}

	pie := chart.PieChart{
		Title:  PieTitle,
		Width:  Width,
		Height: Height,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderBar(series []Series) ([]byte, error) {
	var top int64 = 1
	bars := make([]chart.Value, 0, len(series))
	for _, s := range series {
		if s.Value > top {
			top = s.Value
		}
		bars = append(bars, chart.Value{
			Label: s.Label,
			Value: float64(s.Value),
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex(s.Color),
				StrokeColor: drawing.ColorFromHex(s.Color),
			},
		})
	}

	bar := chart.BarChart{
		Title:      BarTitle,
		Width:      Width,
		Height:     Height,
		BarWidth:   100,
		Background: chart.Style{Padding: chart.Box{Top: 60}},
		YAxis: chart.YAxis{
			Name:  BarYAxis,
			Range: &chart.ContinuousRange{Min: 0, Max: float64(top)},
			Ticks: countTicks(top),
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bar.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// countTicks returns whole-number ticks from 0 to top, at most ten steps.
func countTicks(top int64) []chart.Tick {
	step := int64(math.Ceil(float64(top) / 10))
	if step < 1 {
		step = 1
	}

	var ticks []chart.Tick
	for v := int64(0); v < top; v += step {
		ticks = append(ticks, chart.Tick{Value: float64(v), Label: fmt.Sprintf("%d", v)})
	}
	return append(ticks, chart.Tick{Value: float64(top), Label: fmt.Sprintf("%d", top)})
}
