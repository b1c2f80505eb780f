package charts

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image/png"
	"strings"
	"testing"

	"todo-dashboard/models"
)

func decodePNG(t *testing.T, encoded string) {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != Width || b.Dy() != Height {
		t.Errorf("image is %dx%d, want %dx%d", b.Dx(), b.Dy(), Width, Height)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		counts models.StatusCounts
	}{
		{"mixed", models.StatusCounts{Done: 3, InProgress: 2, ToDo: 5}},
		{"single status", models.StatusCounts{ToDo: 1}},
		{"empty", models.StatusCounts{}},
		{"large", models.StatusCounts{Done: 120, InProgress: 7, ToDo: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Render(tt.counts)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			decodePNG(t, c.PieChart)
			decodePNG(t, c.BarChart)
		})
	}
}

func TestRenderRejectsNegativeCounts(t *testing.T) {
	_, err := Render(models.StatusCounts{Done: -1})
	if !errors.Is(err, ErrNegativeCount) {
		t.Errorf("expected ErrNegativeCount, got %v", err)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	counts := models.StatusCounts{Done: 1, InProgress: 1, ToDo: 1}
	a, err := Render(counts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Render(counts)
	if err != nil {
		t.Fatal(err)
	}
	if a.PieChart != b.PieChart || a.BarChart != b.BarChart {
		t.Error("same counts produced different images")
	}
}

func TestDataURIs(t *testing.T) {
	c := &Charts{PieChart: "AAA", BarChart: "BBB"}
	if c.PieDataURI() != "data:image/png;base64,AAA" {
		t.Errorf("PieDataURI() = %q", c.PieDataURI())
	}
	if !strings.HasSuffix(c.BarDataURI(), ",BBB") {
		t.Errorf("BarDataURI() = %q", c.BarDataURI())
	}
}

func TestSeriesForFixedOrderAndColors(t *testing.T) {
	s := SeriesFor(models.StatusCounts{Done: 1, InProgress: 2, ToDo: 3})
	want := []Series{
		{Label: "Done", Color: "4CAF50", Value: 1},
		{Label: "In Progress", Color: "FFA500", Value: 2},
		{Label: "To Do", Color: "2196F3", Value: 3},
	}
	if len(s) != len(want) {
		t.Fatalf("got %d series", len(s))
	}
	for i := range want {
		if s[i] != want[i] {
			t.Errorf("series[%d] = %+v, want %+v", i, s[i], want[i])
		}
	}
}

func TestCountTicks(t *testing.T) {
	ticks := countTicks(1)
	if len(ticks) != 2 || ticks[0].Value != 0 || ticks[1].Value != 1 {
		t.Errorf("countTicks(1) = %+v", ticks)
	}

	ticks = countTicks(95)
	if len(ticks) > 12 {
		t.Errorf("too many ticks for 95: %d", len(ticks))
	}
	if last := ticks[len(ticks)-1]; last.Value != 95 || last.Label != "95" {
		t.Errorf("last tick = %+v", last)
	}
}
