package layout

import (
	"math"
	"testing"

	"github.com/slidekit/slidekit-go/pkg/chart/theme"
)

const epsilon = 1e-9

func barInput(labels []string, values []float64) Input {
	return Input{
		Labels: labels,
		Values: values,
		Width:  600,
		Height: 400,
		Theme:  theme.Default(),
	}
}

func TestBuildBarMaxBarRatio(t *testing.T) {
	l := BuildBar(barInput(
		[]string{"Q1", "Q2", "Q3", "Q4"},
		[]float64{100, 150, 200, 180},
	))

	if len(l.Bars) != 4 {
		t.Fatalf("len(Bars) = %d, expected 4", len(l.Bars))
	}

	// The tallest bar fills 1/1.1 of the chart height regardless of n.
	ratio := l.Bars[2].Height / l.Frame.ChartHeight()
	if math.Abs(ratio-1/1.1) > epsilon {
		t.Errorf("max bar ratio = %v, expected %v", ratio, 1/1.1)
	}
}

func TestBuildBarGridlineLabels(t *testing.T) {
	l := BuildBar(barInput(
		[]string{"Q1", "Q2", "Q3", "Q4"},
		[]float64{100, 150, 200, 180},
	))

	if len(l.Gridlines) != 6 {
		t.Fatalf("len(Gridlines) = %d, expected 6", len(l.Gridlines))
	}
	if l.Gridlines[0].Label != "0" {
		t.Errorf("baseline label = %q, expected 0", l.Gridlines[0].Label)
	}
	if l.Gridlines[5].Label != "220" {
		t.Errorf("top gridline label = %q, expected 220", l.Gridlines[5].Label)
	}
}

func TestBuildBarAllZeroSeries(t *testing.T) {
	l := BuildBar(barInput([]string{"A", "B", "C"}, []float64{0, 0, 0}))

	for i, bar := range l.Bars {
		if bar.Height != 0 {
			t.Errorf("bar %d height = %v, expected 0", i, bar.Height)
		}
		if math.IsNaN(bar.Y) || math.IsInf(bar.Y, 0) {
			t.Errorf("bar %d y = %v, expected finite", i, bar.Y)
		}
	}
	// Floored axis maximum labels 0..1.
	if l.Gridlines[5].Label != "1" {
		t.Errorf("top gridline label = %q, expected 1", l.Gridlines[5].Label)
	}
}

func TestBuildBarSingleBarCentered(t *testing.T) {
	l := BuildBar(barInput([]string{"Only"}, []float64{42}))

	if len(l.Bars) != 1 {
		t.Fatalf("len(Bars) = %d, expected 1", len(l.Bars))
	}
	bar := l.Bars[0]
	barCenter := bar.X + bar.Width/2
	chartCenter := l.Frame.Left + l.Frame.ChartWidth()/2
	if math.Abs(barCenter-chartCenter) > epsilon {
		t.Errorf("bar center = %v, expected chart center %v", barCenter, chartCenter)
	}
}

func TestBuildBarSeriesColorsCycle(t *testing.T) {
	th := theme.Default()
	labels := make([]string, 8)
	values := make([]float64, 8)
	for i := range values {
		labels[i] = "x"
		values[i] = float64(i + 1)
	}

	in := barInput(labels, values)
	l := BuildBar(in)

	for i, bar := range l.Bars {
		if bar.Color != th.Series[i%len(th.Series)] {
			t.Errorf("bar %d color = %q, expected %q", i, bar.Color, th.Series[i%len(th.Series)])
		}
	}
}

func TestBuildBarTitleRaisesTopMargin(t *testing.T) {
	plain := BuildBar(barInput([]string{"A"}, []float64{1}))
	if plain.Frame.Top != 30 {
		t.Errorf("top margin without title = %v, expected 30", plain.Frame.Top)
	}

	in := barInput([]string{"A"}, []float64{1})
	in.Title = "Revenue"
	titled := BuildBar(in)
	if titled.Frame.Top != 60 {
		t.Errorf("top margin with title = %v, expected 60", titled.Frame.Top)
	}
}
