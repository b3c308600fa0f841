// Package layout computes chart-type-specific geometry from validated
// chart data. It produces positions, angles, labels, and resolved color
// references only; text escaping and serialization belong to the svg
// package.
package layout

import (
	"strconv"

	"github.com/slidekit/slidekit-go/pkg/chart/theme"
)

// Input is the validated data a layout is computed from. Callers are
// expected to run validation before building a layout.
type Input struct {
	// Labels are category labels, one per value.
	Labels []string
	// Values are the data points, in label order.
	Values []float64
	// Title is the optional chart title. Empty means no title.
	Title string
	// Width is the document width in pixels.
	Width int
	// Height is the document height in pixels.
	Height int
	// Theme supplies all color references.
	Theme theme.Theme
}

// Frame describes the margins around the usable chart area.
type Frame struct {
	// Width is the document width in pixels.
	Width int
	// Height is the document height in pixels.
	Height int
	// Top is the top margin; larger when a title needs room.
	Top float64
	// Bottom is the bottom margin, sized for axis labels.
	Bottom float64
	// Left is the left margin, sized for the value axis.
	Left float64
	// Right is the right margin.
	Right float64
}

// NewFrame returns the shared margin model for all chart kinds.
func NewFrame(width, height int, hasTitle bool) Frame {
	top := 30.0
	if hasTitle {
		top = 60.0
	}
	return Frame{
		Width:  width,
		Height: height,
		Top:    top,
		Bottom: 60,
		Left:   60,
		Right:  30,
	}
}

// ChartWidth returns the usable horizontal extent.
func (f Frame) ChartWidth() float64 {
	return float64(f.Width) - f.Left - f.Right
}

// ChartHeight returns the usable vertical extent.
func (f Frame) ChartHeight() float64 {
	return float64(f.Height) - f.Top - f.Bottom
}

// ThemeRef carries the decoration color references a renderer needs:
// title and value labels use Primary, gridlines and axis labels use
// Secondary, line strokes use Accent.
type ThemeRef struct {
	Primary    string
	Secondary  string
	Accent     string
	Background string
}

func themeRef(t theme.Theme) ThemeRef {
	return ThemeRef{
		Primary:    t.Primary,
		Secondary:  t.Secondary,
		Accent:     t.Accent,
		Background: t.Background,
	}
}

// Gridline is a horizontal reference line with its axis label.
type Gridline struct {
	// Y is the vertical position of the line.
	Y float64
	// Label is the axis value label shown left of the line.
	Label string
}

// gridlineCount is the number of equally spaced gridlines above the
// baseline; the baseline itself makes a sixth line.
const gridlineCount = 5

// gridlines computes the six reference lines for a value axis spanning
// [minVal, maxVal], labeled with the truncated value at each fraction.
func gridlines(f Frame, minVal, maxVal float64) []Gridline {
	lines := make([]Gridline, 0, gridlineCount+1)
	for i := 0; i <= gridlineCount; i++ {
		frac := float64(i) / gridlineCount
		lines = append(lines, Gridline{
			Y:     f.Top + f.ChartHeight() - frac*f.ChartHeight(),
			Label: strconv.Itoa(int(minVal + (maxVal-minVal)*frac)),
		})
	}
	return lines
}

// FormatValue renders a data value as plain decimal text, without a
// trailing ".0" for integral values.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func maxValue(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func minValue(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
