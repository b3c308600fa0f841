package layout

import (
	"fmt"
	"math"
)

// legendReserve is the horizontal space reserved right of the pie for
// the legend column.
const legendReserve = 160

// PieLayout holds the geometry for a pie chart.
type PieLayout struct {
	// Frame is the margin model the layout was computed in.
	Frame Frame
	// Title is the optional chart title. Empty means no title.
	Title string
	// Theme supplies color references for decoration.
	Theme ThemeRef
	// CX, CY are the pie center coordinates.
	CX, CY float64
	// Radius is the pie radius.
	Radius float64
	// Slices are the pie slices in label order, clockwise from 12
	// o'clock.
	Slices []Slice
	// Legend holds one entry per label, stacked vertically and
	// centered on the pie's center.
	Legend []LegendEntry
}

// Slice is a single pie slice.
type Slice struct {
	// StartAngle and EndAngle are in degrees; -90 is 12 o'clock and
	// angles proceed clockwise.
	StartAngle, EndAngle float64
	// X1, Y1 is the arc start point on the circle.
	X1, Y1 float64
	// X2, Y2 is the arc end point on the circle.
	X2, Y2 float64
	// LargeArc selects the longer of the two arcs between the
	// endpoints; set when the slice spans more than 180 degrees.
	LargeArc bool
	// Color is the fill color, assigned cyclically from the series
	// palette.
	Color string
}

// LegendEntry is one legend row: a color swatch plus its label text.
type LegendEntry struct {
	// X, Y is the swatch top-left corner.
	X, Y float64
	// Color is the swatch fill color, matching the slice.
	Color string
	// Label is the row text, "label (percent%)".
	Label string
}

// Legend row metrics.
const (
	legendSwatch    = 16
	legendRowHeight = 28
)

// BuildPie computes a pie chart layout. Slice angles are proportional
// shares of 360 degrees; callers must reject a zero total before
// building. The radius fits the chart area left of the reserved legend
// column.
func BuildPie(in Input) PieLayout {
	f := NewFrame(in.Width, in.Height, in.Title != "")

	var total float64
	for _, v := range in.Values {
		total += v
	}

	pieWidth := f.ChartWidth() - legendReserve
	cx := f.Left + pieWidth/2
	cy := f.Top + f.ChartHeight()/2
	radius := math.Min(pieWidth/2-20, f.ChartHeight()/2-20)

	slices := make([]Slice, 0, len(in.Values))
	start := -90.0 // 12 o'clock
	for i, v := range in.Values {
		angle := v / total * 360
		end := start + angle

		startRad := start * math.Pi / 180
		endRad := end * math.Pi / 180

		slices = append(slices, Slice{
			StartAngle: start,
			EndAngle:   end,
			X1:         cx + radius*math.Cos(startRad),
			Y1:         cy + radius*math.Sin(startRad),
			X2:         cx + radius*math.Cos(endRad),
			Y2:         cy + radius*math.Sin(endRad),
			LargeArc:   angle > 180,
			Color:      in.Theme.SeriesColor(i),
		})
		start = end
	}

	legendX := cx + radius + 60
	legendY := cy - float64(len(in.Labels))*legendRowHeight/2
	legend := make([]LegendEntry, 0, len(in.Labels))
	for i, label := range in.Labels {
		pct := int(math.Round(in.Values[i] / total * 100))
		legend = append(legend, LegendEntry{
			X:     legendX,
			Y:     legendY + float64(i)*legendRowHeight,
			Color: in.Theme.SeriesColor(i),
			Label: fmt.Sprintf("%s (%d%%)", label, pct),
		})
	}

	return PieLayout{
		Frame:  f,
		Title:  in.Title,
		Theme:  themeRef(in.Theme),
		CX:     cx,
		CY:     cy,
		Radius: radius,
		Slices: slices,
		Legend: legend,
	}
}
