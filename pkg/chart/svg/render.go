package svg

import (
	"fmt"

	"github.com/slidekit/slidekit-go/pkg/chart/layout"
)

// Drawing order is fixed: background, title, gridlines, data shapes,
// value labels, category labels, legend.

// Bar serializes a bar chart layout.
func Bar(l layout.BarLayout) string {
	c := newCanvas(l.Frame.Width, l.Frame.Height)
	c.background(l.Frame.Width, l.Frame.Height, l.Theme.Background)
	if l.Title != "" {
		c.title(l.Frame.Width, l.Title, l.Theme.Primary)
	}

	drawGridlines(c, l.Frame, l.Gridlines, l.Theme.Secondary)

	for _, b := range l.Bars {
		c.rect(b.X, b.Y, b.Width, b.Height, b.Color, 4)
	}
	for _, b := range l.Bars {
		c.text(b.X+b.Width/2, b.Y-8,
			textStyle{anchor: "middle", size: 12, weight: 600, fill: l.Theme.Primary},
			b.ValueLabel)
	}
	axisY := float64(l.Frame.Height) - l.Frame.Bottom + 20
	for _, b := range l.Bars {
		c.text(b.X+b.Width/2, axisY,
			textStyle{anchor: "middle", size: 12, fill: l.Theme.Secondary},
			b.CategoryLabel)
	}

	return c.done()
}

// Pie serializes a pie chart layout.
func Pie(l layout.PieLayout) string {
	c := newCanvas(l.Frame.Width, l.Frame.Height)
	c.background(l.Frame.Width, l.Frame.Height, l.Theme.Background)
	if l.Title != "" {
		c.title(l.Frame.Width, l.Title, l.Theme.Primary)
	}

	for _, s := range l.Slices {
		c.path(slicePath(l, s), s.Color)
	}

	for _, e := range l.Legend {
		c.rect(e.X, e.Y, 16, 16, e.Color, 2)
		c.text(e.X+24, e.Y+12,
			textStyle{size: 12, fill: l.Theme.Primary},
			e.Label)
	}

	return c.done()
}

// slicePath builds the wedge path: move to center, line to the arc
// start, arc to the end, close.
func slicePath(l layout.PieLayout, s layout.Slice) string {
	largeArc := 0
	if s.LargeArc {
		largeArc = 1
	}
	return fmt.Sprintf("M %s,%s L %s,%s A %s,%s 0 %d,1 %s,%s Z",
		num(l.CX), num(l.CY),
		num(s.X1), num(s.Y1),
		num(l.Radius), num(l.Radius),
		largeArc,
		num(s.X2), num(s.Y2))
}

// Line serializes a line chart layout.
func Line(l layout.LineLayout) string {
	c := newCanvas(l.Frame.Width, l.Frame.Height)
	c.background(l.Frame.Width, l.Frame.Height, l.Theme.Background)
	if l.Title != "" {
		c.title(l.Frame.Width, l.Title, l.Theme.Primary)
	}

	drawGridlines(c, l.Frame, l.Gridlines, l.Theme.Secondary)

	const gradientID = "areaGradient"
	c.areaGradient(gradientID, l.Theme.Accent)
	c.polygon(l.Area, "url(#"+gradientID+")")

	stroke := make([]layout.Vertex, len(l.Points))
	for i, p := range l.Points {
		stroke[i] = layout.Vertex{X: p.X, Y: p.Y}
	}
	c.polyline(stroke, l.Theme.Accent, 3)

	for _, p := range l.Points {
		c.circle(p.X, p.Y, 5, l.Theme.Background, l.Theme.Accent, 2)
	}
	for _, p := range l.Points {
		c.text(p.X, p.Y-12,
			textStyle{anchor: "middle", size: 11, weight: 600, fill: l.Theme.Primary},
			p.ValueLabel)
	}
	axisY := float64(l.Frame.Height) - l.Frame.Bottom + 20
	for _, p := range l.Points {
		c.text(p.X, axisY,
			textStyle{anchor: "middle", size: 12, fill: l.Theme.Secondary},
			p.CategoryLabel)
	}

	return c.done()
}

// drawGridlines emits each reference line with its axis label anchored
// left of the value axis.
func drawGridlines(c *canvas, f layout.Frame, lines []layout.Gridline, color string) {
	for _, g := range lines {
		c.line(f.Left, g.Y, float64(f.Width)-f.Right, g.Y, color, 0.2)
		c.text(f.Left-10, g.Y+4,
			textStyle{anchor: "end", size: 12, fill: color},
			g.Label)
	}
}
