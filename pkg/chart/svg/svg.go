// Package svg serializes chart layouts into self-contained SVG
// documents. Output is a pure function of the layout: rendering the
// same layout twice yields byte-identical markup.
package svg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/slidekit/slidekit-go/pkg/chart/layout"
)

// Escape replaces the five markup-reserved characters so caller-supplied
// text can be embedded in an SVG document.
func Escape(s string) string {
	return escaper.Replace(s)
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// num formats a coordinate or length as plain decimal text.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// canvas accumulates SVG elements in drawing order.
type canvas struct {
	b strings.Builder
}

func newCanvas(width, height int) *canvas {
	c := &canvas{}
	fmt.Fprintf(&c.b,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" font-family="system-ui, -apple-system, sans-serif">`,
		width, height)
	c.b.WriteByte('\n')
	return c
}

func (c *canvas) done() string {
	c.b.WriteString("</svg>")
	return c.b.String()
}

func (c *canvas) background(width, height int, fill string) {
	fmt.Fprintf(&c.b, `<rect width="%d" height="%d" fill="%s"/>`, width, height, fill)
	c.b.WriteByte('\n')
}

func (c *canvas) title(width int, text, fill string) {
	fmt.Fprintf(&c.b,
		`<text x="%s" y="30" text-anchor="middle" font-size="18" font-weight="600" fill="%s">%s</text>`,
		num(float64(width)/2), fill, Escape(text))
	c.b.WriteByte('\n')
}

func (c *canvas) rect(x, y, w, h float64, fill string, rx float64) {
	fmt.Fprintf(&c.b, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"`,
		num(x), num(y), num(w), num(h), fill)
	if rx > 0 {
		fmt.Fprintf(&c.b, ` rx="%s"`, num(rx))
	}
	c.b.WriteString("/>\n")
}

func (c *canvas) line(x1, y1, x2, y2 float64, stroke string, opacity float64) {
	fmt.Fprintf(&c.b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-opacity="%s"/>`,
		num(x1), num(y1), num(x2), num(y2), stroke, num(opacity))
	c.b.WriteByte('\n')
}

// textStyle holds the presentational attributes of a text element. A
// zero weight omits the font-weight attribute.
type textStyle struct {
	anchor string
	size   int
	weight int
	fill   string
}

func (c *canvas) text(x, y float64, st textStyle, s string) {
	fmt.Fprintf(&c.b, `<text x="%s" y="%s"`, num(x), num(y))
	if st.anchor != "" {
		fmt.Fprintf(&c.b, ` text-anchor="%s"`, st.anchor)
	}
	fmt.Fprintf(&c.b, ` font-size="%d"`, st.size)
	if st.weight != 0 {
		fmt.Fprintf(&c.b, ` font-weight="%d"`, st.weight)
	}
	fmt.Fprintf(&c.b, ` fill="%s">%s</text>`, st.fill, Escape(s))
	c.b.WriteByte('\n')
}

func (c *canvas) path(d, fill string) {
	fmt.Fprintf(&c.b, `<path d="%s" fill="%s"/>`, d, fill)
	c.b.WriteByte('\n')
}

func (c *canvas) polygon(vertices []layout.Vertex, fill string) {
	fmt.Fprintf(&c.b, `<polygon points="%s" fill="%s"/>`, points(vertices), fill)
	c.b.WriteByte('\n')
}

func (c *canvas) polyline(vertices []layout.Vertex, stroke string, width int) {
	fmt.Fprintf(&c.b,
		`<polyline points="%s" fill="none" stroke="%s" stroke-width="%d" stroke-linecap="round" stroke-linejoin="round"/>`,
		points(vertices), stroke, width)
	c.b.WriteByte('\n')
}

func (c *canvas) circle(cx, cy, r float64, fill, stroke string, strokeWidth int) {
	fmt.Fprintf(&c.b, `<circle cx="%s" cy="%s" r="%s" fill="%s" stroke="%s" stroke-width="%d"/>`,
		num(cx), num(cy), num(r), fill, stroke, strokeWidth)
	c.b.WriteByte('\n')
}

// areaGradient emits the vertical fade used under a line chart's area
// polygon.
func (c *canvas) areaGradient(id, color string) {
	fmt.Fprintf(&c.b,
		`<defs><linearGradient id="%s" x1="0%%" y1="0%%" x2="0%%" y2="100%%">`+
			`<stop offset="0%%" stop-color="%s" stop-opacity="0.3"/>`+
			`<stop offset="100%%" stop-color="%s" stop-opacity="0.05"/>`+
			`</linearGradient></defs>`,
		id, color, color)
	c.b.WriteByte('\n')
}

func points(vertices []layout.Vertex) string {
	var b strings.Builder
	for i, v := range vertices {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(num(v.X))
		b.WriteByte(',')
		b.WriteString(num(v.Y))
	}
	return b.String()
}
