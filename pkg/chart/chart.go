// Package chart renders small labeled numeric series as scalable vector
// bar, pie, and line charts, themed by a resolved color palette. The
// engine is purely computational: it performs no I/O and holds no state
// between calls.
package chart

import (
	"fmt"

	"github.com/slidekit/slidekit-go/pkg/chart/layout"
	"github.com/slidekit/slidekit-go/pkg/chart/svg"
	"github.com/slidekit/slidekit-go/pkg/chart/theme"
)

// Kind identifies the chart type.
type Kind string

const (
	KindBar  Kind = "bar"
	KindPie  Kind = "pie"
	KindLine Kind = "line"
)

// DisplayName returns the human-readable kind name used in alt text.
func (k Kind) DisplayName() string {
	switch k {
	case KindBar:
		return "Bar chart"
	case KindPie:
		return "Pie chart"
	case KindLine:
		return "Line chart"
	}
	return "Chart"
}

// Default document dimensions in pixels.
const (
	DefaultWidth  = 600
	DefaultHeight = 400
)

// Request describes a chart to draw. The engine never mutates it.
type Request struct {
	// Kind selects the chart type.
	Kind Kind
	// Labels are category labels, one per value.
	Labels []string
	// Values are the data points, in label order.
	Values []float64
	// Title is the optional chart title. Empty means no title.
	Title string
	// Width and Height are the document dimensions in pixels.
	Width  int
	Height int
}

// Rendered is the output of a render call.
type Rendered struct {
	// SVG is the self-contained vector document.
	SVG string
	// AltText is a one-line plain-text description of the chart.
	AltText string
}

// Render validates req and produces the SVG document plus alt text for
// it. Identical (request, theme) pairs always produce byte-identical
// output.
func Render(req Request, th theme.Theme) (Rendered, error) {
	if err := Validate(req); err != nil {
		return Rendered{}, err
	}

	in := layout.Input{
		Labels: req.Labels,
		Values: req.Values,
		Title:  req.Title,
		Width:  req.Width,
		Height: req.Height,
		Theme:  th,
	}

	var doc string
	switch req.Kind {
	case KindBar:
		doc = svg.Bar(layout.BuildBar(in))
	case KindPie:
		doc = svg.Pie(layout.BuildPie(in))
	case KindLine:
		doc = svg.Line(layout.BuildLine(in))
	default:
		return Rendered{}, fmt.Errorf("unknown chart kind %q", req.Kind)
	}

	return Rendered{SVG: doc, AltText: AltText(req)}, nil
}
