// Package theme resolves chart color palettes.
package theme

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Built-in colors used when a palette entry is absent.
const (
	DefaultPrimary    = "#1e293b"
	DefaultSecondary  = "#64748b"
	DefaultAccent     = "#2563eb"
	DefaultBackground = "#ffffff"
)

// defaultSeries is the built-in cyclic series palette. The resolved
// accent replaces the first entry during Resolve.
var defaultSeries = [...]string{
	"#2563eb", "#7c3aed", "#db2777", "#ea580c", "#16a34a", "#0891b2",
}

// Palette is a partial color palette, typically decoded from the
// color_palette object of an image-style.json file. Empty entries fall
// back to built-in defaults during Resolve.
type Palette struct {
	// Primary is the color for titles and value labels.
	Primary string `json:"primary,omitempty"`
	// Secondary is the color for gridlines and axis labels.
	Secondary string `json:"secondary,omitempty"`
	// Accent is the color for data emphasis (line stroke, first series).
	Accent string `json:"accent,omitempty"`
	// Background is the chart background color.
	Background string `json:"background,omitempty"`
}

// Theme is a fully resolved set of chart colors.
type Theme struct {
	// Primary is the color for titles and value labels.
	Primary string `json:"primary"`
	// Secondary is the color for gridlines and axis labels.
	Secondary string `json:"secondary"`
	// Accent is the color for data emphasis.
	Accent string `json:"accent"`
	// Background is the chart background color.
	Background string `json:"background"`
	// Series is the cyclic per-datum palette. Never empty.
	Series []string `json:"series"`
}

// Default returns the built-in theme.
func Default() Theme {
	return Resolve(Palette{})
}

// Resolve merges a partial palette over the built-in defaults. The
// resolved accent always becomes the first series color.
func Resolve(p Palette) Theme {
	th := Theme{
		Primary:    DefaultPrimary,
		Secondary:  DefaultSecondary,
		Accent:     DefaultAccent,
		Background: DefaultBackground,
	}
	if p.Primary != "" {
		th.Primary = p.Primary
	}
	if p.Secondary != "" {
		th.Secondary = p.Secondary
	}
	if p.Accent != "" {
		th.Accent = p.Accent
	}
	if p.Background != "" {
		th.Background = p.Background
	}

	series := make([]string, len(defaultSeries))
	copy(series, defaultSeries[:])
	series[0] = th.Accent
	th.Series = series
	return th
}

// SeriesColor returns the series color for index i, cycling through the
// palette.
func (t Theme) SeriesColor(i int) string {
	return t.Series[i%len(t.Series)]
}

// AdjustShade lightens (positive delta) or darkens (negative delta) a
// hex color by adding delta to each channel, clamped to [0, 255].
// Callers use it to derive a secondary background tone: lighten for
// dark themes, darken for light themes. Unparseable colors are
// returned unchanged.
func AdjustShade(hex string, delta int) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("#%02x%02x%02x",
		clampChannel(int(r)+delta),
		clampChannel(int(g)+delta),
		clampChannel(int(b)+delta))
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
