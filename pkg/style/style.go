// Package style infers a visual style definition from a pptx
// presentation: dominant background and text colors, a dark/light
// theme classification, an accent color pick, and the fonts in use.
// The result feeds CSS variable generation and the image generation
// style prompt.
package style

import (
	"sort"

	"github.com/slidekit/slidekit-go/pkg/chart/theme"
	"github.com/slidekit/slidekit-go/pkg/deck"
)

// Style is the extracted style definition.
type Style struct {
	Metadata   Metadata   `json:"metadata"`
	Colors     Colors     `json:"colors"`
	Typography Typography `json:"typography"`
	Spacing    Spacing    `json:"spacing"`
	Animation  Animation  `json:"animation"`
	RawData    RawData    `json:"raw_data"`
}

// Metadata describes the analyzed presentation.
type Metadata struct {
	SourceFile      string   `json:"source_file"`
	SlideCount      int      `json:"slide_count"`
	ThemeType       string   `json:"theme_type"`
	LayoutsDetected []string `json:"layouts_detected"`
}

// Colors holds the resolved color roles.
type Colors struct {
	BgPrimary     string `json:"bg_primary"`
	BgSecondary   string `json:"bg_secondary"`
	TextPrimary   string `json:"text_primary"`
	TextSecondary string `json:"text_secondary"`
	Accent        string `json:"accent"`
	AccentGlow    string `json:"accent_glow"`
}

// Typography holds the resolved font roles and sizes.
type Typography struct {
	FontDisplay    string  `json:"font_display"`
	FontBody       string  `json:"font_body"`
	HeadingSizePt  float64 `json:"heading_size_pt"`
	BodySizePt     float64 `json:"body_size_pt"`
	GoogleFontsURL string  `json:"google_fonts_url"`
}

// Spacing holds layout spacing tokens.
type Spacing struct {
	SlidePadding string `json:"slide_padding"`
}

// Animation holds motion tokens.
type Animation struct {
	DurationNormal string `json:"duration_normal"`
	EaseFunction   string `json:"ease_function"`
}

// RawData preserves the collected frequency data for inspection.
type RawData struct {
	AllBackgroundColors []string  `json:"all_background_colors"`
	AllTextColors       []string  `json:"all_text_colors"`
	AllFonts            []string  `json:"all_fonts"`
	AllFontSizes        []float64 `json:"all_font_sizes"`
}

// Brightness thresholds for classifying colors and themes. Brightness
// is the perceptual weighting (299r + 587g + 114b) / 1000 on a 0..255
// scale.
const (
	darkThemeBrightness  = 128
	lightColorBrightness = 200
	darkColorBrightness  = 55
)

// minAccentSaturation filters grayscale colors out of the accent pick.
const minAccentSaturation = 0.3

// Analyze extracts the style definition from a pptx file.
func Analyze(path string) (*Style, error) {
	d, err := deck.Extract(path)
	if err != nil {
		return nil, err
	}

	collected, err := collectSamples(path)
	if err != nil {
		return nil, err
	}

	return buildStyle(d, collected), nil
}

func buildStyle(d *deck.Deck, collected *samples) *Style {
	primaryBG := "#ffffff"
	if top := collected.backgrounds.mostCommon(1); len(top) > 0 {
		primaryBG = top[0].value
	}

	isDark := brightness(primaryBG) < darkThemeBrightness
	topText := collected.textColors.mostCommon(10)
	textPrimary, textSecondary := classifyTextColors(topText, isDark)

	imageColors := dominantImageColors(d)
	accent := pickAccent(topText, imageColors)

	display, body := pickFonts(collected.fonts)
	headingSize, bodySize := pickSizes(collected.sizes)

	themeType := "light"
	if isDark {
		themeType = "dark"
	}
	shade := -10
	if isDark {
		shade = 10
	}

	return &Style{
		Metadata: Metadata{
			SourceFile:      d.SourceFile,
			SlideCount:      d.SlideCount,
			ThemeType:       themeType,
			LayoutsDetected: layoutNames(d),
		},
		Colors: Colors{
			BgPrimary:     primaryBG,
			BgSecondary:   theme.AdjustShade(primaryBG, shade),
			TextPrimary:   textPrimary,
			TextSecondary: textSecondary,
			Accent:        accent,
			AccentGlow:    accent + "40",
		},
		Typography: Typography{
			FontDisplay:    display,
			FontBody:       body,
			HeadingSizePt:  headingSize,
			BodySizePt:     bodySize,
			GoogleFontsURL: GoogleFontsURL([]string{display, body}),
		},
		Spacing: Spacing{
			SlidePadding: "clamp(2rem, 5vw, 4rem)",
		},
		Animation: Animation{
			DurationNormal: "0.6s",
			EaseFunction:   "cubic-bezier(0.16, 1, 0.3, 1)",
		},
		RawData: RawData{
			AllBackgroundColors: firstN(collected.backgrounds.order, 5),
			AllTextColors:       firstN(collected.textColors.order, 10),
			AllFonts:            collected.fonts.order,
			AllFontSizes:        topSizesDescending(collected.sizes, 10),
		},
	}
}

// classifyTextColors buckets the most frequent text colors by
// brightness and assigns the primary and secondary roles for the
// detected theme.
func classifyTextColors(top []entry[string], isDark bool) (primary, secondary string) {
	var light, dark, mid []string
	for _, e := range top {
		switch b := brightness(e.value); {
		case b > lightColorBrightness:
			light = append(light, e.value)
		case b < darkColorBrightness:
			dark = append(dark, e.value)
		default:
			mid = append(mid, e.value)
		}
	}

	if isDark {
		primary = firstOr(light, "#ffffff")
		secondary = firstOr(mid, "#9ca3af")
	} else {
		primary = firstOr(dark, "#1f2937")
		secondary = firstOr(mid, "#6b7280")
	}
	return primary, secondary
}

// pickAccent selects the most saturated non-grayscale color from the
// frequent text colors and the dominant image colors.
func pickAccent(topText []entry[string], imageColors []string) string {
	type candidate struct {
		color string
		sat   float64
	}
	var candidates []candidate

	for _, e := range topText {
		if s := saturation(e.value); s > minAccentSaturation {
			candidates = append(candidates, candidate{e.value, s})
		}
	}
	for _, c := range imageColors {
		if s := saturation(c); s > minAccentSaturation {
			candidates = append(candidates, candidate{c, s})
		}
	}

	if len(candidates) == 0 {
		return "#3b82f6"
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].sat > candidates[j].sat
	})
	return candidates[0].color
}

func pickFonts(fonts *counter[string]) (display, body string) {
	top := fonts.mostCommon(3)
	if len(top) == 0 {
		return "Inter", "Inter"
	}
	display = top[0].value
	body = display
	if len(top) > 1 {
		body = top[1].value
	}
	return display, body
}

// pickSizes picks a heading size (largest frequent size >= 24pt) and a
// body size (largest frequent size in 12..24pt), with fallbacks.
func pickSizes(sizes *counter[float64]) (heading, body float64) {
	heading, body = 48, 18
	var headings, bodies []float64
	for _, e := range sizes.mostCommon(5) {
		switch {
		case e.value >= 24:
			headings = append(headings, e.value)
		case e.value >= 12:
			bodies = append(bodies, e.value)
		}
	}
	if len(headings) > 0 {
		heading = maxOf(headings)
	}
	if len(bodies) > 0 {
		body = maxOf(bodies)
	}
	return heading, body
}

func layoutNames(d *deck.Deck) []string {
	var names []string
	seen := make(map[string]bool)
	for _, s := range d.Slides {
		if s.Layout != "" && !seen[s.Layout] {
			seen[s.Layout] = true
			names = append(names, s.Layout)
		}
	}
	return names
}

func topSizesDescending(sizes *counter[float64], n int) []float64 {
	result := append([]float64(nil), sizes.order...)
	sort.Sort(sort.Reverse(sort.Float64Slice(result)))
	return firstN(result, n)
}

func firstOr(s []string, fallback string) string {
	if len(s) > 0 {
		return s[0]
	}
	return fallback
}

func firstN[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func maxOf(s []float64) float64 {
	m := s[0]
	for _, v := range s[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
