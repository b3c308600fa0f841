package style

import (
	"fmt"
	"strings"
)

// googleFontAliases maps common presentation fonts to Google Fonts
// alternatives. An empty value marks a system font with no web
// equivalent worth loading.
var googleFontAliases = map[string]string{
	"Arial":           "",
	"Helvetica":       "",
	"Times New Roman": "",
	"Calibri":         "Open Sans",
	"Cambria":         "Merriweather",
}

const fallbackFontsURL = "https://fonts.googleapis.com/css2?family=Inter:wght@400;600;700&display=swap"

// GoogleFontsURL builds a Google Fonts stylesheet URL for the given
// fonts, substituting web alternatives for common system fonts and
// skipping duplicates.
func GoogleFontsURL(fonts []string) string {
	var params []string
	seen := make(map[string]bool)

	for _, font := range fonts {
		name := font
		if alias, ok := googleFontAliases[font]; ok {
			if alias == "" {
				continue
			}
			name = alias
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		params = append(params, strings.ReplaceAll(name, " ", "+")+":wght@400;600;700")
	}

	if len(params) == 0 {
		return fallbackFontsURL
	}
	return "https://fonts.googleapis.com/css2?family=" + strings.Join(params, "&family=") + "&display=swap"
}

// CSSVariables renders the style definition as CSS custom properties.
func (s *Style) CSSVariables() string {
	var b strings.Builder

	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "    /* Colors - extracted from %s */\n", s.Metadata.SourceFile)
	fmt.Fprintf(&b, "    --bg-primary: %s;\n", s.Colors.BgPrimary)
	fmt.Fprintf(&b, "    --bg-secondary: %s;\n", s.Colors.BgSecondary)
	fmt.Fprintf(&b, "    --text-primary: %s;\n", s.Colors.TextPrimary)
	fmt.Fprintf(&b, "    --text-secondary: %s;\n", s.Colors.TextSecondary)
	fmt.Fprintf(&b, "    --accent: %s;\n", s.Colors.Accent)
	fmt.Fprintf(&b, "    --accent-glow: %s;\n", s.Colors.AccentGlow)
	b.WriteString("\n    /* Typography */\n")
	fmt.Fprintf(&b, "    --font-display: '%s', sans-serif;\n", s.Typography.FontDisplay)
	fmt.Fprintf(&b, "    --font-body: '%s', sans-serif;\n", s.Typography.FontBody)
	b.WriteString("\n    /* Spacing */\n")
	fmt.Fprintf(&b, "    --slide-padding: %s;\n", s.Spacing.SlidePadding)
	b.WriteString("\n    /* Animation */\n")
	fmt.Fprintf(&b, "    --duration-normal: %s;\n", s.Animation.DurationNormal)
	fmt.Fprintf(&b, "    --ease-out-expo: %s;\n", s.Animation.EaseFunction)
	b.WriteString("}")

	return b.String()
}

// ImageStyle is the style signature consumed by the image generator.
type ImageStyle struct {
	Signature      string       `json:"signature"`
	Mood           string       `json:"mood"`
	ColorPalette   ColorPalette `json:"color_palette"`
	StyleKeywords  []string     `json:"style_keywords"`
	NegativePrompt string       `json:"negative_prompt"`
}

// ColorPalette names the colors an illustration should draw from.
type ColorPalette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
}

// ImageStyle derives the image generation style signature from the
// extracted presentation style.
func (s *Style) ImageStyle() ImageStyle {
	mood := "professional/clean"
	if s.Metadata.ThemeType == "dark" {
		mood = "modern/dramatic"
	}

	return ImageStyle{
		Signature: fmt.Sprintf("minimalist illustration, %s theme, colors (%s, %s), soft shadows, editorial feel",
			s.Metadata.ThemeType, s.Colors.BgPrimary, s.Colors.Accent),
		Mood: mood,
		ColorPalette: ColorPalette{
			Primary:    s.Colors.TextPrimary,
			Secondary:  s.Colors.TextSecondary,
			Accent:     s.Colors.Accent,
			Background: s.Colors.BgPrimary,
		},
		StyleKeywords:  []string{"minimalist", "illustration", "soft shadows", "editorial", s.Metadata.ThemeType},
		NegativePrompt: "photorealistic, 3D render, cluttered, neon, stock photo",
	}
}
