// Package htmlgen renders extracted slide content as standalone HTML
// slide fragments. Each slide becomes one section element with reveal
// classes for staged animation, written to a slides/ directory under
// the output root.
package htmlgen

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/slidekit/slidekit-go/pkg/deck"
)

// slugMaxLen caps slug length so file names stay manageable.
const slugMaxLen = 30

// notesMaxLen caps the speaker notes excerpt embedded as a comment,
// in runes.
const notesMaxLen = 200

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Slugify converts a title into a filename-safe slug.
func Slugify(text string) string {
	s := nonAlphanumeric.ReplaceAllString(strings.ToLower(text), "-")
	s = strings.Trim(s, "-")
	if len(s) > slugMaxLen {
		s = s[:slugMaxLen]
	}
	return s
}

// FileName returns the output file name for a slide, NN-slug.html.
func FileName(s deck.Slide) string {
	slug := Slugify(s.Title)
	if slug == "" {
		slug = fmt.Sprintf("slide-%d", s.Number)
	}
	return fmt.Sprintf("%02d-%s.html", s.Number, slug)
}

// Generate writes one HTML fragment per slide into outputDir/slides
// and returns the file names in slide order.
func Generate(d *deck.Deck, outputDir string) ([]string, error) {
	slidesDir := filepath.Join(outputDir, "slides")
	if err := os.MkdirAll(slidesDir, 0755); err != nil {
		return nil, fmt.Errorf("create slides directory: %w", err)
	}

	names := make([]string, 0, len(d.Slides))
	for _, slide := range d.Slides {
		name := FileName(slide)
		path := filepath.Join(slidesDir, name)
		if err := os.WriteFile(path, []byte(SlideHTML(slide)), 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
		names = append(names, name)
	}
	return names, nil
}

// SlideHTML renders one slide as a section fragment. The first slide,
// and any slide on a layout with "title" in its name, is styled as a
// title slide.
func SlideHTML(s deck.Slide) string {
	isTitle := s.Number == 1 || strings.Contains(strings.ToLower(s.Layout), "title")

	var lines []string

	if s.Notes != "" {
		excerpt := s.Notes
		ellipsis := ""
		if runes := []rune(excerpt); len(runes) > notesMaxLen {
			excerpt = string(runes[:notesMaxLen])
			ellipsis = "..."
		}
		lines = append(lines, fmt.Sprintf("<!-- Speaker notes: %s%s -->", excerpt, ellipsis))
	}

	modifier := ""
	if isTitle {
		modifier = " slide--title"
	}
	lines = append(lines, fmt.Sprintf(`<section class="slide%s">`, modifier))

	if s.Title != "" {
		tag := "h2"
		if isTitle {
			tag = "h1"
		}
		lines = append(lines, fmt.Sprintf(`    <%s class="reveal">%s</%s>`, tag, escapeHTML(s.Title), tag))
	}

	for _, item := range s.Content {
		switch item.Type {
		case "text":
			lines = append(lines, textLines(item.Text, isTitle)...)
		case "table":
			lines = append(lines, tableLines(item.Table)...)
		}
	}

	for _, img := range s.Images {
		lines = append(lines,
			`    <figure class="reveal">`,
			fmt.Sprintf(`        <img src="%s" alt="%s">`, img.Name, escapeHTML(img.Alt)),
			`    </figure>`,
		)
	}

	lines = append(lines, "</section>")
	return strings.Join(lines, "\n")
}

// textLines renders paragraphs. Any indentation turns the whole block
// into a nested list; flat text stays as paragraphs, styled as a
// subtitle on title slides.
func textLines(paras []deck.Paragraph, isTitle bool) []string {
	var lines []string

	hasHierarchy := false
	for _, p := range paras {
		if p.Level > 0 {
			hasHierarchy = true
			break
		}
	}

	if hasHierarchy {
		lines = append(lines, `    <ul class="reveal-list">`)
		for _, p := range paras {
			indent := strings.Repeat("    ", 2+p.Level)
			lines = append(lines, fmt.Sprintf(`%s<li class="reveal">%s</li>`, indent, escapeHTML(p.Text)))
		}
		lines = append(lines, `    </ul>`)
		return lines
	}

	class := "reveal"
	if isTitle {
		class = "reveal subtitle"
	}
	for _, p := range paras {
		lines = append(lines, fmt.Sprintf(`    <p class="%s">%s</p>`, class, escapeHTML(p.Text)))
	}
	return lines
}

// tableLines renders a table with the first row as the header.
func tableLines(t *deck.Table) []string {
	if t == nil || len(t.Data) == 0 {
		return nil
	}

	lines := []string{
		`    <table class="reveal">`,
		`        <thead>`,
		`            <tr>`,
	}
	for _, cell := range t.Data[0] {
		lines = append(lines, fmt.Sprintf(`                <th>%s</th>`, escapeHTML(cell)))
	}
	lines = append(lines, `            </tr>`, `        </thead>`)

	if len(t.Data) > 1 {
		lines = append(lines, `        <tbody>`)
		for _, row := range t.Data[1:] {
			lines = append(lines, `            <tr>`)
			for _, cell := range row {
				lines = append(lines, fmt.Sprintf(`                <td>%s</td>`, escapeHTML(cell)))
			}
			lines = append(lines, `            </tr>`)
		}
		lines = append(lines, `        </tbody>`)
	}

	lines = append(lines, `    </table>`)
	return lines
}

func escapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}
