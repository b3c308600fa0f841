package style

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// entry is one counted value with its occurrence count.
type entry[T comparable] struct {
	value T
	count int
}

// counter counts occurrences while preserving first-seen order, so
// ties in mostCommon resolve to the value seen earliest.
type counter[T comparable] struct {
	counts map[T]int
	order  []T
}

func newCounter[T comparable]() *counter[T] {
	return &counter[T]{counts: make(map[T]int)}
}

func (c *counter[T]) add(v T) {
	if _, ok := c.counts[v]; !ok {
		c.order = append(c.order, v)
	}
	c.counts[v]++
}

func (c *counter[T]) mostCommon(n int) []entry[T] {
	result := make([]entry[T], 0, len(c.order))
	for _, v := range c.order {
		result = append(result, entry[T]{value: v, count: c.counts[v]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].count > result[j].count
	})
	if len(result) > n {
		result = result[:n]
	}
	return result
}

// samples holds the raw frequency data collected from the slide parts.
type samples struct {
	backgrounds *counter[string]
	textColors  *counter[string]
	fonts       *counter[string]
	sizes       *counter[float64]
}

// collectSamples scans every slide part for explicit background fills,
// run colors and fonts, and shape fill colors. Theme-indirected colors
// have no literal value in the slide part and are skipped.
func collectSamples(path string) (*samples, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open presentation: %w", err)
	}
	defer r.Close()

	s := &samples{
		backgrounds: newCounter[string](),
		textColors:  newCounter[string](),
		fonts:       newCounter[string](),
		sizes:       newCounter[float64](),
	}

	for _, name := range slidePartNames(&r.Reader) {
		data, err := readPart(&r.Reader, name)
		if err != nil {
			continue
		}
		collectSlide(s, data)
	}
	return s, nil
}

func slidePartNames(r *zip.Reader) []string {
	var names []string
	for _, f := range r.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)
	return names
}

func readPart(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("missing part %s", name)
}

// collectSlide walks one slide part. Background colors come from the
// p:bg element, text colors and fonts from a:rPr run properties, and
// shape fill colors from the direct solidFill of a:spPr.
func collectSlide(s *samples, data []byte) {
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "bg":
			if c := firstFillColor(decoder); c != "" {
				s.backgrounds.add(c)
			}
		case "rPr":
			collectRunProps(s, decoder, se)
		case "spPr":
			if c := directFillColor(decoder); c != "" {
				s.textColors.add(c)
			}
		}
	}
}

// collectRunProps consumes an rPr element, recording the font size
// attribute and any nested color and typeface.
func collectRunProps(s *samples, decoder *xml.Decoder, se xml.StartElement) {
	for _, attr := range se.Attr {
		if attr.Name.Local == "sz" {
			if sz, err := strconv.ParseFloat(attr.Value, 64); err == nil {
				s.sizes.add(sz / 100)
			}
		}
	}

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "srgbClr":
				if c := hexAttr(t); c != "" {
					s.textColors.add(c)
				}
			case "latin":
				for _, attr := range t.Attr {
					if attr.Name.Local == "typeface" {
						s.fonts.add(attr.Value)
					}
				}
			}
		case xml.EndElement:
			depth--
		}
	}
}

// firstFillColor consumes an element and returns the first srgbClr
// value found anywhere inside it.
func firstFillColor(decoder *xml.Decoder) string {
	var color string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "srgbClr" && color == "" {
				color = hexAttr(t)
			}
		case xml.EndElement:
			depth--
		}
	}
	return color
}

// directFillColor consumes an spPr element and returns the srgbClr of
// a solidFill that is a direct child. Outline and effect colors sit
// deeper and are not fill colors.
func directFillColor(decoder *xml.Decoder) string {
	var color string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "solidFill" && depth == 1 && color == "" {
				color = firstFillColor(decoder)
				continue
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return color
}

func hexAttr(se xml.StartElement) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == "val" && len(attr.Value) == 6 {
			return "#" + strings.ToLower(attr.Value)
		}
	}
	return ""
}

// brightness is the perceptual brightness of a hex color on a 0..255
// scale. Unparseable colors report 0.
func brightness(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.RGB255()
	return (float64(r)*299 + float64(g)*587 + float64(b)*114) / 1000
}

// saturation is the HSV saturation of a hex color, 0 for grayscale.
func saturation(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	_, s, _ := c.Hsv()
	return s
}
