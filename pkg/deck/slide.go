package deck

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"path"
	"strconv"
	"strings"
)

// relationship is one entry of a part's .rels file.
type relationship struct {
	id      string
	target  string
	relType string
}

// parseRelationships parses a rels part into id-keyed entries.
func parseRelationships(data []byte) map[string]relationship {
	result := make(map[string]relationship)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rel relationship
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rel.id = attr.Value
				case "Target":
					rel.target = attr.Value
				case "Type":
					rel.relType = attr.Value
				}
			}
			if rel.id != "" {
				result[rel.id] = rel
			}
		}
	}

	return result
}

// parseSlideIDList returns the relationship ids of the sldIdLst in
// document order. The relationship id attribute is the namespaced one;
// the plain id attribute is the numeric slide id.
func parseSlideIDList(data []byte) []string {
	var result []string
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sldId" {
			for _, attr := range se.Attr {
				if attr.Name.Local == "id" && attr.Name.Space != "" {
					result = append(result, attr.Value)
				}
			}
		}
	}

	return result
}

// parseSlide extracts one slide part plus its related notes, layout,
// and media.
func parseSlide(r *zip.Reader, slidePath string, num int) (Slide, error) {
	data, err := readZipFile(r, slidePath)
	if err != nil || data == nil {
		return Slide{}, fmt.Errorf("missing slide part %s", slidePath)
	}

	relsPath := strings.Replace(slidePath, "slides/", "slides/_rels/", 1) + ".rels"
	var rels map[string]relationship
	if relsXML, err := readZipFile(r, relsPath); err == nil && relsXML != nil {
		rels = parseRelationships(relsXML)
	}

	slide := Slide{Number: num}
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
		case "sp":
			phType, paras := parseShape(decoder)
			if isTitlePlaceholder(phType) && slide.Title == "" {
				slide.Title = joinParagraphs(paras)
			} else if len(paras) > 0 {
				slide.Content = append(slide.Content, Content{Type: "text", Text: paras})
			}
		case "graphicFrame":
			if tbl := parseGraphicFrame(decoder); tbl != nil {
				slide.Content = append(slide.Content, Content{Type: "table", Table: tbl})
			}
		case "pic":
			if img, ok := parsePic(r, decoder, rels, num, len(slide.Images)+1); ok {
				slide.Images = append(slide.Images, img)
			}
		}
	}

	slide.Notes = relatedNotes(r, rels)
	slide.Layout = relatedLayoutName(r, rels)
	return slide, nil
}

func isTitlePlaceholder(phType string) bool {
	return phType == "title" || phType == "ctrTitle"
}

func joinParagraphs(paras []Paragraph) string {
	parts := make([]string, 0, len(paras))
	for _, p := range paras {
		parts = append(parts, p.Text)
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// parseShape consumes an sp element, returning its placeholder type and
// non-empty paragraphs.
func parseShape(decoder *xml.Decoder) (string, []Paragraph) {
	var phType string
	var paras []Paragraph
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
			case "ph":
				for _, attr := range t.Attr {
					if attr.Name.Local == "type" {
						phType = attr.Value
					}
				}
			case "p":
				para := parseParagraph(decoder)
				if strings.TrimSpace(para.Text) != "" {
					paras = append(paras, para)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return phType, paras
}

// parseParagraph consumes an a:p element, joining its text runs and
// capturing the indent level.
func parseParagraph(decoder *xml.Decoder) Paragraph {
	var para Paragraph
	var text strings.Builder
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
			case "pPr":
				for _, attr := range t.Attr {
					if attr.Name.Local == "lvl" {
						if lvl, err := strconv.Atoi(attr.Value); err == nil {
							para.Level = lvl
						}
					}
				}
			case "t":
				var s string
				if err := decoder.DecodeElement(&s, &t); err == nil {
					text.WriteString(s)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	para.Text = strings.TrimSpace(text.String())
	return para
}

// parseGraphicFrame consumes a graphicFrame element and returns the
// table inside it, if any.
func parseGraphicFrame(decoder *xml.Decoder) *Table {
	var tbl *Table
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "tbl" {
				tbl = parseTable(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return tbl
}

// parseTable consumes an a:tbl element into rows of cell text.
func parseTable(decoder *xml.Decoder) *Table {
	var data [][]string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "tr" {
				data = append(data, parseTableRow(decoder))
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	if len(data) == 0 {
		return nil
	}
	tbl := &Table{Rows: len(data), Cols: len(data[0]), Data: data}
	return tbl
}

func parseTableRow(decoder *xml.Decoder) []string {
	var cells []string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "tc" {
				_, paras := parseShape(decoder) // tc shares the txBody structure
				cells = append(cells, joinParagraphs(paras))
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return cells
}

// parsePic consumes a pic element and loads the referenced media blob.
func parsePic(r *zip.Reader, decoder *xml.Decoder, rels map[string]relationship, slideNum, imgNum int) (Image, bool) {
	var rID string
	var cx, cy int64
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
			case "blip":
				for _, attr := range t.Attr {
					if attr.Name.Local == "embed" {
						rID = attr.Value
					}
				}
			case "ext":
				for _, attr := range t.Attr {
					switch attr.Name.Local {
					case "cx":
						cx, _ = strconv.ParseInt(attr.Value, 10, 64)
					case "cy":
						cy, _ = strconv.ParseInt(attr.Value, 10, 64)
					}
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	if rID == "" {
		return Image{}, false
	}
	rel, ok := rels[rID]
	if !ok {
		return Image{}, false
	}

	mediaPath := resolveTarget(rel.target, "ppt/slides")
	blob, err := readZipFile(r, mediaPath)
	if err != nil || blob == nil {
		return Image{}, false
	}

	return Image{
		Name:   fmt.Sprintf("slide%02d_img%d%s", slideNum, imgNum, path.Ext(mediaPath)),
		Width:  emuToPixels(cx),
		Height: emuToPixels(cy),
		Alt:    fmt.Sprintf("Image from slide %d", slideNum),
		Data:   blob,
	}, true
}

// relatedNotes loads the speaker notes text for a slide, joining the
// body placeholder paragraphs.
func relatedNotes(r *zip.Reader, rels map[string]relationship) string {
	notesPath := relatedPart(rels, "notesSlide")
	if notesPath == "" {
		return ""
	}

	data, err := readZipFile(r, resolveTarget(notesPath, "ppt/slides"))
	if err != nil || data == nil {
		return ""
	}

	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sp" {
			phType, paras := parseShape(decoder)
			if phType == "body" {
				return joinParagraphs(paras)
			}
		}
	}
	return ""
}

// relatedLayoutName loads the slide layout name, used as a slide type
// hint.
func relatedLayoutName(r *zip.Reader, rels map[string]relationship) string {
	layoutPath := relatedPart(rels, "slideLayout")
	if layoutPath == "" {
		return ""
	}

	data, err := readZipFile(r, resolveTarget(layoutPath, "ppt/slides"))
	if err != nil || data == nil {
		return ""
	}

	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "cSld" {
			for _, attr := range se.Attr {
				if attr.Name.Local == "name" {
					return attr.Value
				}
			}
			break
		}
	}
	return ""
}

// relatedPart returns the target of the first relationship whose type
// contains the given fragment.
func relatedPart(rels map[string]relationship, fragment string) string {
	for _, rel := range rels {
		if strings.Contains(rel.relType, fragment) {
			return rel.target
		}
	}
	return ""
}
