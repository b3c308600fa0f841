package deck

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const nsDecls = `xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" ` +
	`xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`

var fixtureParts = map[string]string{
	"ppt/presentation.xml": `<p:presentation ` + nsDecls + `>` +
		`<p:sldIdLst>` +
		`<p:sldId id="256" r:id="rId1"/>` +
		`<p:sldId id="257" r:id="rId2"/>` +
		`</p:sldIdLst>` +
		`</p:presentation>`,

	"ppt/_rels/presentation.xml.rels": `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide1.xml"/>` +
		`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide2.xml"/>` +
		`</Relationships>`,

	"ppt/slides/slide1.xml": `<p:sld ` + nsDecls + `><p:cSld><p:spTree>` +
		`<p:sp><p:nvSpPr><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr>` +
		`<p:txBody><a:p><a:r><a:t>Quarterly Review</a:t></a:r></a:p></p:txBody></p:sp>` +
		`<p:sp><p:txBody>` +
		`<a:p><a:r><a:t>First bullet</a:t></a:r></a:p>` +
		`<a:p><a:pPr lvl="1"/><a:r><a:t>Nested bullet</a:t></a:r></a:p>` +
		`</p:txBody></p:sp>` +
		`<p:pic><p:blipFill><a:blip r:embed="rId4"/></p:blipFill>` +
		`<p:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="914400" cy="457200"/></a:xfrm></p:spPr></p:pic>` +
		`</p:spTree></p:cSld></p:sld>`,

	"ppt/slides/_rels/slide1.xml.rels": `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>` +
		`<Relationship Id="rId4" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="../media/image1.png"/>` +
		`<Relationship Id="rId5" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide" Target="../notesSlides/notesSlide1.xml"/>` +
		`</Relationships>`,

	"ppt/slides/slide2.xml": `<p:sld ` + nsDecls + `><p:cSld><p:spTree>` +
		`<p:graphicFrame><a:graphic><a:graphicData><a:tbl>` +
		`<a:tr><a:tc><a:txBody><a:p><a:r><a:t>Region</a:t></a:r></a:p></a:txBody></a:tc>` +
		`<a:tc><a:txBody><a:p><a:r><a:t>Total</a:t></a:r></a:p></a:txBody></a:tc></a:tr>` +
		`<a:tr><a:tc><a:txBody><a:p><a:r><a:t>EMEA</a:t></a:r></a:p></a:txBody></a:tc>` +
		`<a:tc><a:txBody><a:p><a:r><a:t>42</a:t></a:r></a:p></a:txBody></a:tc></a:tr>` +
		`</a:tbl></a:graphicData></a:graphic></p:graphicFrame>` +
		`</p:spTree></p:cSld></p:sld>`,

	"ppt/slideLayouts/slideLayout1.xml": `<p:sldLayout ` + nsDecls + `>` +
		`<p:cSld name="Title Slide"/></p:sldLayout>`,

	"ppt/notesSlides/notesSlide1.xml": `<p:notes ` + nsDecls + `><p:cSld><p:spTree>` +
		`<p:sp><p:nvSpPr><p:nvPr><p:ph type="body"/></p:nvPr></p:nvSpPr>` +
		`<p:txBody><a:p><a:r><a:t>Mention the Q3 dip.</a:t></a:r></a:p></p:txBody></p:sp>` +
		`</p:spTree></p:cSld></p:notes>`,

	"ppt/media/image1.png": "not-really-a-png",
}

func writeFixture(t *testing.T) string {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range fixtureParts {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to add %s: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}

	path := filepath.Join(t.TempDir(), "fixture.pptx")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestExtract(t *testing.T) {
	d, err := Extract(writeFixture(t))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if d.SlideCount != 2 {
		t.Fatalf("SlideCount = %d, expected 2", d.SlideCount)
	}
	if d.SourceFile != "fixture.pptx" {
		t.Errorf("SourceFile = %q", d.SourceFile)
	}
}

func TestExtractSlideContent(t *testing.T) {
	d, err := Extract(writeFixture(t))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	s := d.Slides[0]
	if s.Title != "Quarterly Review" {
		t.Errorf("Title = %q", s.Title)
	}
	if s.Layout != "Title Slide" {
		t.Errorf("Layout = %q", s.Layout)
	}
	if s.Notes != "Mention the Q3 dip." {
		t.Errorf("Notes = %q", s.Notes)
	}

	if len(s.Content) != 1 || s.Content[0].Type != "text" {
		t.Fatalf("Content = %+v, expected one text block", s.Content)
	}
	paras := s.Content[0].Text
	if len(paras) != 2 {
		t.Fatalf("len(paragraphs) = %d, expected 2", len(paras))
	}
	if paras[0].Text != "First bullet" || paras[0].Level != 0 {
		t.Errorf("paragraph 0 = %+v", paras[0])
	}
	if paras[1].Text != "Nested bullet" || paras[1].Level != 1 {
		t.Errorf("paragraph 1 = %+v", paras[1])
	}
}

func TestExtractImages(t *testing.T) {
	d, err := Extract(writeFixture(t))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	imgs := d.Slides[0].Images
	if len(imgs) != 1 {
		t.Fatalf("len(Images) = %d, expected 1", len(imgs))
	}
	img := imgs[0]
	if img.Name != "slide01_img1.png" {
		t.Errorf("Name = %q", img.Name)
	}
	if img.Width != 96 || img.Height != 48 {
		t.Errorf("size = %dx%d, expected 96x48", img.Width, img.Height)
	}
	if img.Alt != "Image from slide 1" {
		t.Errorf("Alt = %q", img.Alt)
	}
	if string(img.Data) != "not-really-a-png" {
		t.Errorf("Data = %q", img.Data)
	}
}

func TestExtractTable(t *testing.T) {
	d, err := Extract(writeFixture(t))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	s := d.Slides[1]
	if len(s.Content) != 1 || s.Content[0].Type != "table" {
		t.Fatalf("Content = %+v, expected one table block", s.Content)
	}
	tbl := s.Content[0].Table
	if tbl.Rows != 2 || tbl.Cols != 2 {
		t.Errorf("table size = %dx%d, expected 2x2", tbl.Rows, tbl.Cols)
	}
	if tbl.Data[0][0] != "Region" || tbl.Data[1][1] != "42" {
		t.Errorf("table data = %v", tbl.Data)
	}
}

func TestExtractRejectsNonPresentation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Extract(path); err == nil {
		t.Error("expected an error for a non-zip input")
	}
}
