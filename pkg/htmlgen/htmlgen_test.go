package htmlgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/slidekit/slidekit-go/pkg/deck"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Quarterly Review", "quarterly-review"},
		{"Q3: Results & Outlook!", "q3-results-outlook"},
		{"---", ""},
		{"A Very Long Title That Goes On And On Forever", "a-very-long-title-that-goes-on"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestFileName(t *testing.T) {
	s := deck.Slide{Number: 3, Title: "Revenue Breakdown"}
	if got := FileName(s); got != "03-revenue-breakdown.html" {
		t.Errorf("FileName = %q", got)
	}

	untitled := deck.Slide{Number: 7}
	if got := FileName(untitled); got != "07-slide-7.html" {
		t.Errorf("FileName (untitled) = %q", got)
	}
}

func TestSlideHTMLTitleSlide(t *testing.T) {
	s := deck.Slide{
		Number: 1,
		Title:  "Launch Plan",
		Content: []deck.Content{
			{Type: "text", Text: []deck.Paragraph{{Text: "A fresh start"}}},
		},
	}

	html := SlideHTML(s)
	if !strings.Contains(html, `<section class="slide slide--title">`) {
		t.Errorf("missing title slide modifier:\n%s", html)
	}
	if !strings.Contains(html, `<h1 class="reveal">Launch Plan</h1>`) {
		t.Errorf("title slide should use h1:\n%s", html)
	}
	if !strings.Contains(html, `<p class="reveal subtitle">A fresh start</p>`) {
		t.Errorf("flat text on a title slide should be a subtitle:\n%s", html)
	}
}

func TestSlideHTMLLayoutNameTriggersTitle(t *testing.T) {
	s := deck.Slide{Number: 4, Title: "Thanks", Layout: "Title and Content"}
	if !strings.Contains(SlideHTML(s), "slide--title") {
		t.Error("layout name containing title should mark a title slide")
	}
}

func TestSlideHTMLBulletHierarchy(t *testing.T) {
	s := deck.Slide{
		Number: 2,
		Title:  "Agenda",
		Content: []deck.Content{
			{Type: "text", Text: []deck.Paragraph{
				{Text: "First"},
				{Text: "Detail", Level: 1},
			}},
		},
	}

	html := SlideHTML(s)
	if !strings.Contains(html, `<h2 class="reveal">Agenda</h2>`) {
		t.Errorf("content slide should use h2:\n%s", html)
	}
	if !strings.Contains(html, `<ul class="reveal-list">`) {
		t.Errorf("indented paragraphs should become a list:\n%s", html)
	}
	if !strings.Contains(html, "        <li class=\"reveal\">First</li>") {
		t.Errorf("top level item indent wrong:\n%s", html)
	}
	if !strings.Contains(html, "            <li class=\"reveal\">Detail</li>") {
		t.Errorf("nested item indent wrong:\n%s", html)
	}
}

func TestSlideHTMLTable(t *testing.T) {
	s := deck.Slide{
		Number: 2,
		Content: []deck.Content{
			{Type: "table", Table: &deck.Table{
				Rows: 2, Cols: 2,
				Data: [][]string{{"Region", "Total"}, {"EMEA", "42"}},
			}},
		},
	}

	html := SlideHTML(s)
	if !strings.Contains(html, "<th>Region</th>") {
		t.Errorf("first row should be the header:\n%s", html)
	}
	if !strings.Contains(html, "<td>42</td>") {
		t.Errorf("body cells missing:\n%s", html)
	}
	if !strings.Contains(html, "<thead>") || !strings.Contains(html, "<tbody>") {
		t.Errorf("table sections missing:\n%s", html)
	}
}

func TestSlideHTMLNotesAndEscaping(t *testing.T) {
	s := deck.Slide{
		Number: 2,
		Title:  `Profit & Loss <2026>`,
		Notes:  strings.Repeat("x", 250),
	}

	html := SlideHTML(s)
	if !strings.Contains(html, "<!-- Speaker notes: "+strings.Repeat("x", 200)+"... -->") {
		t.Errorf("notes comment should be truncated at 200 chars:\n%s", html[:80])
	}
	if !strings.Contains(html, "Profit &amp; Loss &lt;2026&gt;") {
		t.Errorf("title should be escaped:\n%s", html)
	}
}

func TestSlideHTMLNotesTruncateOnRuneBoundary(t *testing.T) {
	s := deck.Slide{
		Number: 2,
		Notes:  strings.Repeat("ü", 250),
	}

	html := SlideHTML(s)
	if !utf8.ValidString(html) {
		t.Fatal("output contains invalid UTF-8")
	}
	if !strings.Contains(html, "<!-- Speaker notes: "+strings.Repeat("ü", 200)+"... -->") {
		t.Errorf("notes excerpt should hold 200 runes:\n%s", html)
	}
}

func TestSlideHTMLImages(t *testing.T) {
	s := deck.Slide{
		Number: 3,
		Images: []deck.Image{
			{Name: "slide03_img1.png", Alt: "Image from slide 3"},
		},
	}

	html := SlideHTML(s)
	if !strings.Contains(html, `<img src="slide03_img1.png" alt="Image from slide 3">`) {
		t.Errorf("image markup missing:\n%s", html)
	}
	if !strings.Contains(html, `<figure class="reveal">`) {
		t.Errorf("figure wrapper missing:\n%s", html)
	}
}

func TestGenerate(t *testing.T) {
	d := &deck.Deck{
		SlideCount: 2,
		Slides: []deck.Slide{
			{Number: 1, Title: "Kickoff"},
			{Number: 2, Title: "Roadmap"},
		},
	}

	dir := t.TempDir()
	names, err := Generate(d, dir)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := []string{"01-kickoff.html", "02-roadmap.html"}
	if len(names) != len(want) {
		t.Fatalf("names = %v", names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("names[%d] = %q, expected %q", i, names[i], name)
		}
		data, err := os.ReadFile(filepath.Join(dir, "slides", name))
		if err != nil {
			t.Fatalf("missing output file %s: %v", name, err)
		}
		if !strings.Contains(string(data), "<section") {
			t.Errorf("%s has no section element", name)
		}
	}
}
