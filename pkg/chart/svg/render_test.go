package svg

import (
	"strings"
	"testing"

	"github.com/slidekit/slidekit-go/pkg/chart/layout"
	"github.com/slidekit/slidekit-go/pkg/chart/theme"
)

func testInput(labels []string, values []float64, title string) layout.Input {
	return layout.Input{
		Labels: labels,
		Values: values,
		Title:  title,
		Width:  600,
		Height: 400,
		Theme:  theme.Default(),
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"plain", "plain"},
		{"R&D", "R&amp;D"},
		{"<script>", "&lt;script&gt;"},
		{`say "hi"`, "say &quot;hi&quot;"},
		{"it's", "it&#39;s"},
	}

	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.expected {
			t.Errorf("Escape(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestBarDocumentStructure(t *testing.T) {
	doc := Bar(layout.BuildBar(testInput(
		[]string{"Q1", "Q2", "Q3", "Q4"},
		[]float64{100, 150, 200, 180},
		"",
	)))

	if !strings.HasPrefix(doc, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 600 400"`) {
		t.Fatalf("unexpected document prefix: %s", doc[:80])
	}
	if !strings.HasSuffix(doc, "</svg>") {
		t.Fatal("document does not close the svg root")
	}

	// Background, 6 gridlines, 4 bars.
	if got := strings.Count(doc, "<rect"); got != 5 {
		t.Errorf("rect count = %d, expected 5 (background + 4 bars)", got)
	}
	if got := strings.Count(doc, "<line"); got != 6 {
		t.Errorf("line count = %d, expected 6 gridlines", got)
	}
	if !strings.Contains(doc, ">220</text>") {
		t.Error("top gridline label 220 missing")
	}
	if !strings.Contains(doc, `font-weight="600"`) {
		t.Error("value labels should be bold")
	}
}

func TestBarTitleRendered(t *testing.T) {
	doc := Bar(layout.BuildBar(testInput([]string{"A"}, []float64{1}, "Revenue & Growth")))

	if !strings.Contains(doc, ">Revenue &amp; Growth</text>") {
		t.Error("title missing or not escaped")
	}

	plain := Bar(layout.BuildBar(testInput([]string{"A"}, []float64{1}, "")))
	if strings.Contains(plain, `font-size="18"`) {
		t.Error("untitled chart should not render a title element")
	}
}

func TestBarLabelEscaping(t *testing.T) {
	doc := Bar(layout.BuildBar(testInput([]string{`A<B> & "C"`}, []float64{5}, "")))

	if !strings.Contains(doc, "A&lt;B&gt; &amp; &quot;C&quot;") {
		t.Error("category label not escaped")
	}
	if strings.Contains(doc, `>A<B>`) {
		t.Error("raw reserved characters leaked into markup")
	}
}

func TestPieDocumentStructure(t *testing.T) {
	doc := Pie(layout.BuildPie(testInput(
		[]string{"Sales", "Marketing", "R&D"},
		[]float64{45, 30, 25},
		"",
	)))

	if got := strings.Count(doc, "<path"); got != 3 {
		t.Errorf("path count = %d, expected 3 slices", got)
	}
	// Legend: one swatch per slice plus the background rect.
	if got := strings.Count(doc, "<rect"); got != 4 {
		t.Errorf("rect count = %d, expected 4", got)
	}
	if !strings.Contains(doc, ">R&amp;D (25%)</text>") {
		t.Error("legend label missing or not escaped")
	}
	if !strings.Contains(doc, " 0 0,1 ") {
		t.Error("expected small-arc wedges for slices under 180 degrees")
	}
}

func TestPieLargeArcFlag(t *testing.T) {
	doc := Pie(layout.BuildPie(testInput([]string{"Big", "Small"}, []float64{300, 60}, "")))

	if !strings.Contains(doc, " 0 1,1 ") {
		t.Error("expected a large-arc wedge for the 300-degree slice")
	}
}

func TestLineDocumentStructure(t *testing.T) {
	doc := Line(layout.BuildLine(testInput(
		[]string{"Jan", "Feb", "Mar"},
		[]float64{10, 25, 15},
		"",
	)))

	if !strings.Contains(doc, `<linearGradient id="areaGradient"`) {
		t.Error("area gradient definition missing")
	}
	if !strings.Contains(doc, `fill="url(#areaGradient)"`) {
		t.Error("area polygon does not reference the gradient")
	}
	if got := strings.Count(doc, "<circle"); got != 3 {
		t.Errorf("circle count = %d, expected 3 markers", got)
	}
	if got := strings.Count(doc, "<polyline"); got != 1 {
		t.Errorf("polyline count = %d, expected 1", got)
	}
}

func TestRenderDeterminism(t *testing.T) {
	in := testInput([]string{"Q1", "Q2"}, []float64{1.5, 2.25}, "Title")

	if Bar(layout.BuildBar(in)) != Bar(layout.BuildBar(in)) {
		t.Error("bar rendering is not deterministic")
	}
	if Pie(layout.BuildPie(in)) != Pie(layout.BuildPie(in)) {
		t.Error("pie rendering is not deterministic")
	}
	if Line(layout.BuildLine(in)) != Line(layout.BuildLine(in)) {
		t.Error("line rendering is not deterministic")
	}
}
