package deck

// Deck is the structured content of a presentation file.
type Deck struct {
	// SourceFile is the presentation file name (no path).
	SourceFile string `json:"source_file"`
	// SlideCount is the number of extracted slides.
	SlideCount int `json:"slide_count"`
	// Slides are the slides in presentation order.
	Slides []Slide `json:"slides"`
}

// Slide is the extracted content of a single slide.
type Slide struct {
	// Number is the 1-based slide position.
	Number int `json:"number"`
	// Title is the title placeholder text, if any.
	Title string `json:"title"`
	// Content holds text and table blocks in shape order.
	Content []Content `json:"content"`
	// Images are pictures placed on the slide.
	Images []Image `json:"images"`
	// Notes is the speaker notes text, if any.
	Notes string `json:"notes"`
	// Layout is the slide layout name, used as a slide type hint.
	Layout string `json:"layout"`
}

// Content is a typed slide content block.
type Content struct {
	// Type is "text" or "table".
	Type string `json:"type"`
	// Text holds the paragraphs of a text block.
	Text []Paragraph `json:"text,omitempty"`
	// Table holds the cells of a table block.
	Table *Table `json:"table,omitempty"`
}

// Paragraph is one paragraph of a text frame.
type Paragraph struct {
	// Text is the paragraph text with runs joined.
	Text string `json:"text"`
	// Level is the indentation level (0 = top level).
	Level int `json:"level"`
}

// Table is extracted table data as rows of cell text.
type Table struct {
	// Rows is the row count.
	Rows int `json:"rows"`
	// Cols is the column count.
	Cols int `json:"cols"`
	// Data holds cell text by row, then column.
	Data [][]string `json:"data"`
}

// Image is a picture extracted from a slide. The blob is kept in
// memory; persisting it is the caller's job.
type Image struct {
	// Name is a stable file name of the form slideNN_imgM.ext.
	Name string `json:"path"`
	// Width is the placed width in pixels (0 if unknown).
	Width int `json:"width"`
	// Height is the placed height in pixels (0 if unknown).
	Height int `json:"height"`
	// Alt is a short description for the image.
	Alt string `json:"alt"`
	// Data is the raw image bytes.
	Data []byte `json:"-"`
}
