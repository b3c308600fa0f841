package layout

// LineLayout holds the geometry for a line chart.
type LineLayout struct {
	// Frame is the margin model the layout was computed in.
	Frame Frame
	// Title is the optional chart title. Empty means no title.
	Title string
	// Theme supplies color references for decoration.
	Theme ThemeRef
	// Gridlines are the value-axis reference lines, baseline first.
	Gridlines []Gridline
	// Points are the data points in label order.
	Points []Point
	// Area is the fill polygon: the point sequence bracketed by two
	// baseline anchors at the first and last x positions.
	Area []Vertex
}

// Point is a single data point with its labels.
type Point struct {
	// X, Y is the point position.
	X, Y float64
	// ValueLabel is the value text anchored above the point.
	ValueLabel string
	// CategoryLabel is the label text below the axis.
	CategoryLabel string
}

// Vertex is a polygon vertex.
type Vertex struct {
	X, Y float64
}

// BuildLine computes a line chart layout. The value axis spans
// [min(0, min), max*1.1]; it always includes zero unless every value is
// negative, in which case it extends to the most negative value. A
// degenerate zero-span axis (all-zero series) is widened by one unit so
// point mapping stays well defined, and a single point is horizontally
// centered in the chart area.
func BuildLine(in Input) LineLayout {
	n := len(in.Values)
	f := NewFrame(in.Width, in.Height, in.Title != "")

	maxVal := maxValue(in.Values) * headroom
	minVal := minValue(in.Values)
	if minVal > 0 {
		minVal = 0
	}
	if maxVal <= minVal {
		// Headroom moves an all-negative maximum further down, which
		// can put the axis top at or below its bottom. Widen upward so
		// the span stays positive.
		maxVal = minVal + 1
	}

	points := make([]Point, 0, n)
	for i, v := range in.Values {
		x := f.Left + f.ChartWidth()/2
		if n > 1 {
			x = f.Left + float64(i)/float64(n-1)*f.ChartWidth()
		}
		y := f.Top + f.ChartHeight() - (v-minVal)/(maxVal-minVal)*f.ChartHeight()
		points = append(points, Point{
			X:             x,
			Y:             y,
			ValueLabel:    FormatValue(v),
			CategoryLabel: in.Labels[i],
		})
	}

	baseline := f.Top + f.ChartHeight()
	area := make([]Vertex, 0, n+2)
	area = append(area, Vertex{X: points[0].X, Y: baseline})
	for _, p := range points {
		area = append(area, Vertex{X: p.X, Y: p.Y})
	}
	area = append(area, Vertex{X: points[n-1].X, Y: baseline})

	return LineLayout{
		Frame:     f,
		Title:     in.Title,
		Theme:     themeRef(in.Theme),
		Gridlines: gridlines(f, minVal, maxVal),
		Points:    points,
		Area:      area,
	}
}
