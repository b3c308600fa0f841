package layout

// BarLayout holds the geometry for a bar chart.
type BarLayout struct {
	// Frame is the margin model the layout was computed in.
	Frame Frame
	// Title is the optional chart title. Empty means no title.
	Title string
	// Theme supplies color references for decoration.
	Theme ThemeRef
	// Gridlines are the value-axis reference lines, baseline first.
	Gridlines []Gridline
	// Bars are the category bars in label order.
	Bars []Bar
}

// Bar is a single category bar with its labels.
type Bar struct {
	// X is the left edge of the bar.
	X float64
	// Y is the top edge of the bar.
	Y float64
	// Width is the bar width.
	Width float64
	// Height is the bar height; zero for zero-valued data points.
	Height float64
	// Color is the fill color, assigned cyclically from the series
	// palette.
	Color string
	// ValueLabel is the value text anchored above the bar.
	ValueLabel string
	// CategoryLabel is the label text below the axis.
	CategoryLabel string
}

// headroom is the extra fraction added above the maximum data value so
// the tallest bar or point does not touch the chart's top edge.
const headroom = 1.1

// BuildBar computes a bar chart layout. The value axis spans
// [0, max*1.1]; an all-zero series floors the axis maximum at 1 so bar
// heights stay well defined.
func BuildBar(in Input) BarLayout {
	n := len(in.Values)
	f := NewFrame(in.Width, in.Height, in.Title != "")

	maxVal := maxValue(in.Values) * headroom
	if maxVal <= 0 {
		maxVal = 1
	}

	slot := f.ChartWidth() / float64(n)
	barWidth := slot * 0.7
	gap := slot * 0.15

	bars := make([]Bar, 0, n)
	for i, v := range in.Values {
		height := v / maxVal * f.ChartHeight()
		bars = append(bars, Bar{
			X:             f.Left + float64(i)*slot + gap,
			Y:             f.Top + f.ChartHeight() - height,
			Width:         barWidth,
			Height:        height,
			Color:         in.Theme.SeriesColor(i),
			ValueLabel:    FormatValue(v),
			CategoryLabel: in.Labels[i],
		})
	}

	return BarLayout{
		Frame:     f,
		Title:     in.Title,
		Theme:     themeRef(in.Theme),
		Gridlines: gridlines(f, 0, maxVal),
		Bars:      bars,
	}
}
