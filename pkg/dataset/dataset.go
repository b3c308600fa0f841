// Package dataset loads labeled chart data series from JSON documents
// and xlsx workbooks.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Series is an ordered labeled data series for a chart.
type Series struct {
	// Labels are category labels, one per value.
	Labels []string `json:"labels"`
	// Values are the data points, in label order.
	Values []float64 `json:"values"`
}

// Parse decodes a {"labels": [...], "values": [...]} JSON document and
// checks its shape so malformed data never reaches the chart engine.
func Parse(data []byte) (Series, error) {
	var s Series
	if err := json.Unmarshal(data, &s); err != nil {
		return Series{}, fmt.Errorf("invalid JSON data: %w", err)
	}
	if s.Labels == nil || s.Values == nil {
		return Series{}, fmt.Errorf("data must have labels and values keys")
	}
	if len(s.Labels) != len(s.Values) {
		return Series{}, fmt.Errorf("labels and values must have the same length: %d labels, %d values",
			len(s.Labels), len(s.Values))
	}
	return s, nil
}

// Load reads a JSON series document from disk.
func Load(path string) (Series, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Series{}, err
	}
	return Parse(data)
}

// FromWorkbook reads a series from an xlsx sheet: labels from the first
// column, numeric values from the second. A first row whose value cell
// is not numeric is treated as a header and skipped. An empty sheet
// name selects the workbook's first sheet.
func FromWorkbook(path, sheet string) (Series, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Series{}, err
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return Series{}, err
	}

	var s Series
	for i, row := range rows {
		if len(row) < 2 || row[0] == "" {
			continue
		}
		v, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return Series{}, fmt.Errorf("sheet %q row %d: non-numeric value %q", sheet, i+1, row[1])
		}
		s.Labels = append(s.Labels, row[0])
		s.Values = append(s.Values, v)
	}

	if len(s.Values) == 0 {
		return Series{}, fmt.Errorf("sheet %q has no data rows", sheet)
	}
	return s, nil
}
