package dataset

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParse(t *testing.T) {
	s, err := Parse([]byte(`{"labels": ["Q1", "Q2"], "values": [100, 150.5]}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(s.Labels) != 2 || s.Labels[0] != "Q1" {
		t.Errorf("labels = %v", s.Labels)
	}
	if s.Values[1] != 150.5 {
		t.Errorf("values = %v", s.Values)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid JSON", `{"labels": [`},
		{"missing values", `{"labels": ["A"]}`},
		{"missing labels", `{"values": [1]}`},
		{"length mismatch", `{"labels": ["A", "B"], "values": [1]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestFromWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Quarter")
	f.SetCellValue(sheetName, "B1", "Revenue")
	f.SetCellValue(sheetName, "A2", "Q1")
	f.SetCellValue(sheetName, "B2", 100)
	f.SetCellValue(sheetName, "A3", "Q2")
	f.SetCellValue(sheetName, "B3", 150.5)

	tmpFile := filepath.Join(t.TempDir(), "data.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	s, err := FromWorkbook(tmpFile, "")
	if err != nil {
		t.Fatalf("FromWorkbook failed: %v", err)
	}

	if len(s.Labels) != 2 {
		t.Fatalf("len(Labels) = %d, expected 2 (header skipped)", len(s.Labels))
	}
	if s.Labels[0] != "Q1" || s.Labels[1] != "Q2" {
		t.Errorf("labels = %v", s.Labels)
	}
	if s.Values[0] != 100 || s.Values[1] != 150.5 {
		t.Errorf("values = %v", s.Values)
	}
}

func TestFromWorkbookNonNumericValue(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "Q1")
	f.SetCellValue("Sheet1", "B1", 10)
	f.SetCellValue("Sheet1", "A2", "Q2")
	f.SetCellValue("Sheet1", "B2", "oops")

	tmpFile := filepath.Join(t.TempDir(), "bad.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	if _, err := FromWorkbook(tmpFile, ""); err == nil {
		t.Error("expected an error for a non-numeric value cell")
	}
}
