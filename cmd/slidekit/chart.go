package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slidekit/slidekit-go/pkg/chart"
	"github.com/slidekit/slidekit-go/pkg/chart/theme"
	"github.com/slidekit/slidekit-go/pkg/dataset"
)

func newChartCmd() *cobra.Command {
	var (
		chartType string
		data      string
		dataFile  string
		xlsxFile  string
		sheet     string
		styleFile string
		title     string
		width     int
		height    int
		output    string
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Generate an SVG chart from labeled data",
		Long: `Generate a bar, pie, or line chart as a standalone SVG document.
Data comes from an inline JSON object, a JSON file, or an xlsx sheet
with labels in the first column and values in the second.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			series, err := loadSeries(data, dataFile, xlsxFile, sheet)
			if err != nil {
				return err
			}

			req := chart.Request{
				Kind:   chart.Kind(chartType),
				Labels: series.Labels,
				Values: series.Values,
				Title:  title,
				Width:  width,
				Height: height,
			}

			rendered, err := chart.Render(req, loadTheme(styleFile))
			if err != nil {
				return err
			}

			if err := writeOutput(output, []byte(rendered.SVG)); err != nil {
				return fmt.Errorf("failed to write chart: %w", err)
			}
			if output != "" {
				logger.Info("Generated chart", "type", chartType, "output", output)
			}
			logger.Info("Suggested alt text", "alt", rendered.AltText)
			return nil
		},
	}

	cmd.Flags().StringVar(&chartType, "type", "", "Chart type: bar, pie, line")
	cmd.Flags().StringVar(&data, "data", "", `JSON data: {"labels": [...], "values": [...]}`)
	cmd.Flags().StringVar(&dataFile, "data-file", "", "Path to a JSON data file")
	cmd.Flags().StringVar(&xlsxFile, "xlsx", "", "Path to an xlsx workbook to read data from")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet name for --xlsx (default: first sheet)")
	cmd.Flags().StringVar(&styleFile, "style-file", "", "Path to image-style.json for theming")
	cmd.Flags().StringVar(&title, "title", "", "Chart title (optional)")
	cmd.Flags().IntVar(&width, "width", chart.DefaultWidth, "Chart width in pixels")
	cmd.Flags().IntVar(&height, "height", chart.DefaultHeight, "Chart height in pixels")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output SVG file path (default: stdout)")
	cmd.MarkFlagRequired("type")

	return cmd
}

func loadSeries(data, dataFile, xlsxFile, sheet string) (dataset.Series, error) {
	switch {
	case data != "":
		return dataset.Parse([]byte(data))
	case dataFile != "":
		return dataset.Load(dataFile)
	case xlsxFile != "":
		return dataset.FromWorkbook(xlsxFile, sheet)
	}
	return dataset.Series{}, fmt.Errorf("one of --data, --data-file, or --xlsx is required")
}

// loadTheme resolves the chart theme from an image-style.json file.
// A missing or malformed file logs a warning and falls back to the
// built-in palette.
func loadTheme(styleFile string) theme.Theme {
	if styleFile == "" {
		return theme.Default()
	}

	raw, err := os.ReadFile(styleFile)
	if err != nil {
		logger.Warn("Could not load style file, using defaults", "err", err)
		return theme.Default()
	}

	var doc struct {
		ColorPalette theme.Palette `json:"color_palette"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.Warn("Could not parse style file, using defaults", "err", err)
		return theme.Default()
	}
	return theme.Resolve(doc.ColorPalette)
}
