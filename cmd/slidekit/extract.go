package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/slidekit/slidekit-go/pkg/deck"
)

func newExtractCmd() *cobra.Command {
	var (
		output    string
		imagesDir string
		pretty    bool
	)

	cmd := &cobra.Command{
		Use:   "extract [input.pptx]",
		Short: "Extract structured content from a pptx file",
		Long: `Extract slide titles, text with indent levels, tables, speaker notes,
layout names, and embedded images from a PowerPoint file, as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deck.Extract(args[0])
			if err != nil {
				return err
			}

			if imagesDir != "" {
				if err := saveImages(d, imagesDir); err != nil {
					return fmt.Errorf("failed to save images: %w", err)
				}
			}

			data, err := marshalJSON(d, pretty)
			if err != nil {
				return err
			}
			if err := writeOutput(output, data); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			logger.Info("Extracted presentation", "slides", d.SlideCount, "source", d.SourceFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output JSON file path (default: stdout)")
	cmd.Flags().StringVar(&imagesDir, "images-dir", "", "Directory to save embedded images into")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}

func saveImages(d *deck.Deck, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, slide := range d.Slides {
		for _, img := range slide.Images {
			path := filepath.Join(dir, img.Name)
			if err := os.WriteFile(path, img.Data, 0644); err != nil {
				return err
			}
			logger.Info("Saved image", "path", path)
		}
	}
	return nil
}

func marshalJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
