// Package main provides the slidekit CLI: chart generation, pptx
// content and style extraction, HTML slide generation, and image
// fetching and generation.
package main

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

func main() {
	rootCmd := &cobra.Command{
		Use:   "slidekit",
		Short: "Build HTML presentations from PowerPoint sources",
		Long: `slidekit turns PowerPoint presentations into themed HTML slide decks:
it extracts content and visual style from pptx files, renders SVG charts,
generates HTML slide fragments, and fetches or generates matching images.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newChartCmd(),
		newExtractCmd(),
		newStyleCmd(),
		newSlidesCmd(),
		newFetchCmd(),
		newImageCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// writeOutput writes data to path, creating parent directories, or to
// stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
