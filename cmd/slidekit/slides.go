package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slidekit/slidekit-go/pkg/deck"
	"github.com/slidekit/slidekit-go/pkg/htmlgen"
)

func newSlidesCmd() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "slides [content.json]",
		Short: "Generate HTML slide files from extracted content",
		Long: `Generate one HTML section fragment per slide from the JSON produced
by the extract command. Files are written to a slides/ directory under
the output root, named NN-slug.html.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var d deck.Deck
			if err := json.Unmarshal(raw, &d); err != nil {
				return fmt.Errorf("invalid content JSON: %w", err)
			}

			names, err := htmlgen.Generate(&d, outputDir)
			if err != nil {
				return err
			}

			for _, name := range names {
				logger.Info("Created slide", "file", name)
			}
			logger.Info("Generated slide files", "count", len(names), "dir", outputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "d", ".", "Output root directory")

	return cmd
}
