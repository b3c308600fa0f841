package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/slidekit/slidekit-go/pkg/style"
)

func newStyleCmd() *cobra.Command {
	var (
		output   string
		cssOut   string
		imageOut string
		pretty   bool
	)

	cmd := &cobra.Command{
		Use:   "style [input.pptx]",
		Short: "Extract the visual style of a pptx file",
		Long: `Analyze a PowerPoint file's colors and fonts and emit a style
definition as JSON, optionally with CSS custom properties and the
image-style.json signature used for chart theming and image generation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := style.Analyze(args[0])
			if err != nil {
				return err
			}

			data, err := marshalJSON(s, pretty)
			if err != nil {
				return err
			}
			if err := writeOutput(output, data); err != nil {
				return fmt.Errorf("failed to write style definition: %w", err)
			}

			if cssOut != "" {
				if err := writeOutput(cssOut, []byte(s.CSSVariables())); err != nil {
					return fmt.Errorf("failed to write CSS: %w", err)
				}
				logger.Info("Wrote CSS variables", "output", cssOut)
			}

			if imageOut != "" {
				imageData, err := marshalJSON(s.ImageStyle(), true)
				if err != nil {
					return err
				}
				if err := writeOutput(imageOut, imageData); err != nil {
					return fmt.Errorf("failed to write image style: %w", err)
				}
				logger.Info("Wrote image style", "output", imageOut)
			}

			logger.Info("Analyzed style",
				"source", filepath.Base(args[0]),
				"theme", s.Metadata.ThemeType,
				"accent", s.Colors.Accent,
				"fonts_url", s.Typography.GoogleFontsURL)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output JSON file path (default: stdout)")
	cmd.Flags().StringVar(&cssOut, "css", "", "Also write CSS custom properties to this path")
	cmd.Flags().StringVar(&imageOut, "image-style", "", "Also write image-style.json to this path")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}
