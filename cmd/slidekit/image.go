package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slidekit/slidekit-go/pkg/imagegen"
	"github.com/slidekit/slidekit-go/pkg/style"
)

// apiKeyEnv is the environment variable holding the image generation
// API key.
const apiKeyEnv = "SLIDEKIT_API_KEY"

func newImageCmd() *cobra.Command {
	var (
		prompt    string
		styleFile string
		concept   string
		imageType string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "image",
		Short: "Generate an image matching the presentation style",
		Long: `Generate an illustration or background image through the Gemini
image generation API. Prompts are composed from the image-style.json
signature so generated assets match the extracted presentation style.
Requires the ` + apiKeyEnv + ` environment variable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey := os.Getenv(apiKeyEnv)
			if apiKey == "" {
				return fmt.Errorf("%s environment variable not set", apiKeyEnv)
			}

			var s *style.ImageStyle
			if styleFile != "" {
				loaded, err := loadImageStyle(styleFile)
				if err != nil {
					return err
				}
				s = loaded
			}

			p, err := imagegen.BuildPrompt(s, concept, prompt, imageType)
			if err != nil {
				return err
			}

			logger.Info("Generating image", "prompt", truncate(p, 100))

			client := imagegen.New(apiKey, imagegen.Options{Logger: logger})
			data, err := client.Generate(cmd.Context(), p)
			if err != nil {
				return err
			}

			if err := writeOutput(output, data); err != nil {
				return fmt.Errorf("failed to write image: %w", err)
			}
			logger.Info("Generated", "output", output)
			logger.Info("Suggested alt text", "alt", imagegen.AltText(concept, imageType, s))
			return nil
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "", "Direct prompt for image generation (ignores style file)")
	cmd.Flags().StringVar(&styleFile, "style-file", "", "Path to image-style.json for consistent styling")
	cmd.Flags().StringVar(&concept, "concept", "", "Concept to illustrate (combined with style signature)")
	cmd.Flags().StringVar(&imageType, "type", imagegen.TypeContent, "Image type: content or background")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path")
	cmd.MarkFlagRequired("output")

	return cmd
}

func loadImageStyle(path string) (*style.ImageStyle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("style file not found: %w", err)
	}
	var s style.ImageStyle
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("invalid JSON in style file %s: %w", path, err)
	}
	return &s, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
