package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/slidekit/slidekit-go/pkg/fetch"
)

func newFetchCmd() *cobra.Command {
	var (
		url     string
		output  string
		maxSize int
		timeout int
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download an image from a URL",
		Long: `Download an image for use as a presentation asset, with retry on
rate limiting and an optional maximum dimension for downscaling.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Info("Downloading", "url", url)

			client := fetch.New(fetch.Options{
				Timeout: time.Duration(timeout) * time.Second,
				Logger:  logger,
			})
			if err := client.DownloadFile(cmd.Context(), url, output, maxSize); err != nil {
				return fmt.Errorf("download failed: %w", err)
			}

			logger.Info("Downloaded", "output", output)
			logger.Info("Suggested alt text", "alt", fetch.SuggestAltText(url))
			return nil
		},
	}

	cmd.Flags().StringVarP(&url, "url", "u", "", "URL of the image to download")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path")
	cmd.Flags().IntVar(&maxSize, "max-size", 0, "Maximum dimension in pixels, resize if larger")
	cmd.Flags().IntVar(&timeout, "timeout", 30, "Request timeout in seconds")
	cmd.MarkFlagRequired("url")
	cmd.MarkFlagRequired("output")

	return cmd
}
