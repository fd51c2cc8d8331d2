package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/killallgit/transcript-api/internal/services/transcripts"
	"github.com/killallgit/transcript-api/internal/services/videos"
	"github.com/killallgit/transcript-api/internal/services/workers"
	"github.com/killallgit/transcript-api/internal/services/youtube"
	"github.com/killallgit/transcript-api/pkg/config"
	"github.com/killallgit/transcript-api/pkg/textclean"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch <url-or-video-id>",
	Short: "Fetch a transcript and print it to stdout",
	Long: `Fetch the cleaned transcript for a single video without starting the server.

Accepts a full YouTube URL or a bare 11-character video ID.

Example:
  transcript-api fetch dQw4w9WgXcQ
  transcript-api fetch "https://www.youtube.com/watch?v=dQw4w9WgXcQ"`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	videoID, err := videos.ExtractVideoID(args[0])
	if err != nil {
		return err
	}

	client := youtube.NewClient(youtube.Config{
		BaseURL:   cfg.YouTube.BaseURL,
		OEmbedURL: cfg.YouTube.OEmbedURL,
		UserAgent: cfg.YouTube.UserAgent,
		Timeout:   cfg.YouTube.Timeout,
		Languages: cfg.YouTube.Languages,
	})

	cleaner := textclean.New(textclean.Options{
		StripEmoji:         cfg.Cleaning.StripEmoji,
		NormalizeUnicode:   cfg.Cleaning.NormalizeUnicode,
		CollapseWhitespace: cfg.Cleaning.CollapseWhitespace,
	})

	service := transcripts.NewService(client, cleaner, workers.NewPool(1))

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Processing.FetchTimeout)
	defer cancel()

	transcript, err := service.GetTranscript(ctx, videoID)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), transcript)
	return nil
}
