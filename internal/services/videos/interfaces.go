package videos

import (
	"context"

	"github.com/killallgit/transcript-api/internal/models"
	"github.com/killallgit/transcript-api/internal/services/youtube"
)

// VideoRepository defines the interface for video persistence operations
type VideoRepository interface {
	Upsert(ctx context.Context, video *models.Video) error
	GetByVideoID(ctx context.Context, videoID string) (*models.Video, error)
	ListRecent(ctx context.Context, limit int) ([]models.Video, error)
}

// MetadataProvider fetches video metadata from the external provider
type MetadataProvider interface {
	GetVideoMetadata(ctx context.Context, videoID string) (*youtube.VideoMetadata, error)
}

// TranscriptFetcher is the subset of the transcript service this package needs
type TranscriptFetcher interface {
	GetTranscript(ctx context.Context, videoID string) (string, error)
}

// VideoService defines the business logic interface for video operations
type VideoService interface {
	// ProcessVideo resolves a URL or bare ID to a video, fetches its
	// metadata and transcript, and stores the result.
	ProcessVideo(ctx context.Context, rawURL string) (*models.Video, error)

	// GetVideo returns a previously processed video by its YouTube ID.
	GetVideo(ctx context.Context, videoID string) (*models.Video, error)

	// ListRecent returns the most recently processed videos, newest first.
	ListRecent(ctx context.Context, limit int) ([]models.Video, error)
}
