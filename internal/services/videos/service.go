package videos

import (
	"context"
	"errors"
	"log"

	"github.com/killallgit/transcript-api/internal/models"
	"github.com/killallgit/transcript-api/internal/services/youtube"
	apperrors "github.com/killallgit/transcript-api/pkg/errors"
)

// Service implements the VideoService interface
type Service struct {
	repo        VideoRepository
	metadata    MetadataProvider
	transcripts TranscriptFetcher
	language    string
}

// NewService creates a new video service. language is recorded on stored
// videos as the transcript language that was requested.
func NewService(repo VideoRepository, metadata MetadataProvider, transcripts TranscriptFetcher, language string) *Service {
	if language == "" {
		language = "en"
	}
	return &Service{
		repo:        repo,
		metadata:    metadata,
		transcripts: transcripts,
		language:    language,
	}
}

// ProcessVideo extracts the video ID from rawURL, fetches metadata and the
// cleaned transcript, and upserts the record. A repeat request for the same
// video refreshes the stored row.
func (s *Service) ProcessVideo(ctx context.Context, rawURL string) (*models.Video, error) {
	videoID, err := ExtractVideoID(rawURL)
	if err != nil {
		return nil, err
	}

	meta, err := s.metadata.GetVideoMetadata(ctx, videoID)
	if err != nil {
		var unavailable youtube.VideoUnavailableError
		if errors.As(err, &unavailable) {
			return nil, apperrors.Newf(apperrors.ErrCodeNotFound, "video %q not found", videoID).
				WithCause(err).
				WithDetail("video_id", videoID)
		}
		return nil, apperrors.Internal(err)
	}

	transcript, err := s.transcripts.GetTranscript(ctx, videoID)
	if err != nil {
		return nil, err
	}

	video := &models.Video{
		VideoID:    videoID,
		URL:        rawURL,
		Title:      meta.Title,
		Author:     meta.Author,
		Language:   s.language,
		Transcript: transcript,
	}

	if err := s.repo.Upsert(ctx, video); err != nil {
		log.Printf("[ERROR] Failed to store video %s: %v", videoID, err)
		return nil, apperrors.DatabaseError("upsert video", err)
	}

	log.Printf("[DEBUG] Stored video %s (%d transcript chars)", videoID, len(transcript))
	return video, nil
}

// GetVideo returns a previously processed video by its YouTube ID
func (s *Service) GetVideo(ctx context.Context, videoID string) (*models.Video, error) {
	video, err := s.repo.GetByVideoID(ctx, videoID)
	if err != nil {
		if IsNotFound(err) {
			return nil, apperrors.Newf(apperrors.ErrCodeNotFound, "video %q not found", videoID).
				WithDetail("video_id", videoID)
		}
		return nil, apperrors.DatabaseError("get video", err)
	}
	return video, nil
}

// ListRecent returns the most recently processed videos. The limit is
// clamped to [1, 100]; zero or negative means the default of 20.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]models.Video, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	videos, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, apperrors.DatabaseError("list videos", err)
	}
	return videos, nil
}
