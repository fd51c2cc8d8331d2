package transcripts

import (
	"context"
	"errors"
	"strings"

	"github.com/killallgit/transcript-api/internal/services/workers"
	"github.com/killallgit/transcript-api/internal/services/youtube"
	apperrors "github.com/killallgit/transcript-api/pkg/errors"
	"github.com/killallgit/transcript-api/pkg/textclean"
)

// Service implements the TranscriptService interface. It holds no per-request
// state; concurrent calls only share the provider, the cleaner, and the pool.
type Service struct {
	provider TranscriptProvider
	cleaner  *textclean.Cleaner
	pool     *workers.Pool
}

// NewService creates a new transcript service. The pool bounds how many
// provider fetches run at once.
func NewService(provider TranscriptProvider, cleaner *textclean.Cleaner, pool *workers.Pool) *Service {
	if cleaner == nil {
		cleaner = textclean.New(textclean.DefaultOptions())
	}
	if pool == nil {
		pool = workers.NewPool(1)
	}
	return &Service{
		provider: provider,
		cleaner:  cleaner,
		pool:     pool,
	}
}

// GetTranscript fetches, cleans, and joins the transcript for a video.
//
// The provider call runs on a pool worker while this goroutine waits, so a
// slow upstream fetch is bounded by ctx rather than by the provider. Fragments
// are cleaned independently and joined with a single space in provider order;
// fragments that clean down to nothing are dropped. Every call performs a
// fresh fetch.
func (s *Service) GetTranscript(ctx context.Context, videoID string) (string, error) {
	if strings.TrimSpace(videoID) == "" {
		return "", apperrors.MissingFieldError("video_id")
	}

	var fragments []youtube.Fragment
	err := s.pool.Do(ctx, func(ctx context.Context) error {
		fetched, fetchErr := s.provider.FetchTranscript(ctx, videoID)
		if fetchErr != nil {
			return fetchErr
		}
		fragments = fetched
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, youtube.ErrNoTranscript):
			return "", apperrors.TranscriptNotFound(videoID, err)
		case errors.Is(err, youtube.ErrRetrievalFailed):
			return "", apperrors.TranscriptRetrieval(videoID, err)
		default:
			return "", apperrors.Internal(err)
		}
	}

	parts := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		cleaned := s.cleaner.Clean(fragment.Text)
		if cleaned == "" {
			continue
		}
		parts = append(parts, cleaned)
	}

	return strings.Join(parts, " "), nil
}
