package transcripts

import (
	"context"

	"github.com/killallgit/transcript-api/internal/services/youtube"
)

// TranscriptProvider defines the interface for fetching raw caption fragments
// from the external provider
type TranscriptProvider interface {
	FetchTranscript(ctx context.Context, videoID string) ([]youtube.Fragment, error)
}

// TranscriptService defines the business logic interface for transcript
// operations
type TranscriptService interface {
	// GetTranscript returns the ordered, cleaned, space-joined transcript
	// text for a video. An empty fragment list yields an empty string.
	GetTranscript(ctx context.Context, videoID string) (string, error)
}
