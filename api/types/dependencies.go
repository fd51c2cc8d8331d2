package types

import (
	"github.com/killallgit/transcript-api/internal/database"
	"github.com/killallgit/transcript-api/internal/services/transcripts"
	"github.com/killallgit/transcript-api/internal/services/videos"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                *database.DB
	TranscriptService transcripts.TranscriptService
	VideoService      videos.VideoService
}
