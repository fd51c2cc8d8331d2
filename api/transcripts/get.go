package transcripts

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/transcript-api/api/types"
	apperrors "github.com/killallgit/transcript-api/pkg/errors"
)

// Get returns the cleaned transcript for a video
// @Summary      Get video transcript
// @Description  Fetch the transcript for a YouTube video, cleaned and joined into a single string
// @Tags         transcripts
// @Accept       json
// @Produce      json
// @Param        videoID path string true "YouTube video ID"
// @Success      200 {object} types.TranscriptResponse "Cleaned transcript"
// @Failure      400 {object} types.ErrorResponse "Invalid video ID"
// @Failure      404 {object} types.ErrorResponse "No transcript available"
// @Failure      500 {object} types.ErrorResponse "Transcript retrieval failed"
// @Router       /api/v1/transcripts/{videoID} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID := c.Param("videoID")
		log.Printf("[DEBUG] Transcript requested for video: %s", videoID)

		transcript, err := deps.TranscriptService.GetTranscript(c.Request.Context(), videoID)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrCodeTranscriptNotFound) {
				log.Printf("[DEBUG] No transcript for video %s", videoID)
			} else {
				log.Printf("[ERROR] Transcript fetch failed for video %s: %v", videoID, err)
			}
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.TranscriptResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			VideoID:      videoID,
			Transcript:   transcript,
		})
	}
}
