package videos

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/transcript-api/api/types"
)

// ProcessRequest is the body for processing a video
type ProcessRequest struct {
	URL string `json:"url" binding:"required"`
}

// Post processes a video URL: fetches metadata and transcript, stores the result
// @Summary      Process a video
// @Description  Resolve a YouTube URL or video ID, fetch its metadata and cleaned transcript, and store the result
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        request body videos.ProcessRequest true "Video URL or bare ID"
// @Success      201 {object} types.SingleVideoResponse "Processed video"
// @Failure      400 {object} types.ErrorResponse "Invalid URL"
// @Failure      404 {object} types.ErrorResponse "Video or transcript not found"
// @Failure      500 {object} types.ErrorResponse "Processing failed"
// @Router       /api/v1/videos [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProcessRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		log.Printf("[DEBUG] Processing video: %s", req.URL)
		video, err := deps.VideoService.ProcessVideo(c.Request.Context(), req.URL)
		if err != nil {
			log.Printf("[ERROR] Failed to process video %s: %v", req.URL, err)
			types.SendError(c, err)
			return
		}

		apiVideo := types.VideoFromModel(video)
		c.JSON(http.StatusCreated, types.SingleVideoResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Video processed"},
			Video:        &apiVideo,
		})
	}
}
