package videos

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/transcript-api/api/types"
)

// GetByID returns a previously processed video
// @Summary      Get a processed video
// @Description  Get a stored video and its transcript by YouTube video ID
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        videoID path string true "YouTube video ID"
// @Success      200 {object} types.SingleVideoResponse "Stored video"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Router       /api/v1/videos/{videoID} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID := c.Param("videoID")

		video, err := deps.VideoService.GetVideo(c.Request.Context(), videoID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		apiVideo := types.VideoFromModel(video)
		c.JSON(http.StatusOK, types.SingleVideoResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Video:        &apiVideo,
		})
	}
}

// GetRecent returns the most recently processed videos
// @Summary      List recent videos
// @Description  Get the most recently processed videos, newest first
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        limit query int false "Maximum number of videos to return (1-100)" minimum(1) maximum(100) default(20)
// @Success      200 {object} types.VideosResponse "Recent videos"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/videos [get]
func GetRecent(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

		videos, err := deps.VideoService.ListRecent(c.Request.Context(), limit)
		if err != nil {
			log.Printf("[ERROR] Failed to list recent videos (limit %d): %v", limit, err)
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.VideosResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Videos:       types.VideosFromModels(videos),
			Count:        len(videos),
		})
	}
}
