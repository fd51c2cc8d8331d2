package transcripts

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/transcript-api/api/types"
)

// RegisterRoutes registers transcript routes on the given router group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/:videoID", Get(deps))
}
