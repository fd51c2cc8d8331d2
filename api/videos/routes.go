package videos

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/transcript-api/api/types"
)

// RegisterRoutes registers video routes on the given router group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", Post(deps))
	router.GET("", GetRecent(deps))
	router.GET("/:videoID", GetByID(deps))
}
