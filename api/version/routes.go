package version

import "github.com/gin-gonic/gin"

// RegisterRoutes registers version routes
func RegisterRoutes(engine *gin.Engine) {
	engine.GET("/", Get())
	engine.GET("/version", Get())
}
