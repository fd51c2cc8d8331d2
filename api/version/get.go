package version

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/transcript-api/pkg/version"
)

// Get handles version requests
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Transcript API",
			"version":     version.Version,
			"commit":      version.Commit,
			"description": "API for fetching and cleaning YouTube video transcripts",
			"status":      "running",
		})
	}
}
