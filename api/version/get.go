package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Build information, set via ldflags at release time.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// Get handles version requests
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "CleanStream",
			"version":     Version,
			"commit":      Commit,
			"buildDate":   BuildDate,
			"description": "Skip resolution service for sensitive content",
			"status":      "running",
		})
	}
}
