package segments

import (
	"github.com/gin-gonic/gin"

	"github.com/ameen-roayan/stremio-cleanstream/api/types"
)

// RegisterTitleRoutes registers segment routes nested under a title
func RegisterTitleRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/:titleId/segments", Create(deps))
	router.GET("/:titleId/segments", List(deps))
	router.POST("/:titleId/import", Import(deps))
	router.GET("/:titleId/export", Export(deps))
}

// RegisterRoutes registers direct segment routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.PUT("/:id", Update(deps))
	router.DELETE("/:id", Delete(deps))
	router.POST("/:id/vote", Vote(deps))
}
