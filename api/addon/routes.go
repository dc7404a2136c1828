package addon

import (
	"github.com/gin-gonic/gin"

	"github.com/ameen-roayan/stremio-cleanstream/api/types"
)

// RegisterRoutes registers the Stremio addon routes at the engine root,
// where players expect them
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies) {
	engine.GET("/manifest.json", Manifest())
	engine.GET("/subtitles/:type/:id", Subtitles(deps))
	engine.GET("/subtitle/:file", Subtitle(deps))
}
