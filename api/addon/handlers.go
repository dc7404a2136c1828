// Package addon exposes the Stremio-facing surface: the manifest, the
// subtitles resource pointing players at a skip track, and the track
// itself rendered from server-side default thresholds.
package addon

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ameen-roayan/stremio-cleanstream/api/types"
	skipssvc "github.com/ameen-roayan/stremio-cleanstream/internal/services/skips"
	"github.com/ameen-roayan/stremio-cleanstream/pkg/config"
)

// Manifest serves the addon manifest
func Manifest() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":          config.GetString("addon.id"),
			"version":     "1.0.0",
			"name":        config.GetString("addon.name"),
			"description": config.GetString("addon.description"),
			"resources":   []string{"subtitles"},
			"types":       []string{"movie", "series"},
			"idPrefixes":  []string{"tt"},
			"catalogs":    []gin.H{},
		})
	}
}

// Subtitles answers the subtitles resource request with a single entry
// pointing at the title's skip track
func Subtitles(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		// The player requests /subtitles/<type>/<id>.json.
		titleID := strings.TrimSuffix(c.Param("id"), ".json")
		if titleID == "" {
			types.SendBadRequest(c, "Missing title ID")
			return
		}

		baseURL := strings.TrimRight(config.GetString("addon.base_url"), "/")

		c.JSON(http.StatusOK, gin.H{
			"subtitles": []gin.H{
				{
					"id":   "cleanstream-" + titleID,
					"url":  baseURL + "/subtitle/" + titleID + ".vtt",
					"lang": "skips",
				},
			},
		})
	}
}

// Subtitle renders the skip track for a title as WebVTT. Players that
// cannot send per-category preferences get the configured default
// threshold across all categories.
func Subtitle(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		titleID := strings.TrimSuffix(c.Param("file"), ".vtt")
		if titleID == "" {
			types.SendBadRequest(c, "Missing title ID")
			return
		}

		if deps == nil || deps.SegmentService == nil {
			types.SendInternalError(c, "Service unavailable")
			return
		}

		prefs := skipssvc.AllCategories(config.GetString("addon.default_threshold"))

		segments, err := deps.SegmentService.GetSegmentsByTitleID(c.Request.Context(), titleID)
		if err != nil {
			types.SendInternalError(c, "Failed to load segments")
			return
		}

		intervals := skipssvc.Resolve(segments, prefs)
		c.Data(http.StatusOK, "text/vtt; charset=utf-8", []byte(skipssvc.RenderWebVTT(intervals)))
	}
}
