package skips

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ameen-roayan/stremio-cleanstream/api/types"
	"github.com/ameen-roayan/stremio-cleanstream/internal/services/cache"
	skipssvc "github.com/ameen-roayan/stremio-cleanstream/internal/services/skips"
	"github.com/ameen-roayan/stremio-cleanstream/pkg/mcf"
)

// Supported output formats for resolved skip lists.
const (
	FormatJSON = "json"
	FormatVTT  = "vtt"
	FormatMCF  = "mcf"
)

const metadataLookupTimeout = 3 * time.Second

func contentTypeFor(format string) string {
	if format == FormatJSON {
		return "application/json; charset=utf-8"
	}
	return "text/vtt; charset=utf-8"
}

// Get resolves the stored segments of a title against the caller's
// per-category thresholds and renders the result in the requested format.
// Rendered payloads are cached per title, preference set, and format.
// @Summary      Resolve skip intervals for a title
// @Description  Filter a title's segments against per-category thresholds (query params like violence=medium) and merge them into skip intervals.
// @Tags         skips
// @Produce      json
// @Param        titleId path string true "Title ID"
// @Param        format query string false "Output format: json, vtt, or mcf" default(json)
// @Success      200 {object} skips.Envelope "Resolved skip intervals"
// @Failure      400 {object} types.ErrorResponse "Unsupported format"
// @Router       /api/v1/skips/{titleId} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		titleID := c.Param("titleId")
		if titleID == "" {
			types.SendBadRequest(c, "Missing title ID")
			return
		}

		format := c.DefaultQuery("format", FormatJSON)
		if format != FormatJSON && format != FormatVTT && format != FormatMCF {
			types.SendBadRequest(c, "Unsupported format: "+format)
			return
		}

		prefs := preferencesFromQuery(c)

		key := cache.Key("skips", titleID, prefs.Fingerprint(), format)
		if deps.SkipCache != nil {
			if payload, ok := deps.SkipCache.Get(key); ok {
				c.Data(http.StatusOK, contentTypeFor(format), []byte(payload))
				return
			}
		}

		segments, err := deps.SegmentService.GetSegmentsByTitleID(c.Request.Context(), titleID)
		if err != nil {
			types.SendInternalError(c, "Failed to load segments")
			return
		}

		intervals := skipssvc.Resolve(segments, prefs)

		var payload string
		switch format {
		case FormatVTT:
			payload = skipssvc.RenderWebVTT(intervals)
		case FormatMCF:
			payload = mcf.Generate(skipssvc.ToDocument(titleID, intervals))
		default:
			envelope := skipssvc.NewEnvelope(titleID, lookupMetadata(c, deps, titleID), intervals)
			encoded, err := json.Marshal(envelope)
			if err != nil {
				types.SendInternalError(c, "Failed to encode response")
				return
			}
			payload = string(encoded)
		}

		if deps.SkipCache != nil {
			deps.SkipCache.Set(key, payload, 0)
		}

		c.Data(http.StatusOK, contentTypeFor(format), []byte(payload))
	}
}

// preferencesFromQuery reads per-category thresholds from the query
// string. Every parameter except the reserved ones is a category name
// mapped to a threshold.
func preferencesFromQuery(c *gin.Context) skipssvc.Preferences {
	prefs := skipssvc.Preferences{}
	for name, values := range c.Request.URL.Query() {
		if name == "format" || name == "type" || len(values) == 0 {
			continue
		}
		prefs[name] = values[0]
	}
	return prefs
}

// lookupMetadata fetches catalog details for the JSON envelope. Lookups
// are best effort; a miss or timeout returns nil.
func lookupMetadata(c *gin.Context, deps *types.Dependencies, titleID string) map[string]interface{} {
	if deps.MetadataClient == nil {
		return nil
	}

	contentType := c.Query("type")
	if contentType == "" {
		// Series IDs carry season and episode suffixes.
		if strings.Contains(titleID, ":") {
			contentType = "series"
		} else {
			contentType = "movie"
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), metadataLookupTimeout)
	defer cancel()

	meta, err := deps.MetadataClient.GetMeta(ctx, contentType, strings.SplitN(titleID, ":", 2)[0])
	if err != nil {
		return nil
	}

	return map[string]interface{}{
		"name":   meta.Name,
		"type":   meta.Type,
		"year":   meta.Year,
		"poster": meta.Poster,
	}
}
