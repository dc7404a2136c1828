package segments

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ameen-roayan/stremio-cleanstream/api/types"
	"github.com/ameen-roayan/stremio-cleanstream/internal/models"
	"github.com/ameen-roayan/stremio-cleanstream/internal/services/cache"
	segmentssvc "github.com/ameen-roayan/stremio-cleanstream/internal/services/segments"
	"github.com/ameen-roayan/stremio-cleanstream/pkg/mcf"
)

// CreateSegmentRequest is the body for contributing a new segment
type CreateSegmentRequest struct {
	StartMs     int64  `json:"start_ms"`
	EndMs       int64  `json:"end_ms"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Severity    string `json:"severity"`
	Channel     string `json:"channel"`
	Comment     string `json:"comment"`
}

// UpdateSegmentRequest is the body for correcting an existing segment
type UpdateSegmentRequest struct {
	StartMs  int64  `json:"start_ms"`
	EndMs    int64  `json:"end_ms"`
	Severity string `json:"severity"`
	Comment  string `json:"comment"`
}

// VoteRequest is the body for voting on a segment
type VoteRequest struct {
	Direction string `json:"direction"` // "up" or "down"
}

// Create stores a contributed segment for a title
// @Summary      Contribute a segment
// @Description  Store a new content flag on a title's timeline. Fine-grained flags are resolved to their parent category.
// @Tags         segments
// @Accept       json
// @Produce      json
// @Param        titleId path string true "Title ID (IMDb-style)"
// @Param        segment body CreateSegmentRequest true "Segment data"
// @Success      201 {object} types.SingleSegmentResponse "Created segment"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Router       /api/v1/titles/{titleId}/segments [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		titleID := c.Param("titleId")

		var req CreateSegmentRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		segment := &models.Segment{
			TitleID:     titleID,
			StartMs:     req.StartMs,
			EndMs:       req.EndMs,
			Category:    req.Category,
			Subcategory: req.Subcategory,
			Severity:    req.Severity,
			Channel:     req.Channel,
			Comment:     req.Comment,
		}

		if err := deps.SegmentService.CreateSegment(c.Request.Context(), segment); err != nil {
			types.SendAppError(c, err)
			return
		}

		invalidateTitle(deps, titleID)
		types.SendCreated(c, types.SingleSegmentResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Segment created"},
			Segment:      segment,
		})
	}
}

// List returns every stored segment of a title ordered by start time
// @Summary      List segments for a title
// @Tags         segments
// @Produce      json
// @Param        titleId path string true "Title ID"
// @Success      200 {object} types.SegmentsResponse "Stored segments"
// @Router       /api/v1/titles/{titleId}/segments [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		titleID := c.Param("titleId")

		segments, err := deps.SegmentService.GetSegmentsByTitleID(c.Request.Context(), titleID)
		if err != nil {
			types.SendInternalError(c, "Failed to retrieve segments")
			return
		}

		types.SendSuccess(c, types.SegmentsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			TitleID:      titleID,
			Segments:     segments,
			Count:        len(segments),
		})
	}
}

// Update corrects the timing, severity, or comment of a segment
// @Summary      Update a segment
// @Tags         segments
// @Accept       json
// @Produce      json
// @Param        id path int true "Segment ID"
// @Param        segment body UpdateSegmentRequest true "Updated fields"
// @Success      200 {object} types.SingleSegmentResponse "Updated segment"
// @Failure      404 {object} types.ErrorResponse "Segment not found"
// @Router       /api/v1/segments/{id} [put]
func Update(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req UpdateSegmentRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		segment, err := deps.SegmentService.UpdateSegment(
			c.Request.Context(), id, req.StartMs, req.EndMs, req.Severity, req.Comment)
		if err != nil {
			if errors.Is(err, segmentssvc.ErrSegmentNotFound) {
				types.SendNotFound(c, "Segment not found")
				return
			}
			types.SendAppError(c, err)
			return
		}

		invalidateTitle(deps, segment.TitleID)
		types.SendSuccess(c, types.SingleSegmentResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Segment updated"},
			Segment:      segment,
		})
	}
}

// Delete removes a segment
// @Summary      Delete a segment
// @Tags         segments
// @Produce      json
// @Param        id path int true "Segment ID"
// @Success      200 {object} object{message=string} "Segment deleted"
// @Failure      404 {object} types.ErrorResponse "Segment not found"
// @Router       /api/v1/segments/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		// Fetch first so the title's cached payloads can be dropped.
		segment, err := deps.SegmentService.GetSegmentByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, segmentssvc.ErrSegmentNotFound) {
				types.SendNotFound(c, "Segment not found")
				return
			}
			types.SendInternalError(c, "Failed to delete segment")
			return
		}

		if err := deps.SegmentService.DeleteSegment(c.Request.Context(), id); err != nil {
			types.SendInternalError(c, "Failed to delete segment")
			return
		}

		invalidateTitle(deps, segment.TitleID)
		c.JSON(http.StatusOK, gin.H{"message": "Segment deleted successfully"})
	}
}

// Vote records an up or down vote on a segment
// @Summary      Vote on a segment
// @Tags         segments
// @Accept       json
// @Produce      json
// @Param        id path int true "Segment ID"
// @Param        vote body VoteRequest true "Vote direction"
// @Success      200 {object} types.SingleSegmentResponse "Segment with updated counters"
// @Failure      404 {object} types.ErrorResponse "Segment not found"
// @Router       /api/v1/segments/{id}/vote [post]
func Vote(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req VoteRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		if req.Direction != "up" && req.Direction != "down" {
			types.SendBadRequest(c, "Direction must be up or down")
			return
		}

		segment, err := deps.SegmentService.Vote(c.Request.Context(), id, req.Direction == "up")
		if err != nil {
			if errors.Is(err, segmentssvc.ErrSegmentNotFound) {
				types.SendNotFound(c, "Segment not found")
				return
			}
			types.SendInternalError(c, "Failed to record vote")
			return
		}

		types.SendSuccess(c, types.SingleSegmentResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Vote recorded"},
			Segment:      segment,
		})
	}
}

// Import ingests a community filter document, storing each cue's filters
// as segments of the title
// @Summary      Import a filter document
// @Description  Parse a Movie Content Filter document and store its cues as segments of the title.
// @Tags         segments
// @Accept       plain
// @Produce      json
// @Param        titleId path string true "Title ID"
// @Success      201 {object} types.ImportResponse "Import summary"
// @Failure      400 {object} types.ErrorResponse "Malformed document"
// @Router       /api/v1/titles/{titleId}/import [post]
func Import(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		titleID := c.Param("titleId")

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			types.SendBadRequest(c, "Failed to read request body")
			return
		}

		doc, err := mcf.Parse(string(body))
		if err != nil {
			var formatErr *mcf.FormatError
			if errors.As(err, &formatErr) {
				types.SendBadRequest(c, formatErr.Error())
				return
			}
			types.SendInternalError(c, "Failed to parse document")
			return
		}

		imported, err := deps.SegmentService.ImportDocument(c.Request.Context(), titleID, doc)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		invalidateTitle(deps, titleID)
		types.SendCreated(c, types.ImportResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Document imported"},
			TitleID:      titleID,
			Imported:     imported,
		})
	}
}

// Export renders every stored segment of a title as a community filter
// document. Catalog metadata enriches the header when available.
// @Summary      Export a filter document
// @Tags         segments
// @Produce      plain
// @Param        titleId path string true "Title ID"
// @Success      200 {string} string "Movie Content Filter document"
// @Router       /api/v1/titles/{titleId}/export [get]
func Export(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		titleID := c.Param("titleId")

		segments, err := deps.SegmentService.GetSegmentsByTitleID(c.Request.Context(), titleID)
		if err != nil {
			types.SendInternalError(c, "Failed to retrieve segments")
			return
		}

		meta := mcf.Metadata{IMDB: titleID}
		fillCatalogMetadata(c, deps, titleID, &meta)

		doc := segmentssvc.SegmentsToDocument(meta, segments)
		c.Data(http.StatusOK, "text/vtt; charset=utf-8", []byte(mcf.Generate(doc)))
	}
}

// invalidateTitle drops every cached payload derived from a title's
// segments. Safe with a nil cache.
func invalidateTitle(deps *types.Dependencies, titleID string) {
	if deps.SkipCache != nil {
		deps.SkipCache.Invalidate(cache.TitlePrefix(titleID))
	}
}

// fillCatalogMetadata enriches an export header from the catalog. Best
// effort; export still works without a metadata client.
func fillCatalogMetadata(c *gin.Context, deps *types.Dependencies, titleID string, meta *mcf.Metadata) {
	if deps.MetadataClient == nil {
		return
	}

	contentType := "movie"
	if strings.Contains(titleID, ":") {
		contentType = "series"
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	catalog, err := deps.MetadataClient.GetMeta(ctx, contentType, strings.SplitN(titleID, ":", 2)[0])
	if err != nil {
		return
	}

	meta.Title = catalog.Name
	meta.Year = catalog.Year
	meta.Type = contentType
}
