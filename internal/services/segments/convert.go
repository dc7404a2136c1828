package segments

import (
	"github.com/ameen-roayan/stremio-cleanstream/internal/models"
	"github.com/ameen-roayan/stremio-cleanstream/pkg/mcf"
)

// DocumentToSegments flattens a parsed interchange document into raw
// segments for titleID: one filter entry becomes one segment. The parent
// category is resolved through the taxonomy when the cue's filter carries
// a fine-grained flag. Cues with non-positive duration are dropped.
func DocumentToSegments(titleID string, doc *mcf.Document) []models.Segment {
	segments := make([]models.Segment, 0, len(doc.Cues))

	for _, cue := range doc.Cues {
		if cue.EndMs <= cue.StartMs {
			continue
		}

		for _, filter := range cue.Filters {
			parent := filter.ParentCategory
			if parent == "" {
				parent = mcf.ResolveParent(filter.Category)
			}

			subcategory := ""
			if filter.Category != parent {
				subcategory = filter.Category
			}

			channel := filter.Channel
			if channel == "" {
				channel = models.ChannelBoth
			}

			segments = append(segments, models.Segment{
				TitleID:     titleID,
				StartMs:     cue.StartMs,
				EndMs:       cue.EndMs,
				Category:    parent,
				Subcategory: subcategory,
				Severity:    filter.Severity,
				Channel:     channel,
				Comment:     filter.Comment,
			})
		}
	}

	return segments
}

// SegmentsToDocument converts stored segments into an interchange document
// for export. The fine-grained flag is emitted when known, otherwise the
// parent category itself.
func SegmentsToDocument(meta mcf.Metadata, segs []models.Segment) *mcf.Document {
	doc := &mcf.Document{
		Version: mcf.Version,
		Meta:    meta,
		Cues:    make([]mcf.Cue, 0, len(segs)),
	}

	for _, seg := range segs {
		category := seg.Subcategory
		if category == "" {
			category = seg.Category
		}

		doc.Cues = append(doc.Cues, mcf.Cue{
			StartMs: seg.StartMs,
			EndMs:   seg.EndMs,
			Filters: []mcf.Filter{{
				Category:       category,
				ParentCategory: seg.Category,
				Severity:       seg.Severity,
				Channel:        seg.Channel,
				Comment:        seg.Comment,
			}},
		})
	}

	return doc
}
