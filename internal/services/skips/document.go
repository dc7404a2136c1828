package skips

import (
	"strings"

	"github.com/ameen-roayan/stremio-cleanstream/pkg/mcf"
)

// ToDocument converts resolved intervals into a MovieContentFilter
// document. Merged intervals with mixed categories fan out into one
// filter per contributing category; the interval's description is carried
// as a comment on the first filter when it is not just the category label.
func ToDocument(titleID string, intervals []SkipInterval) *mcf.Document {
	doc := &mcf.Document{
		Version: mcf.Version,
		Meta:    mcf.Metadata{IMDB: titleID},
		Cues:    make([]mcf.Cue, 0, len(intervals)),
	}

	for _, interval := range intervals {
		categories := strings.Split(interval.Category, ",")

		filters := make([]mcf.Filter, 0, len(categories))
		for i, category := range categories {
			filter := mcf.Filter{
				Category:       category,
				ParentCategory: mcf.ResolveParent(category),
				Severity:       interval.Severity,
				Channel:        interval.Channel,
			}
			if i == 0 && interval.Description != Label(categories[0]) {
				filter.Comment = interval.Description
			}
			filters = append(filters, filter)
		}

		doc.Cues = append(doc.Cues, mcf.Cue{
			StartMs: interval.StartMs,
			EndMs:   interval.EndMs,
			Filters: filters,
		})
	}

	return doc
}
