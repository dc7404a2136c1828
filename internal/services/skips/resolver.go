// Package skips resolves raw content segments against viewer preferences
// into merged skip intervals and renders them as WebVTT, JSON, or
// MovieContentFilter documents.
package skips

import (
	"sort"
	"strings"

	"github.com/ameen-roayan/stremio-cleanstream/internal/models"
	"github.com/ameen-roayan/stremio-cleanstream/pkg/timestamp"
)

// MergeGapMs is the maximum distance between two qualifying segments for
// them to be folded into one skip. Separate skips under half a second
// apart read as flicker during playback.
const MergeGapMs = 500

// SkipInterval is one resolved, merged output interval. Within a resolved
// list, intervals are sorted ascending by StartMs and pairwise
// non-overlapping.
type SkipInterval struct {
	StartMs     int64  `json:"startMs"`
	EndMs       int64  `json:"endMs"`
	Category    string `json:"category"` // comma-joined when a merge mixed categories
	Severity    string `json:"severity"`
	Channel     string `json:"channel"`
	Description string `json:"description"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// Resolve filters raw segments against the viewer's thresholds and merges
// the survivors into a minimal ordered interval set.
//
// A segment survives when its category is active in prefs and its severity
// rank meets the category threshold; a segment without a severity counts
// as high, the most restrictive reading. Resolve is pure and total: empty
// input, a nil preference map, or nothing surviving all yield an empty
// slice.
func Resolve(segments []models.Segment, prefs Preferences) []SkipInterval {
	kept := make([]models.Segment, 0, len(segments))
	for _, seg := range segments {
		threshold := prefs.Threshold(seg.Category)
		if threshold == 0 {
			continue
		}

		rank := models.SeverityRank(seg.Severity)
		if rank == 0 {
			rank = models.SeverityRank(models.SeverityHigh)
		}
		if rank >= threshold {
			kept = append(kept, seg)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].StartMs < kept[j].StartMs
	})

	resolved := make([]SkipInterval, 0, len(kept))
	for _, seg := range kept {
		if n := len(resolved); n > 0 && seg.StartMs <= resolved[n-1].EndMs+MergeGapMs {
			merge(&resolved[n-1], seg)
			continue
		}

		resolved = append(resolved, SkipInterval{
			StartMs:     seg.StartMs,
			EndMs:       seg.EndMs,
			Category:    seg.Category,
			Severity:    seg.Severity,
			Channel:     seg.Channel,
			Description: describe(seg),
		})
	}

	for i := range resolved {
		resolved[i].StartTime = timestamp.FormatMillis(resolved[i].StartMs)
		resolved[i].EndTime = timestamp.FormatMillis(resolved[i].EndMs)
	}

	return resolved
}

// merge folds seg into the interval, extending its end and appending the
// segment's category when it differs from the last one recorded.
func merge(interval *SkipInterval, seg models.Segment) {
	if seg.EndMs > interval.EndMs {
		interval.EndMs = seg.EndMs
	}
	if seg.Category != lastCategory(interval.Category) {
		interval.Category += "," + seg.Category
	}
}

func lastCategory(joined string) string {
	if i := strings.LastIndex(joined, ","); i >= 0 {
		return joined[i+1:]
	}
	return joined
}

// describe prefers the contributor's comment over the fixed category label.
func describe(seg models.Segment) string {
	if seg.Comment != "" {
		return seg.Comment
	}
	return Label(seg.Category)
}

// TotalDuration sums the lengths of all intervals in milliseconds.
func TotalDuration(intervals []SkipInterval) int64 {
	var total int64
	for _, interval := range intervals {
		total += interval.EndMs - interval.StartMs
	}
	return total
}
