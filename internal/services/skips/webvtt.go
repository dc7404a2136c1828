package skips

import (
	"fmt"
	"strings"

	"github.com/ameen-roayan/stremio-cleanstream/pkg/timestamp"
)

// WarningLeadMs is how far ahead of a skip its warning cue begins.
const WarningLeadMs = 3000

// RenderWebVTT emits resolved intervals as a WebVTT track with two cues
// per interval: a warning cue covering the three seconds before the skip
// (clamped to the start of the video) and the skip cue itself. Cue
// identifiers are 1-based and stable for a given resolved list.
func RenderWebVTT(intervals []SkipInterval) string {
	var b strings.Builder
	b.WriteString("WEBVTT\n\n")

	for i, interval := range intervals {
		warnStart := interval.StartMs - WarningLeadMs
		if warnStart < 0 {
			warnStart = 0
		}

		fmt.Fprintf(&b, "%d-warning\n%s --> %s\nUpcoming: %s\n\n",
			i+1,
			timestamp.FormatMillis(warnStart),
			timestamp.FormatMillis(interval.StartMs),
			interval.Description)

		fmt.Fprintf(&b, "%d-skip\n%s --> %s\nSkipping: %s\n\n",
			i+1,
			interval.StartTime,
			interval.EndTime,
			interval.Description)
	}

	return b.String()
}
