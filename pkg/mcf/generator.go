package mcf

import (
	"strings"

	"github.com/ameen-roayan/stremio-cleanstream/pkg/timestamp"
)

// Generate renders a document back to its text form. Emission order is
// fixed (header, metadata, markers, cues in document order) so output is
// byte-stable for a given document, and Parse(Generate(doc)) preserves
// the document's semantic content.
func Generate(doc *Document) string {
	var b strings.Builder

	version := doc.Version
	if version == "" {
		version = Version
	}
	b.WriteString(headerSentinel)
	b.WriteString(" ")
	b.WriteString(version)
	b.WriteString("\n\n")

	if doc.Meta != (Metadata{}) {
		b.WriteString("NOTE\n")
		writeMetaLine(&b, "TITLE", doc.Meta.Title)
		writeMetaLine(&b, "YEAR", doc.Meta.Year)
		writeMetaLine(&b, "TYPE", doc.Meta.Type)
		writeMetaLine(&b, "SEASON", doc.Meta.Season)
		writeMetaLine(&b, "EPISODE", doc.Meta.Episode)
		writeMetaLine(&b, "IMDB", doc.Meta.IMDB)
		writeMetaLine(&b, "SOURCE", doc.Meta.Source)
		writeMetaLine(&b, "RELEASE", doc.Meta.Release)
		b.WriteString("\n")
	}

	if doc.Markers != (Markers{}) {
		b.WriteString("NOTE\n")
		if doc.Markers.StartMs != 0 {
			writeMetaLine(&b, "START", timestamp.FormatMillis(doc.Markers.StartMs))
		}
		if doc.Markers.EndMs != 0 {
			writeMetaLine(&b, "END", timestamp.FormatMillis(doc.Markers.EndMs))
		}
		b.WriteString("\n")
	}

	for _, cue := range doc.Cues {
		b.WriteString(timestamp.FormatMillis(cue.StartMs))
		b.WriteString(" --> ")
		b.WriteString(timestamp.FormatMillis(cue.EndMs))
		b.WriteString("\n")

		for _, filter := range cue.Filters {
			b.WriteString(filter.Category)
			b.WriteString("=")
			b.WriteString(filter.Severity)
			// "both" is the channel default and stays implicit on disk.
			if filter.Channel != "" && filter.Channel != ChannelBoth {
				b.WriteString("=")
				b.WriteString(filter.Channel)
			}
			if filter.Comment != "" {
				b.WriteString(" # ")
				b.WriteString(filter.Comment)
			}
			b.WriteString("\n")
		}

		b.WriteString("\n")
	}

	return b.String()
}

func writeMetaLine(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	b.WriteString(key)
	b.WriteString(" ")
	b.WriteString(value)
	b.WriteString("\n")
}
