package mcf

import (
	"regexp"
	"strings"

	"github.com/ameen-roayan/stremio-cleanstream/pkg/timestamp"
)

// headerSentinel begins every MovieContentFilter file, optionally followed
// by a version token.
const headerSentinel = "WEBVTT Movie Content Filter"

// Regular expression for a cue timing line (e.g., "00:02:05.900 --> 00:02:08.100")
var cueRegex = regexp.MustCompile(`^(\d{2,}:\d{2}:\d{2}\.\d{3})\s*-->\s*(\d{2,}:\d{2}:\d{2}\.\d{3})`)

// Parse reads a MovieContentFilter document from its text form.
//
// Parsing is deliberately lenient: community files are frequently
// hand-edited, so unrecognized lines, filter lines without an "=", and
// cues that end up with no filters are dropped rather than failing the
// whole document. The only hard failure is a missing header, which
// returns a *FormatError.
func Parse(content string) (*Document, error) {
	lines := strings.Split(content, "\n")

	header := strings.TrimSpace(lines[0])
	if !strings.HasPrefix(header, headerSentinel) {
		return nil, &FormatError{Msg: "missing \"" + headerSentinel + "\" header"}
	}

	doc := &Document{
		Version: Version,
		Cues:    []Cue{},
	}

	// The version token is the field after the sentinel; keep the default
	// when absent.
	if fields := strings.Fields(header); len(fields) > 4 {
		doc.Version = fields[4]
	}

	var current *Cue
	inNote := false

	flush := func() {
		// A cue with zero filters carries no information; drop it.
		if current != nil && len(current.Filters) > 0 {
			doc.Cues = append(doc.Cues, *current)
		}
		current = nil
	}

	for _, raw := range lines[1:] {
		line := strings.TrimSpace(raw)

		if line == "" {
			inNote = false
			flush()
			continue
		}

		if strings.HasPrefix(line, "NOTE") {
			inNote = true
			flush()
			continue
		}

		if inNote {
			parseNoteLine(doc, line)
			continue
		}

		if matches := cueRegex.FindStringSubmatch(line); matches != nil {
			flush()
			current = &Cue{
				StartMs: timestamp.ParseMillis(matches[1]),
				EndMs:   timestamp.ParseMillis(matches[2]),
			}
			continue
		}

		if current != nil {
			if filter, ok := parseFilterLine(line); ok {
				current.Filters = append(current.Filters, filter)
			}
		}
		// Anything else is noise between blocks; skip it.
	}

	// Flush the last cue even when the file lacks a trailing blank line.
	flush()

	return doc, nil
}

// parseNoteLine fills metadata and markers from a "KEY value" line inside
// a NOTE block. Unrecognized keys are ignored.
func parseNoteLine(doc *Document, line string) {
	key, value, found := strings.Cut(line, " ")
	if !found {
		return
	}
	value = strings.TrimSpace(value)

	switch key {
	case "TITLE":
		doc.Meta.Title = value
	case "YEAR":
		doc.Meta.Year = value
	case "TYPE":
		doc.Meta.Type = value
	case "SEASON":
		doc.Meta.Season = value
	case "EPISODE":
		doc.Meta.Episode = value
	case "IMDB":
		doc.Meta.IMDB = value
	case "SOURCE":
		doc.Meta.Source = value
	case "RELEASE":
		doc.Meta.Release = value
	case "START":
		doc.Markers.StartMs = timestamp.ParseMillis(value)
	case "END":
		doc.Markers.EndMs = timestamp.ParseMillis(value)
	}
}

// parseFilterLine parses "category[=severity[=channel]] [# comment]".
// Lines without an "=" are not filter lines and are dropped.
func parseFilterLine(line string) (Filter, bool) {
	var filter Filter

	spec := line
	if head, comment, found := strings.Cut(line, " # "); found {
		spec = head
		filter.Comment = strings.TrimSpace(comment)
	}

	parts := strings.Split(strings.TrimSpace(spec), "=")
	if len(parts) < 2 || parts[0] == "" {
		return Filter{}, false
	}

	filter.Category = parts[0]
	filter.Severity = parts[1]
	filter.Channel = ChannelBoth
	if len(parts) > 2 && parts[2] != "" {
		filter.Channel = parts[2]
	}
	filter.ParentCategory = ResolveParent(filter.Category)

	return filter, true
}
