// Package mcf reads and writes MovieContentFilter documents, the
// community interchange format for content-filter annotations. A document
// is a WebVTT-style text file: a header line identifying the format, NOTE
// blocks carrying metadata and playback markers, then timed cues whose
// payload lines describe content filters instead of subtitle text.
package mcf

// Version is the format version this package emits by default.
const Version = "1.1.0"

// Severity values recognized on filter lines.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Channel values recognized on filter lines.
const (
	ChannelBoth  = "both"
	ChannelVideo = "video"
	ChannelAudio = "audio"
)

// Metadata holds the optional scalar fields of a document's NOTE block.
type Metadata struct {
	Title   string
	Year    string
	Type    string
	Season  string
	Episode string
	IMDB    string
	Source  string
	Release string
}

// Markers holds the optional global start/end bounds of the annotated
// media. A zero value means the marker is unset; a genuine 00:00:00.000
// marker is indistinguishable, which matches the timestamp codec's legacy
// zero-on-failure behavior.
type Markers struct {
	StartMs int64
	EndMs   int64
}

// Filter is one content flag attached to a cue.
type Filter struct {
	Category       string
	ParentCategory string
	Severity       string
	Channel        string
	Comment        string
}

// Cue is a timed interval with one or more filters.
type Cue struct {
	StartMs int64
	EndMs   int64
	Filters []Filter
}

// Document is the structured form of a MovieContentFilter file.
type Document struct {
	Version string
	Meta    Metadata
	Markers Markers
	Cues    []Cue
}
