package skips

import (
	"strings"
	"testing"

	"github.com/ameen-roayan/stremio-cleanstream/internal/models"
	"github.com/ameen-roayan/stremio-cleanstream/pkg/mcf"
)

func resolvedFixture(t *testing.T) []SkipInterval {
	t.Helper()
	segments := []models.Segment{
		seg(1000, 4000, "violence", "high"),
		seg(60000, 65000, "language", "medium"),
	}
	intervals := Resolve(segments, Preferences{"violence": "low", "language": "low"})
	if len(intervals) != 2 {
		t.Fatalf("fixture expected 2 intervals, got %d", len(intervals))
	}
	return intervals
}

func TestRenderWebVTT(t *testing.T) {
	out := RenderWebVTT(resolvedFixture(t))

	if !strings.HasPrefix(out, "WEBVTT\n\n") {
		t.Errorf("missing WEBVTT header:\n%s", out)
	}

	// First interval starts at 1000ms, so its warning clamps to zero.
	if !strings.Contains(out, "1-warning\n00:00:00.000 --> 00:00:01.000\n") {
		t.Errorf("clamped warning cue missing:\n%s", out)
	}
	if !strings.Contains(out, "1-skip\n00:00:01.000 --> 00:00:04.000\n") {
		t.Errorf("first skip cue missing:\n%s", out)
	}

	// Second interval gets the full three-second lead.
	if !strings.Contains(out, "2-warning\n00:00:57.000 --> 00:01:00.000\n") {
		t.Errorf("second warning cue missing:\n%s", out)
	}
	if !strings.Contains(out, "2-skip\n00:01:00.000 --> 00:01:05.000\n") {
		t.Errorf("second skip cue missing:\n%s", out)
	}

	if !strings.Contains(out, "Upcoming: Violence") || !strings.Contains(out, "Skipping: Violence") {
		t.Errorf("cue labels missing:\n%s", out)
	}
}

func TestRenderWebVTTEmpty(t *testing.T) {
	if got := RenderWebVTT(nil); got != "WEBVTT\n\n" {
		t.Errorf("empty render = %q", got)
	}
}

func TestNewEnvelope(t *testing.T) {
	intervals := resolvedFixture(t)

	env := NewEnvelope("tt0000001", map[string]interface{}{"source": "community"}, intervals)

	if env.Version != EnvelopeVersion {
		t.Errorf("version = %q", env.Version)
	}
	if env.TitleID != "tt0000001" {
		t.Errorf("titleId = %q", env.TitleID)
	}
	if env.TotalSkips != 2 {
		t.Errorf("totalSkips = %d", env.TotalSkips)
	}
	// 3000ms + 5000ms
	if env.TotalSkipTime != 8000 {
		t.Errorf("totalSkipTime = %d, want 8000", env.TotalSkipTime)
	}
	if env.GeneratedAt.IsZero() {
		t.Error("generatedAt not set")
	}
	if env.Metadata["source"] != "community" {
		t.Errorf("metadata not passed through: %v", env.Metadata)
	}
}

func TestToDocument(t *testing.T) {
	intervals := []SkipInterval{
		{
			StartMs:     0,
			EndMs:       2000,
			Category:    "violence,language",
			Severity:    "high",
			Channel:     "both",
			Description: "fight with shouting",
		},
	}

	doc := ToDocument("tt0000001", intervals)

	if doc.Meta.IMDB != "tt0000001" {
		t.Errorf("IMDB = %q", doc.Meta.IMDB)
	}
	if len(doc.Cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(doc.Cues))
	}
	if len(doc.Cues[0].Filters) != 2 {
		t.Fatalf("mixed categories must fan out, got %d filters", len(doc.Cues[0].Filters))
	}
	if doc.Cues[0].Filters[0].Comment != "fight with shouting" {
		t.Errorf("description not carried as comment: %+v", doc.Cues[0].Filters[0])
	}
	if doc.Cues[0].Filters[1].Category != "language" {
		t.Errorf("second filter = %+v", doc.Cues[0].Filters[1])
	}

	// The rendered document must parse back.
	parsed, err := mcf.Parse(mcf.Generate(doc))
	if err != nil {
		t.Fatalf("generated document does not parse: %v", err)
	}
	if len(parsed.Cues) != 1 || len(parsed.Cues[0].Filters) != 2 {
		t.Errorf("round-trip lost cues: %+v", parsed.Cues)
	}
}

func TestToDocumentOmitsLabelComments(t *testing.T) {
	intervals := Resolve([]models.Segment{seg(0, 1000, "violence", "high")},
		Preferences{"violence": "low"})

	doc := ToDocument("tt0000001", intervals)
	if doc.Cues[0].Filters[0].Comment != "" {
		t.Errorf("fixed label must not become a comment: %q", doc.Cues[0].Filters[0].Comment)
	}
}
