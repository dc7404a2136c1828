package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleFilterDoc = `WEBVTT Movie Content Filter 1.1.0

NOTE
TITLE The Matrix
IMDB tt0133093

00:01:40.000 --> 00:02:40.000
punching=high # lobby shootout

00:05:00.000 --> 00:05:05.000
swearing=low=audio
`

func writeSampleDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matrix.mcf")
	if err := os.WriteFile(path, []byte(sampleFilterDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runConvertCommand(t *testing.T, args ...string) string {
	t.Helper()

	// Flag variables persist between runs of the shared root command.
	convertFormat = "vtt"
	convertOutput = ""
	convertPrefs = ""
	convertThreshold = "high"

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{"convert"}, args...))

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	return buf.String()
}

func TestConvertCommandVTT(t *testing.T) {
	path := writeSampleDoc(t)

	out := runConvertCommand(t, path, "--format", "vtt")

	if !strings.HasPrefix(out, "WEBVTT\n\n") {
		t.Errorf("output is not a WebVTT track:\n%s", out)
	}
	if !strings.Contains(out, "1-skip") {
		t.Errorf("missing skip cue:\n%s", out)
	}
	// Only the high severity cue passes the default high threshold.
	if strings.Contains(out, "2-skip") {
		t.Errorf("low severity cue should be filtered:\n%s", out)
	}
}

func TestConvertCommandJSONWithPrefs(t *testing.T) {
	path := writeSampleDoc(t)

	out := runConvertCommand(t, path, "--format", "json", "--prefs", "language=low")

	if !strings.Contains(out, `"titleId": "tt0133093"`) {
		t.Errorf("title not taken from document metadata:\n%s", out)
	}
	if !strings.Contains(out, `"totalSkips": 2`) {
		t.Errorf("expected both cues to pass:\n%s", out)
	}
}

func TestConvertCommandMCF(t *testing.T) {
	path := writeSampleDoc(t)

	out := runConvertCommand(t, path, "--format", "mcf")

	if !strings.HasPrefix(out, "WEBVTT Movie Content Filter") {
		t.Errorf("output is not a filter document:\n%s", out)
	}
	if !strings.Contains(out, "violence=high") {
		t.Errorf("resolved interval missing:\n%s", out)
	}
}

func TestParsePrefs(t *testing.T) {
	prefs, err := parsePrefs("violence=medium, language=low", "off")
	if err != nil {
		t.Fatalf("parsePrefs error = %v", err)
	}
	if prefs["violence"] != "medium" || prefs["language"] != "low" {
		t.Errorf("prefs = %v", prefs)
	}
	if _, ok := prefs["nudity"]; ok {
		t.Errorf("off fallback must leave other categories inactive: %v", prefs)
	}

	if _, err := parsePrefs("violence", "high"); err == nil {
		t.Error("expected error for missing threshold")
	}
	if _, err := parsePrefs("violence=extreme", "high"); err == nil {
		t.Error("expected error for unknown threshold")
	}
}
