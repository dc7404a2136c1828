package models

import "testing"

func TestSeverityRank(t *testing.T) {
	tests := []struct {
		severity string
		rank     int
	}{
		{SeverityLow, 1},
		{SeverityMedium, 2},
		{SeverityHigh, 3},
		{PreferenceOff, 0},
		{"", 0},
		{"extreme", 0},
	}

	for _, tt := range tests {
		if got := SeverityRank(tt.severity); got != tt.rank {
			t.Errorf("SeverityRank(%q) = %d, want %d", tt.severity, got, tt.rank)
		}
	}
}

func TestSeverityOrdering(t *testing.T) {
	if !(SeverityRank(SeverityLow) < SeverityRank(SeverityMedium) &&
		SeverityRank(SeverityMedium) < SeverityRank(SeverityHigh)) {
		t.Error("severity ranks are not strictly increasing")
	}
}

func TestValidChannel(t *testing.T) {
	for _, c := range []string{ChannelBoth, ChannelVideo, ChannelAudio} {
		if !ValidChannel(c) {
			t.Errorf("ValidChannel(%q) = false", c)
		}
	}
	if ValidChannel("subtitles") {
		t.Error("ValidChannel(\"subtitles\") = true")
	}
}

func TestSegmentTableName(t *testing.T) {
	if got := (Segment{}).TableName(); got != "segments" {
		t.Errorf("TableName() = %q", got)
	}
}
