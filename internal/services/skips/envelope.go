package skips

import "time"

// EnvelopeVersion identifies the JSON payload shape.
const EnvelopeVersion = "1"

// Envelope wraps a resolved interval list for JSON transport.
type Envelope struct {
	Version       string                 `json:"version"`
	TitleID       string                 `json:"titleId"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
	GeneratedAt   time.Time              `json:"generatedAt"`
	TotalSkips    int                    `json:"totalSkips"`
	TotalSkipTime int64                  `json:"totalSkipTime"` // sum of interval durations in ms
	Skips         []SkipInterval         `json:"skips"`
}

// NewEnvelope builds the JSON payload for a resolved list. Metadata is
// passed through untouched and may be nil.
func NewEnvelope(titleID string, metadata map[string]interface{}, intervals []SkipInterval) Envelope {
	return Envelope{
		Version:       EnvelopeVersion,
		TitleID:       titleID,
		Metadata:      metadata,
		GeneratedAt:   time.Now().UTC(),
		TotalSkips:    len(intervals),
		TotalSkipTime: TotalDuration(intervals),
		Skips:         intervals,
	}
}
