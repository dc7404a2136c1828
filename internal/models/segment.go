package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Severity levels for content segments, ordered from mildest to strongest.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// PreferenceOff disables a category in a viewer's preference map.
const PreferenceOff = "off"

// Channels a segment applies to.
const (
	ChannelBoth  = "both"
	ChannelVideo = "video"
	ChannelAudio = "audio"
)

// SeverityRank maps a severity string onto a total order: low=1, medium=2,
// high=3. Anything else (including "off" and the empty string) ranks 0 so
// that threshold comparisons become plain integer comparisons.
func SeverityRank(severity string) int {
	switch severity {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	default:
		return 0
	}
}

// ValidSeverity reports whether s is one of the three severity levels.
func ValidSeverity(s string) bool {
	return SeverityRank(s) != 0
}

// ValidChannel reports whether c is a recognized channel value.
func ValidChannel(c string) bool {
	return c == ChannelBoth || c == ChannelVideo || c == ChannelAudio
}

// Segment represents one community-contributed content flag on a title's
// timeline. Category and title are fixed at contribution time; timing,
// severity, and comment may be corrected later. Skip intervals are always
// recomputed from stored segments per request.
type Segment struct {
	gorm.Model
	UUID        string `json:"uuid" gorm:"uniqueIndex"`
	TitleID     string `json:"title_id" gorm:"not null;index"` // IMDb-style identifier, e.g. tt0133093
	StartMs     int64  `json:"start_ms" gorm:"not null"`
	EndMs       int64  `json:"end_ms" gorm:"not null"`
	Category    string `json:"category" gorm:"not null"` // parent category
	Subcategory string `json:"subcategory"`              // fine-grained flag, e.g. punching
	Severity    string `json:"severity"`
	Channel     string `json:"channel" gorm:"default:both"`
	Comment     string `json:"comment"`

	// Community moderation counters
	Upvotes   int `json:"upvotes" gorm:"default:0"`
	Downvotes int `json:"downvotes" gorm:"default:0"`
}

// BeforeCreate generates a UUID before creating a new segment
func (s *Segment) BeforeCreate(tx *gorm.DB) error {
	if s.UUID == "" {
		s.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Segment model
func (Segment) TableName() string {
	return "segments"
}
