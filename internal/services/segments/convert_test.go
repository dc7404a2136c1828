package segments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameen-roayan/stremio-cleanstream/internal/models"
	"github.com/ameen-roayan/stremio-cleanstream/pkg/mcf"
)

func TestDocumentToSegments(t *testing.T) {
	doc := &mcf.Document{
		Cues: []mcf.Cue{
			{StartMs: 1000, EndMs: 4000, Filters: []mcf.Filter{
				{Category: "punching", ParentCategory: "violence", Severity: "high", Comment: "fight"},
			}},
			{StartMs: 8000, EndMs: 9000, Filters: []mcf.Filter{
				// Parent left blank: conversion resolves it.
				{Category: "swearing", Severity: "low", Channel: "audio"},
			}},
		},
	}

	segs := DocumentToSegments("tt0133093", doc)
	require.Len(t, segs, 2)

	assert.Equal(t, "tt0133093", segs[0].TitleID)
	assert.Equal(t, "violence", segs[0].Category)
	assert.Equal(t, "punching", segs[0].Subcategory)
	assert.Equal(t, models.ChannelBoth, segs[0].Channel)
	assert.Equal(t, "fight", segs[0].Comment)

	assert.Equal(t, "language", segs[1].Category)
	assert.Equal(t, "swearing", segs[1].Subcategory)
	assert.Equal(t, "audio", segs[1].Channel)
}

func TestDocumentToSegmentsDropsZeroDuration(t *testing.T) {
	doc := &mcf.Document{
		Cues: []mcf.Cue{
			{StartMs: 5000, EndMs: 5000, Filters: []mcf.Filter{{Category: "violence"}}},
			{StartMs: 5000, EndMs: 4000, Filters: []mcf.Filter{{Category: "violence"}}},
		},
	}

	assert.Empty(t, DocumentToSegments("tt0133093", doc))
}

func TestSegmentsToDocument(t *testing.T) {
	segs := []models.Segment{
		{
			TitleID: "tt0133093", StartMs: 1000, EndMs: 4000,
			Category: "violence", Subcategory: "punching",
			Severity: "high", Channel: "both",
		},
		{
			TitleID: "tt0133093", StartMs: 8000, EndMs: 9000,
			Category: "language", Severity: "low", Channel: "audio",
		},
	}

	doc := SegmentsToDocument(mcf.Metadata{Title: "The Matrix", IMDB: "tt0133093"}, segs)

	require.Len(t, doc.Cues, 2)
	assert.Equal(t, "punching", doc.Cues[0].Filters[0].Category)
	assert.Equal(t, "violence", doc.Cues[0].Filters[0].ParentCategory)
	// Without a fine flag the parent category itself is emitted.
	assert.Equal(t, "language", doc.Cues[1].Filters[0].Category)

	parsed, err := mcf.Parse(mcf.Generate(doc))
	require.NoError(t, err)
	assert.Len(t, parsed.Cues, 2)
	assert.Equal(t, "The Matrix", parsed.Meta.Title)
}
