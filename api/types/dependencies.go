package types

import (
	"context"

	"github.com/ameen-roayan/stremio-cleanstream/internal/database"
	"github.com/ameen-roayan/stremio-cleanstream/internal/services/cache"
	"github.com/ameen-roayan/stremio-cleanstream/internal/services/metadata"
	"github.com/ameen-roayan/stremio-cleanstream/internal/services/segments"
)

// MetadataClient looks up title details from an external catalog.
type MetadataClient interface {
	GetMeta(ctx context.Context, contentType, titleID string) (*metadata.Meta, error)
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB
	SegmentService segments.Service
	SkipCache      cache.Cache
	MetadataClient MetadataClient
}
