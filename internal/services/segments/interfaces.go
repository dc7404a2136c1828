package segments

import (
	"context"

	"github.com/ameen-roayan/stremio-cleanstream/internal/models"
	"github.com/ameen-roayan/stremio-cleanstream/pkg/mcf"
)

// Repository defines the interface for segment data access
type Repository interface {
	// Create operations
	CreateSegment(ctx context.Context, segment *models.Segment) error
	CreateSegments(ctx context.Context, segments []models.Segment) error

	// Read operations
	GetSegmentByID(ctx context.Context, id uint) (*models.Segment, error)
	GetSegmentsByTitleID(ctx context.Context, titleID string) ([]models.Segment, error)

	// Update operations
	UpdateSegment(ctx context.Context, segment *models.Segment) error
	AddVote(ctx context.Context, id uint, up bool) error

	// Delete operations
	DeleteSegment(ctx context.Context, id uint) error
}

// Service defines the interface for segment business logic
type Service interface {
	// Create operations
	CreateSegment(ctx context.Context, segment *models.Segment) error

	// Read operations
	GetSegmentByID(ctx context.Context, id uint) (*models.Segment, error)
	GetSegmentsByTitleID(ctx context.Context, titleID string) ([]models.Segment, error)

	// Update operations
	UpdateSegment(ctx context.Context, id uint, startMs, endMs int64, severity, comment string) (*models.Segment, error)
	Vote(ctx context.Context, id uint, up bool) (*models.Segment, error)

	// Delete operations
	DeleteSegment(ctx context.Context, id uint) error

	// Bulk import of a parsed interchange document
	ImportDocument(ctx context.Context, titleID string, doc *mcf.Document) (int, error)
}
