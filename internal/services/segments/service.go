package segments

import (
	"context"

	"github.com/ameen-roayan/stremio-cleanstream/internal/models"
	apperrors "github.com/ameen-roayan/stremio-cleanstream/pkg/errors"
	"github.com/ameen-roayan/stremio-cleanstream/pkg/mcf"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new segment service
func NewService(repository Repository) Service {
	return &ServiceImpl{
		repository: repository,
	}
}

// CreateSegment validates and stores a contributed segment. The category is
// normalized through the taxonomy: a fine-grained flag becomes the
// subcategory and its parent becomes the category.
func (s *ServiceImpl) CreateSegment(ctx context.Context, segment *models.Segment) error {
	if segment.TitleID == "" {
		return apperrors.ValidationError("title_id", "is required")
	}
	if segment.Category == "" {
		return apperrors.ValidationError("category", "is required")
	}
	if segment.EndMs <= segment.StartMs {
		return apperrors.ValidationError("end_ms", "must be greater than start_ms")
	}
	if segment.StartMs < 0 {
		return apperrors.ValidationError("start_ms", "must not be negative")
	}
	if segment.Severity != "" && !models.ValidSeverity(segment.Severity) {
		return apperrors.ValidationError("severity", "must be one of low, medium, high")
	}
	if segment.Channel != "" && !models.ValidChannel(segment.Channel) {
		return apperrors.ValidationError("channel", "must be one of both, video, audio")
	}

	normalizeCategory(segment)
	if segment.Channel == "" {
		segment.Channel = models.ChannelBoth
	}

	return s.repository.CreateSegment(ctx, segment)
}

// GetSegmentByID retrieves a segment by its ID
func (s *ServiceImpl) GetSegmentByID(ctx context.Context, id uint) (*models.Segment, error) {
	return s.repository.GetSegmentByID(ctx, id)
}

// GetSegmentsByTitleID retrieves all segments for a title
func (s *ServiceImpl) GetSegmentsByTitleID(ctx context.Context, titleID string) ([]models.Segment, error) {
	return s.repository.GetSegmentsByTitleID(ctx, titleID)
}

// UpdateSegment adjusts the timing, severity, or comment of an existing
// segment. Category and title are fixed at contribution time.
func (s *ServiceImpl) UpdateSegment(ctx context.Context, id uint, startMs, endMs int64, severity, comment string) (*models.Segment, error) {
	if endMs <= startMs {
		return nil, apperrors.ValidationError("end_ms", "must be greater than start_ms")
	}
	if startMs < 0 {
		return nil, apperrors.ValidationError("start_ms", "must not be negative")
	}
	if severity != "" && !models.ValidSeverity(severity) {
		return nil, apperrors.ValidationError("severity", "must be one of low, medium, high")
	}

	segment, err := s.repository.GetSegmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	segment.StartMs = startMs
	segment.EndMs = endMs
	segment.Severity = severity
	segment.Comment = comment

	if err := s.repository.UpdateSegment(ctx, segment); err != nil {
		return nil, err
	}

	return segment, nil
}

// Vote records an up or down vote and returns the refreshed segment
func (s *ServiceImpl) Vote(ctx context.Context, id uint, up bool) (*models.Segment, error) {
	if err := s.repository.AddVote(ctx, id, up); err != nil {
		return nil, err
	}
	return s.repository.GetSegmentByID(ctx, id)
}

// DeleteSegment deletes a segment by its ID
func (s *ServiceImpl) DeleteSegment(ctx context.Context, id uint) error {
	return s.repository.DeleteSegment(ctx, id)
}

// ImportDocument stores every filter of every cue in a parsed document as
// a segment of titleID. Cues with non-positive duration are skipped.
// Returns the number of segments stored.
func (s *ServiceImpl) ImportDocument(ctx context.Context, titleID string, doc *mcf.Document) (int, error) {
	if titleID == "" {
		return 0, apperrors.ValidationError("title_id", "is required")
	}

	batch := DocumentToSegments(titleID, doc)
	if len(batch) == 0 {
		return 0, nil
	}
	if err := s.repository.CreateSegments(ctx, batch); err != nil {
		return 0, err
	}
	return len(batch), nil
}

// normalizeCategory resolves fine-grained flags through the taxonomy so
// stored segments always carry a parent category.
func normalizeCategory(segment *models.Segment) {
	parent := mcf.ResolveParent(segment.Category)
	if parent != segment.Category && segment.Subcategory == "" {
		segment.Subcategory = segment.Category
	}
	segment.Category = parent
}
