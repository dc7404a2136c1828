package segments

import (
	"context"
	"errors"
	"fmt"

	"github.com/ameen-roayan/stremio-cleanstream/internal/models"
	"gorm.io/gorm"
)

// ErrSegmentNotFound is returned when a segment does not exist.
var ErrSegmentNotFound = errors.New("segment not found")

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new segment repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateSegment creates a new segment in the database
func (r *RepositoryImpl) CreateSegment(ctx context.Context, segment *models.Segment) error {
	if err := r.db.WithContext(ctx).Create(segment).Error; err != nil {
		return fmt.Errorf("creating segment: %w", err)
	}
	return nil
}

// CreateSegments inserts a batch of segments in one transaction
func (r *RepositoryImpl) CreateSegments(ctx context.Context, segments []models.Segment) error {
	if len(segments) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&segments).Error; err != nil {
		return fmt.Errorf("creating segments: %w", err)
	}
	return nil
}

// GetSegmentByID retrieves a segment by its ID
func (r *RepositoryImpl) GetSegmentByID(ctx context.Context, id uint) (*models.Segment, error) {
	var segment models.Segment
	if err := r.db.WithContext(ctx).First(&segment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSegmentNotFound
		}
		return nil, fmt.Errorf("getting segment: %w", err)
	}
	return &segment, nil
}

// GetSegmentsByTitleID retrieves all segments for a title, ordered by start time
func (r *RepositoryImpl) GetSegmentsByTitleID(ctx context.Context, titleID string) ([]models.Segment, error) {
	var segments []models.Segment
	if err := r.db.WithContext(ctx).
		Where("title_id = ?", titleID).
		Order("start_ms ASC").
		Find(&segments).Error; err != nil {
		return nil, fmt.Errorf("getting segments for title: %w", err)
	}
	return segments, nil
}

// UpdateSegment updates an existing segment
func (r *RepositoryImpl) UpdateSegment(ctx context.Context, segment *models.Segment) error {
	result := r.db.WithContext(ctx).Save(segment)
	if result.Error != nil {
		return fmt.Errorf("updating segment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSegmentNotFound
	}
	return nil
}

// AddVote bumps one of the vote counters on a segment
func (r *RepositoryImpl) AddVote(ctx context.Context, id uint, up bool) error {
	column := "downvotes"
	if up {
		column = "upvotes"
	}

	result := r.db.WithContext(ctx).
		Model(&models.Segment{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return fmt.Errorf("recording vote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSegmentNotFound
	}
	return nil
}

// DeleteSegment deletes a segment by its ID
func (r *RepositoryImpl) DeleteSegment(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Segment{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting segment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSegmentNotFound
	}
	return nil
}
