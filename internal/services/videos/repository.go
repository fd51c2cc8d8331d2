package videos

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/killallgit/transcript-api/internal/models"
)

// GormRepository implements VideoRepository using GORM
type GormRepository struct {
	db *gorm.DB
}

// NewRepository creates a new video repository
func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Upsert inserts the video or, when a row for the same video_id exists,
// refreshes its mutable fields in place
func (r *GormRepository) Upsert(ctx context.Context, video *models.Video) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "video_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"url", "title", "author", "language", "transcript", "updated_at",
			}),
		}).
		Create(video).Error
}

// GetByVideoID retrieves a video by its YouTube video ID
func (r *GormRepository) GetByVideoID(ctx context.Context, videoID string) (*models.Video, error) {
	var video models.Video
	err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// ListRecent returns up to limit videos ordered by most recently updated
func (r *GormRepository) ListRecent(ctx context.Context, limit int) ([]models.Video, error) {
	var videos []models.Video
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Limit(limit).
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

// IsNotFound reports whether err is the repository's record-not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
