package repositories

import (
	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
	"gorm.io/gorm"
)

// ImageRepository defines the interface for uploaded-image data operations
type ImageRepository interface {
	CreateImage(image *models.Image) error
	GetImageByID(id uint) (*models.Image, error)
	GetApprovedByCommentIDs(commentIDs []uint) (map[uint][]models.ImageMeta, error)
	GetApprovedByMomentIDs(momentIDs []uint) (map[uint][]models.ImageMeta, error)
	SetStatus(id uint, status int) error
}

// PostgresImageRepository implements ImageRepository for PostgreSQL
type PostgresImageRepository struct {
	db *gorm.DB
}

// NewPostgresImageRepository creates a new PostgresImageRepository
func NewPostgresImageRepository(db *gorm.DB) *PostgresImageRepository {
	return &PostgresImageRepository{db: db}
}

// CreateImage creates a new image row in PostgreSQL
func (r *PostgresImageRepository) CreateImage(image *models.Image) error {
	return r.db.Create(image).Error
}

// GetImageByID retrieves an image row by ID from PostgreSQL
func (r *PostgresImageRepository) GetImageByID(id uint) (*models.Image, error) {
	var image models.Image
	if err := r.db.First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// GetApprovedByCommentIDs fetches the approved images attached to a set of
// comments as normalized rows and groups them per comment in the application
// layer.
func (r *PostgresImageRepository) GetApprovedByCommentIDs(commentIDs []uint) (map[uint][]models.ImageMeta, error) {
	grouped := make(map[uint][]models.ImageMeta, len(commentIDs))
	if len(commentIDs) == 0 {
		return grouped, nil
	}
	var images []models.Image
	err := r.db.Where("comment_id IN ? AND status = ?", commentIDs, models.ReviewStatusApproved).
		Order("id ASC").Find(&images).Error
	if err != nil {
		return nil, err
	}
	for _, img := range images {
		grouped[*img.CommentID] = append(grouped[*img.CommentID], models.ImageMeta{ImageID: img.ID, Suffix: img.Suffix})
	}
	return grouped, nil
}

// GetApprovedByMomentIDs fetches the approved images attached to a set of
// moments, grouped per moment.
func (r *PostgresImageRepository) GetApprovedByMomentIDs(momentIDs []uint) (map[uint][]models.ImageMeta, error) {
	grouped := make(map[uint][]models.ImageMeta, len(momentIDs))
	if len(momentIDs) == 0 {
		return grouped, nil
	}
	var images []models.Image
	err := r.db.Where("moment_id IN ? AND status = ?", momentIDs, models.ReviewStatusApproved).
		Order("id ASC").Find(&images).Error
	if err != nil {
		return nil, err
	}
	for _, img := range images {
		grouped[*img.MomentID] = append(grouped[*img.MomentID], models.ImageMeta{ImageID: img.ID, Suffix: img.Suffix})
	}
	return grouped, nil
}

// SetStatus records a moderation decision for an image
func (r *PostgresImageRepository) SetStatus(id uint, status int) error {
	res := r.db.Model(&models.Image{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
