package repositories

import (
	"fmt"

	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
	"gorm.io/gorm"
)

// MomentRepository defines the interface for moment (dynamic) data operations
type MomentRepository interface {
	CreateMoment(moment *models.Moment, imageIDs []uint) error
	GetMomentByID(id uint) (*models.Moment, error)
	ListApproved(limit, offset int) ([]models.Moment, error)
	SetStatus(id uint, status int) error
	ListPending(limit int) ([]models.Moment, error)
}

// PostgresMomentRepository implements MomentRepository for PostgreSQL
type PostgresMomentRepository struct {
	db *gorm.DB
}

// NewPostgresMomentRepository creates a new PostgresMomentRepository
func NewPostgresMomentRepository(db *gorm.DB) *PostgresMomentRepository {
	return &PostgresMomentRepository{db: db}
}

// CreateMoment inserts a moment and claims its attached images in one
// transaction. Images must belong to the posting user and be unclaimed.
func (r *PostgresMomentRepository) CreateMoment(moment *models.Moment, imageIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(moment).Error; err != nil {
			return err
		}
		if len(imageIDs) == 0 {
			return nil
		}
		res := tx.Model(&models.Image{}).
			Where("id IN ? AND user_id = ? AND comment_id IS NULL AND moment_id IS NULL", imageIDs, moment.UserID).
			UpdateColumn("moment_id", moment.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(imageIDs)) {
			return fmt.Errorf("image association failed: %d of %d images claimable", res.RowsAffected, len(imageIDs))
		}
		return nil
	})
}

// GetMomentByID retrieves a moment by ID from PostgreSQL
func (r *PostgresMomentRepository) GetMomentByID(id uint) (*models.Moment, error) {
	var moment models.Moment
	if err := r.db.First(&moment, id).Error; err != nil {
		return nil, err
	}
	return &moment, nil
}

// ListApproved retrieves reviewed moments for the feed, newest first
func (r *PostgresMomentRepository) ListApproved(limit, offset int) ([]models.Moment, error) {
	var moments []models.Moment
	err := r.db.Where("status = ?", models.ReviewStatusApproved).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&moments).Error
	if err != nil {
		return nil, err
	}
	return moments, nil
}

// SetStatus records a moderation decision for a moment
func (r *PostgresMomentRepository) SetStatus(id uint, status int) error {
	res := r.db.Model(&models.Moment{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListPending retrieves moments awaiting review, oldest first
func (r *PostgresMomentRepository) ListPending(limit int) ([]models.Moment, error) {
	var moments []models.Moment
	err := r.db.Where("status = ?", models.ReviewStatusPending).
		Order("created_at ASC").Limit(limit).Find(&moments).Error
	if err != nil {
		return nil, err
	}
	return moments, nil
}
