package repositories

import (
	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for subject like operations
type LikeRepository interface {
	ToggleLike(subjectType string, subjectID, userID uint) (likeCount int, liked bool, err error)
	HasUserLiked(subjectType string, subjectID, userID uint) (bool, error)
	GetLikesCount(subjectType string, subjectID uint) (int64, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// ToggleLike flips the (subject, user) like relation and adjusts the
// subject's stored like counter in the same transaction, returning the
// post-toggle counter and liked state. The unique index on
// (subject_type, subject_id, user_id) rejects a duplicate insert should two
// toggles for the same user ever race.
func (r *PostgresLikeRepository) ToggleLike(subjectType string, subjectID, userID uint) (int, bool, error) {
	var likeCount int
	var liked bool

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		err := tx.Where("subject_type = ? AND subject_id = ? AND user_id = ?", subjectType, subjectID, userID).
			First(&existing).Error

		var delta int
		switch err {
		case nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			delta, liked = -1, false
		case gorm.ErrRecordNotFound:
			like := models.Like{SubjectType: subjectType, SubjectID: subjectID, UserID: userID}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			delta, liked = 1, true
		default:
			return err
		}

		if err := adjustSubjectCounter(tx, subjectType, subjectID, "like_count", delta); err != nil {
			return err
		}

		count, _, err := readSubjectCounters(tx, subjectType, subjectID)
		if err != nil {
			return err
		}
		likeCount = count
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return likeCount, liked, nil
}

// HasUserLiked checks if a user has liked a specific subject
func (r *PostgresLikeRepository) HasUserLiked(subjectType string, subjectID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("subject_type = ? AND subject_id = ? AND user_id = ?", subjectType, subjectID, userID).
		Count(&count).Error
	return count > 0, err
}

// GetLikesCount counts the like relations for a subject
func (r *PostgresLikeRepository) GetLikesCount(subjectType string, subjectID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("subject_type = ? AND subject_id = ?", subjectType, subjectID).
		Count(&count).Error
	return count, err
}
