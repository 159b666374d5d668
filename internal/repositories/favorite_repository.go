package repositories

import (
	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
	"gorm.io/gorm"
)

// FavoriteRepository defines the interface for subject favorite operations
type FavoriteRepository interface {
	ToggleFavorite(subjectType string, subjectID, userID uint) (favoriteCount int, favorited bool, err error)
	HasUserFavorited(subjectType string, subjectID, userID uint) (bool, error)
}

// PostgresFavoriteRepository implements FavoriteRepository for PostgreSQL
type PostgresFavoriteRepository struct {
	db *gorm.DB
}

// NewPostgresFavoriteRepository creates a new PostgresFavoriteRepository
func NewPostgresFavoriteRepository(db *gorm.DB) *PostgresFavoriteRepository {
	return &PostgresFavoriteRepository{db: db}
}

// ToggleFavorite flips the (subject, user) favorite relation and adjusts the
// subject's stored favorite counter in the same transaction.
func (r *PostgresFavoriteRepository) ToggleFavorite(subjectType string, subjectID, userID uint) (int, bool, error) {
	var favoriteCount int
	var favorited bool

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Favorite
		err := tx.Where("subject_type = ? AND subject_id = ? AND user_id = ?", subjectType, subjectID, userID).
			First(&existing).Error

		var delta int
		switch err {
		case nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			delta, favorited = -1, false
		case gorm.ErrRecordNotFound:
			favorite := models.Favorite{SubjectType: subjectType, SubjectID: subjectID, UserID: userID}
			if err := tx.Create(&favorite).Error; err != nil {
				return err
			}
			delta, favorited = 1, true
		default:
			return err
		}

		if err := adjustSubjectCounter(tx, subjectType, subjectID, "favorite_count", delta); err != nil {
			return err
		}

		_, count, err := readSubjectCounters(tx, subjectType, subjectID)
		if err != nil {
			return err
		}
		favoriteCount = count
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return favoriteCount, favorited, nil
}

// HasUserFavorited checks if a user has favorited a specific subject
func (r *PostgresFavoriteRepository) HasUserFavorited(subjectType string, subjectID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("subject_type = ? AND subject_id = ? AND user_id = ?", subjectType, subjectID, userID).
		Count(&count).Error
	return count > 0, err
}
