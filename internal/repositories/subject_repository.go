package repositories

import (
	"fmt"

	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
	"gorm.io/gorm"
)

// SubjectRepository resolves engagement targets across the relic, museum and
// moment tables, which each carry their own denormalized counters.
type SubjectRepository interface {
	SubjectExists(subjectType string, id uint) (bool, error)
	GetCounters(subjectType string, id uint) (likeCount, favoriteCount int, err error)
}

// PostgresSubjectRepository implements SubjectRepository for PostgreSQL
type PostgresSubjectRepository struct {
	db *gorm.DB
}

// NewPostgresSubjectRepository creates a new PostgresSubjectRepository
func NewPostgresSubjectRepository(db *gorm.DB) *PostgresSubjectRepository {
	return &PostgresSubjectRepository{db: db}
}

// subjectModel maps a subject type to an empty model of its table.
func subjectModel(subjectType string) (interface{}, error) {
	switch subjectType {
	case models.SubjectTypeRelic:
		return &models.Relic{}, nil
	case models.SubjectTypeMuseum:
		return &models.Museum{}, nil
	case models.SubjectTypeMoment:
		return &models.Moment{}, nil
	}
	return nil, fmt.Errorf("unknown subject type %q", subjectType)
}

// adjustSubjectCounter shifts a denormalized counter column on a subject row
// by delta inside the caller's transaction. Zero matched rows means the
// subject vanished and the whole transaction must fail.
func adjustSubjectCounter(tx *gorm.DB, subjectType string, id uint, column string, delta int) error {
	model, err := subjectModel(subjectType)
	if err != nil {
		return err
	}
	res := tx.Model(model).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// readSubjectCounters reads the like/favorite counters of a subject row
// inside the caller's transaction.
func readSubjectCounters(tx *gorm.DB, subjectType string, id uint) (int, int, error) {
	model, err := subjectModel(subjectType)
	if err != nil {
		return 0, 0, err
	}
	var counters struct {
		LikeCount     int
		FavoriteCount int
	}
	res := tx.Model(model).Select("like_count", "favorite_count").Where("id = ?", id).Scan(&counters)
	if res.Error != nil {
		return 0, 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, 0, ErrNotFound
	}
	return counters.LikeCount, counters.FavoriteCount, nil
}

// SubjectExists checks whether the addressed subject row exists
func (r *PostgresSubjectRepository) SubjectExists(subjectType string, id uint) (bool, error) {
	model, err := subjectModel(subjectType)
	if err != nil {
		return false, err
	}
	var count int64
	if err := r.db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetCounters retrieves the stored like/favorite counters for a subject
func (r *PostgresSubjectRepository) GetCounters(subjectType string, id uint) (int, int, error) {
	return readSubjectCounters(r.db, subjectType, id)
}
