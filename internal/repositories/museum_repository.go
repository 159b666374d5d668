package repositories

import (
	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
	"gorm.io/gorm"
)

// MuseumRepository defines the interface for museum data operations
type MuseumRepository interface {
	ListMuseums() ([]models.MuseumSummary, error)
	GetMuseumByID(id uint) (*models.Museum, error)
	GetRelicsByMuseum(museumID uint) ([]models.RelicSummary, error)
	GetRanking() ([]models.MuseumRank, error)
	ListNotices() ([]models.Notice, error)
}

// PostgresMuseumRepository implements MuseumRepository for PostgreSQL
type PostgresMuseumRepository struct {
	db *gorm.DB
}

// NewPostgresMuseumRepository creates a new PostgresMuseumRepository
func NewPostgresMuseumRepository(db *gorm.DB) *PostgresMuseumRepository {
	return &PostgresMuseumRepository{db: db}
}

// ListMuseums retrieves all museums with their display image
func (r *PostgresMuseumRepository) ListMuseums() ([]models.MuseumSummary, error) {
	var museums []models.MuseumSummary
	err := r.db.Model(&models.Museum{}).
		Select("museums.id AS museum_id, museums.name AS museum_name, museum_images.img_url AS image").
		Joins("LEFT JOIN museum_images ON museum_images.museum_id = museums.id").
		Order("museums.id ASC").
		Scan(&museums).Error
	if err != nil {
		return nil, err
	}
	return museums, nil
}

// GetMuseumByID retrieves a museum's detail row from PostgreSQL
func (r *PostgresMuseumRepository) GetMuseumByID(id uint) (*models.Museum, error) {
	var museum models.Museum
	if err := r.db.Preload("Images").First(&museum, id).Error; err != nil {
		return nil, err
	}
	return &museum, nil
}

// GetRelicsByMuseum retrieves the relics held by one museum
func (r *PostgresMuseumRepository) GetRelicsByMuseum(museumID uint) ([]models.RelicSummary, error) {
	var relics []models.RelicSummary
	err := r.db.Model(&models.Relic{}).
		Select("relics.id AS id, relics.name AS name, relic_images.img_url AS image, relics.dynasty AS category").
		Joins("LEFT JOIN relic_images ON relic_images.relic_id = relics.id").
		Where("relics.museum_id = ?", museumID).
		Order("relics.id ASC").
		Scan(&relics).Error
	if err != nil {
		return nil, err
	}
	return relics, nil
}

// GetRanking ranks museums by the number of relics they hold
func (r *PostgresMuseumRepository) GetRanking() ([]models.MuseumRank, error) {
	var ranking []models.MuseumRank
	err := r.db.Model(&models.Museum{}).
		Select("museums.id AS museum_id, museums.name AS museum_name, museums.address AS address, museum_images.img_url AS image, COUNT(relics.id) AS relic_count").
		Joins("LEFT JOIN relics ON relics.museum_id = museums.id AND relics.deleted_at IS NULL").
		Joins("LEFT JOIN museum_images ON museum_images.museum_id = museums.id").
		Group("museums.id, museums.name, museums.address, museum_images.img_url").
		Order("relic_count DESC, museum_id ASC").
		Scan(&ranking).Error
	if err != nil {
		return nil, err
	}
	return ranking, nil
}

// ListNotices retrieves all museum announcements
func (r *PostgresMuseumRepository) ListNotices() ([]models.Notice, error) {
	var notices []models.Notice
	if err := r.db.Order("created_at DESC").Find(&notices).Error; err != nil {
		return nil, err
	}
	return notices, nil
}
