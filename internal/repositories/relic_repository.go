package repositories

import (
	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
	"gorm.io/gorm"
)

// RelicRepository defines the interface for cultural-relic data operations
type RelicRepository interface {
	ListRelics() ([]models.RelicSummary, error)
	GetRelicByID(id uint) (*models.Relic, error)
}

// PostgresRelicRepository implements RelicRepository for PostgreSQL
type PostgresRelicRepository struct {
	db *gorm.DB
}

// NewPostgresRelicRepository creates a new PostgresRelicRepository
func NewPostgresRelicRepository(db *gorm.DB) *PostgresRelicRepository {
	return &PostgresRelicRepository{db: db}
}

// ListRelics retrieves the browsing list of relics with their display image
func (r *PostgresRelicRepository) ListRelics() ([]models.RelicSummary, error) {
	var relics []models.RelicSummary
	err := r.db.Model(&models.Relic{}).
		Select("relics.id AS id, relics.name AS name, relic_images.img_url AS image, relics.dynasty AS category").
		Joins("LEFT JOIN relic_images ON relic_images.relic_id = relics.id").
		Order("relics.id ASC").
		Scan(&relics).Error
	if err != nil {
		return nil, err
	}
	return relics, nil
}

// GetRelicByID retrieves a relic with its images from PostgreSQL
func (r *PostgresRelicRepository) GetRelicByID(id uint) (*models.Relic, error) {
	var relic models.Relic
	if err := r.db.Preload("Images").First(&relic, id).Error; err != nil {
		return nil, err
	}
	return &relic, nil
}
