package repositories

import (
	"fmt"
	"testing"

	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database migrated with the
// full schema. Shared cache keeps gorm's pooled connections on one database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Comment{},
		&models.CommentLike{},
		&models.Like{},
		&models.Favorite{},
		&models.Image{},
		&models.Relic{},
		&models.RelicImage{},
		&models.Museum{},
		&models.MuseumImage{},
		&models.Notice{},
		&models.Moment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// seedMoment creates an approved moment to hang comments and likes off
func seedMoment(t *testing.T, db *gorm.DB, userID uint) *models.Moment {
	t.Helper()
	moment := &models.Moment{UserID: userID, Content: "moment", Status: models.ReviewStatusApproved}
	if err := db.Create(moment).Error; err != nil {
		t.Fatalf("failed to seed moment: %v", err)
	}
	return moment
}

// seedUser creates a user allowed to comment
func seedUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{
		Name:          name,
		PhoneNumber:   fmt.Sprintf("%s-%s", t.Name(), name),
		AccountStatus: models.AccountStatusActive,
		CommentStatus: models.CommentStatusAllowed,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}
