package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
	"github.com/BUCT-CS2201/HandheldMuseum/internal/repositories"
	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv bundles an echo instance and sqlite-backed repositories so handler
// tests exercise the real persistence path
type testEnv struct {
	db           *gorm.DB
	echo         *echo.Echo
	commentRepo  repositories.CommentRepository
	subjectRepo  repositories.SubjectRepository
	userRepo     repositories.UserRepository
	imageRepo    repositories.ImageRepository
	likeRepo     repositories.LikeRepository
	favoriteRepo repositories.FavoriteRepository
}

func newTestEnv(t *testing.T) *testEnv {
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

	return &testEnv{
		db:           db,
		echo:         echo.New(),
		commentRepo:  repositories.NewPostgresCommentRepository(db),
		subjectRepo:  repositories.NewPostgresSubjectRepository(db),
		userRepo:     repositories.NewPostgresUserRepository(db),
		imageRepo:    repositories.NewPostgresImageRepository(db),
		likeRepo:     repositories.NewPostgresLikeRepository(db),
		favoriteRepo: repositories.NewPostgresFavoriteRepository(db),
	}
}

func (env *testEnv) seedUser(t *testing.T, name string) *models.User {
	t.Helper()
	user := &models.User{
		Name:          name,
		PhoneNumber:   fmt.Sprintf("%s-%s", t.Name(), name),
		AccountStatus: models.AccountStatusActive,
		CommentStatus: models.CommentStatusAllowed,
	}
	if err := env.db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func (env *testEnv) seedMoment(t *testing.T, userID uint) *models.Moment {
	t.Helper()
	moment := &models.Moment{UserID: userID, Content: "moment", Status: models.ReviewStatusApproved}
	if err := env.db.Create(moment).Error; err != nil {
		t.Fatalf("failed to seed moment: %v", err)
	}
	return moment
}

// jsonRequest builds an echo context for a JSON request with one path
// parameter pair per name/value entry
func (env *testEnv) jsonRequest(method, target, body string, paramNames, paramValues []string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	c.SetParamNames(paramNames...)
	c.SetParamValues(paramValues...)
	return c, rec
}

// decodeJSON unmarshals a recorded response body, failing the test on error
func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

// httpStatus extracts the status code from a handler error or the recorder
func httpStatus(err error, rec *httptest.ResponseRecorder) int {
	if err != nil {
		if he, ok := err.(*echo.HTTPError); ok {
			return he.Code
		}
		return http.StatusInternalServerError
	}
	return rec.Code
}
