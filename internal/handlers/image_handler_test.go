package handlers

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
	"github.com/labstack/echo/v4"
)

// uploadRequest builds a multipart upload with one image part
func uploadRequest(t *testing.T, env *testEnv, userID uint, filename, contentType string, payload []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("user_id", fmt.Sprint(userID)); err != nil {
		t.Fatalf("failed to write field: %v", err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("failed to write payload: %v", err)
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload/image", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	return env.echo.NewContext(req, rec), rec
}

func TestUploadImageCreatesPendingRow(t *testing.T) {
	env := newTestEnv(t)
	mediaDir := t.TempDir()
	h := NewImageHandler(env.imageRepo, env.userRepo, mediaDir)
	user := env.seedUser(t, "alice")

	c, rec := uploadRequest(t, env, user.ID, "relic.png", "image/png", []byte("pngbytes"))
	if err := h.UploadImage(c); err != nil {
		t.Fatalf("UploadImage failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var image models.Image
	if err := env.db.First(&image).Error; err != nil {
		t.Fatalf("image row not created: %v", err)
	}
	if image.Status != models.ReviewStatusPending {
		t.Errorf("new image has status %d, want pending", image.Status)
	}
	if image.CommentID != nil || image.MomentID != nil {
		t.Errorf("new image must start unassociated")
	}

	stored := filepath.Join(mediaDir, fmt.Sprintf("%s.%s", image.StorageKey, image.Suffix))
	data, err := os.ReadFile(stored)
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "pngbytes" {
		t.Errorf("stored bytes differ from upload")
	}
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	env := newTestEnv(t)
	h := NewImageHandler(env.imageRepo, env.userRepo, t.TempDir())
	user := env.seedUser(t, "alice")

	c, rec := uploadRequest(t, env, user.ID, "notes.txt", "text/plain", []byte("hello"))
	err := h.UploadImage(c)
	if httpStatus(err, rec) != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-image upload, got %d (err=%v)", httpStatus(err, rec), err)
	}

	var count int64
	env.db.Model(&models.Image{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected upload still created a row")
	}
}

func TestServeImagePlaceholders(t *testing.T) {
	env := newTestEnv(t)
	mediaDir := t.TempDir()
	h := NewImageHandler(env.imageRepo, env.userRepo, mediaDir)
	user := env.seedUser(t, "alice")

	cases := []struct {
		name    string
		status  int
		wantURL string
	}{
		{"pending", models.ReviewStatusPending, pendingPlaceholderURL},
		{"rejected", models.ReviewStatusRejected, rejectedPlaceholderURL},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			image := &models.Image{
				UserID:     user.ID,
				Suffix:     "png",
				Status:     tc.status,
				StorageKey: fmt.Sprintf("key-%s", tc.name),
			}
			if err := env.imageRepo.CreateImage(image); err != nil {
				t.Fatalf("failed to create image row: %v", err)
			}
			path := filepath.Join(mediaDir, fmt.Sprintf("%s.png", image.StorageKey))
			if err := os.WriteFile(path, []byte("bytes"), 0o644); err != nil {
				t.Fatalf("failed to write backing file: %v", err)
			}

			c, rec := env.jsonRequest(http.MethodGet, "/api/v1/image/1", "",
				[]string{"image_id"}, []string{fmt.Sprint(image.ID)})
			if err := h.ServeImage(c); err != nil {
				t.Fatalf("ServeImage failed: %v", err)
			}

			var resp struct {
				Status   string `json:"status"`
				ImageURL string `json:"imageUrl"`
			}
			decodeJSON(t, rec, &resp)
			if resp.Status != tc.name || resp.ImageURL != tc.wantURL {
				t.Errorf("placeholder wrong: %+v", resp)
			}
		})
	}
}

func TestServeImageApprovedReturnsFile(t *testing.T) {
	env := newTestEnv(t)
	mediaDir := t.TempDir()
	h := NewImageHandler(env.imageRepo, env.userRepo, mediaDir)
	user := env.seedUser(t, "alice")

	image := &models.Image{
		UserID:     user.ID,
		Suffix:     "png",
		Status:     models.ReviewStatusApproved,
		StorageKey: "approved-key",
	}
	if err := env.imageRepo.CreateImage(image); err != nil {
		t.Fatalf("failed to create image row: %v", err)
	}
	path := filepath.Join(mediaDir, "approved-key.png")
	if err := os.WriteFile(path, []byte("realbytes"), 0o644); err != nil {
		t.Fatalf("failed to write backing file: %v", err)
	}

	c, rec := env.jsonRequest(http.MethodGet, "/api/v1/image/1", "",
		[]string{"image_id"}, []string{fmt.Sprint(image.ID)})
	if err := h.ServeImage(c); err != nil {
		t.Fatalf("ServeImage failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "realbytes" {
		t.Errorf("served bytes differ from stored file")
	}
}

func TestServeImageMissingFileIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	h := NewImageHandler(env.imageRepo, env.userRepo, t.TempDir())
	user := env.seedUser(t, "alice")

	// Pending status, but the backing file is gone: hard 404, no placeholder
	image := &models.Image{
		UserID:     user.ID,
		Suffix:     "png",
		Status:     models.ReviewStatusPending,
		StorageKey: "vanished-key",
	}
	if err := env.imageRepo.CreateImage(image); err != nil {
		t.Fatalf("failed to create image row: %v", err)
	}

	c, rec := env.jsonRequest(http.MethodGet, "/api/v1/image/1", "",
		[]string{"image_id"}, []string{fmt.Sprint(image.ID)})
	err := h.ServeImage(c)
	if httpStatus(err, rec) != http.StatusNotFound {
		t.Fatalf("expected 404 for missing file, got %d (err=%v)", httpStatus(err, rec), err)
	}

	c, rec = env.jsonRequest(http.MethodGet, "/api/v1/image/999", "",
		[]string{"image_id"}, []string{"999"})
	err = h.ServeImage(c)
	if httpStatus(err, rec) != http.StatusNotFound {
		t.Fatalf("expected 404 for missing row, got %d (err=%v)", httpStatus(err, rec), err)
	}
}
