package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
	"github.com/BUCT-CS2201/HandheldMuseum/internal/repositories"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const maxImageSize = 5 << 20 // 5MB upload cap, same as the mobile client

// Placeholder assets served in place of unreviewed or rejected images
const (
	pendingPlaceholderURL  = "/api/static/pending.png"
	rejectedPlaceholderURL = "/api/static/rejected.png"
)

// ImageHandler handles image upload and moderated image serving
type ImageHandler struct {
	imageRepository repositories.ImageRepository
	userRepository  repositories.UserRepository
	mediaDir        string
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(imageRepo repositories.ImageRepository, userRepo repositories.UserRepository, mediaDir string) *ImageHandler {
	return &ImageHandler{
		imageRepository: imageRepo,
		userRepository:  userRepo,
		mediaDir:        mediaDir,
	}
}

// RegisterImageRoutes registers image-related routes
func (h *ImageHandler) RegisterImageRoutes(g *echo.Group) {
	g.POST("/upload/image", h.UploadImage)
	g.GET("/image/:image_id", h.ServeImage)
}

// UploadImage stores one uploaded image on disk and creates its pending row.
// The image stays unassociated until a comment or moment claims it.
func (h *ImageHandler) UploadImage(c echo.Context) error {
	userIDStr := c.FormValue("user_id")
	if userIDStr == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing user ID")
	}
	userID, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if _, err := h.userRepository.GetUserByID(uint(userID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing image file")
	}
	if file.Size > maxImageSize {
		return echo.NewHTTPError(http.StatusBadRequest, "Image exceeds the 5MB limit")
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return echo.NewHTTPError(http.StatusBadRequest, "Only image files are accepted")
	}

	suffix := strings.TrimPrefix(filepath.Ext(file.Filename), ".")
	if suffix == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Image file has no extension")
	}

	image := &models.Image{
		UserID:     uint(userID),
		Suffix:     suffix,
		Status:     models.ReviewStatusPending,
		StorageKey: uuid.NewString(),
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	defer src.Close()

	if err := os.MkdirAll(h.mediaDir, 0o755); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	dstPath := filepath.Join(h.mediaDir, fmt.Sprintf("%s.%s", image.StorageKey, image.Suffix))
	dst, err := os.Create(dstPath)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.imageRepository.CreateImage(image); err != nil {
		os.Remove(dstPath)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"image_id": image.ID,
		"status":   image.Status,
	})
}

// ServeImage returns the stored bytes of an approved image. Pending and
// rejected images resolve to placeholder descriptors instead; a missing row
// or missing backing file is a hard not-found.
func (h *ImageHandler) ServeImage(c echo.Context) error {
	imageID, err := strconv.ParseUint(c.Param("image_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid image ID")
	}

	image, err := h.imageRepository.GetImageByID(uint(imageID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Image not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	path := filepath.Join(h.mediaDir, fmt.Sprintf("%s.%s", image.StorageKey, image.Suffix))
	if _, err := os.Stat(path); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Image file not found")
	}

	switch image.Status {
	case models.ReviewStatusPending:
		return c.JSON(http.StatusOK, echo.Map{
			"status":   "pending",
			"message":  "Image is awaiting review",
			"imageUrl": pendingPlaceholderURL,
		})
	case models.ReviewStatusRejected:
		return c.JSON(http.StatusOK, echo.Map{
			"status":   "rejected",
			"message":  "Image was rejected by review",
			"imageUrl": rejectedPlaceholderURL,
		})
	}

	return c.File(path)
}
