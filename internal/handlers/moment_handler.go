package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
	"github.com/BUCT-CS2201/HandheldMuseum/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// MomentHandler handles the user moment (dynamic) feed
type MomentHandler struct {
	momentRepository repositories.MomentRepository
	userRepository   repositories.UserRepository
	imageRepository  repositories.ImageRepository
}

// NewMomentHandler creates a new MomentHandler
func NewMomentHandler(momentRepo repositories.MomentRepository, userRepo repositories.UserRepository, imageRepo repositories.ImageRepository) *MomentHandler {
	return &MomentHandler{
		momentRepository: momentRepo,
		userRepository:   userRepo,
		imageRepository:  imageRepo,
	}
}

// RegisterMomentRoutes registers moment-related routes
func (h *MomentHandler) RegisterMomentRoutes(g *echo.Group) {
	g.POST("/moments", h.PublishMoment)
	g.GET("/moments", h.ListMoments)
}

// PublishMoment creates a moment with its attached images. Text may be empty
// when at least one image is attached. The moment starts pending review.
func (h *MomentHandler) PublishMoment(c echo.Context) error {
	var req models.CreateMomentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.Content == "" && len(req.ImageIDs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Content or images required")
	}

	user, err := h.userRepository.GetUserByID(req.UserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if user.CommentStatus != models.CommentStatusAllowed {
		return echo.NewHTTPError(http.StatusForbidden, "User is banned from posting")
	}

	moment := &models.Moment{
		UserID:  req.UserID,
		Content: ugcPolicy.Sanitize(req.Content),
		Status:  models.ReviewStatusPending,
	}

	if err := h.momentRepository.CreateMoment(moment, req.ImageIDs); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"moment_id": moment.ID,
		"message":   "Moment submitted, awaiting review",
	})
}

// ListMoments returns the approved moment feed, newest first, with author
// names and approved images grouped per moment.
func (h *MomentHandler) ListMoments(c echo.Context) error {
	limit := 20
	offset := 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	moments, err := h.momentRepository.ListApproved(limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	momentIDs := make([]uint, 0, len(moments))
	userIDs := make([]uint, 0, len(moments))
	seen := make(map[uint]bool, len(moments))
	for i := range moments {
		momentIDs = append(momentIDs, moments[i].ID)
		if !seen[moments[i].UserID] {
			seen[moments[i].UserID] = true
			userIDs = append(userIDs, moments[i].UserID)
		}
	}

	names, err := h.userRepository.GetNamesByIDs(userIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	images, err := h.imageRepository.GetApprovedByMomentIDs(momentIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	views := make([]models.MomentView, 0, len(moments))
	for i := range moments {
		m := &moments[i]
		attached := images[m.ID]
		if attached == nil {
			attached = []models.ImageMeta{}
		}
		views = append(views, models.MomentView{
			MomentID:     m.ID,
			Content:      m.Content,
			UserName:     names[m.UserID],
			LikeCount:    m.LikeCount,
			CommentCount: m.CommentCount,
			CreatedAt:    m.CreatedAt.Format(time.RFC3339),
			Images:       attached,
		})
	}

	return c.JSON(http.StatusOK, views)
}
