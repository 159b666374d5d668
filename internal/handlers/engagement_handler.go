package handlers

import (
	"net/http"
	"strconv"

	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
	"github.com/BUCT-CS2201/HandheldMuseum/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// EngagementHandler handles subject-level like/favorite toggles and the
// combined status read.
type EngagementHandler struct {
	likeRepository     repositories.LikeRepository
	favoriteRepository repositories.FavoriteRepository
	subjectRepository  repositories.SubjectRepository
}

// NewEngagementHandler creates a new EngagementHandler
func NewEngagementHandler(likeRepo repositories.LikeRepository, favoriteRepo repositories.FavoriteRepository, subjectRepo repositories.SubjectRepository) *EngagementHandler {
	return &EngagementHandler{
		likeRepository:     likeRepo,
		favoriteRepository: favoriteRepo,
		subjectRepository:  subjectRepo,
	}
}

// RegisterEngagementRoutes registers engagement-related routes
func (h *EngagementHandler) RegisterEngagementRoutes(g *echo.Group) {
	g.POST("/like/:subject_id", h.ToggleLike)
	g.POST("/favorite/:subject_id", h.ToggleFavorite)
	g.GET("/status/:subject_id", h.GetStatus)
}

func (h *EngagementHandler) bindToggle(c echo.Context) (subjectType string, subjectID uint, userID uint, err error) {
	id, err := strconv.ParseUint(c.Param("subject_id"), 10, 32)
	if err != nil {
		return "", 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid subject ID")
	}

	var req models.ToggleLikeRequest
	if err := c.Bind(&req); err != nil {
		return "", 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return "", 0, 0, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	subjectType, err = subjectTypeOrDefault(req.SubjectType)
	if err != nil {
		return "", 0, 0, err
	}
	return subjectType, uint(id), req.UserID, nil
}

// ToggleLike flips a user's like on a subject and returns the resulting
// counter and liked state.
func (h *EngagementHandler) ToggleLike(c echo.Context) error {
	subjectType, subjectID, userID, err := h.bindToggle(c)
	if err != nil {
		return err
	}

	likeCount, liked, err := h.likeRepository.ToggleLike(subjectType, subjectID, userID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Subject not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"like_count": likeCount, "is_liked": liked})
}

// ToggleFavorite flips a user's favorite on a subject and returns the
// resulting counter and favorited state.
func (h *EngagementHandler) ToggleFavorite(c echo.Context) error {
	subjectType, subjectID, userID, err := h.bindToggle(c)
	if err != nil {
		return err
	}

	favoriteCount, favorited, err := h.favoriteRepository.ToggleFavorite(subjectType, subjectID, userID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Subject not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"favorite_count": favoriteCount, "is_favorited": favorited})
}

// GetStatus reports a subject's stored counters together with the requesting
// user's own liked/favorited state.
func (h *EngagementHandler) GetStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("subject_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid subject ID")
	}
	subjectType, err := subjectTypeOrDefault(c.QueryParam("subject_type"))
	if err != nil {
		return err
	}

	userIDStr := c.QueryParam("user_id")
	if userIDStr == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing user ID")
	}
	userID, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	likeCount, favoriteCount, err := h.subjectRepository.GetCounters(subjectType, uint(id))
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Subject not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	liked, err := h.likeRepository.HasUserLiked(subjectType, uint(id), uint(userID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	favorited, err := h.favoriteRepository.HasUserFavorited(subjectType, uint(id), uint(userID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"like_count":     likeCount,
		"favorite_count": favoriteCount,
		"is_liked":       liked,
		"is_favorited":   favorited,
	})
}
