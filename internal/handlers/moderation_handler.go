package handlers

import (
	"net/http"
	"strconv"

	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
	"github.com/BUCT-CS2201/HandheldMuseum/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ModerationHandler handles reviewer decisions on pending content
type ModerationHandler struct {
	commentRepository repositories.CommentRepository
	momentRepository  repositories.MomentRepository
	imageRepository   repositories.ImageRepository
}

// NewModerationHandler creates a new ModerationHandler
func NewModerationHandler(commentRepo repositories.CommentRepository, momentRepo repositories.MomentRepository, imageRepo repositories.ImageRepository) *ModerationHandler {
	return &ModerationHandler{
		commentRepository: commentRepo,
		momentRepository:  momentRepo,
		imageRepository:   imageRepo,
	}
}

// RegisterModerationRoutes registers admin review routes
func (h *ModerationHandler) RegisterModerationRoutes(g *echo.Group) {
	g.GET("/comments/pending", h.ListPendingComments)
	g.GET("/moments/pending", h.ListPendingMoments)
	g.POST("/comments/:id/review", h.ReviewComment)
	g.POST("/moments/:id/review", h.ReviewMoment)
	g.POST("/images/:id/review", h.ReviewImage)
}

func bindReview(c echo.Context) (id uint, status int, err error) {
	rawID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid ID")
	}

	var req models.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status = models.ReviewStatusApproved
	if req.Status == "rejected" {
		status = models.ReviewStatusRejected
	}
	return uint(rawID), status, nil
}

// ListPendingComments lists comments awaiting review
func (h *ModerationHandler) ListPendingComments(c echo.Context) error {
	comments, err := h.commentRepository.ListPending(100)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, comments)
}

// ListPendingMoments lists moments awaiting review
func (h *ModerationHandler) ListPendingMoments(c echo.Context) error {
	moments, err := h.momentRepository.ListPending(100)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, moments)
}

// ReviewComment records a moderation decision for a comment
func (h *ModerationHandler) ReviewComment(c echo.Context) error {
	id, status, err := bindReview(c)
	if err != nil {
		return err
	}
	if err := h.commentRepository.SetStatus(id, status); err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "status": status})
}

// ReviewMoment records a moderation decision for a moment
func (h *ModerationHandler) ReviewMoment(c echo.Context) error {
	id, status, err := bindReview(c)
	if err != nil {
		return err
	}
	if err := h.momentRepository.SetStatus(id, status); err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Moment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "status": status})
}

// ReviewImage records a moderation decision for an uploaded image
func (h *ModerationHandler) ReviewImage(c echo.Context) error {
	id, status, err := bindReview(c)
	if err != nil {
		return err
	}
	if err := h.imageRepository.SetStatus(id, status); err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Image not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "status": status})
}
