package handlers

import (
	"net/http"
	"strconv"

	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
	"github.com/BUCT-CS2201/HandheldMuseum/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// ugcPolicy strips all markup from user-supplied text before storage.
// Safe for concurrent use.
var ugcPolicy = bluemonday.StrictPolicy()

// CommentHandler handles HTTP requests related to comment threads
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	subjectRepository repositories.SubjectRepository
	userRepository    repositories.UserRepository
	imageRepository   repositories.ImageRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, subjectRepo repositories.SubjectRepository, userRepo repositories.UserRepository, imageRepo repositories.ImageRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		subjectRepository: subjectRepo,
		userRepository:    userRepo,
		imageRepository:   imageRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.GET("/comments/:subject_id", h.GetCommentTree)
	g.POST("/comments/:subject_id", h.CreateComment)
	g.POST("/comments/like/:comment_id", h.ToggleCommentLike)
	g.DELETE("/comments/:comment_id", h.DeleteComment)
}

// subjectTypeOrDefault validates an optional subject type. Clients that
// omit it get the moment feed.
func subjectTypeOrDefault(t string) (string, error) {
	if t == "" {
		return models.SubjectTypeMoment, nil
	}
	if !models.ValidSubjectType(t) {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Unknown subject type")
	}
	return t, nil
}

// GetCommentTree returns the nested comment tree for a subject. Only
// approved, non-deleted comments appear; pass user_id to get per-node
// is_liked flags.
func (h *CommentHandler) GetCommentTree(c echo.Context) error {
	subjectID, err := strconv.ParseUint(c.Param("subject_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid subject ID")
	}
	subjectType, err := subjectTypeOrDefault(c.QueryParam("subject_type"))
	if err != nil {
		return err
	}

	exists, err := h.subjectRepository.SubjectExists(subjectType, uint(subjectID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !exists {
		return echo.NewHTTPError(http.StatusNotFound, "Subject not found")
	}

	rows, err := h.commentRepository.GetThreadRows(subjectType, uint(subjectID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	names, err := h.userRepository.GetNamesByIDs(commentUserIDs(rows))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	images, err := h.imageRepository.GetApprovedByCommentIDs(commentIDs(rows))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	liked := map[uint]bool{}
	if userIDStr := c.QueryParam("user_id"); userIDStr != "" {
		userID, err := strconv.ParseUint(userIDStr, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
		}
		liked, err = h.commentRepository.GetLikedCommentIDs(uint(userID), commentIDs(rows))
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, buildCommentTree(rows, names, images, liked))
}

// CreateComment posts a comment (or a reply when parent_id is set) on a
// subject. New comments start pending and stay invisible until reviewed.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	subjectID, err := strconv.ParseUint(c.Param("subject_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid subject ID")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	subjectType, err := subjectTypeOrDefault(req.SubjectType)
	if err != nil {
		return err
	}

	exists, err := h.subjectRepository.SubjectExists(subjectType, uint(subjectID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !exists {
		return echo.NewHTTPError(http.StatusNotFound, "Subject not found")
	}

	user, err := h.userRepository.GetUserByID(req.UserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if user.CommentStatus != models.CommentStatusAllowed {
		return echo.NewHTTPError(http.StatusForbidden, "User is banned from commenting")
	}

	comment := &models.Comment{
		SubjectType: subjectType,
		SubjectID:   uint(subjectID),
		UserID:      req.UserID,
		Content:     ugcPolicy.Sanitize(req.Content),
		ParentID:    req.ParentID,
		Status:      models.ReviewStatusPending,
	}

	if err := h.commentRepository.CreateComment(comment, req.ImageIDs); err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Parent comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"comment_id": comment.ID,
		"message":    "Comment submitted, awaiting review",
	})
}

// ToggleCommentLike flips a user's like on a comment and returns the
// resulting counter and liked state.
func (h *CommentHandler) ToggleCommentLike(c echo.Context) error {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	var req models.ToggleLikeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	likeCount, liked, err := h.commentRepository.ToggleCommentLike(uint(commentID), req.UserID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"like_count": likeCount, "is_liked": liked})
}

// DeleteComment soft-deletes a comment owned by the requesting user
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	var req models.DeleteCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentRepository.GetCommentByID(uint(commentID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if comment.UserID != req.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this comment")
	}

	if err := h.commentRepository.SoftDeleteComment(comment); err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
