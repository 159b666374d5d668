package handlers

import (
	"net/http"
	"strconv"

	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
	"github.com/BUCT-CS2201/HandheldMuseum/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UserHandler handles user profile HTTP requests
type UserHandler struct {
	userRepository repositories.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepository: userRepo}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/:user_id", h.GetUserInfo)
	g.PUT("/users/:user_id", h.UpdateUserInfo)
	g.GET("/comment_status/:user_id", h.GetCommentStatus)
}

func (h *UserHandler) lookupUser(c echo.Context) (*models.User, error) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	user, err := h.userRepository.GetUserByID(uint(userID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return user, nil
}

// GetUserInfo retrieves a user's profile
func (h *UserHandler) GetUserInfo(c echo.Context) error {
	user, err := h.lookupUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUserInfo updates a user's profile fields
func (h *UserHandler) UpdateUserInfo(c echo.Context) error {
	user, err := h.lookupUser(c)
	if err != nil {
		return err
	}

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Gender != "" {
		user.Gender = req.Gender
	}
	if req.Age != 0 {
		user.Age = req.Age
	}
	if req.Description != "" {
		user.Description = req.Description
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.Wechat != "" {
		user.Wechat = req.Wechat
	}
	if req.QQ != "" {
		user.QQ = req.QQ
	}

	if err := h.userRepository.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, user)
}

// GetCommentStatus reports whether a user may comment. A banned user gets an
// operation-denied response rather than a generic server error.
func (h *UserHandler) GetCommentStatus(c echo.Context) error {
	user, err := h.lookupUser(c)
	if err != nil {
		return err
	}

	if user.CommentStatus != models.CommentStatusAllowed {
		return echo.NewHTTPError(http.StatusForbidden, echo.Map{
			"comment_status": user.CommentStatus,
			"name":           user.Name,
			"message":        "User is banned from commenting",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"comment_status": user.CommentStatus,
		"name":           user.Name,
	})
}
