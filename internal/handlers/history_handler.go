package handlers

import (
	"net/http"
	"strconv"

	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
	"github.com/BUCT-CS2201/HandheldMuseum/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// HistoryHandler handles browsing-history requests backed by MongoDB
type HistoryHandler struct {
	historyRepository repositories.HistoryRepository
	subjectRepository repositories.SubjectRepository
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(historyRepo repositories.HistoryRepository, subjectRepo repositories.SubjectRepository) *HistoryHandler {
	return &HistoryHandler{
		historyRepository: historyRepo,
		subjectRepository: subjectRepo,
	}
}

// RegisterHistoryRoutes registers history-related routes
func (h *HistoryHandler) RegisterHistoryRoutes(g *echo.Group) {
	g.POST("/history", h.RecordView)
	g.GET("/history/:user_id", h.GetHistory)
	g.DELETE("/history/:user_id", h.ClearHistory)
}

// RecordView appends one browsing event to a user's history
func (h *HistoryHandler) RecordView(c echo.Context) error {
	var req models.RecordViewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	exists, err := h.subjectRepository.SubjectExists(req.SubjectType, req.SubjectID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !exists {
		return echo.NewHTTPError(http.StatusNotFound, "Subject not found")
	}

	event := &models.ViewEvent{
		UserID:      req.UserID,
		SubjectType: req.SubjectType,
		SubjectID:   req.SubjectID,
	}

	if err := h.historyRepository.RecordView(c.Request().Context(), event); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, event)
}

// GetHistory retrieves a user's browsing history, most recent first
func (h *HistoryHandler) GetHistory(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	skip := int64(0)
	limit := int64(50)
	if v := c.QueryParam("skip"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	events, err := h.historyRepository.GetHistoryByUser(c.Request().Context(), uint(userID), skip, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, events)
}

// ClearHistory deletes a user's entire browsing history
func (h *HistoryHandler) ClearHistory(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if err := h.historyRepository.ClearHistory(c.Request().Context(), uint(userID)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
