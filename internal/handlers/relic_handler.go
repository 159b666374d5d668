package handlers

import (
	"net/http"
	"strconv"

	"github.com/BUCT-CS2201/HandheldMuseum/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// RelicHandler handles cultural-relic browsing requests
type RelicHandler struct {
	relicRepository repositories.RelicRepository
}

// NewRelicHandler creates a new RelicHandler
func NewRelicHandler(relicRepo repositories.RelicRepository) *RelicHandler {
	return &RelicHandler{relicRepository: relicRepo}
}

// RegisterRelicRoutes registers relic-related routes
func (h *RelicHandler) RegisterRelicRoutes(g *echo.Group) {
	g.GET("/relics", h.ListRelics)
	g.GET("/relics/:relic_id", h.GetRelicDetail)
}

// ListRelics retrieves the browsing list of relics
func (h *RelicHandler) ListRelics(c echo.Context) error {
	relics, err := h.relicRepository.ListRelics()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, relics)
}

// GetRelicDetail retrieves one relic with its images
func (h *RelicHandler) GetRelicDetail(c echo.Context) error {
	relicID, err := strconv.ParseUint(c.Param("relic_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid relic ID")
	}

	relic, err := h.relicRepository.GetRelicByID(uint(relicID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Relic not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, relic)
}
