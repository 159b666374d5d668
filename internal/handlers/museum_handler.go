package handlers

import (
	"net/http"
	"strconv"

	"github.com/BUCT-CS2201/HandheldMuseum/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// MuseumHandler handles museum browsing requests
type MuseumHandler struct {
	museumRepository repositories.MuseumRepository
}

// NewMuseumHandler creates a new MuseumHandler
func NewMuseumHandler(museumRepo repositories.MuseumRepository) *MuseumHandler {
	return &MuseumHandler{museumRepository: museumRepo}
}

// RegisterMuseumRoutes registers museum-related routes
func (h *MuseumHandler) RegisterMuseumRoutes(g *echo.Group) {
	g.GET("/museums", h.ListMuseums)
	g.GET("/museums/ranking", h.GetRanking)
	g.GET("/museums/:museum_id", h.GetMuseumDetail)
	g.GET("/museums/:museum_id/relics", h.GetMuseumRelics)
	g.GET("/notices", h.ListNotices)
}

// ListMuseums retrieves all museums with their display image
func (h *MuseumHandler) ListMuseums(c echo.Context) error {
	museums, err := h.museumRepository.ListMuseums()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, museums)
}

// GetMuseumDetail retrieves one museum's detail
func (h *MuseumHandler) GetMuseumDetail(c echo.Context) error {
	museumID, err := strconv.ParseUint(c.Param("museum_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid museum ID")
	}

	museum, err := h.museumRepository.GetMuseumByID(uint(museumID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Museum not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, museum)
}

// GetMuseumRelics retrieves the relics held by one museum
func (h *MuseumHandler) GetMuseumRelics(c echo.Context) error {
	museumID, err := strconv.ParseUint(c.Param("museum_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid museum ID")
	}

	relics, err := h.museumRepository.GetRelicsByMuseum(uint(museumID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, relics)
}

// GetRanking ranks museums by relic count
func (h *MuseumHandler) GetRanking(c echo.Context) error {
	ranking, err := h.museumRepository.GetRanking()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, ranking)
}

// ListNotices retrieves all museum announcements
func (h *MuseumHandler) ListNotices(c echo.Context) error {
	notices, err := h.museumRepository.ListNotices()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, notices)
}
