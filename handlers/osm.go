package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"nestfind/services/osm"
	"nestfind/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OSMHandler exposes the OpenStreetMap accommodation search.
type OSMHandler struct {
	OSMService osm.OSMService
}

// SearchAccommodationHandler handles GET /api/osm/search. It geocodes the
// free-text query and returns real accommodations around it.
func (h *OSMHandler) SearchAccommodationHandler(c *gin.Context) {
	logger := utils.GetLogger()

	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	radiusKm := 2.0
	if raw := c.Query("radius_km"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "radius_km must be a non-negative number"})
			return
		}
		radiusKm = parsed
	}

	types := c.QueryArray("accommodation_types")

	result, err := h.OSMService.SearchAccommodation(c.Request.Context(), query, radiusKm, types)
	if err != nil {
		if errors.Is(err, osm.ErrUpstream) {
			logger.Error("OSM upstream failure", zap.String("query", query), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Accommodation search service unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
