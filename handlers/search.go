package handlers

import (
	"errors"
	"net/http"

	"nestfind/models"
	"nestfind/services/search"
	"nestfind/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler exposes the listing search endpoints.
type SearchHandler struct {
	SearchService search.SearchService
}

// ListPropertiesHandler handles GET /api/properties: the full filter
// bundle over the whole collection, price-ranked.
func (h *SearchHandler) ListPropertiesHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var q models.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.SearchService.Search(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, search.ErrUnavailable) {
			logger.Error("Search unavailable", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Search temporarily unavailable. Try again later."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// NearbyPropertiesHandler handles GET /api/properties/nearby: listings
// within a radius of a center, distance-ranked.
func (h *SearchHandler) NearbyPropertiesHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var q models.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !q.HasCenter() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude are required"})
		return
	}

	result, err := h.SearchService.Nearby(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, search.ErrUnavailable) {
			logger.Error("Nearby search unavailable", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Search temporarily unavailable. Try again later."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
