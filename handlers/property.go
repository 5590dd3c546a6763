package handlers

import (
	"errors"
	"net/http"
	"strconv"

	propertyRepo "nestfind/database/repository/property"
	"nestfind/middleware"
	"nestfind/models"
	"nestfind/services/property"
	"nestfind/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PropertyHandler exposes the listing lifecycle endpoints.
type PropertyHandler struct {
	PropertyService property.PropertyService
}

// CreatePropertyHandler handles POST /api/properties.
func (h *PropertyHandler) CreatePropertyHandler(c *gin.Context) {
	logger := utils.GetLogger()

	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	var in models.PropertyCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.PropertyService.Create(c.Request.Context(), in, ownerID)
	if err != nil {
		logger.Error("Failed to create property", zap.Int64("owner_id", ownerID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetPropertyHandler handles GET /api/properties/:id.
func (h *PropertyHandler) GetPropertyHandler(c *gin.Context) {
	id, err := parsePropertyID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.PropertyService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdatePropertyHandler handles PUT /api/properties/:id.
func (h *PropertyHandler) UpdatePropertyHandler(c *gin.Context) {
	logger := utils.GetLogger()

	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	id, err := parsePropertyID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var in models.PropertyUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.PropertyService.Update(c.Request.Context(), id, ownerID, in)
	if err != nil {
		switch {
		case errors.Is(err, propertyRepo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		case errors.Is(err, property.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to modify this property"})
		default:
			logger.Error("Failed to update property", zap.Int64("id", id), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePropertyHandler handles DELETE /api/properties/:id. Listings are
// soft-deleted by marking them unavailable.
func (h *PropertyHandler) DeletePropertyHandler(c *gin.Context) {
	logger := utils.GetLogger()

	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	id, err := parsePropertyID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.PropertyService.SoftDelete(c.Request.Context(), id, ownerID); err != nil {
		switch {
		case errors.Is(err, propertyRepo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		case errors.Is(err, property.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to modify this property"})
		default:
			logger.Error("Failed to delete property", zap.Int64("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// MyPropertiesHandler handles GET /api/properties/user/my-properties.
func (h *PropertyHandler) MyPropertiesHandler(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	properties, err := h.PropertyService.GetByOwner(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": len(properties), "properties": properties})
}

func parsePropertyID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid property id")
	}
	return id, nil
}
