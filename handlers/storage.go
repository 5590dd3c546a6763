package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"nestfind/services/storage"
	"nestfind/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler exposes listing-image uploads.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// UploadImageHandler handles POST /api/images. The file is staged to a
// temp path and uploaded under the listing-images folder.
func (h *StorageHandler) UploadImageHandler(c *gin.Context) {
	logger := utils.GetLogger()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	uploaded, err := h.StorageSvc.UploadImage(c.Request.Context(), tempFilePath, "listings/images")
	if err != nil {
		logger.Error("Image upload failed", zap.String("file", fileHeader.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "image uploaded successfully",
		"image":   uploaded,
	})
}
