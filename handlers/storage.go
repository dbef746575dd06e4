package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"pressroom/services/storage"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles media uploads backing articles and
// verification documents.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// allowedBuckets defines permitted buckets for uploads.
var allowedBuckets = map[string]bool{
	"images":    true,
	"videos":    true,
	"documents": true,
}

// UploadFileHandler handles POST /api/storage/:type/:bucket.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	fileType := c.Param("type")
	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bucket; allowed values are 'images', 'videos' and 'documents'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	destFolder := fileType + "s/" + bucket

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, destFolder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, fileType, publicID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"publicId": publicID,
		"url":      downloadURL,
	})
}

// SignedURLHandler handles GET /api/storage/:type/:publicId/url with a
// short-lived signed URL for restricted assets.
func (h *StorageHandler) SignedURLHandler(c *gin.Context) {
	fileType := c.Param("type")
	publicID := c.Param("publicId")

	url, err := h.StorageSvc.GetSecureDownloadURL(c, fileType, publicID, 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign URL", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// DeleteFileHandler handles DELETE /api/storage/:publicId.
func (h *StorageHandler) DeleteFileHandler(c *gin.Context) {
	if err := h.StorageSvc.DeleteFile(c, c.Param("publicId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}
