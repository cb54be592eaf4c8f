package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const uploadDir = "uploads"

// UploadImage stores a product or order image under ./uploads and returns
// its public URL. The relay is best-effort: a failed upload must never block
// an order submission, so callers simply proceed without an image ref. A
// successfully uploaded image whose order later fails to create is left
// orphaned; there is no compensating delete.
func UploadImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}

		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload storage is unavailable"})
			return
		}

		name := uuid.NewString() + filepath.Ext(file.Filename)
		dst := filepath.Join(uploadDir, name)
		if err := c.SaveUploadedFile(file, dst); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "image was not saved"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": "/uploads/" + name})
	}
}
