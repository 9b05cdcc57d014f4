package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rentalkita/rentalkita-backend/internal/services"
)

// UploadDocument accepts a multipart identity-document upload (fields: file,
// type) and returns the stored object's public URL. Validation failures are
// 400s the form can show per-document; storage failures are generic 500s.
func UploadDocument() gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := c.PostForm("type")
		file, err := c.FormFile("file")
		if err != nil || kind == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File dan tipe dokumen wajib diisi."})
			return
		}

		url, err := services.UploadDocument(kind, file)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownDocumentKind):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Tipe dokumen tidak didukung."})
			case errors.Is(err, services.ErrFileTooLarge):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Ukuran file maksimal 5MB."})
			case errors.Is(err, services.ErrUnsupportedFormat):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Format file tidak didukung."})
			default:
				zap.S().Errorw("document upload failed", "kind", kind, "filename", file.Filename, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengunggah file, coba lagi."})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}
