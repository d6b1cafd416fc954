package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/media"
	"blog-platform/internal/middleware"
	"blog-platform/internal/service"
)

// MediaHandler handles image uploads.
type MediaHandler struct {
	mediaService service.MediaServiceInterface
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(mediaService service.MediaServiceInterface) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload handles POST /api/v1/media (multipart/form-data with a "file" field)
func (h *MediaHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, media.MaxUploadSize+maxMultipartOverhead)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, media.ErrTooLarge)
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to open file"})
		return
	}
	defer file.Close()

	url, err := h.mediaService.Upload(c.Request.Context(), middleware.GetIdentity(c), media.Upload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
