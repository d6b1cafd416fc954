package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/domain"
	"blog-platform/internal/logger"
	"blog-platform/internal/middleware"
	"blog-platform/internal/service"
)

// maxSeedFileSize caps uploaded NDJSON seed files
const maxSeedFileSize = 64 << 20 // 64MB

// SeedHandler lets admins load NDJSON fixtures over HTTP.
type SeedHandler struct {
	seedService service.SeedServiceInterface
}

// NewSeedHandler creates a new SeedHandler.
func NewSeedHandler(seedService service.SeedServiceInterface) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// Seed handles POST /api/v1/admin/seed (multipart with resource_type and file)
func (h *SeedHandler) Seed(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	if !identity.IsAdmin() {
		respondError(c, domain.ErrForbidden)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSeedFileSize)

	resourceType := c.PostForm("resource_type")
	if resourceType == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "resource_type is required"})
		return
	}

	if !domain.IsValidResourceType(resourceType) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "resource_type must be one of: users, content, comments"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "seed file is too large"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file is required"})
		return
	}
	defer file.Close()

	requestID := middleware.GetRequestID(c)
	result, err := h.seedService.Seed(c.Request.Context(), resourceType, file)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.WithUserID(identity.UserID).InfoContext(c.Request.Context(), "Seed upload processed",
		slog.String("request_id", requestID),
		slog.String("resource_type", resourceType),
		slog.String("filename", header.Filename),
		slog.Int("success", result.SuccessCount),
		slog.Int("failed", result.FailureCount),
	)
	c.JSON(http.StatusOK, result)
}
