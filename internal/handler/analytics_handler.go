package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/domain"
	"blog-platform/internal/logger"
	"blog-platform/internal/middleware"
	"blog-platform/internal/service"
)

// AnalyticsHandler handles view tracking, per-post analytics and the author dashboard.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsServiceInterface
	now              func() time.Time
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService service.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService, now: time.Now}
}

// TimeOnPageRequest reports how long a reader stayed on a post.
type TimeOnPageRequest struct {
	ContentID string `json:"contentId"`
	Ms        int64  `json:"ms"`
}

// NextContentRequest reports which post a reader opened next.
type NextContentRequest struct {
	FromID string `json:"fromId"`
	ToID   string `json:"toId"`
}

// DailyResponse is one day of analytics in API responses.
type DailyResponse struct {
	Date                 string   `json:"date"`
	Views                int64    `json:"views"`
	UniqueUsers          int64    `json:"uniqueUsers"`
	Upvotes              int64    `json:"upvotes"`
	Downvotes            int64    `json:"downvotes"`
	Favorites            int64    `json:"favorites"`
	Bookmarks            int64    `json:"bookmarks"`
	AvgTimeMs            int64    `json:"avgTimeMs"`
	RecentNextContentIDs []string `json:"recentNextContentIds"`
}

func toDailyResponse(d domain.AnalyticsDaily) DailyResponse {
	next := d.RecentNextContentIDs
	if next == nil {
		next = []string{}
	}
	return DailyResponse{
		Date:                 d.Date.UTC().Format(DateFormat),
		Views:                d.Views,
		UniqueUsers:          d.UniqueUsers,
		Upvotes:              d.Upvotes,
		Downvotes:            d.Downvotes,
		Favorites:            d.Favorites,
		Bookmarks:            d.Bookmarks,
		AvgTimeMs:            d.AvgTimeMs(),
		RecentNextContentIDs: next,
	}
}

// RecordView handles POST /api/v1/content/:id/views
func (h *AnalyticsHandler) RecordView(c *gin.Context) {
	if err := h.analyticsService.RecordView(c.Request.Context(), middleware.GetIdentity(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ContentAnalytics handles GET /api/v1/content/:id/analytics?days=
func (h *AnalyticsHandler) ContentAnalytics(c *gin.Context) {
	daily, err := h.analyticsService.ContentAnalytics(c.Request.Context(), middleware.GetIdentity(c),
		c.Param("id"), queryInt(c, "days", service.DefaultAnalyticsDays))
	if err != nil {
		respondError(c, err)
		return
	}

	days := make([]DailyResponse, 0, len(daily))
	for _, d := range daily {
		days = append(days, toDailyResponse(d))
	}
	c.JSON(http.StatusOK, gin.H{"contentId": c.Param("id"), "days": days})
}

// RecordTimeOnPage handles POST /api/v1/analytics/time
func (h *AnalyticsHandler) RecordTimeOnPage(c *gin.Context) {
	var req TimeOnPageRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.analyticsService.RecordTimeOnPage(c.Request.Context(), req.ContentID, req.Ms); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RecordNextContent handles POST /api/v1/analytics/next
func (h *AnalyticsHandler) RecordNextContent(c *gin.Context) {
	var req NextContentRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.analyticsService.RecordNextContent(c.Request.Context(), req.FromID, req.ToID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DashboardStats handles GET /api/v1/dashboard/stats
func (h *AnalyticsHandler) DashboardStats(c *gin.Context) {
	stats, err := h.analyticsService.DashboardStats(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ginStreamWriter wraps gin.ResponseWriter for streaming.
type ginStreamWriter struct {
	writer gin.ResponseWriter
}

func (w *ginStreamWriter) Write(data []byte) error {
	_, err := w.writer.Write(data)
	return err
}

func (w *ginStreamWriter) Flush() {
	w.writer.Flush()
}

// Export handles GET /api/v1/dashboard/export?format=csv|ndjson
func (h *AnalyticsHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", DefaultExportFormat)
	if !domain.IsValidFormat(format) {
		respondError(c, fmt.Errorf("%w: format must be csv or ndjson", domain.ErrInvalidInput))
		return
	}

	identity := middleware.GetIdentity(c)
	if identity == nil {
		respondError(c, domain.ErrUnauthorized)
		return
	}

	requestID := middleware.GetRequestID(c)
	logger.InfoContext(c.Request.Context(), "Streaming export started",
		slog.String("request_id", requestID),
		slog.String("user_id", identity.UserID),
		slog.String("format", format),
	)

	contentType := "application/x-ndjson"
	if format == "csv" {
		contentType = "text/csv"
	}

	c.Header("Content-Type", contentType)
	c.Header("Transfer-Encoding", "chunked")
	c.Header("X-Content-Type-Options", "nosniff")

	filename := "content-report-" + h.now().UTC().Format(DateFormat) + "." + format
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")

	count, err := h.analyticsService.ExportStream(c.Request.Context(), identity, format, &ginStreamWriter{writer: c.Writer})
	if err != nil {
		// Headers are already out; the truncated body is all the client gets.
		logger.ErrorContext(c.Request.Context(), "Streaming export failed",
			slog.String("request_id", requestID),
			slog.Int("count", count),
			slog.String("error", err.Error()),
		)
		return
	}

	logger.InfoContext(c.Request.Context(), "Streaming export completed",
		slog.String("request_id", requestID),
		slog.String("format", format),
		slog.Int("count", count),
	)
}
