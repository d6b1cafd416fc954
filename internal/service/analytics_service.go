package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"blog-platform/internal/domain"
	"blog-platform/internal/logger"
	"blog-platform/internal/metrics"
	"blog-platform/internal/repository"
)

const (
	// DefaultAnalyticsDays is the window of ContentAnalytics when none is given.
	DefaultAnalyticsDays = 30
	// MaxAnalyticsDays is the widest accepted ContentAnalytics window.
	MaxAnalyticsDays = 365

	exportFlushEvery = 100
)

var reportCSVHeader = []string{
	"id", "slug", "title", "published", "views", "comments",
	"upvotes", "downvotes", "favorites", "bookmarks", "avg_time_ms", "created_at",
}

// AnalyticsService records engagement and reports it back to authors.
type AnalyticsService struct {
	analytics repository.AnalyticsRepository
	content   repository.ContentRepository
	viewers   ViewerTracker
	now       func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(analytics repository.AnalyticsRepository, content repository.ContentRepository, viewers ViewerTracker) *AnalyticsService {
	return &AnalyticsService{
		analytics: analytics,
		content:   content,
		viewers:   viewers,
		now:       time.Now,
	}
}

// RecordView counts a view. A signed-in viewer counts once per content item and UTC day
// towards unique users.
func (s *AnalyticsService) RecordView(ctx context.Context, identity *domain.Identity, contentID string) error {
	unique := false
	viewer := "anonymous"
	if identity != nil {
		viewer = "user"
		first, err := s.viewers.MarkViewer(ctx, contentID, identity.UserID)
		if err != nil {
			// The view itself still counts.
			logger.WarnContext(ctx, "Unique viewer check failed",
				slog.String("content_id", contentID),
				slog.String("error", err.Error()),
			)
		}
		unique = first
	}

	views, err := s.analytics.RecordView(ctx, contentID, domain.StartOfUTCDay(s.now()), unique)
	if err != nil {
		if unique {
			// Let the next view of the day count as unique again.
			if ferr := s.viewers.ForgetViewer(ctx, contentID, identity.UserID); ferr != nil {
				logger.WarnContext(ctx, "Unique viewer release failed",
					slog.String("content_id", contentID),
					slog.String("error", ferr.Error()),
				)
			}
		}
		return fmt.Errorf("record view: %w", err)
	}

	metrics.ViewsTotal.WithLabelValues(viewer).Inc()
	logger.DebugContext(ctx, "View recorded",
		slog.String("content_id", contentID),
		slog.Int64("views", views),
		slog.Bool("unique", unique),
	)
	return nil
}

// RecordTimeOnPage adds a time-on-page sample in milliseconds.
func (s *AnalyticsService) RecordTimeOnPage(ctx context.Context, contentID string, ms int64) error {
	if contentID == "" || ms < 0 {
		return domain.ErrInvalidInput
	}
	if err := s.analytics.RecordTimeOnPage(ctx, contentID, domain.StartOfUTCDay(s.now()), ms); err != nil {
		return fmt.Errorf("record time on page: %w", err)
	}
	return nil
}

// RecordNextContent remembers that a reader went from fromID to toID.
func (s *AnalyticsService) RecordNextContent(ctx context.Context, fromID, toID string) error {
	if fromID == "" || toID == "" {
		return domain.ErrInvalidInput
	}
	if err := s.analytics.RecordNextContent(ctx, fromID, toID, domain.StartOfUTCDay(s.now())); err != nil {
		return fmt.Errorf("record next content: %w", err)
	}
	return nil
}

// ContentAnalytics returns the daily buckets of the last days days, oldest first.
// Only the author or an admin may read them.
func (s *AnalyticsService) ContentAnalytics(ctx context.Context, identity *domain.Identity, contentID string, days int) ([]domain.AnalyticsDaily, error) {
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}
	if days <= 0 {
		days = DefaultAnalyticsDays
	}
	if days > MaxAnalyticsDays {
		days = MaxAnalyticsDays
	}

	c, err := s.content.GetByID(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if !identity.CanModify(c.AuthorID) {
		return nil, domain.ErrForbidden
	}

	since := domain.StartOfUTCDay(s.now()).AddDate(0, 0, -(days - 1))
	daily, err := s.analytics.ListDaily(ctx, contentID, since)
	if err != nil {
		return nil, fmt.Errorf("list daily analytics: %w", err)
	}
	return daily, nil
}

// DashboardStats summarises the caller's content, or all content for an admin.
func (s *AnalyticsService) DashboardStats(ctx context.Context, identity *domain.Identity) (domain.DashboardStats, error) {
	if identity == nil {
		return domain.DashboardStats{}, domain.ErrUnauthorized
	}
	stats, err := s.content.Stats(ctx, scopeAuthor(identity))
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}
	return stats, nil
}

// ExportStream writes one report row per content item of the caller to writer.
func (s *AnalyticsService) ExportStream(ctx context.Context, identity *domain.Identity, format string, writer StreamWriter) (int, error) {
	if identity == nil {
		return 0, domain.ErrUnauthorized
	}
	if !domain.IsValidFormat(format) {
		return 0, fmt.Errorf("%w: unsupported format %q", domain.ErrInvalidInput, format)
	}

	timer := metrics.NewTimer()
	metrics.StartStreamingExport("content")

	var count int
	var err error
	if format == "csv" {
		count, err = s.streamCSV(ctx, identity, writer)
	} else {
		count, err = s.streamNDJSON(ctx, identity, writer)
	}

	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.EndStreamingExport("content", format, result, timer.Seconds(), count)

	if err != nil {
		return count, fmt.Errorf("stream content reports: %w", err)
	}
	logger.InfoContext(ctx, "Dashboard export completed",
		slog.String("user_id", identity.UserID),
		slog.String("format", format),
		slog.Int("count", count),
	)
	return count, nil
}

func (s *AnalyticsService) streamCSV(ctx context.Context, identity *domain.Identity, writer StreamWriter) (int, error) {
	csvWriter := csv.NewWriter(streamWriterAdapter{writer})
	if err := csvWriter.Write(reportCSVHeader); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	var count int
	err := s.content.StreamReports(ctx, scopeAuthor(identity), func(r domain.ContentReport) error {
		record := []string{
			r.ID,
			r.Slug,
			r.Title,
			strconv.FormatBool(r.Published),
			strconv.FormatInt(r.Views, 10),
			strconv.FormatInt(r.Comments, 10),
			strconv.FormatInt(r.Upvotes, 10),
			strconv.FormatInt(r.Downvotes, 10),
			strconv.FormatInt(r.Favorites, 10),
			strconv.FormatInt(r.Bookmarks, 10),
			strconv.FormatInt(r.AvgTimeMs, 10),
			r.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
		count++
		if count%exportFlushEvery == 0 {
			csvWriter.Flush()
			writer.Flush()
		}
		return nil
	})

	csvWriter.Flush()
	writer.Flush()
	if err != nil {
		return count, err
	}
	return count, csvWriter.Error()
}

func (s *AnalyticsService) streamNDJSON(ctx context.Context, identity *domain.Identity, writer StreamWriter) (int, error) {
	var count int
	err := s.content.StreamReports(ctx, scopeAuthor(identity), func(r domain.ContentReport) error {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		if err := writer.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
		count++
		if count%exportFlushEvery == 0 {
			writer.Flush()
		}
		return nil
	})
	writer.Flush()
	return count, err
}

// scopeAuthor limits dashboards to the caller's own content unless they are an admin.
func scopeAuthor(identity *domain.Identity) string {
	if identity.IsAdmin() {
		return ""
	}
	return identity.UserID
}

type streamWriterAdapter struct {
	w StreamWriter
}

func (a streamWriterAdapter) Write(p []byte) (int, error) {
	if err := a.w.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
