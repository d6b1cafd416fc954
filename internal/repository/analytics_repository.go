package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-platform/internal/domain"
)

// Daily counter columns that reactions and bookmarks adjust.
const (
	counterUpvotes   = "upvotes"
	counterDownvotes = "downvotes"
	counterFavorites = "favorites"
	counterBookmarks = "bookmarks"
)

var dailyCounters = map[string]bool{
	counterUpvotes:   true,
	counterDownvotes: true,
	counterFavorites: true,
	counterBookmarks: true,
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// bumpDaily adds delta to one counter of the (contentID, day) bucket, creating it if needed.
// Counters may go negative on a day when more was removed than added.
func bumpDaily(ctx context.Context, q execer, contentID string, day time.Time, column string, delta int) error {
	if !dailyCounters[column] {
		return fmt.Errorf("unknown analytics counter %q", column)
	}
	_, err := q.Exec(ctx, fmt.Sprintf(`
		INSERT INTO analytics_daily (content_id, date, %[1]s)
		VALUES ($1, $2, $3)
		ON CONFLICT (content_id, date) DO UPDATE
		SET %[1]s = analytics_daily.%[1]s + EXCLUDED.%[1]s
	`, column), contentID, domain.StartOfUTCDay(day), delta)
	if err != nil {
		return mapError("update daily "+column, err)
	}
	return nil
}

// PostgresAnalyticsRepository implements AnalyticsRepository using PostgreSQL.
type PostgresAnalyticsRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAnalyticsRepository creates a new PostgresAnalyticsRepository.
func NewPostgresAnalyticsRepository(pool *pgxpool.Pool) *PostgresAnalyticsRepository {
	return &PostgresAnalyticsRepository{pool: pool}
}

// RecordView increments the lifetime view counter of a content item and its daily bucket.
// It returns the new lifetime count.
func (r *PostgresAnalyticsRepository) RecordView(ctx context.Context, contentID string, day time.Time, unique bool) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var views int64
	err = tx.QueryRow(ctx, `UPDATE content SET views = views + 1 WHERE id = $1 RETURNING views`, contentID).Scan(&views)
	if err != nil {
		return 0, mapError("increment views", err)
	}

	uniqueDelta := 0
	if unique {
		uniqueDelta = 1
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO analytics_daily (content_id, date, views, unique_users)
		VALUES ($1, $2, 1, $3)
		ON CONFLICT (content_id, date) DO UPDATE
		SET views = analytics_daily.views + 1,
		    unique_users = analytics_daily.unique_users + EXCLUDED.unique_users
	`, contentID, domain.StartOfUTCDay(day), uniqueDelta)
	if err != nil {
		return 0, mapError("update daily views", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit view: %w", err)
	}
	return views, nil
}

// RecordTimeOnPage adds one time-on-page sample to the daily bucket.
func (r *PostgresAnalyticsRepository) RecordTimeOnPage(ctx context.Context, contentID string, day time.Time, ms int64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO analytics_daily (content_id, date, time_total_ms, time_samples)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (content_id, date) DO UPDATE
		SET time_total_ms = analytics_daily.time_total_ms + EXCLUDED.time_total_ms,
		    time_samples = analytics_daily.time_samples + 1
	`, contentID, domain.StartOfUTCDay(day), ms)
	return mapError("record time on page", err)
}

// RecordNextContent prepends nextContentID to the bucket's recent list, keeping the newest entries.
func (r *PostgresAnalyticsRepository) RecordNextContent(ctx context.Context, contentID, nextContentID string, day time.Time) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO analytics_daily (content_id, date, recent_next_content_ids)
		VALUES ($1, $2, ARRAY[$3::uuid])
		ON CONFLICT (content_id, date) DO UPDATE
		SET recent_next_content_ids =
		    (ARRAY[$3::uuid] || analytics_daily.recent_next_content_ids)[1:%d]
	`, domain.MaxRecentNextContent), contentID, domain.StartOfUTCDay(day), nextContentID)
	return mapError("record next content", err)
}

// ListDaily returns the buckets of a content item from since onwards, oldest first.
func (r *PostgresAnalyticsRepository) ListDaily(ctx context.Context, contentID string, since time.Time) ([]domain.AnalyticsDaily, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT content_id, date, views, unique_users, upvotes, downvotes, favorites, bookmarks,
		       time_total_ms, time_samples, recent_next_content_ids
		FROM analytics_daily
		WHERE content_id = $1 AND date >= $2
		ORDER BY date
	`, contentID, domain.StartOfUTCDay(since))
	if err != nil {
		return nil, mapError("list daily analytics", err)
	}
	defer rows.Close()

	buckets := make([]domain.AnalyticsDaily, 0)
	for rows.Next() {
		var a domain.AnalyticsDaily
		if err := rows.Scan(&a.ContentID, &a.Date, &a.Views, &a.UniqueUsers, &a.Upvotes, &a.Downvotes,
			&a.Favorites, &a.Bookmarks, &a.TimeTotalMs, &a.TimeSamples, &a.RecentNextContentIDs); err != nil {
			return nil, fmt.Errorf("scan daily analytics: %w", err)
		}
		buckets = append(buckets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list daily analytics", err)
	}
	return buckets, nil
}
