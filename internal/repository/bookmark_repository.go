package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"blog-platform/internal/domain"
)

// PostgresBookmarkRepository implements BookmarkRepository using PostgreSQL.
type PostgresBookmarkRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewPostgresBookmarkRepository creates a new PostgresBookmarkRepository.
func NewPostgresBookmarkRepository(pool *pgxpool.Pool) *PostgresBookmarkRepository {
	return &PostgresBookmarkRepository{pool: pool, now: time.Now}
}

// Toggle saves a content item for the user, or unsaves it when already saved.
func (r *PostgresBookmarkRepository) Toggle(ctx context.Context, contentID, userID string) (domain.ToggleResult, error) {
	day := r.now()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.ToggleResult{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `DELETE FROM bookmarks WHERE content_id = $1 AND user_id = $2`, contentID, userID)
	if err != nil {
		return domain.ToggleResult{}, mapError("delete bookmark", err)
	}

	var result domain.ToggleResult
	delta := 1
	if tag.RowsAffected() > 0 {
		result.Removed = true
		delta = -1
	} else {
		if _, err := tx.Exec(ctx, `INSERT INTO bookmarks (content_id, user_id) VALUES ($1, $2)`, contentID, userID); err != nil {
			return domain.ToggleResult{}, mapError("insert bookmark", err)
		}
		result.Active = true
	}

	if err := bumpDaily(ctx, tx, contentID, day, counterBookmarks, delta); err != nil {
		return domain.ToggleResult{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.ToggleResult{}, fmt.Errorf("commit bookmark: %w", err)
	}
	return result, nil
}

// IsSaved reports whether the user bookmarked the content item.
func (r *PostgresBookmarkRepository) IsSaved(ctx context.Context, contentID, userID string) (bool, error) {
	var saved bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM bookmarks WHERE content_id = $1 AND user_id = $2)
	`, contentID, userID).Scan(&saved)
	if err != nil {
		return false, mapError("check bookmark", err)
	}
	return saved, nil
}

// ListContent returns the content a user bookmarked, most recent first.
func (r *PostgresBookmarkRepository) ListContent(ctx context.Context, userID string) ([]domain.Content, error) {
	return queryContent(ctx, r.pool, "list bookmarked content", `SELECT `+contentColumns+contentFrom+`
		JOIN bookmarks b ON b.content_id = c.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC, c.id`, userID)
}
