package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"blog-platform/internal/domain"
)

// PostgresRatingRepository implements RatingRepository using PostgreSQL.
type PostgresRatingRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRatingRepository creates a new PostgresRatingRepository.
func NewPostgresRatingRepository(pool *pgxpool.Pool) *PostgresRatingRepository {
	return &PostgresRatingRepository{pool: pool}
}

// Upsert stores the user's rating of a content item, replacing an earlier one.
func (r *PostgresRatingRepository) Upsert(ctx context.Context, contentID, userID string, value int) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO ratings (content_id, user_id, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (content_id, user_id) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`, contentID, userID, value)
	return mapError("upsert rating", err)
}

// Summary returns the average and count of a content item's ratings,
// plus the rating of userID when set.
func (r *PostgresRatingRepository) Summary(ctx context.Context, contentID, userID string) (domain.RatingSummary, error) {
	var s domain.RatingSummary
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(AVG(value), 0)::float8,
		       COUNT(*),
		       MAX(value) FILTER (WHERE user_id::text = $2)::int
		FROM ratings
		WHERE content_id = $1
	`, contentID, userID).Scan(&s.Average, &s.Count, &s.UserValue)
	if err != nil {
		return s, mapError("rating summary", err)
	}
	return s, nil
}
