package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"blog-platform/internal/domain"
)

// PostgresPasswordResetRepository implements PasswordResetRepository using PostgreSQL.
type PostgresPasswordResetRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPasswordResetRepository creates a new PostgresPasswordResetRepository.
func NewPostgresPasswordResetRepository(pool *pgxpool.Pool) *PostgresPasswordResetRepository {
	return &PostgresPasswordResetRepository{pool: pool}
}

// Create stores a reset token.
func (r *PostgresPasswordResetRepository) Create(ctx context.Context, t *domain.PasswordResetToken) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO password_reset_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, t.UserID, t.Token, t.ExpiresAt).Scan(&t.ID, &t.CreatedAt)
	return mapError("insert password reset token", err)
}

// Consume sets the password of the token's owner and invalidates every open token of that user.
// A used or expired token yields ErrTokenExpired, an unknown one ErrNotFound.
func (r *PostgresPasswordResetRepository) Consume(ctx context.Context, token, passwordHash string, now time.Time) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var userID string
	var expiresAt time.Time
	var used bool
	err = tx.QueryRow(ctx, `
		SELECT user_id, expires_at, used
		FROM password_reset_tokens
		WHERE token = $1
		FOR UPDATE
	`, token).Scan(&userID, &expiresAt, &used)
	if err != nil {
		return mapError("get password reset token", err)
	}
	if used || !now.Before(expiresAt) {
		return fmt.Errorf("consume password reset token: %w", domain.ErrTokenExpired)
	}

	if _, err := tx.Exec(ctx, `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`,
		userID, passwordHash); err != nil {
		return mapError("update password", err)
	}
	if _, err := tx.Exec(ctx, `UPDATE password_reset_tokens SET used = TRUE WHERE user_id = $1 AND NOT used`,
		userID); err != nil {
		return mapError("invalidate password reset tokens", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit password reset: %w", err)
	}
	return nil
}
