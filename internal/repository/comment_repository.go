package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"blog-platform/internal/domain"
)

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// ListByContent returns every comment of a content item as flat records with authors.
func (r *PostgresCommentRepository) ListByContent(ctx context.Context, contentID string) ([]domain.CommentRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT cm.id, cm.text, cm.created_at, cm.parent_id, u.id, u.name, u.image
		FROM comments cm
		JOIN users u ON u.id = cm.user_id
		WHERE cm.content_id = $1
		ORDER BY cm.created_at, cm.id
	`, contentID)
	if err != nil {
		return nil, mapError("list comments", err)
	}
	defer rows.Close()

	records := make([]domain.CommentRecord, 0)
	for rows.Next() {
		var rec domain.CommentRecord
		if err := rows.Scan(&rec.ID, &rec.Text, &rec.CreatedAt, &rec.ParentID,
			&rec.Author.ID, &rec.Author.Name, &rec.Author.Image); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list comments", err)
	}
	return records, nil
}

// GetByID returns a stored comment.
func (r *PostgresCommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	var c domain.Comment
	err := r.pool.QueryRow(ctx, `
		SELECT id, content_id, user_id, parent_id, text, created_at
		FROM comments
		WHERE id = $1
	`, id).Scan(&c.ID, &c.ContentID, &c.UserID, &c.ParentID, &c.Text, &c.CreatedAt)
	if err != nil {
		return nil, mapError("get comment", err)
	}
	return &c, nil
}

// Create inserts a comment and bumps the comment counter of its content in one transaction.
func (r *PostgresCommentRepository) Create(ctx context.Context, c *domain.Comment) (*domain.CommentRecord, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO comments (content_id, user_id, parent_id, text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, c.ContentID, c.UserID, c.ParentID, c.Text).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, mapError("insert comment", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE content SET comment_count = comment_count + 1 WHERE id = $1`, c.ContentID); err != nil {
		return nil, mapError("increment comment count", err)
	}

	rec := &domain.CommentRecord{
		ID:        c.ID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		ParentID:  c.ParentID,
	}
	err = tx.QueryRow(ctx, `SELECT id, name, image FROM users WHERE id = $1`, c.UserID).
		Scan(&rec.Author.ID, &rec.Author.Name, &rec.Author.Image)
	if err != nil {
		return nil, mapError("get comment author", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit comment: %w", err)
	}
	return rec, nil
}

// Delete removes a comment. Its replies move up to the deleted comment's parent,
// so no reply loses its thread.
func (r *PostgresCommentRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var contentID string
	var parentID *string
	err = tx.QueryRow(ctx, `SELECT content_id, parent_id FROM comments WHERE id = $1 FOR UPDATE`, id).
		Scan(&contentID, &parentID)
	if err != nil {
		return mapError("lock comment", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE comments SET parent_id = $2 WHERE parent_id = $1`, id, parentID); err != nil {
		return mapError("reparent replies", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id); err != nil {
		return mapError("delete comment", err)
	}
	if _, err := tx.Exec(ctx,
		`UPDATE content SET comment_count = GREATEST(comment_count - 1, 0) WHERE id = $1`, contentID); err != nil {
		return mapError("decrement comment count", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit comment delete: %w", err)
	}
	return nil
}

// BulkInsert inserts comments in bulk using CTE with FK validation.
func (r *PostgresCommentRepository) BulkInsert(ctx context.Context, comments []domain.Comment) domain.BatchResult {
	query, args := r.buildBulkInsertQuery(comments)
	return runBulkInsert(ctx, r.pool, "comment", "comment", len(comments), query, args)
}

func (r *PostgresCommentRepository) buildBulkInsertQuery(comments []domain.Comment) (string, []interface{}) {
	const width = 7
	values := make([]string, 0, len(comments))
	args := make([]interface{}, 0, len(comments)*width)
	argNum := 1

	for i, c := range comments {
		values = append(values, valuesPlaceholders(argNum, width))
		args = append(args, c.ID, c.ContentID, c.UserID, c.ParentID, c.Text,
			timestampArg(c.CreatedAt), fmt.Sprintf("%d", i+1))
		argNum += width
	}

	// Parents are not checked: a reply whose parent is missing is kept and
	// shown as a root when the thread is read.
	query := fmt.Sprintf(`
WITH input_data AS (
    SELECT id, content_id, user_id, parent_id, text, created_at, row_num::integer AS row_num
    FROM (VALUES %s) AS t(id, content_id, user_id, parent_id, text, created_at, row_num)
),
valid_content AS (
    SELECT id FROM content WHERE id::text IN (SELECT content_id FROM input_data)
),
valid_users AS (
    SELECT id FROM users WHERE id::text IN (SELECT user_id FROM input_data)
),
invalid_content AS (
    SELECT row_num, 'content_not_found' AS error_reason
    FROM input_data
    WHERE content_id NOT IN (SELECT id::text FROM valid_content)
),
invalid_user AS (
    SELECT row_num, 'user_not_found' AS error_reason
    FROM input_data
    WHERE user_id NOT IN (SELECT id::text FROM valid_users)
      AND content_id IN (SELECT id::text FROM valid_content)
),
valid_rows AS (
    SELECT * FROM input_data
    WHERE content_id IN (SELECT id::text FROM valid_content)
      AND user_id IN (SELECT id::text FROM valid_users)
),
inserted AS (
    INSERT INTO comments (id, content_id, user_id, parent_id, text, created_at)
    SELECT id::uuid, content_id::uuid, user_id::uuid, parent_id::uuid, text,
           COALESCE(created_at::timestamptz, NOW())
    FROM valid_rows
    ON CONFLICT (id) DO NOTHING
    RETURNING id, content_id
),
counted AS (
    UPDATE content c
    SET comment_count = c.comment_count + n.added
    FROM (SELECT content_id, COUNT(*) AS added FROM inserted GROUP BY content_id) n
    WHERE c.id = n.content_id
)
SELECT vr.row_num,
       i.id IS NOT NULL AS success,
       CASE WHEN i.id IS NULL THEN 'duplicate_comment_id'::text ELSE NULL END AS error_message
FROM valid_rows vr
LEFT JOIN inserted i ON vr.id::uuid = i.id
UNION ALL
SELECT row_num, false AS success, error_reason FROM invalid_content
UNION ALL
SELECT row_num, false AS success, error_reason FROM invalid_user
ORDER BY row_num
`, strings.Join(values, ", "))

	return query, args
}

// StreamAll streams all comments for export with O(1) memory.
func (r *PostgresCommentRepository) StreamAll(ctx context.Context, callback func(domain.Comment) error) error {
	rows, err := r.pool.Query(ctx, `
		SELECT id, content_id, user_id, parent_id, text, created_at
		FROM comments
		ORDER BY created_at
	`)
	if err != nil {
		return fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ContentID, &c.UserID, &c.ParentID, &c.Text, &c.CreatedAt); err != nil {
			return fmt.Errorf("scan comment: %w", err)
		}

		if err := callback(c); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("callback error: %w", err)
		}
	}

	return rows.Err()
}
