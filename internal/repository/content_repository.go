package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-platform/internal/domain"
)

const contentColumns = `c.id, c.slug, c.title, c.description, c.body, c.excerpt, c.cover_image,
	c.published, c.featured, c.views, c.comment_count, c.author_id, c.created_at, c.updated_at,
	u.id, u.name, u.image`

const contentFrom = ` FROM content c JOIN users u ON u.id = c.author_id`

// PostgresContentRepository implements ContentRepository using PostgreSQL.
type PostgresContentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresContentRepository creates a new PostgresContentRepository.
func NewPostgresContentRepository(pool *pgxpool.Pool) *PostgresContentRepository {
	return &PostgresContentRepository{pool: pool}
}

// List returns content matching filter, newest first.
func (r *PostgresContentRepository) List(ctx context.Context, filter domain.ContentFilter) ([]domain.Content, error) {
	filter.Normalize()

	var conds []string
	var args []interface{}
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Published != nil {
		add("c.published = $%d", *filter.Published)
	}
	if filter.Featured != nil {
		add("c.featured = $%d", *filter.Featured)
	}
	if filter.AuthorID != "" {
		add("c.author_id::text = $%d", filter.AuthorID)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		add("(c.title ILIKE $%[1]d OR c.description ILIKE $%[1]d OR c.body ILIKE $%[1]d)", likePattern(q))
	}

	query := `SELECT ` + contentColumns + contentFrom
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Take, filter.Skip)
	query += fmt.Sprintf(` ORDER BY c.created_at DESC, c.id LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	return r.query(ctx, "list content", query, args...)
}

// ListByIDs returns the content with the given ids in the order of ids.
// Unknown or malformed ids are skipped.
func (r *PostgresContentRepository) ListByIDs(ctx context.Context, ids []string) ([]domain.Content, error) {
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if u, err := uuid.Parse(id); err == nil {
			parsed = append(parsed, u)
		}
	}
	if len(parsed) == 0 {
		return []domain.Content{}, nil
	}

	found, err := r.query(ctx, "list content by ids",
		`SELECT `+contentColumns+contentFrom+` WHERE c.id = ANY($1)`, parsed)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Content, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}
	ordered := make([]domain.Content, 0, len(found))
	for _, id := range parsed {
		if c, ok := byID[id.String()]; ok {
			ordered = append(ordered, c)
			delete(byID, id.String())
		}
	}
	return ordered, nil
}

// GetByID returns a content item by id.
func (r *PostgresContentRepository) GetByID(ctx context.Context, id string) (*domain.Content, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+contentColumns+contentFrom+` WHERE c.id = $1`, id)
	c, err := scanContent(row)
	if err != nil {
		return nil, mapError("get content", err)
	}
	return &c, nil
}

// SlugExists reports whether a content item already uses slug.
func (r *PostgresContentRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM content WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, mapError("check slug", err)
	}
	return exists, nil
}

// Create inserts a content item and fills in its id and timestamps.
func (r *PostgresContentRepository) Create(ctx context.Context, c *domain.Content) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO content (slug, title, description, body, excerpt, cover_image, published, featured, author_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, views, comment_count, created_at, updated_at
	`, c.Slug, c.Title, c.Description, c.Body, c.Excerpt, c.CoverImage, c.Published, c.Featured, c.AuthorID).
		Scan(&c.ID, &c.Views, &c.CommentCount, &c.CreatedAt, &c.UpdatedAt)
	return mapError("insert content", err)
}

// Update writes the editable fields of c.
func (r *PostgresContentRepository) Update(ctx context.Context, c *domain.Content) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE content
		SET slug = $2, title = $3, description = $4, body = $5, excerpt = $6,
		    cover_image = $7, published = $8, featured = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, c.ID, c.Slug, c.Title, c.Description, c.Body, c.Excerpt, c.CoverImage, c.Published, c.Featured).
		Scan(&c.UpdatedAt)
	return mapError("update content", err)
}

// Delete removes a content item with its comments, reactions and analytics.
func (r *PostgresContentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM content WHERE id = $1`, id)
	if err != nil {
		return mapError("delete content", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete content: %w", domain.ErrNotFound)
	}
	return nil
}

// Related returns other published content by the same author.
func (r *PostgresContentRepository) Related(ctx context.Context, c *domain.Content, limit int) ([]domain.Content, error) {
	return r.query(ctx, "list related content", `SELECT `+contentColumns+contentFrom+`
		WHERE c.author_id = $1 AND c.id <> $2 AND c.published
		ORDER BY c.created_at DESC, c.id
		LIMIT $3`, c.AuthorID, c.ID, limit)
}

// Stats aggregates the content of authorID, or of everyone when authorID is empty.
func (r *PostgresContentRepository) Stats(ctx context.Context, authorID string) (domain.DashboardStats, error) {
	var s domain.DashboardStats
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(views), 0)::bigint,
		       COUNT(*) FILTER (WHERE featured),
		       COALESCE(SUM(comment_count), 0)::bigint
		FROM content
		WHERE $1::text = '' OR author_id::text = $1
	`, authorID).Scan(&s.TotalPosts, &s.TotalViews, &s.FeaturedPosts, &s.TotalComments)
	if err != nil {
		return s, mapError("content stats", err)
	}
	return s, nil
}

// StreamReports streams one report row per content item of authorID (all when empty).
func (r *PostgresContentRepository) StreamReports(ctx context.Context, authorID string, callback func(domain.ContentReport) error) error {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.slug, c.title, c.published, c.views, c.comment_count,
		       COALESCE(a.upvotes, 0), COALESCE(a.downvotes, 0),
		       COALESCE(a.favorites, 0), COALESCE(a.bookmarks, 0),
		       CASE WHEN COALESCE(a.time_samples, 0) > 0 THEN a.time_total_ms / a.time_samples ELSE 0 END,
		       c.created_at
		FROM content c
		LEFT JOIN (
		    SELECT content_id,
		           SUM(upvotes)::bigint       AS upvotes,
		           SUM(downvotes)::bigint     AS downvotes,
		           SUM(favorites)::bigint     AS favorites,
		           SUM(bookmarks)::bigint     AS bookmarks,
		           SUM(time_total_ms)::bigint AS time_total_ms,
		           SUM(time_samples)::bigint  AS time_samples
		    FROM analytics_daily
		    GROUP BY content_id
		) a ON a.content_id = c.id
		WHERE $1::text = '' OR c.author_id::text = $1
		ORDER BY c.created_at DESC, c.id
	`, authorID)
	if err != nil {
		return fmt.Errorf("query content reports: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rep domain.ContentReport
		if err := rows.Scan(&rep.ID, &rep.Slug, &rep.Title, &rep.Published, &rep.Views, &rep.Comments,
			&rep.Upvotes, &rep.Downvotes, &rep.Favorites, &rep.Bookmarks, &rep.AvgTimeMs, &rep.CreatedAt); err != nil {
			return fmt.Errorf("scan content report: %w", err)
		}

		if err := callback(rep); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("callback error: %w", err)
		}
	}

	return rows.Err()
}

// BulkInsert inserts content in bulk using CTE with slug and author validation.
func (r *PostgresContentRepository) BulkInsert(ctx context.Context, content []domain.Content) domain.BatchResult {
	query, args := r.buildBulkInsertQuery(content)
	return runBulkInsert(ctx, r.pool, "content", "content", len(content), query, args)
}

func (r *PostgresContentRepository) buildBulkInsertQuery(content []domain.Content) (string, []interface{}) {
	const width = 12
	values := make([]string, 0, len(content))
	args := make([]interface{}, 0, len(content)*width)
	argNum := 1

	for i, c := range content {
		values = append(values, valuesPlaceholders(argNum, width))
		// Booleans, timestamps and row numbers travel as text for the VALUES clause
		args = append(args, c.ID, c.Slug, c.Title, c.Description, c.Body, c.Excerpt, c.CoverImage,
			fmt.Sprintf("%t", c.Published), fmt.Sprintf("%t", c.Featured), c.AuthorID,
			timestampArg(c.CreatedAt), fmt.Sprintf("%d", i+1))
		argNum += width
	}

	query := fmt.Sprintf(`
WITH input_data AS (
    SELECT id, slug, title, description, body, excerpt, cover_image, published, featured,
           author_id, created_at, row_num::integer AS row_num
    FROM (VALUES %s) AS t(id, slug, title, description, body, excerpt, cover_image, published,
                          featured, author_id, created_at, row_num)
),
first_occurrence AS (
    SELECT slug, MIN(row_num) AS first_row_num
    FROM input_data
    GROUP BY slug
),
invalid_rows AS (
    SELECT i.row_num, 'duplicate_slug_in_batch' AS error_reason
    FROM input_data i
    JOIN first_occurrence fo ON i.slug = fo.slug
    WHERE i.row_num > fo.first_row_num
    UNION ALL
    SELECT i.row_num, 'duplicate_slug'
    FROM input_data i
    JOIN first_occurrence fo ON i.slug = fo.slug AND i.row_num = fo.first_row_num
    WHERE EXISTS (SELECT 1 FROM content c WHERE c.slug = i.slug)
    UNION ALL
    SELECT i.row_num, 'author_not_found'
    FROM input_data i
    JOIN first_occurrence fo ON i.slug = fo.slug AND i.row_num = fo.first_row_num
    WHERE NOT EXISTS (SELECT 1 FROM content c WHERE c.slug = i.slug)
      AND NOT EXISTS (SELECT 1 FROM users u WHERE u.id::text = i.author_id)
),
valid_rows AS (
    SELECT * FROM input_data
    WHERE row_num NOT IN (SELECT row_num FROM invalid_rows)
),
inserted AS (
    INSERT INTO content (id, slug, title, description, body, excerpt, cover_image, published,
                         featured, author_id, created_at, updated_at)
    SELECT id::uuid, slug, title, description, body, excerpt, cover_image, published::boolean,
           featured::boolean, author_id::uuid,
           COALESCE(created_at::timestamptz, NOW()), COALESCE(created_at::timestamptz, NOW())
    FROM valid_rows
    ON CONFLICT (slug) DO NOTHING
    RETURNING slug
)
SELECT vr.row_num,
       i.slug IS NOT NULL AS success,
       CASE WHEN i.slug IS NULL THEN 'concurrent_duplicate_slug'::text ELSE NULL END AS error_message
FROM valid_rows vr
LEFT JOIN inserted i ON vr.slug = i.slug
UNION ALL
SELECT row_num, false AS success, error_reason FROM invalid_rows
ORDER BY row_num
`, strings.Join(values, ", "))

	return query, args
}

// StreamAll streams all content for export with O(1) memory.
func (r *PostgresContentRepository) StreamAll(ctx context.Context, callback func(domain.Content) error) error {
	rows, err := r.pool.Query(ctx, `SELECT `+contentColumns+contentFrom+` ORDER BY c.created_at`)
	if err != nil {
		return fmt.Errorf("query content: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return fmt.Errorf("scan content: %w", err)
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

func (r *PostgresContentRepository) query(ctx context.Context, op, sql string, args ...interface{}) ([]domain.Content, error) {
	return queryContent(ctx, r.pool, op, sql, args...)
}

// queryContent runs a query selecting contentColumns and collects the rows.
func queryContent(ctx context.Context, pool *pgxpool.Pool, op, sql string, args ...interface{}) ([]domain.Content, error) {
	rows, err := pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(op, err)
	}
	defer rows.Close()

	items := make([]domain.Content, 0)
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(op, err)
	}
	return items, nil
}

func scanContent(row rowScanner) (domain.Content, error) {
	var c domain.Content
	err := row.Scan(&c.ID, &c.Slug, &c.Title, &c.Description, &c.Body, &c.Excerpt, &c.CoverImage,
		&c.Published, &c.Featured, &c.Views, &c.CommentCount, &c.AuthorID, &c.CreatedAt, &c.UpdatedAt,
		&c.Author.ID, &c.Author.Name, &c.Author.Image)
	return c, err
}

// timestampArg renders t for a text VALUES column; the zero time becomes NULL.
func timestampArg(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}
