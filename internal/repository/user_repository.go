package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"blog-platform/internal/domain"
)

const userColumns = `id, email, name, image, bio, role, password_hash, created_at, updated_at`

// PostgresUserRepository implements UserRepository using PostgreSQL.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository creates a new PostgresUserRepository.
func NewPostgresUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// Create inserts a user. ID and timestamps are filled in from the database.
func (r *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, name, image, bio, role, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, user.Email, user.Name, user.Image, user.Bio, user.Role, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	return mapError("insert user", err)
}

// GetByID returns a user by id.
func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, mapError("get user", err)
	}
	return &u, nil
}

// GetByEmail returns a user by email, compared case-insensitively.
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email)
	u, err := scanUser(row)
	if err != nil {
		return nil, mapError("get user by email", err)
	}
	return &u, nil
}

// Search matches users by name or email substring.
func (r *PostgresUserRepository) Search(ctx context.Context, query string, limit int) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE name ILIKE $1 OR email ILIKE $1
		ORDER BY name, id
		LIMIT $2
	`, likePattern(query), limit)
	if err != nil {
		return nil, mapError("search users", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// BulkInsert inserts users in bulk using CTE with pre-validation.
func (r *PostgresUserRepository) BulkInsert(ctx context.Context, users []domain.User) domain.BatchResult {
	query, args := r.buildBulkInsertQuery(users)
	return runBulkInsert(ctx, r.pool, "user", "email", len(users), query, args)
}

func (r *PostgresUserRepository) buildBulkInsertQuery(users []domain.User) (string, []interface{}) {
	values := make([]string, 0, len(users))
	args := make([]interface{}, 0, len(users)*7)
	argNum := 1

	for i, u := range users {
		values = append(values, valuesPlaceholders(argNum, 7))
		args = append(args, u.ID, strings.ToLower(u.Email), u.Name, u.Role, u.Image, u.Bio, fmt.Sprintf("%d", i+1))
		argNum += 7
	}

	// The query:
	// 1. Collects input data with row numbers
	// 2. Identifies emails that already exist in the DB
	// 3. Identifies in-batch duplicates (keep only first occurrence)
	// 4. Inserts valid rows and reports success only for rows actually inserted
	query := fmt.Sprintf(`
WITH input_data AS (
    SELECT id, email, name, role, image, bio, row_num::integer AS row_num
    FROM (VALUES %s) AS t(id, email, name, role, image, bio, row_num)
),
existing_emails AS (
    SELECT email FROM users WHERE email IN (SELECT email FROM input_data)
),
first_occurrence AS (
    SELECT email, MIN(row_num) AS first_row_num
    FROM input_data
    GROUP BY email
),
in_batch_duplicates AS (
    SELECT id.row_num, 'duplicate_email_in_batch' AS error_reason
    FROM input_data id
    JOIN first_occurrence fo ON id.email = fo.email
    WHERE id.row_num > fo.first_row_num
),
valid_rows AS (
    SELECT id, email, name, role, image, bio, row_num
    FROM input_data
    WHERE email NOT IN (SELECT email FROM existing_emails)
      AND row_num NOT IN (SELECT row_num FROM in_batch_duplicates)
),
invalid_rows AS (
    SELECT row_num, 'duplicate_email' AS error_reason
    FROM input_data
    WHERE email IN (SELECT email FROM existing_emails)
    UNION ALL
    SELECT row_num, error_reason FROM in_batch_duplicates
),
inserted AS (
    INSERT INTO users (id, email, name, role, image, bio, created_at, updated_at)
    SELECT id::uuid, email, name, role, image, bio, NOW(), NOW()
    FROM valid_rows
    ON CONFLICT (email) DO NOTHING
    RETURNING email
)
SELECT vr.row_num,
       i.email IS NOT NULL AS success,
       CASE WHEN i.email IS NULL THEN 'concurrent_duplicate_email'::text ELSE NULL END AS error_message
FROM valid_rows vr
LEFT JOIN inserted i ON vr.email = i.email
UNION ALL
SELECT row_num, false AS success, error_reason FROM invalid_rows
ORDER BY row_num
`, strings.Join(values, ", "))

	return query, args
}

// StreamAll streams all users for export with O(1) memory.
func (r *PostgresUserRepository) StreamAll(ctx context.Context, callback func(domain.User) error) error {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return fmt.Errorf("scan user: %w", err)
		}

		if err := callback(u); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("callback error: %w", err)
		}
	}

	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Image, &u.Bio, &u.Role, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// likePattern wraps q for a substring ILIKE match, escaping wildcards.
func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(q) + "%"
}
