package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"blog-platform/internal/domain"
	"blog-platform/internal/logger"
)

// runBulkInsert executes a CTE insert that reports one (row_num, success, error_message)
// row per input record. The transaction is committed only if at least one row went in.
func runBulkInsert(ctx context.Context, pool *pgxpool.Pool, repo, field string, n int, query string, args []interface{}) domain.BatchResult {
	// Pre-allocate errors slice to avoid expensive reallocations
	estimatedErrors := n / 10 // ~10% error rate estimate
	if estimatedErrors < 10 {
		estimatedErrors = 10
	}
	result := domain.BatchResult{
		Errors: make([]domain.RecordError, 0, estimatedErrors),
	}

	if n == 0 {
		return result
	}

	fail := func(reason string) domain.BatchResult {
		result.FailedCount = n
		result.SuccessCount = 0
		result.Errors = []domain.RecordError{{
			Row:    0,
			Field:  "database",
			Reason: reason,
		}}
		return result
	}

	if err := ctx.Err(); err != nil {
		return fail(fmt.Sprintf("context cancelled: %v", err))
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fail(fmt.Sprintf("failed to begin transaction: %v", err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return fail(fmt.Sprintf("bulk insert failed: %v", err))
	}

	for rows.Next() {
		var rowNum int
		var success bool
		var errorMsg *string

		if err := rows.Scan(&rowNum, &success, &errorMsg); err != nil {
			logger.Default().Error("Failed to scan bulk insert result row",
				slog.String("repository", repo),
				slog.String("error", err.Error()))
			result.FailedCount++
			result.Errors = append(result.Errors, domain.RecordError{
				Row:    0,
				Field:  "database",
				Reason: fmt.Sprintf("scan error: %v", err),
			})
			continue
		}

		if success {
			result.SuccessCount++
			continue
		}

		result.FailedCount++
		reason := "unknown error"
		if errorMsg != nil {
			reason = *errorMsg
		}
		result.Errors = append(result.Errors, domain.RecordError{
			Row:    rowNum,
			Field:  field,
			Reason: reason,
		})
	}
	rows.Close()

	if err := rows.Err(); err != nil {
		return fail(fmt.Sprintf("error reading results: %v", err))
	}

	if result.SuccessCount > 0 {
		if err := tx.Commit(ctx); err != nil {
			return fail(fmt.Sprintf("failed to commit transaction: %v", err))
		}
	}

	return result
}

// valuesPlaceholders renders "($1, $2, ...)" for one VALUES row starting at argNum.
func valuesPlaceholders(argNum, width int) string {
	s := "("
	for i := 0; i < width; i++ {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("$%d", argNum+i)
	}
	return s + ")"
}
