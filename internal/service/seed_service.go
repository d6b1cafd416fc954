package service

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"blog-platform/internal/domain"
	"blog-platform/internal/logger"
	"blog-platform/internal/metrics"
	"blog-platform/internal/repository"
	"blog-platform/internal/validator"
)

const (
	// ScannerBufferSize is the initial buffer size for the NDJSON scanner
	ScannerBufferSize = 64 * 1024 // 64KB
	// ScannerMaxBufferSize is the longest accepted NDJSON line
	ScannerMaxBufferSize = 1024 * 1024 // 1MB

	// DefaultSeedBatchSize is used when the configured batch size is not positive.
	DefaultSeedBatchSize = 500

	maxErrorSamples = 3
)

// SeedService loads users, content and comments from NDJSON files.
type SeedService struct {
	users     repository.UserRepository
	content   repository.ContentRepository
	comments  repository.CommentRepository
	validator *validator.Validator
	batchSize int
}

// NewSeedService creates a new SeedService.
func NewSeedService(
	users repository.UserRepository,
	content repository.ContentRepository,
	comments repository.CommentRepository,
	v *validator.Validator,
	batchSize int,
) *SeedService {
	if batchSize <= 0 {
		batchSize = DefaultSeedBatchSize
	}
	return &SeedService{
		users:     users,
		content:   content,
		comments:  comments,
		validator: v,
		batchSize: batchSize,
	}
}

// Seed reads one NDJSON record per line and inserts valid records in batches.
// Invalid and rejected records are reported per row; they do not stop the run.
func (s *SeedService) Seed(ctx context.Context, resourceType string, r io.Reader) (domain.ImportResult, error) {
	if !domain.IsValidResourceType(resourceType) {
		return domain.ImportResult{}, fmt.Errorf("%w: unsupported resource type %q", domain.ErrInvalidInput, resourceType)
	}

	start := time.Now()
	logger.InfoContext(ctx, "Seeding started", slog.String("resource_type", resourceType))

	var result domain.ImportResult
	var err error
	switch resourceType {
	case "users":
		result, err = seedNDJSON(ctx, s, resourceType, r, s.prepareUser, s.users.BulkInsert)
	case "content":
		result, err = seedNDJSON(ctx, s, resourceType, r, s.prepareContent, s.content.BulkInsert)
	case "comments":
		result, err = seedNDJSON(ctx, s, resourceType, r, s.prepareComment, s.comments.BulkInsert)
	}
	if err != nil {
		return result, err
	}

	logger.InfoContext(ctx, "Seeding completed",
		slog.String("resource_type", resourceType),
		slog.Int("total", result.TotalRecords),
		slog.Int("success", result.SuccessCount),
		slog.Int("failed", result.FailureCount),
		slog.Duration("elapsed", time.Since(start).Round(time.Millisecond)),
	)
	return result, nil
}

// Dump writes every stored record of resourceType as NDJSON, in the format Seed reads.
func (s *SeedService) Dump(ctx context.Context, resourceType string, w io.Writer) (int, error) {
	switch resourceType {
	case "users":
		return dumpNDJSON(ctx, w, s.users.StreamAll)
	case "content":
		return dumpNDJSON(ctx, w, s.content.StreamAll)
	case "comments":
		return dumpNDJSON(ctx, w, s.comments.StreamAll)
	default:
		return 0, fmt.Errorf("%w: unsupported resource type %q", domain.ErrInvalidInput, resourceType)
	}
}

func dumpNDJSON[T any](ctx context.Context, w io.Writer, stream func(context.Context, func(T) error) error) (int, error) {
	bw := bufio.NewWriter(w)
	count := 0

	err := stream(ctx, func(record T) error {
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		if _, err := bw.Write(append(data, '\n')); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return count, err
	}
	return count, bw.Flush()
}

func (s *SeedService) prepareUser(u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.Email = strings.TrimSpace(u.Email)
	u.Name = strings.TrimSpace(u.Name)
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	return s.validator.ValidateUser(u)
}

func (s *SeedService) prepareContent(c *domain.Content) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Slug == "" {
		c.Slug = Slugify(c.Title)
	}
	return s.validator.ValidateContent(c)
}

func (s *SeedService) prepareComment(c *domain.Comment) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.Text = strings.TrimSpace(c.Text)
	if c.ParentID != nil && strings.TrimSpace(*c.ParentID) == "" {
		c.ParentID = nil
	}
	return s.validator.ValidateComment(c)
}

type seedItem[T any] struct {
	record T
	rowNum int
}

// seedNDJSON parses r line by line, validates each record with prepare and
// hands full batches to insert.
func seedNDJSON[T any](
	ctx context.Context,
	s *SeedService,
	resourceType string,
	r io.Reader,
	prepare func(*T) error,
	insert func(context.Context, []T) domain.BatchResult,
) (domain.ImportResult, error) {
	result := domain.ImportResult{Errors: []domain.RecordError{}}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, ScannerBufferSize), ScannerMaxBufferSize)

	batch := make([]seedItem[T], 0, s.batchSize)
	rowNum := 0

	flush := func() {
		if len(batch) == 0 {
			return
		}
		processBatch(ctx, resourceType, batch, insert, &result)
		batch = batch[:0]
	}

	for scanner.Scan() {
		rowNum++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			// Blank lines don't count as records
			continue
		}
		result.TotalRecords++

		var record T
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			result.Errors = append(result.Errors, domain.RecordError{
				Row:    rowNum,
				Field:  "record",
				Reason: fmt.Sprintf("invalid JSON: %v", err),
			})
			result.FailureCount++
			continue
		}

		if err := prepare(&record); err != nil {
			result.Errors = append(result.Errors, validator.ConvertValidationErrors(rowNum, err)...)
			result.FailureCount++
			continue
		}

		batch = append(batch, seedItem[T]{record: record, rowNum: rowNum})
		if len(batch) >= s.batchSize {
			flush()
		}

		if err := ctx.Err(); err != nil {
			return result, err
		}
	}

	if err := scanner.Err(); err != nil {
		flush()
		return result, fmt.Errorf("read %s: %w", resourceType, err)
	}

	flush()
	return result, nil
}

// processBatch inserts one batch and maps the repository's 1-based batch rows back to file rows.
func processBatch[T any](
	ctx context.Context,
	resourceType string,
	batch []seedItem[T],
	insert func(context.Context, []T) domain.BatchResult,
	result *domain.ImportResult,
) {
	timer := metrics.NewTimer()

	rowMapping := make(map[int]int, len(batch))
	records := make([]T, len(batch))
	for i, item := range batch {
		records[i] = item.record
		rowMapping[i+1] = item.rowNum
	}

	batchResult := insert(ctx, records)
	metrics.ObserveSeedBatch(resourceType, timer.Seconds(), batchResult.SuccessCount, batchResult.FailedCount)

	result.ProcessedRecords += batchResult.SuccessCount + batchResult.FailedCount
	result.SuccessCount += batchResult.SuccessCount
	result.FailureCount += batchResult.FailedCount

	logger.InfoContext(ctx, "Seed batch done",
		slog.String("resource_type", resourceType),
		slog.Int("records", len(batch)),
		slog.Int("success", batchResult.SuccessCount),
		slog.Int("failed", batchResult.FailedCount),
		slog.Int("processed", result.ProcessedRecords),
	)

	for i, e := range batchResult.Errors {
		if i == maxErrorSamples {
			logger.WarnContext(ctx, "More batch errors omitted",
				slog.String("resource_type", resourceType),
				slog.Int("count", len(batchResult.Errors)-maxErrorSamples),
			)
			break
		}
		logger.WarnContext(ctx, "Seed batch error sample",
			slog.String("resource_type", resourceType),
			slog.Int("row", rowMapping[e.Row]),
			slog.String("field", e.Field),
			slog.String("reason", e.Reason),
		)
	}

	for i := range batchResult.Errors {
		if absRow, ok := rowMapping[batchResult.Errors[i].Row]; ok {
			batchResult.Errors[i].Row = absRow
		}
	}
	result.Errors = append(result.Errors, batchResult.Errors...)
}
