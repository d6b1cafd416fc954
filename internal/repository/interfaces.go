package repository

import (
	"context"
	"time"

	"blog-platform/internal/domain"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Search(ctx context.Context, query string, limit int) ([]domain.User, error)
	BulkInsert(ctx context.Context, users []domain.User) domain.BatchResult
	StreamAll(ctx context.Context, callback func(domain.User) error) error
}

// ContentRepository defines methods for content data access.
type ContentRepository interface {
	List(ctx context.Context, filter domain.ContentFilter) ([]domain.Content, error)
	ListByIDs(ctx context.Context, ids []string) ([]domain.Content, error)
	GetByID(ctx context.Context, id string) (*domain.Content, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, content *domain.Content) error
	Update(ctx context.Context, content *domain.Content) error
	Delete(ctx context.Context, id string) error
	Related(ctx context.Context, content *domain.Content, limit int) ([]domain.Content, error)
	Stats(ctx context.Context, authorID string) (domain.DashboardStats, error)
	StreamReports(ctx context.Context, authorID string, callback func(domain.ContentReport) error) error
	BulkInsert(ctx context.Context, content []domain.Content) domain.BatchResult
	StreamAll(ctx context.Context, callback func(domain.Content) error) error
}

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	ListByContent(ctx context.Context, contentID string) ([]domain.CommentRecord, error)
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) (*domain.CommentRecord, error)
	Delete(ctx context.Context, id string) error
	BulkInsert(ctx context.Context, comments []domain.Comment) domain.BatchResult
	StreamAll(ctx context.Context, callback func(domain.Comment) error) error
}

// ReactionRepository defines methods for reaction data access.
type ReactionRepository interface {
	Vote(ctx context.Context, contentID, userID string, vote domain.ReactionType) (domain.VoteSummary, error)
	Toggle(ctx context.Context, contentID, userID string, reactionType domain.ReactionType) (domain.ToggleResult, error)
	Summary(ctx context.Context, contentID, userID string) (domain.VoteSummary, error)
	Has(ctx context.Context, contentID, userID string, reactionType domain.ReactionType) (bool, error)
	ListContent(ctx context.Context, userID string, reactionType domain.ReactionType) ([]domain.Content, error)
}

// BookmarkRepository defines methods for bookmark data access.
type BookmarkRepository interface {
	Toggle(ctx context.Context, contentID, userID string) (domain.ToggleResult, error)
	IsSaved(ctx context.Context, contentID, userID string) (bool, error)
	ListContent(ctx context.Context, userID string) ([]domain.Content, error)
}

// RatingRepository defines methods for rating data access.
type RatingRepository interface {
	Upsert(ctx context.Context, contentID, userID string, value int) error
	Summary(ctx context.Context, contentID, userID string) (domain.RatingSummary, error)
}

// AnalyticsRepository defines methods for daily analytics data access.
type AnalyticsRepository interface {
	RecordView(ctx context.Context, contentID string, day time.Time, unique bool) (int64, error)
	RecordTimeOnPage(ctx context.Context, contentID string, day time.Time, ms int64) error
	RecordNextContent(ctx context.Context, contentID, nextContentID string, day time.Time) error
	ListDaily(ctx context.Context, contentID string, since time.Time) ([]domain.AnalyticsDaily, error)
}

// PasswordResetRepository defines methods for password reset token data access.
type PasswordResetRepository interface {
	Create(ctx context.Context, token *domain.PasswordResetToken) error
	Consume(ctx context.Context, token, passwordHash string, now time.Time) error
}
