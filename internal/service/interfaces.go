package service

import (
	"context"
	"io"
	"time"

	"blog-platform/internal/domain"
	"blog-platform/internal/media"
)

// StreamWriter interface for streaming export data.
type StreamWriter interface {
	Write(data []byte) error
	Flush()
}

// SearchIndex answers content queries and keeps the search index in step with writes.
type SearchIndex interface {
	Search(ctx context.Context, filter domain.ContentFilter) ([]domain.Content, error)
	IndexContent(content domain.Content)
	RemoveContent(id string)
}

// ViewerTracker dedupes signed-in viewers per content item and UTC day.
type ViewerTracker interface {
	MarkViewer(ctx context.Context, contentID, userID string) (bool, error)
	ForgetViewer(ctx context.Context, contentID, userID string) error
}

// TokenRevoker remembers signed-out access tokens until they expire.
type TokenRevoker interface {
	RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Issue(user domain.User) (string, time.Time, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

// Mailer sends templated email.
type Mailer interface {
	SendPasswordReset(to, userName, resetURL string) error
	SendContact(to string, m domain.ContactMessage) error
}

// MediaStore persists uploaded images.
type MediaStore interface {
	Put(ctx context.Context, userID string, upload media.Upload) (string, error)
}

// ContentServiceInterface defines content operations.
// Used for dependency injection and mocking in tests.
type ContentServiceInterface interface {
	List(ctx context.Context, filter domain.ContentFilter) ([]domain.Content, error)
	Get(ctx context.Context, id string) (*domain.Content, error)
	Featured(ctx context.Context, limit int) ([]domain.Content, error)
	Create(ctx context.Context, identity *domain.Identity, input domain.ContentInput) (*domain.Content, error)
	Update(ctx context.Context, identity *domain.Identity, id string, input domain.ContentInput) (*domain.Content, error)
	Delete(ctx context.Context, identity *domain.Identity, id string) error
	Related(ctx context.Context, id string, limit int) ([]domain.Content, error)
}

// CommentServiceInterface defines comment operations.
type CommentServiceInterface interface {
	// List returns the comment tree of a content item.
	List(ctx context.Context, contentID string) ([]domain.CommentNode, error)
	Create(ctx context.Context, identity *domain.Identity, contentID string, input domain.NewCommentInput) (*domain.CommentNode, error)
	Delete(ctx context.Context, identity *domain.Identity, id string) error
}

// ReactionServiceInterface defines vote and favorite operations.
type ReactionServiceInterface interface {
	Vote(ctx context.Context, identity *domain.Identity, contentID string, vote domain.ReactionType) (domain.VoteSummary, error)
	ToggleFavorite(ctx context.Context, identity *domain.Identity, contentID string) (domain.ToggleResult, error)
	Summary(ctx context.Context, identity *domain.Identity, contentID string) (domain.VoteSummary, error)
	Has(ctx context.Context, identity *domain.Identity, contentID string, reactionType domain.ReactionType) (bool, error)
}

// BookmarkServiceInterface defines bookmark operations.
type BookmarkServiceInterface interface {
	Toggle(ctx context.Context, identity *domain.Identity, contentID string) (domain.ToggleResult, error)
	IsSaved(ctx context.Context, identity *domain.Identity, contentID string) (bool, error)
}

// RatingServiceInterface defines rating operations.
type RatingServiceInterface interface {
	Rate(ctx context.Context, identity *domain.Identity, contentID string, value int) (domain.RatingSummary, error)
	Summary(ctx context.Context, identity *domain.Identity, contentID string) (domain.RatingSummary, error)
}

// AnalyticsServiceInterface defines analytics and dashboard operations.
type AnalyticsServiceInterface interface {
	RecordView(ctx context.Context, identity *domain.Identity, contentID string) error
	RecordTimeOnPage(ctx context.Context, contentID string, ms int64) error
	RecordNextContent(ctx context.Context, fromID, toID string) error
	ContentAnalytics(ctx context.Context, identity *domain.Identity, contentID string, days int) ([]domain.AnalyticsDaily, error)
	DashboardStats(ctx context.Context, identity *domain.Identity) (domain.DashboardStats, error)
	ExportStream(ctx context.Context, identity *domain.Identity, format string, writer StreamWriter) (int, error)
}

// AuthServiceInterface defines account operations.
type AuthServiceInterface interface {
	SignUp(ctx context.Context, input domain.SignUpInput) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	SignOut(ctx context.Context, identity *domain.Identity) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, password string) error
}

// UserServiceInterface defines user lookups.
type UserServiceInterface interface {
	Search(ctx context.Context, query string) ([]domain.User, error)
	Profile(ctx context.Context, id string) (*domain.Profile, error)
	Saved(ctx context.Context, identity *domain.Identity) (domain.SavedItems, error)
}

// ContactServiceInterface defines the contact form.
type ContactServiceInterface interface {
	Send(ctx context.Context, msg domain.ContactMessage) error
}

// MediaServiceInterface defines image uploads.
type MediaServiceInterface interface {
	Upload(ctx context.Context, identity *domain.Identity, upload media.Upload) (string, error)
}

// SeedServiceInterface defines NDJSON seeding.
type SeedServiceInterface interface {
	Seed(ctx context.Context, resourceType string, r io.Reader) (domain.ImportResult, error)
}
