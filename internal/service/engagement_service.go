package service

import (
	"context"
	"fmt"

	"blog-platform/internal/domain"
	"blog-platform/internal/metrics"
	"blog-platform/internal/repository"
	"blog-platform/internal/validator"
)

// BookmarkService saves content for later.
type BookmarkService struct {
	bookmarks repository.BookmarkRepository
	content   repository.ContentRepository
}

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(bookmarks repository.BookmarkRepository, content repository.ContentRepository) *BookmarkService {
	return &BookmarkService{bookmarks: bookmarks, content: content}
}

// Toggle saves or unsaves a content item for the caller.
func (s *BookmarkService) Toggle(ctx context.Context, identity *domain.Identity, contentID string) (domain.ToggleResult, error) {
	if identity == nil {
		return domain.ToggleResult{}, domain.ErrUnauthorized
	}
	if _, err := s.content.GetByID(ctx, contentID); err != nil {
		return domain.ToggleResult{}, err
	}

	result, err := s.bookmarks.Toggle(ctx, contentID, identity.UserID)
	if err != nil {
		return domain.ToggleResult{}, fmt.Errorf("toggle bookmark: %w", err)
	}
	metrics.ObserveReaction(string(domain.ReactionBookmark), result.Active)
	return result, nil
}

// IsSaved reports whether the caller bookmarked contentID.
func (s *BookmarkService) IsSaved(ctx context.Context, identity *domain.Identity, contentID string) (bool, error) {
	if identity == nil {
		return false, nil
	}
	return s.bookmarks.IsSaved(ctx, contentID, identity.UserID)
}

// RatingService records 1 to 5 star ratings.
type RatingService struct {
	ratings   repository.RatingRepository
	content   repository.ContentRepository
	validator *validator.Validator
}

// NewRatingService creates a new RatingService.
func NewRatingService(ratings repository.RatingRepository, content repository.ContentRepository, v *validator.Validator) *RatingService {
	return &RatingService{ratings: ratings, content: content, validator: v}
}

// Rate stores or replaces the caller's rating and returns the new summary.
func (s *RatingService) Rate(ctx context.Context, identity *domain.Identity, contentID string, value int) (domain.RatingSummary, error) {
	if identity == nil {
		return domain.RatingSummary{}, domain.ErrUnauthorized
	}
	if err := s.validator.ValidateRating(value); err != nil {
		return domain.RatingSummary{}, err
	}
	if _, err := s.content.GetByID(ctx, contentID); err != nil {
		return domain.RatingSummary{}, err
	}

	if err := s.ratings.Upsert(ctx, contentID, identity.UserID, value); err != nil {
		return domain.RatingSummary{}, fmt.Errorf("rate content: %w", err)
	}
	return s.ratings.Summary(ctx, contentID, identity.UserID)
}

// Summary returns the average rating and, for a signed-in caller, their own value.
func (s *RatingService) Summary(ctx context.Context, identity *domain.Identity, contentID string) (domain.RatingSummary, error) {
	userID := ""
	if identity != nil {
		userID = identity.UserID
	}
	return s.ratings.Summary(ctx, contentID, userID)
}
