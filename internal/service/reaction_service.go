package service

import (
	"context"
	"fmt"
	"log/slog"

	"blog-platform/internal/domain"
	"blog-platform/internal/logger"
	"blog-platform/internal/metrics"
	"blog-platform/internal/repository"
)

// ReactionService handles votes and favorites.
type ReactionService struct {
	reactions repository.ReactionRepository
	content   repository.ContentRepository
}

// NewReactionService creates a new ReactionService.
func NewReactionService(reactions repository.ReactionRepository, content repository.ContentRepository) *ReactionService {
	return &ReactionService{reactions: reactions, content: content}
}

// Vote applies an exclusive up or down vote. Voting the same way twice removes the vote;
// voting the other way replaces it.
func (s *ReactionService) Vote(ctx context.Context, identity *domain.Identity, contentID string, vote domain.ReactionType) (domain.VoteSummary, error) {
	if identity == nil {
		return domain.VoteSummary{}, domain.ErrUnauthorized
	}
	if !vote.IsVote() {
		return domain.VoteSummary{}, fmt.Errorf("%w: %s is not a vote", domain.ErrInvalidInput, vote)
	}
	if _, err := s.content.GetByID(ctx, contentID); err != nil {
		return domain.VoteSummary{}, err
	}

	summary, err := s.reactions.Vote(ctx, contentID, identity.UserID, vote)
	if err != nil {
		return domain.VoteSummary{}, fmt.Errorf("vote: %w", err)
	}

	metrics.ObserveReaction(string(vote), !summary.Removed)
	logger.DebugContext(ctx, "Vote recorded",
		slog.String("content_id", contentID),
		slog.String("user_id", identity.UserID),
		slog.String("type", string(vote)),
		slog.Bool("removed", summary.Removed),
	)
	return summary, nil
}

// ToggleFavorite adds or removes the caller's favorite.
func (s *ReactionService) ToggleFavorite(ctx context.Context, identity *domain.Identity, contentID string) (domain.ToggleResult, error) {
	if identity == nil {
		return domain.ToggleResult{}, domain.ErrUnauthorized
	}
	if _, err := s.content.GetByID(ctx, contentID); err != nil {
		return domain.ToggleResult{}, err
	}

	result, err := s.reactions.Toggle(ctx, contentID, identity.UserID, domain.ReactionFavorite)
	if err != nil {
		return domain.ToggleResult{}, fmt.Errorf("toggle favorite: %w", err)
	}

	metrics.ObserveReaction(string(domain.ReactionFavorite), result.Active)
	return result, nil
}

// Summary returns vote counts and, for a signed-in caller, their vote.
func (s *ReactionService) Summary(ctx context.Context, identity *domain.Identity, contentID string) (domain.VoteSummary, error) {
	userID := ""
	if identity != nil {
		userID = identity.UserID
	}
	summary, err := s.reactions.Summary(ctx, contentID, userID)
	if err != nil {
		return domain.VoteSummary{}, fmt.Errorf("vote summary: %w", err)
	}
	return summary, nil
}

// Has reports whether the caller has reacted with reactionType. Anonymous callers never have.
func (s *ReactionService) Has(ctx context.Context, identity *domain.Identity, contentID string, reactionType domain.ReactionType) (bool, error) {
	if identity == nil {
		return false, nil
	}
	if !domain.IsValidReactionType(reactionType) {
		return false, fmt.Errorf("%w: unknown reaction type %s", domain.ErrInvalidInput, reactionType)
	}
	return s.reactions.Has(ctx, contentID, identity.UserID, reactionType)
}
