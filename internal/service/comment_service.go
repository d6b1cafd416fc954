package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-platform/internal/commenttree"
	"blog-platform/internal/domain"
	"blog-platform/internal/logger"
	"blog-platform/internal/metrics"
	"blog-platform/internal/repository"
	"blog-platform/internal/validator"
)

var errForeignParent = validation.NewError("parent_not_in_content", "parent comment does not belong to this content")

// CommentService reads comment threads and writes comments.
type CommentService struct {
	comments  repository.CommentRepository
	content   repository.ContentRepository
	validator *validator.Validator
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	comments repository.CommentRepository,
	content repository.ContentRepository,
	v *validator.Validator,
) *CommentService {
	return &CommentService{comments: comments, content: content, validator: v}
}

// List returns the two-level comment tree of a content item.
func (s *CommentService) List(ctx context.Context, contentID string) ([]domain.CommentNode, error) {
	if _, err := s.content.GetByID(ctx, contentID); err != nil {
		return nil, err
	}

	records, err := s.comments.ListByContent(ctx, contentID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	nodes, stats := commenttree.BuildWithStats(records)
	metrics.ObserveCommentTree(len(records), stats.Roots, stats.Replies, stats.Orphans, stats.Collapsed)
	if stats.Orphans > 0 || stats.Collapsed > 0 {
		logger.DebugContext(ctx, "Comment tree normalised",
			slog.String("content_id", contentID),
			slog.Int("orphans", stats.Orphans),
			slog.Int("collapsed", stats.Collapsed),
		)
	}
	return nodes, nil
}

// Create stores a comment or reply written by identity.
func (s *CommentService) Create(ctx context.Context, identity *domain.Identity, contentID string, input domain.NewCommentInput) (*domain.CommentNode, error) {
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}

	input.Text = strings.TrimSpace(input.Text)
	if input.ParentID != nil && strings.TrimSpace(*input.ParentID) == "" {
		input.ParentID = nil
	}
	if err := s.validator.ValidateNewComment(&input); err != nil {
		return nil, err
	}

	if _, err := s.content.GetByID(ctx, contentID); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		parent, err := s.comments.GetByID(ctx, *input.ParentID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get parent comment: %w", err)
		}
		if parent == nil || parent.ContentID != contentID {
			return nil, validation.Errors{"parentId": errForeignParent}
		}
	}

	record, err := s.comments.Create(ctx, &domain.Comment{
		ContentID: contentID,
		UserID:    identity.UserID,
		ParentID:  input.ParentID,
		Text:      input.Text,
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	metrics.CommentsWritten.WithLabelValues("create").Inc()
	logger.InfoContext(ctx, "Comment created",
		slog.String("comment_id", record.ID),
		slog.String("content_id", contentID),
		slog.String("user_id", identity.UserID),
	)

	return &domain.CommentNode{CommentRecord: *record, Replies: []domain.CommentNode{}}, nil
}

// Delete removes a comment. Only its author or an admin may do so.
func (s *CommentService) Delete(ctx context.Context, identity *domain.Identity, id string) error {
	if identity == nil {
		return domain.ErrUnauthorized
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !identity.CanModify(comment.UserID) {
		return domain.ErrForbidden
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	metrics.CommentsWritten.WithLabelValues("delete").Inc()
	logger.InfoContext(ctx, "Comment deleted",
		slog.String("comment_id", id),
		slog.String("user_id", identity.UserID),
	)
	return nil
}
