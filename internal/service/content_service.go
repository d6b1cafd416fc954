package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"blog-platform/internal/domain"
	"blog-platform/internal/logger"
	"blog-platform/internal/repository"
	"blog-platform/internal/validator"
)

const (
	// DefaultFeaturedLimit is the number of featured posts on the home page.
	DefaultFeaturedLimit = 3
	// DefaultRelatedLimit is the number of related posts under a post.
	DefaultRelatedLimit = 3

	maxSlugLength   = 80
	maxSlugAttempts = 20
)

// ContentService manages blog posts.
type ContentService struct {
	content   repository.ContentRepository
	search    SearchIndex
	validator *validator.Validator
}

// NewContentService creates a new ContentService.
func NewContentService(content repository.ContentRepository, search SearchIndex, v *validator.Validator) *ContentService {
	return &ContentService{content: content, search: search, validator: v}
}

// List returns content matching filter, newest first.
// A text query is answered by the search index.
func (s *ContentService) List(ctx context.Context, filter domain.ContentFilter) ([]domain.Content, error) {
	filter.Normalize()
	filter.Query = strings.TrimSpace(filter.Query)

	if filter.Query != "" {
		return s.search.Search(ctx, filter)
	}

	items, err := s.content.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	return items, nil
}

// Get returns one content item.
func (s *ContentService) Get(ctx context.Context, id string) (*domain.Content, error) {
	return s.content.GetByID(ctx, id)
}

// Featured returns the newest published, featured posts.
func (s *ContentService) Featured(ctx context.Context, limit int) ([]domain.Content, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	published, featured := true, true
	return s.List(ctx, domain.ContentFilter{Published: &published, Featured: &featured, Take: limit})
}

// Related returns other published posts by the author of id.
func (s *ContentService) Related(ctx context.Context, id string, limit int) ([]domain.Content, error) {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	current, err := s.content.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.content.Related(ctx, current, limit)
	if err != nil {
		return nil, fmt.Errorf("list related content: %w", err)
	}
	return items, nil
}

// Create stores a new post authored by identity.
func (s *ContentService) Create(ctx context.Context, identity *domain.Identity, input domain.ContentInput) (*domain.Content, error) {
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}
	normalizeContentInput(&input)
	if err := s.validator.ValidateContentInput(&input); err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, input.Title)
	if err != nil {
		return nil, err
	}

	c := &domain.Content{AuthorID: identity.UserID, Slug: slug}
	applyContentInput(c, input)
	if err := s.content.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}

	// Re-read to pick up the author summary.
	created, err := s.content.GetByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	s.search.IndexContent(*created)
	logger.InfoContext(ctx, "Content created",
		slog.String("content_id", created.ID),
		slog.String("slug", created.Slug),
		slog.String("user_id", identity.UserID),
	)
	return created, nil
}

// Update replaces the editable fields of a post. Only its author or an admin may do so.
func (s *ContentService) Update(ctx context.Context, identity *domain.Identity, id string, input domain.ContentInput) (*domain.Content, error) {
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.content.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !identity.CanModify(c.AuthorID) {
		return nil, domain.ErrForbidden
	}

	normalizeContentInput(&input)
	if err := s.validator.ValidateContentInput(&input); err != nil {
		return nil, err
	}

	if input.Title != c.Title && Slugify(input.Title) != trimSlugSuffix(c.Slug) {
		if c.Slug, err = s.uniqueSlug(ctx, input.Title); err != nil {
			return nil, err
		}
	}
	applyContentInput(c, input)

	if err := s.content.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update content: %w", err)
	}

	s.search.IndexContent(*c)
	logger.InfoContext(ctx, "Content updated",
		slog.String("content_id", c.ID),
		slog.String("user_id", identity.UserID),
	)
	return c, nil
}

// Delete removes a post with its comments and engagement. Only its author or an admin may do so.
func (s *ContentService) Delete(ctx context.Context, identity *domain.Identity, id string) error {
	if identity == nil {
		return domain.ErrUnauthorized
	}

	c, err := s.content.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !identity.CanModify(c.AuthorID) {
		return domain.ErrForbidden
	}

	if err := s.content.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete content: %w", err)
	}

	s.search.RemoveContent(id)
	logger.InfoContext(ctx, "Content deleted",
		slog.String("content_id", id),
		slog.String("user_id", identity.UserID),
	)
	return nil
}

func (s *ContentService) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := Slugify(title)
	candidate := base
	for i := 2; i <= maxSlugAttempts+1; i++ {
		exists, err := s.content.SlugExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check slug: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return fmt.Sprintf("%s-%s", base, uuid.New().String()[:8]), nil
}

// Slugify lowercases title and joins its letters and digits with single dashes.
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
		if b.Len() >= maxSlugLength {
			break
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "post"
	}
	return slug
}

// trimSlugSuffix drops a trailing "-N" added to make a slug unique.
func trimSlugSuffix(slug string) string {
	i := strings.LastIndexByte(slug, '-')
	if i < 0 {
		return slug
	}
	for _, r := range slug[i+1:] {
		if !unicode.IsDigit(r) {
			return slug
		}
	}
	return slug[:i]
}

func normalizeContentInput(in *domain.ContentInput) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = trimOptional(in.Description)
	in.Excerpt = trimOptional(in.Excerpt)
	in.CoverImage = trimOptional(in.CoverImage)
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func applyContentInput(c *domain.Content, in domain.ContentInput) {
	c.Title = in.Title
	c.Description = in.Description
	c.Body = in.Body
	c.Excerpt = in.Excerpt
	c.CoverImage = in.CoverImage
	c.Published = in.Published
	c.Featured = in.Featured
}
