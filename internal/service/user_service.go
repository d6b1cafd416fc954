package service

import (
	"context"
	"fmt"
	"strings"

	"blog-platform/internal/domain"
	"blog-platform/internal/repository"
)

// UserSearchLimit caps the results of a user search.
const UserSearchLimit = 10

// UserService serves public user data and the caller's saved items.
type UserService struct {
	users     repository.UserRepository
	bookmarks repository.BookmarkRepository
	reactions repository.ReactionRepository
}

// NewUserService creates a new UserService.
func NewUserService(users repository.UserRepository, bookmarks repository.BookmarkRepository, reactions repository.ReactionRepository) *UserService {
	return &UserService{users: users, bookmarks: bookmarks, reactions: reactions}
}

// Search matches users by name or email. An empty query matches nobody.
func (s *UserService) Search(ctx context.Context, query string) ([]domain.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.User{}, nil
	}
	users, err := s.users.Search(ctx, query, UserSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// Profile returns the public profile of a user.
func (s *UserService) Profile(ctx context.Context, id string) (*domain.Profile, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	profile := domain.ProfileOf(*user)
	return &profile, nil
}

// Saved lists the content the caller bookmarked and favorited.
func (s *UserService) Saved(ctx context.Context, identity *domain.Identity) (domain.SavedItems, error) {
	saved := domain.SavedItems{Bookmarks: []domain.Content{}, Favorites: []domain.Content{}}
	if identity == nil {
		return saved, nil
	}

	bookmarks, err := s.bookmarks.ListContent(ctx, identity.UserID)
	if err != nil {
		return saved, fmt.Errorf("list bookmarks: %w", err)
	}
	favorites, err := s.reactions.ListContent(ctx, identity.UserID, domain.ReactionFavorite)
	if err != nil {
		return saved, fmt.Errorf("list favorites: %w", err)
	}

	if bookmarks != nil {
		saved.Bookmarks = bookmarks
	}
	if favorites != nil {
		saved.Favorites = favorites
	}
	return saved, nil
}
