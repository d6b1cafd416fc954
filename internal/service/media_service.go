package service

import (
	"context"
	"fmt"

	"blog-platform/internal/domain"
	"blog-platform/internal/media"
)

// MediaService accepts image uploads from signed-in users.
type MediaService struct {
	store MediaStore
}

// NewMediaService creates a new MediaService.
func NewMediaService(store MediaStore) *MediaService {
	return &MediaService{store: store}
}

// Upload stores an image and returns its public URL.
func (s *MediaService) Upload(ctx context.Context, identity *domain.Identity, upload media.Upload) (string, error) {
	if identity == nil {
		return "", domain.ErrUnauthorized
	}
	if err := media.Validate(upload); err != nil {
		return "", err
	}

	publicURL, err := s.store.Put(ctx, identity.UserID, upload)
	if err != nil {
		if media.IsClientError(err) {
			return "", err
		}
		return "", fmt.Errorf("store upload: %w", err)
	}
	return publicURL, nil
}
