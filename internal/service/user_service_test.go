package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-platform/internal/domain"
	"blog-platform/internal/media"
	"blog-platform/internal/mocks"
	"blog-platform/internal/service"
	"blog-platform/internal/validator"
)

func TestUserService_Search(t *testing.T) {
	t.Run("empty query returns empty list", func(t *testing.T) {
		svc := service.NewUserService(mocks.NewMockUserRepository(t), mocks.NewMockBookmarkRepository(t), mocks.NewMockReactionRepository(t))

		users, err := svc.Search(context.Background(), "   ")

		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("query is limited to top ten", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)
		mockUsers.EXPECT().Search(mock.Anything, "ada", service.UserSearchLimit).Return([]domain.User{{ID: "u1"}}, nil)

		svc := service.NewUserService(mockUsers, mocks.NewMockBookmarkRepository(t), mocks.NewMockReactionRepository(t))
		users, err := svc.Search(context.Background(), " ada ")

		require.NoError(t, err)
		assert.Len(t, users, 1)
	})
}

func TestUserService_Profile(t *testing.T) {
	mockUsers := mocks.NewMockUserRepository(t)
	mockUsers.EXPECT().GetByID(mock.Anything, "u1").
		Return(&domain.User{ID: "u1", Name: "Ada", Email: "ada@example.com", PasswordHash: "x"}, nil)
	mockUsers.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	svc := service.NewUserService(mockUsers, mocks.NewMockBookmarkRepository(t), mocks.NewMockReactionRepository(t))

	profile, err := svc.Profile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.Name)

	_, err = svc.Profile(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserService_Saved(t *testing.T) {
	t.Run("anonymous caller gets empty lists", func(t *testing.T) {
		svc := service.NewUserService(mocks.NewMockUserRepository(t), mocks.NewMockBookmarkRepository(t), mocks.NewMockReactionRepository(t))

		saved, err := svc.Saved(context.Background(), nil)

		require.NoError(t, err)
		assert.NotNil(t, saved.Bookmarks)
		assert.NotNil(t, saved.Favorites)
		assert.Empty(t, saved.Bookmarks)
	})

	t.Run("lists bookmarks and favorites", func(t *testing.T) {
		mockBookmarks := mocks.NewMockBookmarkRepository(t)
		mockReactions := mocks.NewMockReactionRepository(t)
		mockBookmarks.EXPECT().ListContent(mock.Anything, "u1").Return([]domain.Content{{ID: "c1"}}, nil)
		mockReactions.EXPECT().ListContent(mock.Anything, "u1", domain.ReactionFavorite).Return(nil, nil)

		svc := service.NewUserService(mocks.NewMockUserRepository(t), mockBookmarks, mockReactions)
		saved, err := svc.Saved(context.Background(), testIdentity("u1"))

		require.NoError(t, err)
		assert.Len(t, saved.Bookmarks, 1)
		assert.NotNil(t, saved.Favorites)
	})
}

func TestContactService_Send(t *testing.T) {
	msg := domain.ContactMessage{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: " Hello there "}

	t.Run("mails owner", func(t *testing.T) {
		mockMailer := mocks.NewMockMailer(t)
		mockMailer.EXPECT().
			SendContact("owner@example.com", mock.MatchedBy(func(m domain.ContactMessage) bool { return m.Message == "Hello there" })).
			Return(nil)

		svc := service.NewContactService(mockMailer, validator.NewValidator(), "owner@example.com")
		assert.NoError(t, svc.Send(context.Background(), msg))
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		svc := service.NewContactService(mocks.NewMockMailer(t), validator.NewValidator(), "owner@example.com")

		err := svc.Send(context.Background(), domain.ContactMessage{Email: "not-an-email"})

		fields := validator.FieldErrors(err)
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "message")
	})

	t.Run("disabled mail is returned as is", func(t *testing.T) {
		mockMailer := mocks.NewMockMailer(t)
		mockMailer.EXPECT().SendContact(mock.Anything, mock.Anything).Return(domain.ErrMailDisabled)

		svc := service.NewContactService(mockMailer, validator.NewValidator(), "owner@example.com")
		assert.ErrorIs(t, svc.Send(context.Background(), msg), domain.ErrMailDisabled)
	})
}

func TestMediaService_Upload(t *testing.T) {
	upload := func(contentType string, size int64) media.Upload {
		return media.Upload{Filename: "cat.png", ContentType: contentType, Size: size, Body: bytes.NewReader(make([]byte, size))}
	}

	t.Run("returns public url", func(t *testing.T) {
		mockStore := mocks.NewMockMediaStore(t)
		mockStore.EXPECT().Put(mock.Anything, "u1", mock.Anything).Return("https://cdn.example.com/uploads/u1/x.png", nil)

		svc := service.NewMediaService(mockStore)
		url, err := svc.Upload(context.Background(), testIdentity("u1"), upload("image/png", 10))

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/uploads/u1/x.png", url)
	})

	t.Run("rejects non-image before storing", func(t *testing.T) {
		svc := service.NewMediaService(mocks.NewMockMediaStore(t))

		_, err := svc.Upload(context.Background(), testIdentity("u1"), upload("application/pdf", 10))

		assert.ErrorIs(t, err, media.ErrUnsupportedType)
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		svc := service.NewMediaService(mocks.NewMockMediaStore(t))

		_, err := svc.Upload(context.Background(), testIdentity("u1"),
			media.Upload{ContentType: "image/jpeg", Size: media.MaxUploadSize + 1, Body: bytes.NewReader(nil)})

		assert.ErrorIs(t, err, media.ErrTooLarge)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		mockStore := mocks.NewMockMediaStore(t)
		mockStore.EXPECT().Put(mock.Anything, "u1", mock.Anything).Return("", errors.New("bucket gone"))

		svc := service.NewMediaService(mockStore)
		_, err := svc.Upload(context.Background(), testIdentity("u1"), upload("image/png", 10))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket gone")
	})

	t.Run("anonymous caller is unauthorized", func(t *testing.T) {
		svc := service.NewMediaService(mocks.NewMockMediaStore(t))

		_, err := svc.Upload(context.Background(), nil, upload("image/png", 10))

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
