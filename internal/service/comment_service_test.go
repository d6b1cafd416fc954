package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-platform/internal/domain"
	"blog-platform/internal/mocks"
	"blog-platform/internal/service"
	"blog-platform/internal/validator"
)

func strPtr(s string) *string { return &s }

func testIdentity(userID string) *domain.Identity {
	return &domain.Identity{UserID: userID, Email: userID + "@example.com", Name: "User " + userID, Role: domain.RoleUser}
}

func adminIdentity() *domain.Identity {
	return &domain.Identity{UserID: "admin-1", Name: "Admin", Role: domain.RoleAdmin}
}

func TestCommentService_List(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("builds two-level tree", func(t *testing.T) {
		mockComments := mocks.NewMockCommentRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		mockContent.EXPECT().GetByID(mock.Anything, "content-1").Return(&domain.Content{ID: "content-1"}, nil)
		mockComments.EXPECT().ListByContent(mock.Anything, "content-1").Return([]domain.CommentRecord{
			{ID: "a", Text: "first", CreatedAt: base},
			{ID: "b", Text: "second", CreatedAt: base.Add(time.Minute)},
			{ID: "a1", Text: "reply", CreatedAt: base.Add(2 * time.Minute), ParentID: strPtr("a")},
			{ID: "a1x", Text: "deep", CreatedAt: base.Add(3 * time.Minute), ParentID: strPtr("a1")},
			{ID: "o", Text: "orphan", CreatedAt: base.Add(4 * time.Minute), ParentID: strPtr("gone")},
		}, nil)

		svc := service.NewCommentService(mockComments, mockContent, validator.NewValidator())
		nodes, err := svc.List(context.Background(), "content-1")

		require.NoError(t, err)
		require.Len(t, nodes, 3)
		assert.Equal(t, "o", nodes[0].ID)
		assert.Equal(t, "b", nodes[1].ID)
		assert.Equal(t, "a", nodes[2].ID)
		require.Len(t, nodes[2].Replies, 2)
		assert.Equal(t, "a1", nodes[2].Replies[0].ID)
		assert.Equal(t, "a1x", nodes[2].Replies[1].ID)
		assert.NotNil(t, nodes[1].Replies)
		assert.Empty(t, nodes[1].Replies)
	})

	t.Run("returns empty list for no comments", func(t *testing.T) {
		mockComments := mocks.NewMockCommentRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		mockContent.EXPECT().GetByID(mock.Anything, "content-1").Return(&domain.Content{ID: "content-1"}, nil)
		mockComments.EXPECT().ListByContent(mock.Anything, "content-1").Return(nil, nil)

		svc := service.NewCommentService(mockComments, mockContent, validator.NewValidator())
		nodes, err := svc.List(context.Background(), "content-1")

		require.NoError(t, err)
		assert.NotNil(t, nodes)
		assert.Empty(t, nodes)
	})

	t.Run("returns not found for unknown content", func(t *testing.T) {
		mockComments := mocks.NewMockCommentRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		mockContent.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrNotFound)

		svc := service.NewCommentService(mockComments, mockContent, validator.NewValidator())
		_, err := svc.List(context.Background(), "missing")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("wraps repository error", func(t *testing.T) {
		mockComments := mocks.NewMockCommentRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		mockContent.EXPECT().GetByID(mock.Anything, "content-1").Return(&domain.Content{ID: "content-1"}, nil)
		mockComments.EXPECT().ListByContent(mock.Anything, "content-1").Return(nil, errors.New("connection reset"))

		svc := service.NewCommentService(mockComments, mockContent, validator.NewValidator())
		_, err := svc.List(context.Background(), "content-1")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestCommentService_Create(t *testing.T) {
	now := time.Now()

	t.Run("creates trimmed root comment", func(t *testing.T) {
		mockComments := mocks.NewMockCommentRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		mockContent.EXPECT().GetByID(mock.Anything, "content-1").Return(&domain.Content{ID: "content-1"}, nil)
		mockComments.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
				return c.Text == "hello" && c.ParentID == nil && c.UserID == "u1" && c.ContentID == "content-1"
			})).
			Return(&domain.CommentRecord{ID: "c1", Text: "hello", CreatedAt: now, Author: domain.Author{ID: "u1"}}, nil)

		svc := service.NewCommentService(mockComments, mockContent, validator.NewValidator())
		node, err := svc.Create(context.Background(), testIdentity("u1"), "content-1", domain.NewCommentInput{Text: "  hello \n"})

		require.NoError(t, err)
		assert.Equal(t, "c1", node.ID)
		assert.Equal(t, "hello", node.Text)
		assert.NotNil(t, node.Replies)
		assert.Empty(t, node.Replies)
	})

	t.Run("creates reply to comment of same content", func(t *testing.T) {
		mockComments := mocks.NewMockCommentRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		mockContent.EXPECT().GetByID(mock.Anything, "content-1").Return(&domain.Content{ID: "content-1"}, nil)
		mockComments.EXPECT().GetByID(mock.Anything, "parent").Return(&domain.Comment{ID: "parent", ContentID: "content-1"}, nil)
		mockComments.EXPECT().Create(mock.Anything, mock.Anything).
			Return(&domain.CommentRecord{ID: "c2", Text: "reply", ParentID: strPtr("parent")}, nil)

		svc := service.NewCommentService(mockComments, mockContent, validator.NewValidator())
		node, err := svc.Create(context.Background(), testIdentity("u1"), "content-1",
			domain.NewCommentInput{Text: "reply", ParentID: strPtr("parent")})

		require.NoError(t, err)
		require.NotNil(t, node.ParentID)
		assert.Equal(t, "parent", *node.ParentID)
	})

	t.Run("blank parent id creates root", func(t *testing.T) {
		mockComments := mocks.NewMockCommentRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		mockContent.EXPECT().GetByID(mock.Anything, "content-1").Return(&domain.Content{ID: "content-1"}, nil)
		mockComments.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool { return c.ParentID == nil })).
			Return(&domain.CommentRecord{ID: "c3", Text: "root"}, nil)

		svc := service.NewCommentService(mockComments, mockContent, validator.NewValidator())
		_, err := svc.Create(context.Background(), testIdentity("u1"), "content-1",
			domain.NewCommentInput{Text: "root", ParentID: strPtr("  ")})

		require.NoError(t, err)
	})

	t.Run("rejects anonymous caller", func(t *testing.T) {
		mockComments := mocks.NewMockCommentRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		svc := service.NewCommentService(mockComments, mockContent, validator.NewValidator())
		_, err := svc.Create(context.Background(), nil, "content-1", domain.NewCommentInput{Text: "hi"})

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("rejects blank text", func(t *testing.T) {
		mockComments := mocks.NewMockCommentRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		svc := service.NewCommentService(mockComments, mockContent, validator.NewValidator())
		_, err := svc.Create(context.Background(), testIdentity("u1"), "content-1", domain.NewCommentInput{Text: " \t\n "})

		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
		assert.Contains(t, validator.FieldErrors(err), "text")
	})

	t.Run("rejects text over limit", func(t *testing.T) {
		mockComments := mocks.NewMockCommentRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		long := make([]rune, domain.MaxCommentLength+1)
		for i := range long {
			long[i] = 'x'
		}

		svc := service.NewCommentService(mockComments, mockContent, validator.NewValidator())
		_, err := svc.Create(context.Background(), testIdentity("u1"), "content-1", domain.NewCommentInput{Text: string(long)})

		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("rejects parent from other content", func(t *testing.T) {
		mockComments := mocks.NewMockCommentRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		mockContent.EXPECT().GetByID(mock.Anything, "content-1").Return(&domain.Content{ID: "content-1"}, nil)
		mockComments.EXPECT().GetByID(mock.Anything, "foreign").Return(&domain.Comment{ID: "foreign", ContentID: "content-2"}, nil)

		svc := service.NewCommentService(mockComments, mockContent, validator.NewValidator())
		_, err := svc.Create(context.Background(), testIdentity("u1"), "content-1",
			domain.NewCommentInput{Text: "reply", ParentID: strPtr("foreign")})

		var ve validation.Errors
		require.True(t, errors.As(err, &ve))
		assert.Contains(t, ve, "parentId")
	})

	t.Run("rejects missing parent", func(t *testing.T) {
		mockComments := mocks.NewMockCommentRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		mockContent.EXPECT().GetByID(mock.Anything, "content-1").Return(&domain.Content{ID: "content-1"}, nil)
		mockComments.EXPECT().GetByID(mock.Anything, "gone").Return(nil, domain.ErrNotFound)

		svc := service.NewCommentService(mockComments, mockContent, validator.NewValidator())
		_, err := svc.Create(context.Background(), testIdentity("u1"), "content-1",
			domain.NewCommentInput{Text: "reply", ParentID: strPtr("gone")})

		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("returns not found for unknown content", func(t *testing.T) {
		mockComments := mocks.NewMockCommentRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		mockContent.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrNotFound)

		svc := service.NewCommentService(mockComments, mockContent, validator.NewValidator())
		_, err := svc.Create(context.Background(), testIdentity("u1"), "missing", domain.NewCommentInput{Text: "hi"})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCommentService_Delete(t *testing.T) {
	t.Run("author deletes own comment", func(t *testing.T) {
		mockComments := mocks.NewMockCommentRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		mockComments.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Comment{ID: "c1", UserID: "u1"}, nil)
		mockComments.EXPECT().Delete(mock.Anything, "c1").Return(nil)

		svc := service.NewCommentService(mockComments, mockContent, validator.NewValidator())
		assert.NoError(t, svc.Delete(context.Background(), testIdentity("u1"), "c1"))
	})

	t.Run("admin deletes any comment", func(t *testing.T) {
		mockComments := mocks.NewMockCommentRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		mockComments.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Comment{ID: "c1", UserID: "u1"}, nil)
		mockComments.EXPECT().Delete(mock.Anything, "c1").Return(nil)

		svc := service.NewCommentService(mockComments, mockContent, validator.NewValidator())
		assert.NoError(t, svc.Delete(context.Background(), adminIdentity(), "c1"))
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		mockComments := mocks.NewMockCommentRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		mockComments.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Comment{ID: "c1", UserID: "u1"}, nil)

		svc := service.NewCommentService(mockComments, mockContent, validator.NewValidator())
		assert.ErrorIs(t, svc.Delete(context.Background(), testIdentity("u2"), "c1"), domain.ErrForbidden)
	})

	t.Run("anonymous caller is unauthorized", func(t *testing.T) {
		mockComments := mocks.NewMockCommentRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		svc := service.NewCommentService(mockComments, mockContent, validator.NewValidator())
		assert.ErrorIs(t, svc.Delete(context.Background(), nil, "c1"), domain.ErrUnauthorized)
	})

	t.Run("unknown comment is not found", func(t *testing.T) {
		mockComments := mocks.NewMockCommentRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		mockComments.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrNotFound)

		svc := service.NewCommentService(mockComments, mockContent, validator.NewValidator())
		assert.ErrorIs(t, svc.Delete(context.Background(), testIdentity("u1"), "missing"), domain.ErrNotFound)
	})
}
