package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-platform/internal/domain"
	"blog-platform/internal/mocks"
	"blog-platform/internal/service"
	"blog-platform/internal/validator"
)

func TestReactionService_Vote(t *testing.T) {
	t.Run("records vote", func(t *testing.T) {
		mockReactions := mocks.NewMockReactionRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		up := domain.ReactionUpvote
		mockContent.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Content{ID: "c1"}, nil)
		mockReactions.EXPECT().Vote(mock.Anything, "c1", "u1", domain.ReactionUpvote).
			Return(domain.VoteSummary{Upvotes: 1, UserVote: &up}, nil)

		svc := service.NewReactionService(mockReactions, mockContent)
		summary, err := svc.Vote(context.Background(), testIdentity("u1"), "c1", domain.ReactionUpvote)

		require.NoError(t, err)
		assert.Equal(t, int64(1), summary.Upvotes)
		require.NotNil(t, summary.UserVote)
		assert.Equal(t, domain.ReactionUpvote, *summary.UserVote)
	})

	t.Run("repeat vote reports removal", func(t *testing.T) {
		mockReactions := mocks.NewMockReactionRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		mockContent.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Content{ID: "c1"}, nil)
		mockReactions.EXPECT().Vote(mock.Anything, "c1", "u1", domain.ReactionDownvote).
			Return(domain.VoteSummary{Removed: true}, nil)

		svc := service.NewReactionService(mockReactions, mockContent)
		summary, err := svc.Vote(context.Background(), testIdentity("u1"), "c1", domain.ReactionDownvote)

		require.NoError(t, err)
		assert.True(t, summary.Removed)
		assert.Nil(t, summary.UserVote)
	})

	t.Run("favorite is not a vote", func(t *testing.T) {
		mockReactions := mocks.NewMockReactionRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		svc := service.NewReactionService(mockReactions, mockContent)
		_, err := svc.Vote(context.Background(), testIdentity("u1"), "c1", domain.ReactionFavorite)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("anonymous caller is unauthorized", func(t *testing.T) {
		mockReactions := mocks.NewMockReactionRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		svc := service.NewReactionService(mockReactions, mockContent)
		_, err := svc.Vote(context.Background(), nil, "c1", domain.ReactionUpvote)

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestReactionService_ToggleFavorite(t *testing.T) {
	mockReactions := mocks.NewMockReactionRepository(t)
	mockContent := mocks.NewMockContentRepository(t)

	mockContent.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Content{ID: "c1"}, nil)
	mockReactions.EXPECT().Toggle(mock.Anything, "c1", "u1", domain.ReactionFavorite).
		Return(domain.ToggleResult{Active: true}, nil)

	svc := service.NewReactionService(mockReactions, mockContent)
	result, err := svc.ToggleFavorite(context.Background(), testIdentity("u1"), "c1")

	require.NoError(t, err)
	assert.True(t, result.Active)
}

func TestReactionService_SummaryAndHas(t *testing.T) {
	t.Run("anonymous summary has no user vote", func(t *testing.T) {
		mockReactions := mocks.NewMockReactionRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		mockReactions.EXPECT().Summary(mock.Anything, "c1", "").Return(domain.VoteSummary{Upvotes: 3, Downvotes: 1}, nil)

		svc := service.NewReactionService(mockReactions, mockContent)
		summary, err := svc.Summary(context.Background(), nil, "c1")

		require.NoError(t, err)
		assert.Equal(t, int64(3), summary.Upvotes)
		assert.Nil(t, summary.UserVote)
	})

	t.Run("anonymous caller has nothing", func(t *testing.T) {
		mockReactions := mocks.NewMockReactionRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		svc := service.NewReactionService(mockReactions, mockContent)
		has, err := svc.Has(context.Background(), nil, "c1", domain.ReactionFavorite)

		require.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("signed-in caller is looked up", func(t *testing.T) {
		mockReactions := mocks.NewMockReactionRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		mockReactions.EXPECT().Has(mock.Anything, "c1", "u1", domain.ReactionFavorite).Return(true, nil)

		svc := service.NewReactionService(mockReactions, mockContent)
		has, err := svc.Has(context.Background(), testIdentity("u1"), "c1", domain.ReactionFavorite)

		require.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		mockReactions := mocks.NewMockReactionRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		svc := service.NewReactionService(mockReactions, mockContent)
		_, err := svc.Has(context.Background(), testIdentity("u1"), "c1", "LIKE")

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestBookmarkService(t *testing.T) {
	t.Run("toggle saves content", func(t *testing.T) {
		mockBookmarks := mocks.NewMockBookmarkRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		mockContent.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Content{ID: "c1"}, nil)
		mockBookmarks.EXPECT().Toggle(mock.Anything, "c1", "u1").Return(domain.ToggleResult{Active: true}, nil)

		svc := service.NewBookmarkService(mockBookmarks, mockContent)
		result, err := svc.Toggle(context.Background(), testIdentity("u1"), "c1")

		require.NoError(t, err)
		assert.True(t, result.Active)
	})

	t.Run("toggle on missing content", func(t *testing.T) {
		mockBookmarks := mocks.NewMockBookmarkRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		mockContent.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrNotFound)

		svc := service.NewBookmarkService(mockBookmarks, mockContent)
		_, err := svc.Toggle(context.Background(), testIdentity("u1"), "missing")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("anonymous caller has nothing saved", func(t *testing.T) {
		mockBookmarks := mocks.NewMockBookmarkRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		svc := service.NewBookmarkService(mockBookmarks, mockContent)
		saved, err := svc.IsSaved(context.Background(), nil, "c1")

		require.NoError(t, err)
		assert.False(t, saved)
	})
}

func TestRatingService(t *testing.T) {
	t.Run("rate stores value and returns summary", func(t *testing.T) {
		mockRatings := mocks.NewMockRatingRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		value := 4
		mockContent.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Content{ID: "c1"}, nil)
		mockRatings.EXPECT().Upsert(mock.Anything, "c1", "u1", 4).Return(nil)
		mockRatings.EXPECT().Summary(mock.Anything, "c1", "u1").
			Return(domain.RatingSummary{Average: 4, Count: 1, UserValue: &value}, nil)

		svc := service.NewRatingService(mockRatings, mockContent, validator.NewValidator())
		summary, err := svc.Rate(context.Background(), testIdentity("u1"), "c1", 4)

		require.NoError(t, err)
		assert.Equal(t, int64(1), summary.Count)
		require.NotNil(t, summary.UserValue)
		assert.Equal(t, 4, *summary.UserValue)
	})

	for _, value := range []int{0, 6, -1} {
		t.Run("rejects out of range value", func(t *testing.T) {
			mockRatings := mocks.NewMockRatingRepository(t)
			mockContent := mocks.NewMockContentRepository(t)

			svc := service.NewRatingService(mockRatings, mockContent, validator.NewValidator())
			_, err := svc.Rate(context.Background(), testIdentity("u1"), "c1", value)

			require.Error(t, err)
			assert.Contains(t, validator.FieldErrors(err), "value")
		})
	}

	t.Run("anonymous summary", func(t *testing.T) {
		mockRatings := mocks.NewMockRatingRepository(t)
		mockContent := mocks.NewMockContentRepository(t)

		mockRatings.EXPECT().Summary(mock.Anything, "c1", "").Return(domain.RatingSummary{Average: 3.5, Count: 2}, nil)

		svc := service.NewRatingService(mockRatings, mockContent, validator.NewValidator())
		summary, err := svc.Summary(context.Background(), nil, "c1")

		require.NoError(t, err)
		assert.InDelta(t, 3.5, summary.Average, 0.001)
		assert.Nil(t, summary.UserValue)
	})
}
