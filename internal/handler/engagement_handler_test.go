package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blog-platform/internal/domain"
	"blog-platform/internal/mocks"
)

type engagementMocks struct {
	reactions *mocks.MockReactionServiceInterface
	bookmarks *mocks.MockBookmarkServiceInterface
	ratings   *mocks.MockRatingServiceInterface
}

func engagementRouter(t *testing.T, identity *domain.Identity) (*gin.Engine, engagementMocks) {
	m := engagementMocks{
		reactions: mocks.NewMockReactionServiceInterface(t),
		bookmarks: mocks.NewMockBookmarkServiceInterface(t),
		ratings:   mocks.NewMockRatingServiceInterface(t),
	}
	h := NewEngagementHandler(m.reactions, m.bookmarks, m.ratings)

	router := gin.New()
	router.Use(withIdentity(identity))
	router.GET("/api/v1/content/:id/reactions", h.Reactions)
	router.POST("/api/v1/content/:id/reactions", h.React)
	router.GET("/api/v1/content/:id/bookmarks", h.Bookmark)
	router.POST("/api/v1/content/:id/bookmarks", h.ToggleBookmark)
	router.GET("/api/v1/content/:id/ratings", h.Rating)
	router.POST("/api/v1/content/:id/ratings", h.Rate)
	return router, m
}

func TestEngagementHandler_Reactions(t *testing.T) {
	t.Run("summary", func(t *testing.T) {
		router, m := engagementRouter(t, nil)
		m.reactions.EXPECT().Summary(mock.Anything, (*domain.Identity)(nil), "c1").
			Return(domain.VoteSummary{Upvotes: 3, Downvotes: 1}, nil)

		w := serve(router, http.MethodGet, "/api/v1/content/c1/reactions", nil)

		assertStatus(t, w, http.StatusOK)
		assert.JSONEq(t, `{"upvotes":3,"downvotes":1,"userVote":null}`, w.Body.String())
	})

	t.Run("has with lowercase type", func(t *testing.T) {
		router, m := engagementRouter(t, userIdentity("u1"))
		m.reactions.EXPECT().Has(mock.Anything, mock.Anything, "c1", domain.ReactionFavorite).Return(true, nil)

		w := serve(router, http.MethodGet, "/api/v1/content/c1/reactions?type=favorite", nil)

		assertStatus(t, w, http.StatusOK)
		assert.JSONEq(t, `{"has":true}`, w.Body.String())
	})
}

func TestEngagementHandler_React(t *testing.T) {
	t.Run("vote", func(t *testing.T) {
		router, m := engagementRouter(t, userIdentity("u1"))
		up := domain.ReactionUpvote
		m.reactions.EXPECT().Vote(mock.Anything, mock.Anything, "c1", domain.ReactionUpvote).
			Return(domain.VoteSummary{Upvotes: 1, UserVote: &up}, nil)

		w := serve(router, http.MethodPost, "/api/v1/content/c1/reactions", jsonBody(t, map[string]string{"type": "UPVOTE"}))

		assertStatus(t, w, http.StatusOK)
		assert.JSONEq(t, `{"upvotes":1,"downvotes":0,"userVote":"UPVOTE"}`, w.Body.String())
	})

	t.Run("same vote again removes it", func(t *testing.T) {
		router, m := engagementRouter(t, userIdentity("u1"))
		m.reactions.EXPECT().Vote(mock.Anything, mock.Anything, "c1", domain.ReactionDownvote).
			Return(domain.VoteSummary{Removed: true}, nil)

		w := serve(router, http.MethodPost, "/api/v1/content/c1/reactions", jsonBody(t, map[string]string{"type": "DOWNVOTE"}))

		assertStatus(t, w, http.StatusOK)
		assert.JSONEq(t, `{"upvotes":0,"downvotes":0,"userVote":null,"removed":true}`, w.Body.String())
	})

	t.Run("favorite toggles", func(t *testing.T) {
		router, m := engagementRouter(t, userIdentity("u1"))
		m.reactions.EXPECT().ToggleFavorite(mock.Anything, mock.Anything, "c1").Return(domain.ToggleResult{Active: true}, nil)

		w := serve(router, http.MethodPost, "/api/v1/content/c1/reactions", jsonBody(t, map[string]string{"type": "FAVORITE"}))

		assertStatus(t, w, http.StatusOK)
		assert.JSONEq(t, `{"active":true,"removed":false}`, w.Body.String())
	})

	t.Run("unknown type", func(t *testing.T) {
		router, _ := engagementRouter(t, userIdentity("u1"))

		w := serve(router, http.MethodPost, "/api/v1/content/c1/reactions", jsonBody(t, map[string]string{"type": "LOVE"}))

		assertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("anonymous vote", func(t *testing.T) {
		router, m := engagementRouter(t, nil)
		m.reactions.EXPECT().Vote(mock.Anything, (*domain.Identity)(nil), "c1", domain.ReactionUpvote).
			Return(domain.VoteSummary{}, domain.ErrUnauthorized)

		w := serve(router, http.MethodPost, "/api/v1/content/c1/reactions", jsonBody(t, map[string]string{"type": "UPVOTE"}))

		assertStatus(t, w, http.StatusUnauthorized)
	})
}

func TestEngagementHandler_Bookmarks(t *testing.T) {
	router, m := engagementRouter(t, userIdentity("u1"))
	m.bookmarks.EXPECT().IsSaved(mock.Anything, mock.Anything, "c1").Return(false, nil)
	m.bookmarks.EXPECT().Toggle(mock.Anything, mock.Anything, "c1").Return(domain.ToggleResult{Active: true}, nil)

	w := serve(router, http.MethodGet, "/api/v1/content/c1/bookmarks", nil)
	assertStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `{"saved":false}`, w.Body.String())

	w = serve(router, http.MethodPost, "/api/v1/content/c1/bookmarks", nil)
	assertStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `{"saved":true}`, w.Body.String())
}

func TestEngagementHandler_Ratings(t *testing.T) {
	t.Run("rate", func(t *testing.T) {
		router, m := engagementRouter(t, userIdentity("u1"))
		value := 4
		m.ratings.EXPECT().Rate(mock.Anything, mock.Anything, "c1", 4).
			Return(domain.RatingSummary{Average: 4, Count: 1, UserValue: &value}, nil)

		w := serve(router, http.MethodPost, "/api/v1/content/c1/ratings", jsonBody(t, map[string]int{"value": 4}))

		assertStatus(t, w, http.StatusOK)
		assert.JSONEq(t, `{"average":4,"count":1,"userValue":4}`, w.Body.String())
	})

	t.Run("out of range", func(t *testing.T) {
		router, m := engagementRouter(t, userIdentity("u1"))
		m.ratings.EXPECT().Rate(mock.Anything, mock.Anything, "c1", 9).
			Return(domain.RatingSummary{}, validation.Errors{"value": errors.New("must be between 1 and 5")})

		w := serve(router, http.MethodPost, "/api/v1/content/c1/ratings", jsonBody(t, map[string]int{"value": 9}))

		assertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("summary", func(t *testing.T) {
		router, m := engagementRouter(t, nil)
		m.ratings.EXPECT().Summary(mock.Anything, (*domain.Identity)(nil), "c1").Return(domain.RatingSummary{Average: 3.5, Count: 2}, nil)

		w := serve(router, http.MethodGet, "/api/v1/content/c1/ratings", nil)

		assertStatus(t, w, http.StatusOK)
		assert.JSONEq(t, `{"average":3.5,"count":2}`, w.Body.String())
	})
}
