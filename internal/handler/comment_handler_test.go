package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-platform/internal/domain"
	"blog-platform/internal/mocks"
)

func commentRouter(h *CommentHandler, identity *domain.Identity) *gin.Engine {
	router := gin.New()
	router.Use(withIdentity(identity))
	router.GET("/api/v1/content/:id/comments", h.List)
	router.POST("/api/v1/content/:id/comments", h.Create)
	router.DELETE("/api/v1/comments/:id", h.Delete)
	return router
}

func TestCommentHandler_List(t *testing.T) {
	t.Run("returns nested tree", func(t *testing.T) {
		parent := "r1"
		now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		tree := []domain.CommentNode{{
			CommentRecord: domain.CommentRecord{ID: "r1", Text: "root", CreatedAt: now},
			Replies: []domain.CommentNode{{
				CommentRecord: domain.CommentRecord{ID: "a", Text: "reply", CreatedAt: now.Add(time.Minute), ParentID: &parent},
				Replies:       []domain.CommentNode{},
			}},
		}}

		mockService := mocks.NewMockCommentServiceInterface(t)
		mockService.EXPECT().List(mock.Anything, "c1").Return(tree, nil)

		w := serve(commentRouter(NewCommentHandler(mockService), nil), http.MethodGet, "/api/v1/content/c1/comments", nil)

		assertStatus(t, w, http.StatusOK)
		nodes := decode[[]domain.CommentNode](t, w)
		require.Len(t, nodes, 1)
		require.Len(t, nodes[0].Replies, 1)
		assert.Equal(t, "a", nodes[0].Replies[0].ID)
		assert.Equal(t, "r1", *nodes[0].Replies[0].ParentID)
	})

	t.Run("no comments is an empty array", func(t *testing.T) {
		mockService := mocks.NewMockCommentServiceInterface(t)
		mockService.EXPECT().List(mock.Anything, "c1").Return(nil, nil)

		w := serve(commentRouter(NewCommentHandler(mockService), nil), http.MethodGet, "/api/v1/content/c1/comments", nil)

		assertStatus(t, w, http.StatusOK)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestCommentHandler_Create(t *testing.T) {
	t.Run("creates reply", func(t *testing.T) {
		identity := userIdentity("u1")
		parent := "r1"
		mockService := mocks.NewMockCommentServiceInterface(t)
		mockService.EXPECT().
			Create(mock.Anything, identity, "c1", mock.MatchedBy(func(in domain.NewCommentInput) bool {
				return in.Text == "nice" && in.ParentID != nil && *in.ParentID == "r1"
			})).
			Return(&domain.CommentNode{
				CommentRecord: domain.CommentRecord{ID: "n1", Text: "nice", ParentID: &parent},
				Replies:       []domain.CommentNode{},
			}, nil)

		w := serve(commentRouter(NewCommentHandler(mockService), identity), http.MethodPost,
			"/api/v1/content/c1/comments", jsonBody(t, map[string]string{"text": "nice", "parentId": "r1"}))

		assertStatus(t, w, http.StatusCreated)
		assert.Equal(t, "n1", decode[domain.CommentNode](t, w).ID)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		mockService := mocks.NewMockCommentServiceInterface(t)
		mockService.EXPECT().Create(mock.Anything, (*domain.Identity)(nil), "c1", mock.Anything).Return(nil, domain.ErrUnauthorized)

		w := serve(commentRouter(NewCommentHandler(mockService), nil), http.MethodPost,
			"/api/v1/content/c1/comments", jsonBody(t, map[string]string{"text": "hi"}))

		assertStatus(t, w, http.StatusUnauthorized)
		assert.Equal(t, "true", w.Header().Get("X-Require-Auth"))
	})

	t.Run("blank text", func(t *testing.T) {
		mockService := mocks.NewMockCommentServiceInterface(t)
		mockService.EXPECT().Create(mock.Anything, mock.Anything, "c1", mock.Anything).
			Return(nil, validation.Errors{"text": errors.New("cannot be blank")})

		w := serve(commentRouter(NewCommentHandler(mockService), userIdentity("u1")), http.MethodPost,
			"/api/v1/content/c1/comments", jsonBody(t, map[string]string{"text": "   "}))

		assertStatus(t, w, http.StatusBadRequest)
		assert.Contains(t, decode[ErrorResponse](t, w).Fields, "text")
	})

	t.Run("parent from another post", func(t *testing.T) {
		mockService := mocks.NewMockCommentServiceInterface(t)
		mockService.EXPECT().Create(mock.Anything, mock.Anything, "c1", mock.Anything).Return(nil, domain.ErrInvalidInput)

		w := serve(commentRouter(NewCommentHandler(mockService), userIdentity("u1")), http.MethodPost,
			"/api/v1/content/c1/comments", jsonBody(t, map[string]string{"text": "x", "parentId": "foreign"}))

		assertStatus(t, w, http.StatusBadRequest)
	})
}

func TestCommentHandler_Delete(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		mockService := mocks.NewMockCommentServiceInterface(t)
		mockService.EXPECT().Delete(mock.Anything, mock.Anything, "k1").Return(nil)

		w := serve(commentRouter(NewCommentHandler(mockService), userIdentity("u1")), http.MethodDelete, "/api/v1/comments/k1", nil)

		assertStatus(t, w, http.StatusNoContent)
	})

	t.Run("someone else is forbidden", func(t *testing.T) {
		mockService := mocks.NewMockCommentServiceInterface(t)
		mockService.EXPECT().Delete(mock.Anything, mock.Anything, "k1").Return(domain.ErrForbidden)

		w := serve(commentRouter(NewCommentHandler(mockService), userIdentity("u2")), http.MethodDelete, "/api/v1/comments/k1", nil)

		assertStatus(t, w, http.StatusForbidden)
	})
}
