package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-platform/internal/domain"
	"blog-platform/internal/media"
	"blog-platform/internal/mocks"
)

func TestUserHandler(t *testing.T) {
	mockService := mocks.NewMockUserServiceInterface(t)
	h := NewUserHandler(mockService)

	router := gin.New()
	router.Use(withIdentity(userIdentity("u1")))
	router.GET("/api/v1/user/saved", h.Saved)
	router.GET("/api/v1/users/search", h.Search)
	router.GET("/api/v1/users/:id", h.Profile)

	t.Run("saved", func(t *testing.T) {
		mockService.EXPECT().Saved(mock.Anything, mock.Anything).
			Return(domain.SavedItems{Bookmarks: []domain.Content{{ID: "c1"}}, Favorites: []domain.Content{}}, nil).Once()

		w := serve(router, http.MethodGet, "/api/v1/user/saved", nil)

		assertStatus(t, w, http.StatusOK)
		saved := decode[domain.SavedItems](t, w)
		assert.Len(t, saved.Bookmarks, 1)
		assert.NotNil(t, saved.Favorites)
	})

	t.Run("search hides emails", func(t *testing.T) {
		mockService.EXPECT().Search(mock.Anything, "ada").
			Return([]domain.User{{ID: "u9", Name: "Ada", Email: "ada@example.com"}}, nil).Once()

		w := serve(router, http.MethodGet, "/api/v1/users/search?q=ada", nil)

		assertStatus(t, w, http.StatusOK)
		assert.NotContains(t, w.Body.String(), "ada@example.com")
		assert.Len(t, decode[[]domain.Profile](t, w), 1)
	})

	t.Run("empty search", func(t *testing.T) {
		mockService.EXPECT().Search(mock.Anything, "").Return([]domain.User{}, nil).Once()

		w := serve(router, http.MethodGet, "/api/v1/users/search", nil)

		assertStatus(t, w, http.StatusOK)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("profile not found", func(t *testing.T) {
		mockService.EXPECT().Profile(mock.Anything, "ghost").Return(nil, domain.ErrNotFound).Once()

		w := serve(router, http.MethodGet, "/api/v1/users/ghost", nil)

		assertStatus(t, w, http.StatusNotFound)
	})
}

func TestContactHandler_Send(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		mockService := mocks.NewMockContactServiceInterface(t)
		mockService.EXPECT().Send(mock.Anything, domain.ContactMessage{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello"}).Return(nil)

		router := gin.New()
		router.POST("/api/v1/contact", NewContactHandler(mockService).Send)
		w := serve(router, http.MethodPost, "/api/v1/contact",
			jsonBody(t, map[string]string{"name": "Ada", "email": "ada@example.com", "subject": "Hi", "message": "Hello"}))

		assertStatus(t, w, http.StatusAccepted)
	})

	t.Run("mail not configured", func(t *testing.T) {
		mockService := mocks.NewMockContactServiceInterface(t)
		mockService.EXPECT().Send(mock.Anything, mock.Anything).Return(domain.ErrMailDisabled)

		router := gin.New()
		router.POST("/api/v1/contact", NewContactHandler(mockService).Send)
		w := serve(router, http.MethodPost, "/api/v1/contact",
			jsonBody(t, map[string]string{"name": "Ada", "email": "ada@example.com", "message": "Hello"}))

		assertStatus(t, w, http.StatusServiceUnavailable)
	})
}

func imageUpload(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestMediaHandler_Upload(t *testing.T) {
	t.Run("returns url", func(t *testing.T) {
		mockService := mocks.NewMockMediaServiceInterface(t)
		mockService.EXPECT().
			Upload(mock.Anything, mock.Anything, mock.MatchedBy(func(u media.Upload) bool {
				return u.Filename == "cat.png" && u.ContentType == "image/png" && u.Size == 4
			})).
			Return("https://cdn.example.com/uploads/u1/x.png", nil)

		router := gin.New()
		router.Use(withIdentity(userIdentity("u1")))
		router.POST("/api/v1/media", NewMediaHandler(mockService).Upload)

		body, contentType := imageUpload(t, "file", "cat.png", "image/png", []byte{0x89, 'P', 'N', 'G'})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/media", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assertStatus(t, w, http.StatusCreated)
		assert.JSONEq(t, `{"url":"https://cdn.example.com/uploads/u1/x.png"}`, w.Body.String())
	})

	t.Run("missing file", func(t *testing.T) {
		router := gin.New()
		router.POST("/api/v1/media", NewMediaHandler(mocks.NewMockMediaServiceInterface(t)).Upload)

		body, contentType := imageUpload(t, "other", "cat.png", "image/png", []byte("x"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/media", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("unsupported type", func(t *testing.T) {
		mockService := mocks.NewMockMediaServiceInterface(t)
		mockService.EXPECT().Upload(mock.Anything, mock.Anything, mock.Anything).Return("", media.ErrUnsupportedType)

		router := gin.New()
		router.POST("/api/v1/media", NewMediaHandler(mockService).Upload)

		body, contentType := imageUpload(t, "file", "doc.pdf", "application/pdf", []byte("%PDF"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/media", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assertStatus(t, w, http.StatusUnsupportedMediaType)
	})
}
