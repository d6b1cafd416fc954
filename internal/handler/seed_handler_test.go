package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-platform/internal/domain"
	"blog-platform/internal/mocks"
)

func seedRequest(t *testing.T, resourceType string, data string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if resourceType != "" {
		require.NoError(t, writer.WriteField("resource_type", resourceType))
	}
	part, err := writer.CreateFormFile("file", resourceType+".ndjson")
	require.NoError(t, err)
	_, err = part.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/seed", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func seedRouter(h *SeedHandler, identity *domain.Identity) *gin.Engine {
	router := gin.New()
	router.Use(withIdentity(identity))
	router.POST("/api/v1/admin/seed", h.Seed)
	return router
}

func TestSeedHandler_Seed(t *testing.T) {
	t.Run("admin seeds users", func(t *testing.T) {
		mockService := mocks.NewMockSeedServiceInterface(t)
		mockService.EXPECT().
			Seed(mock.Anything, "users", mock.Anything).
			RunAndReturn(func(ctx context.Context, resourceType string, r io.Reader) (domain.ImportResult, error) {
				data, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Contains(t, string(data), "ada@example.com")
				return domain.ImportResult{TotalRecords: 1, ProcessedRecords: 1, SuccessCount: 1}, nil
			})

		w := httptest.NewRecorder()
		seedRouter(NewSeedHandler(mockService), adminIdentity()).
			ServeHTTP(w, seedRequest(t, "users", `{"email":"ada@example.com","name":"Ada"}`))

		assertStatus(t, w, http.StatusOK)
		result := decode[domain.ImportResult](t, w)
		assert.Equal(t, 1, result.SuccessCount)
	})

	t.Run("non admin is forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		seedRouter(NewSeedHandler(mocks.NewMockSeedServiceInterface(t)), userIdentity("u1")).
			ServeHTTP(w, seedRequest(t, "users", `{}`))

		assertStatus(t, w, http.StatusForbidden)
	})

	t.Run("resource type is required", func(t *testing.T) {
		w := httptest.NewRecorder()
		seedRouter(NewSeedHandler(mocks.NewMockSeedServiceInterface(t)), adminIdentity()).
			ServeHTTP(w, seedRequest(t, "", `{}`))

		assertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("unknown resource type", func(t *testing.T) {
		w := httptest.NewRecorder()
		seedRouter(NewSeedHandler(mocks.NewMockSeedServiceInterface(t)), adminIdentity()).
			ServeHTTP(w, seedRequest(t, "articles", `{}`))

		assertStatus(t, w, http.StatusBadRequest)
	})
}
