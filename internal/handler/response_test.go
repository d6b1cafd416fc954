package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"

	"blog-platform/internal/domain"
	"blog-platform/internal/media"
	"blog-platform/internal/middleware"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", validation.Errors{"text": errors.New("cannot be blank")}, http.StatusBadRequest},
		{"invalid input", fmt.Errorf("%w: bad", domain.ErrInvalidInput), http.StatusBadRequest},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"not found", fmt.Errorf("get content: %w", domain.ErrNotFound), http.StatusNotFound},
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"token expired", domain.ErrTokenExpired, http.StatusBadRequest},
		{"unsupported media", media.ErrUnsupportedType, http.StatusUnsupportedMediaType},
		{"too large", media.ErrTooLarge, http.StatusRequestEntityTooLarge},
		{"empty file", media.ErrEmptyFile, http.StatusBadRequest},
		{"mail disabled", domain.ErrMailDisabled, http.StatusServiceUnavailable},
		{"media disabled", media.ErrDisabled, http.StatusServiceUnavailable},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/", func(c *gin.Context) { respondError(c, tt.err) })

			w := serve(router, http.MethodGet, "/", nil)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRespondError_Details(t *testing.T) {
	t.Run("validation errors list fields", func(t *testing.T) {
		router := gin.New()
		router.GET("/", func(c *gin.Context) {
			respondError(c, validation.Errors{"text": errors.New("cannot be blank")})
		})

		w := serve(router, http.MethodGet, "/", nil)

		body := decode[ErrorResponse](t, w)
		assert.Equal(t, "validation failed", body.Error)
		assert.Contains(t, body.Fields, "text")
	})

	t.Run("unauthorized sets require auth header", func(t *testing.T) {
		router := gin.New()
		router.GET("/", func(c *gin.Context) { respondError(c, domain.ErrUnauthorized) })

		w := serve(router, http.MethodGet, "/", nil)

		assert.Equal(t, "true", w.Header().Get(middleware.RequireAuthHeader))
	})

	t.Run("internal errors are hidden", func(t *testing.T) {
		router := gin.New()
		router.GET("/", func(c *gin.Context) { respondError(c, errors.New("pq: password authentication failed")) })

		w := serve(router, http.MethodGet, "/", nil)

		assert.NotContains(t, w.Body.String(), "password")
	})
}
