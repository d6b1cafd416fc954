package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-platform/internal/auth"
	"blog-platform/internal/domain"
	"blog-platform/internal/middleware"
)

type fakeRevocations struct {
	revoked map[string]bool
	err     error
}

func (f *fakeRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.revoked[tokenID], nil
}

func newAuthRouter(tokens *auth.TokenManager, revocations middleware.RevocationChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Authenticate(tokens, revocations))
	router.GET("/whoami", func(c *gin.Context) {
		identity := middleware.GetIdentity(c)
		if identity == nil {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": identity.UserID})
	})
	router.GET("/private", middleware.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": middleware.GetIdentity(c).UserID})
	})
	return router
}

func issue(t *testing.T, tokens *auth.TokenManager) (string, string) {
	t.Helper()
	token, _, err := tokens.Issue(domain.User{ID: "user-1", Email: "a@example.com", Name: "A", Role: domain.RoleUser})
	require.NoError(t, err)
	identity, err := tokens.Parse(token)
	require.NoError(t, err)
	return token, identity.TokenID
}

func get(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret-0123456789", "blog-test", time.Hour)
	token, _ := issue(t, tokens)

	t.Run("valid token sets identity", func(t *testing.T) {
		w := get(newAuthRouter(tokens, &fakeRevocations{}), "/whoami", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user":"user-1"}`, w.Body.String())
	})

	t.Run("no token is anonymous", func(t *testing.T) {
		w := get(newAuthRouter(tokens, &fakeRevocations{}), "/whoami", "")
		assert.JSONEq(t, `{"user":null}`, w.Body.String())
	})

	t.Run("garbage token is anonymous", func(t *testing.T) {
		w := get(newAuthRouter(tokens, &fakeRevocations{}), "/whoami", "not-a-jwt")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user":null}`, w.Body.String())
	})

	t.Run("token from another secret is anonymous", func(t *testing.T) {
		other := auth.NewTokenManager("another-secret-0123456789", "blog-test", time.Hour)
		foreign, _ := issue(t, other)
		w := get(newAuthRouter(tokens, &fakeRevocations{}), "/whoami", foreign)
		assert.JSONEq(t, `{"user":null}`, w.Body.String())
	})

	t.Run("revoked token is anonymous", func(t *testing.T) {
		revokedToken, jti := issue(t, tokens)
		revocations := &fakeRevocations{revoked: map[string]bool{jti: true}}
		w := get(newAuthRouter(tokens, revocations), "/whoami", revokedToken)
		assert.JSONEq(t, `{"user":null}`, w.Body.String())
	})

	t.Run("revocation store failure is anonymous", func(t *testing.T) {
		revocations := &fakeRevocations{err: errors.New("redis down")}
		w := get(newAuthRouter(tokens, revocations), "/whoami", token)
		assert.JSONEq(t, `{"user":null}`, w.Body.String())
	})

	t.Run("nil revocation checker", func(t *testing.T) {
		w := get(newAuthRouter(tokens, nil), "/whoami", token)
		assert.JSONEq(t, `{"user":"user-1"}`, w.Body.String())
	})
}

func TestRequireAuth(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret-0123456789", "blog-test", time.Hour)
	token, _ := issue(t, tokens)
	router := newAuthRouter(tokens, &fakeRevocations{})

	t.Run("anonymous gets 401 with hint header", func(t *testing.T) {
		w := get(router, "/private", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "true", w.Header().Get(middleware.RequireAuthHeader))
		assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
	})

	t.Run("signed in passes", func(t *testing.T) {
		w := get(router, "/private", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get(middleware.RequireAuthHeader))
	})
}

func TestGetIdentity_WrongType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(middleware.IdentityKey, "user-1")

	assert.Nil(t, middleware.GetIdentity(c))
}
