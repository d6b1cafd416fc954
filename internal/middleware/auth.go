package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/domain"
	"blog-platform/internal/logger"
)

const (
	// IdentityKey is the context key for the authenticated identity
	IdentityKey = "identity"
	// RequireAuthHeader tells clients that signing in would let the request through
	RequireAuthHeader = "X-Require-Auth"
)

// TokenParser verifies an Authorization header value.
type TokenParser interface {
	Parse(token string) (*domain.Identity, error)
}

// RevocationChecker reports whether a signed-out token id has been revoked.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Authenticate resolves the bearer token into an identity when one is present.
// Requests with no token, an invalid token or a revoked token continue anonymously.
func Authenticate(tokens TokenParser, revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		identity, err := tokens.Parse(header)
		if err != nil {
			logger.Debug("Ignoring invalid access token",
				slog.String("request_id", GetRequestID(c)),
				slog.String("error", err.Error()),
			)
			c.Next()
			return
		}

		if revoked != nil && identity.TokenID != "" {
			isRevoked, err := revoked.IsRevoked(c.Request.Context(), identity.TokenID)
			if err != nil {
				// Fail closed: treat the caller as anonymous.
				logger.ErrorContext(c.Request.Context(), "Token revocation check failed",
					slog.String("request_id", GetRequestID(c)),
					slog.String("error", err.Error()),
				)
				c.Next()
				return
			}
			if isRevoked {
				c.Next()
				return
			}
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// RequireAuth rejects anonymous requests with 401 and the X-Require-Auth header.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetIdentity(c) == nil {
			c.Header(RequireAuthHeader, "true")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// GetIdentity returns the authenticated identity, or nil for anonymous requests.
func GetIdentity(c *gin.Context) *domain.Identity {
	if value, exists := c.Get(IdentityKey); exists {
		if identity, ok := value.(*domain.Identity); ok {
			return identity
		}
	}
	return nil
}
