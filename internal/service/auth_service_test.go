package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-platform/internal/domain"
	"blog-platform/internal/mocks"
	"blog-platform/internal/service"
	"blog-platform/internal/validator"
)

type authMocks struct {
	users   *mocks.MockUserRepository
	resets  *mocks.MockPasswordResetRepository
	hasher  *mocks.MockPasswordHasher
	tokens  *mocks.MockTokenIssuer
	revoker *mocks.MockTokenRevoker
	mailer  *mocks.MockMailer
}

func newAuthService(t *testing.T) (*service.AuthService, authMocks) {
	m := authMocks{
		users:   mocks.NewMockUserRepository(t),
		resets:  mocks.NewMockPasswordResetRepository(t),
		hasher:  mocks.NewMockPasswordHasher(t),
		tokens:  mocks.NewMockTokenIssuer(t),
		revoker: mocks.NewMockTokenRevoker(t),
		mailer:  mocks.NewMockMailer(t),
	}
	svc := service.NewAuthService(m.users, m.resets, m.hasher, m.tokens, m.revoker, m.mailer,
		validator.NewValidator(), "https://blog.example.com/")
	return svc, m
}

func TestAuthService_SignUp(t *testing.T) {
	t.Run("creates user with hashed password", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.hasher.EXPECT().Hash("correct horse").Return("hashed", nil)
		m.users.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
				return u.Email == "ada@example.com" && u.Name == "Ada" && u.Role == domain.RoleUser && u.PasswordHash == "hashed"
			})).
			Run(func(ctx context.Context, u *domain.User) { u.ID = "u1" }).
			Return(nil)

		user, err := svc.SignUp(context.Background(), domain.SignUpInput{
			Name: " Ada ", Email: " Ada@Example.com ", Password: "correct horse",
		})

		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
		m.users.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrConflict)

		_, err := svc.SignUp(context.Background(), domain.SignUpInput{
			Name: "Ada", Email: "ada@example.com", Password: "correct horse",
		})

		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		svc, _ := newAuthService(t)

		_, err := svc.SignUp(context.Background(), domain.SignUpInput{
			Name: "Ada", Email: "ada@example.com", Password: "short",
		})

		require.Error(t, err)
		assert.Contains(t, validator.FieldErrors(err), "password")
	})
}

func TestAuthService_SignIn(t *testing.T) {
	user := &domain.User{ID: "u1", Email: "ada@example.com", Name: "Ada", Role: domain.RoleUser, PasswordHash: "hashed"}

	t.Run("issues token for valid credentials", func(t *testing.T) {
		svc, m := newAuthService(t)
		expires := time.Now().Add(time.Hour)

		m.users.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(user, nil)
		m.hasher.EXPECT().Compare("hashed", "secret-pass").Return(true, nil)
		m.tokens.EXPECT().Issue(*user).Return("jwt-token", expires, nil)

		session, err := svc.SignIn(context.Background(), "ada@example.com", "secret-pass")

		require.NoError(t, err)
		assert.Equal(t, "jwt-token", session.AccessToken)
		assert.Equal(t, expires, session.ExpiresAt)
		assert.Equal(t, "u1", session.User.ID)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.users.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(user, nil)
		m.hasher.EXPECT().Compare("hashed", "wrong").Return(false, nil)
		m.users.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)

		_, errWrong := svc.SignIn(context.Background(), "ada@example.com", "wrong")
		_, errUnknown := svc.SignIn(context.Background(), "nobody@example.com", "whatever")

		assert.ErrorIs(t, errWrong, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
		assert.Equal(t, errWrong.Error(), errUnknown.Error())
	})
}

func TestAuthService_SignOut(t *testing.T) {
	t.Run("revokes token until expiry", func(t *testing.T) {
		svc, m := newAuthService(t)
		identity := testIdentity("u1")
		identity.TokenID = "jti-1"
		identity.ExpiresAt = time.Now().Add(time.Hour)

		m.revoker.EXPECT().RevokeToken(mock.Anything, "jti-1", identity.ExpiresAt).Return(nil)

		assert.NoError(t, svc.SignOut(context.Background(), identity))
	})

	t.Run("anonymous caller is unauthorized", func(t *testing.T) {
		svc, _ := newAuthService(t)
		assert.ErrorIs(t, svc.SignOut(context.Background(), nil), domain.ErrUnauthorized)
	})
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	t.Run("stores token and mails link", func(t *testing.T) {
		svc, m := newAuthService(t)

		var stored *domain.PasswordResetToken
		m.users.EXPECT().GetByEmail(mock.Anything, "ada@example.com").
			Return(&domain.User{ID: "u1", Email: "ada@example.com", Name: "Ada"}, nil)
		m.resets.EXPECT().Create(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, token *domain.PasswordResetToken) { stored = token }).
			Return(nil)
		m.mailer.EXPECT().
			SendPasswordReset("ada@example.com", "Ada", mock.MatchedBy(func(link string) bool {
				return strings.HasPrefix(link, "https://blog.example.com/auth/reset?token=")
			})).
			Return(nil)

		require.NoError(t, svc.RequestPasswordReset(context.Background(), "ada@example.com"))

		require.NotNil(t, stored)
		assert.Equal(t, "u1", stored.UserID)
		assert.Len(t, stored.Token, 64)
		assert.WithinDuration(t, time.Now().Add(domain.PasswordResetTTL), stored.ExpiresAt, time.Minute)
	})

	t.Run("unknown email succeeds silently", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.users.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)

		assert.NoError(t, svc.RequestPasswordReset(context.Background(), "nobody@example.com"))
	})

	t.Run("disabled mail is tolerated", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.users.EXPECT().GetByEmail(mock.Anything, "ada@example.com").
			Return(&domain.User{ID: "u1", Email: "ada@example.com", Name: "Ada"}, nil)
		m.resets.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		m.mailer.EXPECT().SendPasswordReset(mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrMailDisabled)

		assert.NoError(t, svc.RequestPasswordReset(context.Background(), "ada@example.com"))
	})

	t.Run("mail failure is reported", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.users.EXPECT().GetByEmail(mock.Anything, "ada@example.com").
			Return(&domain.User{ID: "u1", Email: "ada@example.com", Name: "Ada"}, nil)
		m.resets.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		m.mailer.EXPECT().SendPasswordReset(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("550 mailbox unavailable"))

		err := svc.RequestPasswordReset(context.Background(), "ada@example.com")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "550")
	})
}

func TestAuthService_ConfirmPasswordReset(t *testing.T) {
	t.Run("consumes token with new hash", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.hasher.EXPECT().Hash("new password").Return("new-hash", nil)
		m.resets.EXPECT().Consume(mock.Anything, "tok", "new-hash", mock.AnythingOfType("time.Time")).Return(nil)

		assert.NoError(t, svc.ConfirmPasswordReset(context.Background(), "tok", "new password"))
	})

	t.Run("expired token", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.hasher.EXPECT().Hash(mock.Anything).Return("new-hash", nil)
		m.resets.EXPECT().Consume(mock.Anything, "old", "new-hash", mock.Anything).Return(domain.ErrTokenExpired)

		assert.ErrorIs(t, svc.ConfirmPasswordReset(context.Background(), "old", "new password"), domain.ErrTokenExpired)
	})

	t.Run("weak password never reaches the store", func(t *testing.T) {
		svc, _ := newAuthService(t)

		err := svc.ConfirmPasswordReset(context.Background(), "tok", "short")

		assert.Contains(t, validator.FieldErrors(err), "password")
	})
}
