package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"blog-platform/internal/auth"
	"blog-platform/internal/domain"
	"blog-platform/internal/logger"
	"blog-platform/internal/repository"
	"blog-platform/internal/validator"
)

const resetTokenBytes = 32

// AuthService handles accounts, sessions and password resets.
type AuthService struct {
	users     repository.UserRepository
	resets    repository.PasswordResetRepository
	hasher    PasswordHasher
	tokens    TokenIssuer
	revoker   TokenRevoker
	mailer    Mailer
	validator *validator.Validator
	appURL    string
	now       func() time.Time
}

// NewAuthService creates a new AuthService. appURL is the public base of reset links.
func NewAuthService(
	users repository.UserRepository,
	resets repository.PasswordResetRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	revoker TokenRevoker,
	mailer Mailer,
	v *validator.Validator,
	appURL string,
) *AuthService {
	return &AuthService{
		users:     users,
		resets:    resets,
		hasher:    hasher,
		tokens:    tokens,
		revoker:   revoker,
		mailer:    mailer,
		validator: v,
		appURL:    strings.TrimRight(appURL, "/"),
		now:       time.Now,
	}
}

// SignUp registers a new user account with the user role.
func (s *AuthService) SignUp(ctx context.Context, input domain.SignUpInput) (*domain.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := s.validator.ValidateSignUp(&input); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        input.Email,
		Name:         input.Name,
		Role:         domain.RoleUser,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.InfoContext(ctx, "User signed up", slog.String("user_id", user.ID))
	return user, nil
}

// SignIn checks the credentials and issues an access token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	ok, err := s.hasher.Compare(user.PasswordHash, password)
	if err != nil {
		return nil, fmt.Errorf("compare password: %w", err)
	}
	if !ok {
		logger.WarnContext(ctx, "Sign in rejected", slog.String("user_id", user.ID))
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(*user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	logger.InfoContext(ctx, "User signed in", slog.String("user_id", user.ID))
	return &domain.Session{AccessToken: token, ExpiresAt: expiresAt, User: *user}, nil
}

// SignOut revokes the token the caller authenticated with.
func (s *AuthService) SignOut(ctx context.Context, identity *domain.Identity) error {
	if identity == nil {
		return domain.ErrUnauthorized
	}
	if identity.TokenID == "" {
		return nil
	}
	if err := s.revoker.RevokeToken(ctx, identity.TokenID, identity.ExpiresAt); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	logger.InfoContext(ctx, "User signed out", slog.String("user_id", identity.UserID))
	return nil
}

// RequestPasswordReset emails a one-hour reset link. Unknown emails succeed silently.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.DebugContext(ctx, "Password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("get user: %w", err)
	}

	token, err := auth.RandomToken(resetTokenBytes)
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	reset := &domain.PasswordResetToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: s.now().Add(domain.PasswordResetTTL),
	}
	if err := s.resets.Create(ctx, reset); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	resetURL := s.appURL + "/auth/reset?token=" + url.QueryEscape(token)
	if err := s.mailer.SendPasswordReset(user.Email, user.Name, resetURL); err != nil {
		if errors.Is(err, domain.ErrMailDisabled) {
			logger.WarnContext(ctx, "Password reset mail not sent, SMTP is not configured",
				slog.String("user_id", user.ID))
			return nil
		}
		return fmt.Errorf("send reset mail: %w", err)
	}

	logger.InfoContext(ctx, "Password reset requested", slog.String("user_id", user.ID))
	return nil
}

// ConfirmPasswordReset sets a new password using an unused, unexpired token.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, password string) error {
	if strings.TrimSpace(token) == "" {
		return domain.ErrNotFound
	}
	if err := s.validator.ValidatePassword(password); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.resets.Consume(ctx, token, hash, s.now()); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Password reset completed")
	return nil
}
