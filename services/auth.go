// Package services contains the business logic of the authentication core.
// This file implements AuthService, which sequences registration, login,
// token refresh, and logout over its storage, hashing, and signing
// collaborators.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/productsample/authcore/common"
	"github.com/productsample/authcore/logging"
	"github.com/productsample/authcore/models"
	"github.com/productsample/authcore/password"
	"github.com/productsample/authcore/repositories/users"
	"github.com/productsample/authcore/token"
)

// accessTokenExpirySeconds is the ExpiresIn value reported to callers. The
// service owns this contract value regardless of the configured token TTL.
const accessTokenExpirySeconds = 3600

// LoginResult is the outcome of a successful login. Warnings lists
// best-effort side effects that failed without affecting the login itself.
type LoginResult struct {
	Tokens   *models.AuthTokens
	Warnings []string
}

// AuthService provides the authentication lifecycle:
//   - Register: create accounts
//   - Login: verify credentials and mint token pairs
//   - Refresh: mint fresh token pairs from a valid refresh token
//   - Logout: revoke outstanding refresh tokens
//
// All mutable state lives in the collaborators; the service itself is safe
// for concurrent use. No call is retried: a failed collaborator call fails
// the whole operation.
type AuthService struct {
	users  users.Repository
	hasher password.Hasher
	tokens token.Manager
	logger logging.Logger
}

// NewAuthService constructs an AuthService. A nil logger discards the
// warnings logged for best-effort side effects.
func NewAuthService(repo users.Repository, hasher password.Hasher, tokens token.Manager, logger logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}
	return &AuthService{users: repo, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates a new account and returns its public projection. The
// password digest never leaves the storage layer. A registered email yields
// common.ErrDuplicateAccount whether caught by the fast-path lookup or by
// the storage uniqueness constraint.
//
// Password strength is deliberately not enforced here; callers that want it
// run the credential package checks before registering, so policy can be
// tightened without touching this service.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.PublicUser, error) {
	_, err := s.users.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, common.ErrDuplicateAccount
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("looking up account: %w", err)
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user, err := s.users.Create(ctx, &models.User{
		Email:         req.Email,
		Username:      req.Username,
		PasswordHash:  digest,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Role:          role,
		IsActive:      true,
		EmailVerified: false,
	})
	if err != nil {
		return nil, err
	}

	return user.Public(), nil
}

// Login verifies the credentials and mints a fresh token pair. An unknown
// email and a wrong password both yield common.ErrInvalidCredentials so the
// caller cannot tell the cases apart. The active check runs only after
// password verification, so a disabled account does not leak its existence
// through a different error. The last-login stamp is best-effort: its
// failure is logged and reported via LoginResult.Warnings, never failing
// the login.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up account: %w", err)
	}

	ok, err := s.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, common.ErrAccountDisabled
	}

	tokens, err := s.mintTokens(user)
	if err != nil {
		return nil, err
	}

	result := &LoginResult{Tokens: tokens}
	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn(ctx, "last-login update failed", "user_id", user.ID, "error", err)
		result.Warnings = append(result.Warnings, fmt.Sprintf("last-login update failed: %v", err))
	}

	return result, nil
}

// Refresh verifies the refresh token and mints a fresh pair from the
// current user record, so changed role or email shows up in the new claims.
// A garbage token and a token whose user is gone or disabled both yield
// common.ErrInvalidToken.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.AuthTokens, error) {
	claims, err := s.tokens.VerifyRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrInvalidToken) {
			return nil, common.ErrInvalidToken
		}
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("looking up account: %w", err)
	}
	if !user.IsActive {
		return nil, common.ErrInvalidToken
	}

	return s.mintTokens(user)
}

// Logout revokes every outstanding refresh token for the user. Access
// tokens already issued remain valid until their natural expiry.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.tokens.RevokeUserTokens(ctx, userID)
}

func (s *AuthService) mintTokens(user *models.User) (*models.AuthTokens, error) {
	access, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    accessTokenExpirySeconds,
	}, nil
}
