// Package token mints and verifies the signed credentials issued by the
// authentication service: short-lived access tokens and longer-lived
// refresh tokens, both HS256 JWTs carrying the same payload.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/productsample/authcore/common"
	"github.com/productsample/authcore/models"
)

// Claims is the payload embedded in both access and refresh tokens.
type Claims struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Manager is the signing capability the authentication service depends on.
type Manager interface {
	GenerateAccessToken(user *models.User) (string, error)
	GenerateRefreshToken(user *models.User) (string, error)

	// VerifyRefreshToken validates signature, expiry, and revocation state
	// and returns the embedded claims. Bad tokens of any kind yield
	// common.ErrInvalidToken; a revocation-store failure propagates as-is.
	VerifyRefreshToken(ctx context.Context, tokenString string) (*Claims, error)

	// RevokeUserTokens invalidates every outstanding refresh token for the
	// user. Already-issued access tokens run to their natural expiry.
	RevokeUserTokens(ctx context.Context, userID string) error
}

// JWTManager signs tokens with an HMAC secret and consults a
// RevocationStore when verifying refresh tokens.
type JWTManager struct {
	secret      []byte
	accessTTL   time.Duration
	refreshTTL  time.Duration
	revocations RevocationStore
}

func NewJWTManager(secret []byte, accessTTL, refreshTTL time.Duration, revocations RevocationStore) *JWTManager {
	return &JWTManager{
		secret:      secret,
		accessTTL:   accessTTL,
		refreshTTL:  refreshTTL,
		revocations: revocations,
	}
}

func (m *JWTManager) GenerateAccessToken(user *models.User) (string, error) {
	return m.generate(user, m.accessTTL)
}

func (m *JWTManager) GenerateRefreshToken(user *models.User) (string, error) {
	return m.generate(user, m.refreshTTL)
}

func (m *JWTManager) generate(user *models.User, validity time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return tokenString, nil
}

func (m *JWTManager) VerifyRefreshToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, common.ErrInvalidToken
	}

	revokedAt, err := m.revocations.RevokedAt(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("checking token revocation: %w", err)
	}
	// Tokens issued at or before the revocation instant are dead.
	if !revokedAt.IsZero() && claims.IssuedAt != nil && !claims.IssuedAt.Time.After(revokedAt) {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

func (m *JWTManager) RevokeUserTokens(ctx context.Context, userID string) error {
	// Keep the mark around for as long as a refresh token could outlive it.
	return m.revocations.Revoke(ctx, userID, time.Now(), m.refreshTTL)
}
