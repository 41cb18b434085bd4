// Package authcore wires the authentication service to its default
// collaborators: a PostgreSQL user repository, a bcrypt password hasher,
// and an HS256 token manager with Redis-backed revocation.
//
// Callers that need different collaborators construct services.AuthService
// directly.
package authcore

import (
	"context"

	"github.com/productsample/authcore/config"
	"github.com/productsample/authcore/logging"
	"github.com/productsample/authcore/password"
	"github.com/productsample/authcore/services"
	"github.com/productsample/authcore/storage"
	"github.com/productsample/authcore/token"
)

// New opens the backing stores and returns a fully wired AuthService plus
// the Store owning the connections. The caller closes the Store when done.
func New(ctx context.Context, cfg *config.Config, logger logging.Logger) (*services.AuthService, *storage.Store, error) {
	store, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	tokens := token.NewJWTManager(
		[]byte(cfg.SecretKey),
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
		store.Revocations(cfg.Redis.KeyPrefix),
	)

	svc := services.NewAuthService(
		store.Users(),
		password.NewBcryptHasher(0),
		tokens,
		logger,
	)
	return svc, store, nil
}
