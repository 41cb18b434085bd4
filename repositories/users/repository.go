// Package users provides storage for identity records. The Repository
// interface is the contract the authentication service depends on; the
// PostgreSQL implementation is the default backend.
package users

import (
	"context"

	"github.com/productsample/authcore/models"
)

// Repository is the user storage contract.
//
// GetByEmail and GetByID return common.ErrorNotFound for absent users.
// Create returns common.ErrDuplicateAccount when the email uniqueness
// constraint is violated; the constraint, not the caller's existence check,
// is the authority on duplicates.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id string) error
}
