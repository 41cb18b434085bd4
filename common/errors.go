// Package common defines shared sentinel errors used across the service and
// repository layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrDuplicateAccount is returned when registering an email that is
	// already on file, whether caught by the fast-path lookup or by the
	// database uniqueness constraint.
	ErrDuplicateAccount = errors.New("account with this email already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two cases are deliberately indistinguishable so a
	// caller cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDisabled is returned after successful password
	// verification for a deactivated account.
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrInvalidToken covers an unverifiable, expired, revoked, or
	// orphaned refresh token.
	ErrInvalidToken = errors.New("invalid token")
)
