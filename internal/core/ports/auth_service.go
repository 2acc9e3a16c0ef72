package ports

import (
	"context"

	"github.com/ankit1439/mess-portal/internal/core/domain"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string
	ExpiresIn int // seconds until the session expires
	Admin     *domain.Admin
}

// AuthService issues, validates, and revokes admin bearer sessions.
type AuthService interface {
	// Login verifies credentials and issues a fresh session token bound to a
	// fixed TTL. Fails with domain.ErrInvalidCredentials or
	// domain.ErrAccountDisabled; no session is recorded on failure.
	Login(ctx context.Context, username, password, ip string) (*LoginResult, error)
	// Validate sweeps expired sessions, then resolves the live session and
	// its active owning principal, or fails with domain.ErrInvalidToken.
	Validate(ctx context.Context, token string) (*domain.Admin, error)
	// Logout revokes the session for token; idempotent.
	Logout(ctx context.Context, token string) error
	// ChangePassword re-hashes the password and revokes every session owned
	// by the principal with no grace period. Fails with
	// domain.ErrInvalidPassword or domain.ErrWeakPassword.
	ChangePassword(ctx context.Context, adminID, currentPassword, newPassword string) error
}
