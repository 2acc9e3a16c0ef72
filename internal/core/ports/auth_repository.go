package ports

import (
	"context"
	"time"

	"github.com/ankit1439/mess-portal/internal/core/domain"
)

// AdminRepository defines persistence for admin principals.
type AdminRepository interface {
	// Create inserts a new principal; the username column carries a unique
	// index.
	Create(ctx context.Context, a *domain.Admin) (*domain.Admin, error)
	// FindByUsername returns domain.ErrAdminNotFound when absent.
	FindByUsername(ctx context.Context, username string) (*domain.Admin, error)
	FindByID(ctx context.Context, id string) (*domain.Admin, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

// SessionRepository defines persistence for bearer sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	// FindByToken returns domain.ErrInvalidToken when no session exists for
	// token; absence and revocation are indistinguishable to callers.
	FindByToken(ctx context.Context, token string) (*domain.Session, error)
	// DeleteByToken is idempotent: deleting an already-gone session is not an
	// error.
	DeleteByToken(ctx context.Context, token string) error
	// DeleteByAdmin bulk-revokes every session owned by the principal.
	DeleteByAdmin(ctx context.Context, adminID string) error
	// DeleteExpired removes every session with expires_at before the cutoff
	// and reports how many were swept.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
