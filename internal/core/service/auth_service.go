package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/ankit1439/mess-portal/internal/core/domain"
	"github.com/ankit1439/mess-portal/internal/core/ports"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const (
	// MinPasswordLen is the minimum accepted admin password length.
	MinPasswordLen = 6

	tokenBytes        = 32
	defaultSessionTTL = time.Hour
)

type AuthService struct {
	admins   ports.AdminRepository
	sessions ports.SessionRepository
	ttl      time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

func NewAuthService(admins ports.AdminRepository, sessions ports.SessionRepository, ttl time.Duration, logger zerolog.Logger) *AuthService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{
		admins:   admins,
		sessions: sessions,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password, ip string) (*ports.LoginResult, error) {
	admin, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up admin: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		s.logger.Warn().Str("username", username).Str("ip", ip).Msg("failed login attempt")
		return nil, domain.ErrInvalidCredentials
	}
	if !admin.Active {
		return nil, domain.ErrAccountDisabled
	}

	token, err := newToken()
	if err != nil {
		return nil, fmt.Errorf("generating session token: %w", err)
	}

	now := s.now().UTC()
	session := &domain.Session{
		AdminID:   admin.ID,
		Token:     token,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
		IPAddress: ip,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	if err := s.admins.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		s.logger.Warn().Err(err).Str("admin_id", admin.ID).Msg("failed to record last login")
	}

	s.logger.Info().Str("username", username).Str("ip", ip).Msg("admin logged in")

	return &ports.LoginResult{
		Token:     token,
		ExpiresIn: int(s.ttl.Seconds()),
		Admin:     admin,
	}, nil
}

// Validate sweeps expired sessions before resolving the token, so an expired
// session is indistinguishable from one that never existed.
func (s *AuthService) Validate(ctx context.Context, token string) (*domain.Admin, error) {
	now := s.now().UTC()

	if _, err := s.sessions.DeleteExpired(ctx, now); err != nil {
		s.logger.Warn().Err(err).Msg("failed to sweep expired sessions")
	}

	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("looking up session: %w", err)
	}
	if session.Expired(now) {
		return nil, domain.ErrInvalidToken
	}

	admin, err := s.admins.FindByID(ctx, session.AdminID)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("looking up admin: %w", err)
	}
	if !admin.Active {
		return nil, domain.ErrInvalidToken
	}

	return admin, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.DeleteByToken(ctx, token); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// ChangePassword verifies the current password, stores the new hash and
// revokes every session of the admin, forcing a fresh login.
func (s *AuthService) ChangePassword(ctx context.Context, adminID, currentPassword, newPassword string) error {
	admin, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("looking up admin: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrInvalidPassword
	}
	if len(newPassword) < MinPasswordLen {
		return domain.ErrWeakPassword
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	if err := s.admins.UpdatePassword(ctx, adminID, hash); err != nil {
		return fmt.Errorf("updating password: %w", err)
	}

	// The password is already rotated at this point; a failed revocation
	// must surface so the caller retries instead of leaving old sessions
	// live until their TTL.
	if err := s.sessions.DeleteByAdmin(ctx, adminID); err != nil {
		s.logger.Error().Err(err).Str("admin_id", adminID).Msg("failed to revoke sessions after password change")
		return fmt.Errorf("revoking sessions: %w", err)
	}

	s.logger.Info().Str("admin_id", adminID).Msg("admin password changed")
	return nil
}

// EnsureDefaultAdmin creates the bootstrap admin account when no account
// with the given username exists yet.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context, username, password, email string) error {
	_, err := s.admins.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrAdminNotFound) {
		return fmt.Errorf("looking up admin: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	admin := &domain.Admin{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    s.now().UTC(),
	}
	if _, err := s.admins.Create(ctx, admin); err != nil {
		return fmt.Errorf("creating default admin: %w", err)
	}

	s.logger.Info().Str("username", username).Msg("default admin created")
	return nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
