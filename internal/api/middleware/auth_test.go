package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ankit1439/mess-portal/internal/core/domain"
	"github.com/ankit1439/mess-portal/internal/core/ports"
)

type stubAuthService struct {
	admin *domain.Admin
	err   error
	seen  string
}

func (s *stubAuthService) Login(context.Context, string, string, string) (*ports.LoginResult, error) {
	panic("not used")
}

func (s *stubAuthService) Validate(_ context.Context, token string) (*domain.Admin, error) {
	s.seen = token
	if s.err != nil {
		return nil, s.err
	}
	return s.admin, nil
}

func (s *stubAuthService) Logout(context.Context, string) error { return nil }

func (s *stubAuthService) ChangePassword(context.Context, string, string, string) error {
	return nil
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	svc := &stubAuthService{admin: &domain.Admin{ID: "admin_1", Username: "admin", Active: true}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(svc)
	handler := mw(func(c echo.Context) error {
		called = true
		admin, ok := c.Get("admin").(*domain.Admin)
		if !ok || admin.ID != "admin_1" {
			t.Fatalf("admin not set")
		}
		if c.Get("admin_id") != "admin_1" {
			t.Fatalf("admin_id not set")
		}
		if c.Get("token") != "tok-123" {
			t.Fatalf("token not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if svc.seen != "tok-123" {
		t.Fatalf("service saw token %q", svc.seen)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubAuthService{err: domain.ErrInvalidToken})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubAuthService{admin: &domain.Admin{ID: "admin_1"}})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_RevokedToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer revoked")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubAuthService{err: domain.ErrInvalidToken})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
