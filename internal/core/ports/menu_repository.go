package ports

import (
	"context"

	"github.com/ankit1439/mess-portal/internal/core/domain"
)

// MenuRepository persists menu PDF metadata.
type MenuRepository interface {
	Insert(ctx context.Context, m *domain.MenuPDF) (string, error)
	// Latest returns the most recently uploaded PDF, or domain.ErrNoMenuPDF.
	Latest(ctx context.Context) (*domain.MenuPDF, error)
}
