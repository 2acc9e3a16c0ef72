package ports

import (
	"context"
	"io"

	"github.com/ankit1439/mess-portal/internal/core/domain"
)

// UploadMenuInput carries an uploaded menu PDF.
type UploadMenuInput struct {
	OriginalFilename string
	Size             int64
	Content          io.Reader
	UploadedBy       string // admin id
}

// MenuService stores menu PDFs on disk and tracks their metadata.
type MenuService interface {
	Upload(ctx context.Context, in UploadMenuInput) (*domain.MenuPDF, error)
	// Current returns the most recently uploaded PDF or domain.ErrNoMenuPDF.
	Current(ctx context.Context) (*domain.MenuPDF, error)
}
