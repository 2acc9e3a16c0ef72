package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ankit1439/mess-portal/internal/core/domain"
	"github.com/ankit1439/mess-portal/internal/core/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// maxMenuPDFSize caps menu uploads at 16 MiB.
const maxMenuPDFSize = 16 << 20

type MenuService struct {
	menus     ports.MenuRepository
	uploadDir string
	logger    zerolog.Logger
	now       func() time.Time
}

func NewMenuService(menus ports.MenuRepository, uploadDir string, logger zerolog.Logger) *MenuService {
	return &MenuService{
		menus:     menus,
		uploadDir: uploadDir,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *MenuService) Upload(ctx context.Context, in ports.UploadMenuInput) (*domain.MenuPDF, error) {
	if !strings.EqualFold(filepath.Ext(in.OriginalFilename), ".pdf") {
		return nil, domain.ErrInvalidFile
	}
	if in.Size > maxMenuPDFSize {
		return nil, domain.ErrInvalidFile
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}

	filename := "menu_" + uuid.NewString() + ".pdf"
	path := filepath.Join(s.uploadDir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating menu file: %w", err)
	}
	written, err := io.Copy(dst, io.LimitReader(in.Content, maxMenuPDFSize+1))
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err == nil && written > maxMenuPDFSize {
		err = domain.ErrInvalidFile
	}
	if err != nil {
		os.Remove(path)
		if err == domain.ErrInvalidFile {
			return nil, err
		}
		return nil, fmt.Errorf("writing menu file: %w", err)
	}

	menu := &domain.MenuPDF{
		Filename:         filename,
		OriginalFilename: in.OriginalFilename,
		FileSize:         written,
		UploadedAt:       s.now().UTC(),
		UploadedBy:       in.UploadedBy,
	}
	id, err := s.menus.Insert(ctx, menu)
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("recording menu upload: %w", err)
	}
	menu.ID = id

	s.logger.Info().
		Str("filename", filename).
		Int64("size", written).
		Msg("menu pdf uploaded")
	return menu, nil
}

func (s *MenuService) Current(ctx context.Context) (*domain.MenuPDF, error) {
	menu, err := s.menus.Latest(ctx)
	if err != nil {
		return nil, err
	}
	return menu, nil
}

// FilePath resolves the on-disk location of a stored menu file. The name is
// reduced to its base so path traversal cannot escape the upload directory.
func (s *MenuService) FilePath(filename string) string {
	return filepath.Join(s.uploadDir, filepath.Base(filename))
}
