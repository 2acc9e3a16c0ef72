package handler

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/ankit1439/mess-portal/internal/core/domain"
	"github.com/ankit1439/mess-portal/internal/core/ports"
)

// MenuStore is the service surface the menu handler needs: metadata plus the
// on-disk location of stored files.
type MenuStore interface {
	ports.MenuService
	FilePath(filename string) string
}

// MenuHandler handles menu PDF upload and retrieval.
type MenuHandler struct {
	menus MenuStore
}

func NewMenuHandler(menus MenuStore) *MenuHandler {
	return &MenuHandler{menus: menus}
}

// Upload handles POST /api/admin/menu/upload, storing a weekly menu PDF.
//
// @Summary      Upload the weekly menu PDF
// @Tags         menu
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        pdf_file  formData  file  true  "Menu PDF"
// @Success      201   {object}  domain.MenuPDF
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/admin/menu/upload [post]
func (h *MenuHandler) Upload(c echo.Context) error {
	admin, err := ctxAdmin(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("pdf_file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded file")
	}
	defer src.Close()

	menu, err := h.menus.Upload(c.Request().Context(), ports.UploadMenuInput{
		OriginalFilename: fileHeader.Filename,
		Size:             fileHeader.Size,
		Content:          src,
		UploadedBy:       admin.ID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, menu)
}

type currentMenuResponse struct {
	Menu *domain.MenuPDF `json:"menu"`
	URL  string          `json:"url"`
}

// Current handles GET /api/admin/menu/current and
// GET /api/public/current-menu-pdf. Returns metadata plus the serving URL of
// the latest upload.
//
// @Summary      Current menu PDF metadata
// @Tags         menu
// @Produce      json
// @Success      200  {object}  currentMenuResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/public/current-menu-pdf [get]
func (h *MenuHandler) Current(c echo.Context) error {
	menu, err := h.menus.Current(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, currentMenuResponse{
		Menu: menu,
		URL:  "/api/uploads/" + menu.Filename,
	})
}

// Serve handles GET /api/uploads/:filename, streaming a stored menu PDF.
//
// @Summary      Download a stored menu PDF
// @Tags         menu
// @Produce      application/pdf
// @Param        filename  path  string  true  "Stored filename"
// @Success      200
// @Failure      404  {object}  errorResponse
// @Router       /api/uploads/{filename} [get]
func (h *MenuHandler) Serve(c echo.Context) error {
	path := h.menus.FilePath(c.Param("filename"))
	if _, err := os.Stat(path); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "file not found")
	}
	return c.File(path)
}
