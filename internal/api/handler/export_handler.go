package handler

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"github.com/ankit1439/mess-portal/internal/api/metrics"
	"github.com/ankit1439/mess-portal/internal/core/ports"
)

// ExportHandler renders admin exports. CSV exports with a single dataset
// stream a plain .csv; multiple datasets are bundled into a zip. Excel
// exports always produce one workbook with a sheet per dataset plus a
// summary sheet.
type ExportHandler struct {
	reports ports.ReportService
}

func NewExportHandler(reports ports.ReportService) *ExportHandler {
	return &ExportHandler{reports: reports}
}

// CSV handles GET /api/admin/export/csv.
//
// @Summary      Export data as CSV
// @Tags         admin
// @Produce      text/csv
// @Security     BearerAuth
// @Param        type  query  string  false  "votes | feedback | complaints | suggestions | all"
// @Param        from  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        to    query  string  false  "End date (YYYY-MM-DD)"
// @Success      200
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/export/csv [get]
func (h *ExportHandler) CSV(c echo.Context) error {
	datasets, err := h.fetch(c)
	if err != nil {
		return err
	}
	metrics.ExportsTotal.WithLabelValues("csv").Inc()

	stamp := time.Now().UTC().Format("20060102_150405")

	if len(datasets) == 1 {
		var buf bytes.Buffer
		if err := writeCSV(&buf, datasets[0]); err != nil {
			return err
		}
		name := fmt.Sprintf("%s_%s.csv", slugify(datasets[0].Name), stamp)
		c.Response().Header().Set(echo.HeaderContentDisposition, attachment(name))
		return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, ds := range datasets {
		w, err := zw.Create(slugify(ds.Name) + ".csv")
		if err != nil {
			return fmt.Errorf("creating zip entry: %w", err)
		}
		if err := writeCSV(w, ds); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing zip: %w", err)
	}

	name := fmt.Sprintf("mess_export_%s.zip", stamp)
	c.Response().Header().Set(echo.HeaderContentDisposition, attachment(name))
	return c.Blob(http.StatusOK, "application/zip", buf.Bytes())
}

// Excel handles GET /api/admin/export/excel.
//
// @Summary      Export data as an Excel workbook
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        type  query  string  false  "votes | feedback | complaints | suggestions | all"
// @Param        from  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        to    query  string  false  "End date (YYYY-MM-DD)"
// @Success      200
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/export/excel [get]
func (h *ExportHandler) Excel(c echo.Context) error {
	datasets, err := h.fetch(c)
	if err != nil {
		return err
	}
	metrics.ExportsTotal.WithLabelValues("excel").Inc()

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	// Summary first so it opens as the default sheet.
	if err := writeSummarySheet(f, headerStyle, datasets); err != nil {
		return err
	}

	for _, ds := range datasets {
		if err := writeDataSheet(f, headerStyle, ds); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	name := fmt.Sprintf("mess_export_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	c.Response().Header().Set(echo.HeaderContentDisposition, attachment(name))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *ExportHandler) fetch(c echo.Context) ([]ports.Dataset, error) {
	kinds := strings.Split(c.QueryParam("type"), ",")
	from, to, err := queryWindow(c)
	if err != nil {
		return nil, err
	}
	return h.reports.Export(c.Request().Context(), kinds, ports.ExportFilter{From: from, To: to})
}

func writeCSV(w io.Writer, ds ports.Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ds.Headers); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	if err := cw.WriteAll(ds.Rows); err != nil {
		return fmt.Errorf("writing csv rows: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

func writeSummarySheet(f *excelize.File, headerStyle int, datasets []ports.Dataset) error {
	const sheet = "Summary"
	f.SetSheetName(f.GetSheetName(0), sheet)

	if err := f.SetSheetRow(sheet, "A1", &[]string{"Dataset", "Rows"}); err != nil {
		return fmt.Errorf("writing summary header: %w", err)
	}
	_ = f.SetCellStyle(sheet, "A1", "B1", headerStyle)

	for i, ds := range datasets {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &[]any{ds.Name, len(ds.Rows)}); err != nil {
			return fmt.Errorf("writing summary row: %w", err)
		}
	}
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", len(datasets)+3), "Generated")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", len(datasets)+3),
		time.Now().UTC().Format("2006-01-02 15:04:05"))
	return nil
}

func writeDataSheet(f *excelize.File, headerStyle int, ds ports.Dataset) error {
	sheet := ds.Name
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", sheet, err)
	}

	headers := make([]any, len(ds.Headers))
	for i, hd := range ds.Headers {
		headers[i] = hd
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("writing sheet header: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(ds.Headers), 1)
	_ = f.SetCellStyle(sheet, "A1", last, headerStyle)

	for i, row := range ds.Rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("writing sheet row: %w", err)
		}
	}
	return nil
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

func attachment(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", filename)
}
