package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ankit1439/mess-portal/internal/core/domain"
	"github.com/ankit1439/mess-portal/internal/core/ports"
)

type stubReportService struct {
	datasets []ports.Dataset
	err      error
	kinds    []string
}

func (s *stubReportService) ListVotes(context.Context, ports.VoteFilter) ([]domain.Vote, ports.Pagination, error) {
	return nil, ports.Pagination{}, nil
}

func (s *stubReportService) ListFeedback(context.Context, ports.FeedbackFilter) ([]domain.Feedback, ports.Pagination, error) {
	return nil, ports.Pagination{}, nil
}

func (s *stubReportService) ListComplaints(context.Context, ports.ComplaintFilter) ([]domain.Complaint, ports.Pagination, error) {
	return nil, ports.Pagination{}, nil
}

func (s *stubReportService) ListSuggestions(context.Context, ports.SuggestionFilter) ([]domain.Suggestion, ports.Pagination, error) {
	return nil, ports.Pagination{}, nil
}

func (s *stubReportService) Dashboard(context.Context) (*ports.DashboardStats, error) {
	return &ports.DashboardStats{}, nil
}

func (s *stubReportService) Export(_ context.Context, kinds []string, _ ports.ExportFilter) ([]ports.Dataset, error) {
	s.kinds = kinds
	if s.err != nil {
		return nil, s.err
	}
	return s.datasets, nil
}

func TestExportHandler_CSV_SingleDataset(t *testing.T) {
	e := newTestEcho()
	svc := &stubReportService{datasets: []ports.Dataset{{
		Name:    "Votes",
		Headers: []string{"ID", "Day", "Meal", "Dish", "Voter", "Submitted At"},
		Rows: [][]string{
			{"1", "monday", "lunch", "Dal, extra spicy", "abcd1234...", "2026-08-24 12:00:00"},
		},
	}}}
	h := NewExportHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/export/csv?type=votes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CSV(c); err != nil {
		t.Fatalf("CSV returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "votes_") || !strings.Contains(got, ".csv") {
		t.Fatalf("unexpected disposition %q", got)
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, "ID,Day,Meal,Dish,Voter,Submitted At") {
		t.Fatalf("missing header row: %s", body)
	}
	// Commas inside a field must be quoted.
	if !strings.Contains(body, `"Dal, extra spicy"`) {
		t.Fatalf("field quoting broken: %s", body)
	}
	if svc.kinds[0] != "votes" {
		t.Fatalf("expected votes kind, got %v", svc.kinds)
	}
}

func TestExportHandler_CSV_MultipleDatasetsZip(t *testing.T) {
	e := newTestEcho()
	svc := &stubReportService{datasets: []ports.Dataset{
		{Name: "Votes", Headers: []string{"ID"}, Rows: [][]string{{"1"}}},
		{Name: "Feedback", Headers: []string{"ID"}, Rows: [][]string{{"2"}}},
	}}
	h := NewExportHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/export/csv?type=all", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CSV(c); err != nil {
		t.Fatalf("CSV returned error: %v", err)
	}
	if got := rec.Header().Get("Content-Type"); !strings.Contains(got, "application/zip") {
		t.Fatalf("expected zip content type, got %q", got)
	}
}

func TestExportHandler_CSV_NoData(t *testing.T) {
	e := newTestEcho()
	h := NewExportHandler(&stubReportService{err: domain.ErrNoData})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/export/csv", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CSV(c)
	if err != domain.ErrNoData {
		t.Fatalf("expected ErrNoData to propagate, got %v", err)
	}
}

func TestExportHandler_CSV_MalformedDate(t *testing.T) {
	e := newTestEcho()
	svc := &stubReportService{datasets: []ports.Dataset{
		{Name: "Votes", Headers: []string{"ID"}, Rows: [][]string{{"1"}}},
	}}
	h := NewExportHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/export/csv?start_date=24-08-2026", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CSV(c)
	if !errors.Is(err, domain.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if svc.kinds != nil {
		t.Fatalf("service must not be called on a bad date, got kinds %v", svc.kinds)
	}
}

func TestExportHandler_Excel_Workbook(t *testing.T) {
	e := newTestEcho()
	svc := &stubReportService{datasets: []ports.Dataset{
		{Name: "Votes", Headers: []string{"ID", "Dish"}, Rows: [][]string{{"1", "Dal Fry"}}},
	}}
	h := NewExportHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/export/excel?type=votes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Excel(c); err != nil {
		t.Fatalf("Excel returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, ".xlsx") {
		t.Fatalf("unexpected disposition %q", got)
	}
	// xlsx files are zip containers; check the magic bytes.
	if body := rec.Body.Bytes(); len(body) < 4 || body[0] != 'P' || body[1] != 'K' {
		t.Fatalf("response is not a zip container")
	}
}
