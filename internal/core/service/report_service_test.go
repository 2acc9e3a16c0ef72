package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ankit1439/mess-portal/internal/core/domain"
	"github.com/ankit1439/mess-portal/internal/core/ports"
)

func newReportFixture(t *testing.T) (*ReportService, *VoteService, *SubmissionService) {
	t.Helper()
	votes := newStubVoteRepo()
	fb := &stubFeedbackRepo{}
	cp := &stubComplaintRepo{}
	sg := &stubSuggestionRepo{}
	report := NewReportService(votes, fb, cp, sg, zerolog.Nop())
	return report, newVoteService(votes, nil), newSubmissionService(fb, cp, sg)
}

func TestReportService_ListVotes_Pagination(t *testing.T) {
	report, voteSvc, _ := newReportFixture(t)

	days := []string{"monday", "tuesday", "wednesday"}
	for _, day := range days {
		if _, err := voteSvc.Submit(context.Background(), ports.SubmitVoteInput{
			Day: day, Meal: "lunch", Dish: "Dal Fry",
			IP: "10.0.0.1", UserAgent: "ua",
		}); err != nil {
			t.Fatalf("seeding vote: %v", err)
		}
	}

	votes, page, err := report.ListVotes(context.Background(), ports.VoteFilter{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("ListVotes returned error: %v", err)
	}
	if len(votes) != 3 {
		// Stub ignores paging; the service still computes page math from the
		// reported total.
		t.Fatalf("expected 3 votes from stub, got %d", len(votes))
	}
	if page.Total != 3 || page.Pages != 2 {
		t.Fatalf("unexpected pagination: %+v", page)
	}
	if !page.HasNext || page.HasPrev {
		t.Fatalf("expected first of two pages, got %+v", page)
	}
}

func TestReportService_ListVotes_DefaultsLimit(t *testing.T) {
	report, _, _ := newReportFixture(t)

	_, page, err := report.ListVotes(context.Background(), ports.VoteFilter{})
	if err != nil {
		t.Fatalf("ListVotes returned error: %v", err)
	}
	if page.Page != 1 || page.Limit != defaultPageLimit {
		t.Fatalf("expected page defaults, got %+v", page)
	}

	_, page, err = report.ListVotes(context.Background(), ports.VoteFilter{Page: -3, Limit: 9999})
	if err != nil {
		t.Fatalf("ListVotes returned error: %v", err)
	}
	if page.Page != 1 || page.Limit != maxPageLimit {
		t.Fatalf("expected clamped paging, got %+v", page)
	}
}

func TestReportService_Dashboard(t *testing.T) {
	report, voteSvc, subSvc := newReportFixture(t)
	ctx := context.Background()

	for i, dish := range []string{"Dal Fry", "Dal Fry", "Veg Biryani"} {
		if _, err := voteSvc.Submit(ctx, ports.SubmitVoteInput{
			Day: "monday", Meal: "lunch", Dish: dish,
			IP: "10.0.0." + string(rune('1'+i)), UserAgent: "ua",
		}); err != nil {
			t.Fatalf("seeding vote: %v", err)
		}
	}
	if _, err := subSvc.SubmitFeedback(ctx, ports.FeedbackInput{
		Message: "ok", Rating: intPtr(4), IP: "10.0.0.1", UserAgent: "ua",
	}); err != nil {
		t.Fatalf("seeding feedback: %v", err)
	}
	if _, err := subSvc.SubmitComplaint(ctx, ports.ComplaintInput{
		Category: "hygiene", Message: "x", Urgency: "urgent",
		IP: "10.0.0.1", UserAgent: "ua",
	}); err != nil {
		t.Fatalf("seeding complaint: %v", err)
	}

	stats, err := report.Dashboard(ctx)
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if stats.Totals.Votes != 3 || stats.Totals.Feedback != 1 || stats.Totals.Complaints != 1 {
		t.Fatalf("unexpected totals: %+v", stats.Totals)
	}
	if stats.VotesToday != 3 {
		t.Fatalf("expected 3 votes today, got %d", stats.VotesToday)
	}
	if len(stats.PopularDishes) == 0 {
		t.Fatalf("expected popular dishes")
	}
	if len(stats.RatingDistribution) != 1 || stats.RatingDistribution[0].Rating != 4 {
		t.Fatalf("unexpected rating distribution: %+v", stats.RatingDistribution)
	}
	if len(stats.ByUrgency) != 1 || stats.ByUrgency[0].Urgency != domain.UrgencyUrgent {
		t.Fatalf("unexpected urgency breakdown: %+v", stats.ByUrgency)
	}
}

func TestReportService_Export_NoData(t *testing.T) {
	report, _, _ := newReportFixture(t)

	if _, err := report.Export(context.Background(), []string{"all"}, ports.ExportFilter{}); !errors.Is(err, domain.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestReportService_Export_UnknownKind(t *testing.T) {
	report, _, _ := newReportFixture(t)

	if _, err := report.Export(context.Background(), []string{"bogus"}, ports.ExportFilter{}); !errors.Is(err, domain.ErrInvalidExportType) {
		t.Fatalf("expected ErrInvalidExportType, got %v", err)
	}
	if _, err := report.Export(context.Background(), []string{"votes", "ballots"}, ports.ExportFilter{}); !errors.Is(err, domain.ErrInvalidExportType) {
		t.Fatalf("expected ErrInvalidExportType for mixed kinds, got %v", err)
	}
}

func TestReportService_Export_Votes(t *testing.T) {
	report, voteSvc, _ := newReportFixture(t)
	ctx := context.Background()

	if _, err := voteSvc.Submit(ctx, ports.SubmitVoteInput{
		Day: "monday", Meal: "lunch", Dish: "Dal Fry",
		IP: "10.0.0.1", UserAgent: "ua",
	}); err != nil {
		t.Fatalf("seeding vote: %v", err)
	}

	datasets, err := report.Export(ctx, []string{"votes"}, ports.ExportFilter{})
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if len(datasets) != 1 || datasets[0].Name != "Votes" {
		t.Fatalf("expected a single Votes dataset, got %+v", datasets)
	}
	ds := datasets[0]
	if len(ds.Rows) != 1 {
		t.Fatalf("expected one row, got %d", len(ds.Rows))
	}
	if len(ds.Rows[0]) != len(ds.Headers) {
		t.Fatalf("row width %d does not match headers %d", len(ds.Rows[0]), len(ds.Headers))
	}

	// Identities are masked on the way out.
	voter := ds.Rows[0][4]
	if !strings.HasSuffix(voter, "...") || len(voter) != 19 {
		t.Fatalf("expected masked identity, got %q", voter)
	}
}

func TestReportService_Export_AllIncludesEveryDataset(t *testing.T) {
	report, voteSvc, subSvc := newReportFixture(t)
	ctx := context.Background()

	if _, err := voteSvc.Submit(ctx, ports.SubmitVoteInput{
		Day: "monday", Meal: "lunch", Dish: "Dal Fry",
		IP: "10.0.0.1", UserAgent: "ua",
	}); err != nil {
		t.Fatalf("seeding vote: %v", err)
	}
	if _, err := subSvc.SubmitSuggestion(ctx, ports.SuggestionInput{
		DishName: "Masala Dosa", MealType: "breakfast",
		IP: "10.0.0.1", UserAgent: "ua",
	}); err != nil {
		t.Fatalf("seeding suggestion: %v", err)
	}

	datasets, err := report.Export(ctx, []string{"all"}, ports.ExportFilter{})
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if len(datasets) != 4 {
		t.Fatalf("expected all four datasets, got %d", len(datasets))
	}
	names := map[string]bool{}
	for _, ds := range datasets {
		names[ds.Name] = true
	}
	for _, want := range []string{"Votes", "Feedback", "Complaints", "Menu Suggestions"} {
		if !names[want] {
			t.Fatalf("missing dataset %q in %v", want, names)
		}
	}
}
