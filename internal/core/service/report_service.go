package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ankit1439/mess-portal/internal/core/domain"
	"github.com/ankit1439/mess-portal/internal/core/ports"
	"github.com/rs/zerolog"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 100
	popularDishTop   = 10
	recentWindow     = 7 * 24 * time.Hour
	exportTimeLayout = "2006-01-02 15:04:05"
)

type ReportService struct {
	votes       ports.VoteRepository
	feedback    ports.FeedbackRepository
	complaints  ports.ComplaintRepository
	suggestions ports.SuggestionRepository
	logger      zerolog.Logger
	now         func() time.Time
}

func NewReportService(
	votes ports.VoteRepository,
	feedback ports.FeedbackRepository,
	complaints ports.ComplaintRepository,
	suggestions ports.SuggestionRepository,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{
		votes:       votes,
		feedback:    feedback,
		complaints:  complaints,
		suggestions: suggestions,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *ReportService) ListVotes(ctx context.Context, filter ports.VoteFilter) ([]domain.Vote, ports.Pagination, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	votes, total, err := s.votes.List(ctx, filter)
	if err != nil {
		return nil, ports.Pagination{}, fmt.Errorf("listing votes: %w", err)
	}
	return votes, paginate(filter.Page, filter.Limit, total), nil
}

func (s *ReportService) ListFeedback(ctx context.Context, filter ports.FeedbackFilter) ([]domain.Feedback, ports.Pagination, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	items, total, err := s.feedback.List(ctx, filter)
	if err != nil {
		return nil, ports.Pagination{}, fmt.Errorf("listing feedback: %w", err)
	}
	return items, paginate(filter.Page, filter.Limit, total), nil
}

func (s *ReportService) ListComplaints(ctx context.Context, filter ports.ComplaintFilter) ([]domain.Complaint, ports.Pagination, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	items, total, err := s.complaints.List(ctx, filter)
	if err != nil {
		return nil, ports.Pagination{}, fmt.Errorf("listing complaints: %w", err)
	}
	return items, paginate(filter.Page, filter.Limit, total), nil
}

func (s *ReportService) ListSuggestions(ctx context.Context, filter ports.SuggestionFilter) ([]domain.Suggestion, ports.Pagination, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	items, total, err := s.suggestions.List(ctx, filter)
	if err != nil {
		return nil, ports.Pagination{}, fmt.Errorf("listing suggestions: %w", err)
	}
	return items, paginate(filter.Page, filter.Limit, total), nil
}

func (s *ReportService) Dashboard(ctx context.Context) (*ports.DashboardStats, error) {
	stats := &ports.DashboardStats{}

	var err error
	if stats.Totals.Votes, err = s.votes.Count(ctx); err != nil {
		return nil, fmt.Errorf("counting votes: %w", err)
	}
	if stats.Totals.Feedback, err = s.feedback.Count(ctx); err != nil {
		return nil, fmt.Errorf("counting feedback: %w", err)
	}
	if stats.Totals.Complaints, err = s.complaints.Count(ctx); err != nil {
		return nil, fmt.Errorf("counting complaints: %w", err)
	}
	if stats.Totals.Suggestions, err = s.suggestions.Count(ctx); err != nil {
		return nil, fmt.Errorf("counting suggestions: %w", err)
	}

	now := s.now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if stats.VotesToday, err = s.votes.CountSince(ctx, midnight); err != nil {
		return nil, fmt.Errorf("counting today's votes: %w", err)
	}

	since := now.Add(-recentWindow)
	if stats.RecentActivity.Votes, err = s.votes.CountSince(ctx, since); err != nil {
		return nil, fmt.Errorf("counting recent votes: %w", err)
	}
	if stats.RecentActivity.Feedback, err = s.feedback.CountSince(ctx, since); err != nil {
		return nil, fmt.Errorf("counting recent feedback: %w", err)
	}
	if stats.RecentActivity.Complaints, err = s.complaints.CountSince(ctx, since); err != nil {
		return nil, fmt.Errorf("counting recent complaints: %w", err)
	}

	if stats.PopularDishes, err = s.votes.PopularDishes(ctx, popularDishTop); err != nil {
		return nil, fmt.Errorf("ranking dishes: %w", err)
	}
	if stats.RatingDistribution, err = s.feedback.RatingDistribution(ctx); err != nil {
		return nil, fmt.Errorf("aggregating ratings: %w", err)
	}
	if stats.ByUrgency, err = s.complaints.CountByUrgency(ctx); err != nil {
		return nil, fmt.Errorf("aggregating urgencies: %w", err)
	}

	return stats, nil
}

func (s *ReportService) Export(ctx context.Context, kinds []string, filter ports.ExportFilter) ([]ports.Dataset, error) {
	wanted := map[string]bool{}
	for _, k := range kinds {
		switch strings.ToLower(strings.TrimSpace(k)) {
		case "all", "":
			wanted["votes"], wanted["feedback"] = true, true
			wanted["complaints"], wanted["suggestions"] = true, true
		case "votes":
			wanted["votes"] = true
		case "feedback":
			wanted["feedback"] = true
		case "complaints":
			wanted["complaints"] = true
		case "suggestions":
			wanted["suggestions"] = true
		default:
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidExportType, k)
		}
	}
	if len(wanted) == 0 {
		wanted["votes"], wanted["feedback"] = true, true
		wanted["complaints"], wanted["suggestions"] = true, true
	}

	var datasets []ports.Dataset
	rows := 0

	if wanted["votes"] {
		ds, err := s.exportVotes(ctx, filter)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, ds)
		rows += len(ds.Rows)
	}
	if wanted["feedback"] {
		ds, err := s.exportFeedback(ctx, filter)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, ds)
		rows += len(ds.Rows)
	}
	if wanted["complaints"] {
		ds, err := s.exportComplaints(ctx, filter)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, ds)
		rows += len(ds.Rows)
	}
	if wanted["suggestions"] {
		ds, err := s.exportSuggestions(ctx, filter)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, ds)
		rows += len(ds.Rows)
	}

	if len(datasets) == 0 || rows == 0 {
		return nil, domain.ErrNoData
	}

	s.logger.Info().Int("datasets", len(datasets)).Int("rows", rows).Msg("export assembled")
	return datasets, nil
}

func (s *ReportService) exportVotes(ctx context.Context, filter ports.ExportFilter) (ports.Dataset, error) {
	votes, _, err := s.votes.List(ctx, ports.VoteFilter{
		From: filter.From, To: filter.To, Page: 1, Limit: exportBatch,
	})
	if err != nil {
		return ports.Dataset{}, fmt.Errorf("exporting votes: %w", err)
	}

	ds := ports.Dataset{
		Name:    "Votes",
		Headers: []string{"ID", "Day", "Meal", "Dish", "Voter", "Submitted At"},
	}
	for _, v := range votes {
		ds.Rows = append(ds.Rows, []string{
			v.ID,
			string(v.Day),
			string(v.Meal),
			v.Dish,
			maskIdentity(v.Identity),
			v.SubmittedAt.Format(exportTimeLayout),
		})
	}
	return ds, nil
}

func (s *ReportService) exportFeedback(ctx context.Context, filter ports.ExportFilter) (ports.Dataset, error) {
	items, _, err := s.feedback.List(ctx, ports.FeedbackFilter{
		From: filter.From, To: filter.To, Page: 1, Limit: exportBatch,
	})
	if err != nil {
		return ports.Dataset{}, fmt.Errorf("exporting feedback: %w", err)
	}

	ds := ports.Dataset{
		Name:    "Feedback",
		Headers: []string{"ID", "Type", "Rating", "Message", "Submitted At"},
	}
	for _, f := range items {
		rating := ""
		if f.Rating != nil {
			rating = strconv.Itoa(*f.Rating)
		}
		ds.Rows = append(ds.Rows, []string{
			f.ID,
			f.Type,
			rating,
			f.Message,
			f.SubmittedAt.Format(exportTimeLayout),
		})
	}
	return ds, nil
}

func (s *ReportService) exportComplaints(ctx context.Context, filter ports.ExportFilter) (ports.Dataset, error) {
	items, _, err := s.complaints.List(ctx, ports.ComplaintFilter{
		From: filter.From, To: filter.To, Page: 1, Limit: exportBatch,
	})
	if err != nil {
		return ports.Dataset{}, fmt.Errorf("exporting complaints: %w", err)
	}

	ds := ports.Dataset{
		Name:    "Complaints",
		Headers: []string{"ID", "Category", "Urgency", "Status", "Message", "Submitted At"},
	}
	for _, c := range items {
		ds.Rows = append(ds.Rows, []string{
			c.ID,
			c.Category,
			string(c.Urgency),
			string(c.Status),
			c.Message,
			c.SubmittedAt.Format(exportTimeLayout),
		})
	}
	return ds, nil
}

func (s *ReportService) exportSuggestions(ctx context.Context, filter ports.ExportFilter) (ports.Dataset, error) {
	items, _, err := s.suggestions.List(ctx, ports.SuggestionFilter{
		From: filter.From, To: filter.To, Page: 1, Limit: exportBatch,
	})
	if err != nil {
		return ports.Dataset{}, fmt.Errorf("exporting suggestions: %w", err)
	}

	ds := ports.Dataset{
		Name:    "Menu Suggestions",
		Headers: []string{"ID", "Dish", "Meal", "Ingredients", "Description", "Submitted At"},
	}
	for _, sg := range items {
		ds.Rows = append(ds.Rows, []string{
			sg.ID,
			sg.DishName,
			string(sg.MealType),
			sg.Ingredients,
			sg.Description,
			sg.SubmittedAt.Format(exportTimeLayout),
		})
	}
	return ds, nil
}

// exportBatch caps a single export at one page. Exports are an admin
// convenience, not a replication channel.
const exportBatch = 10000

// maskIdentity shortens the derived identity for export so full dedup keys
// never leave the system.
func maskIdentity(identity string) string {
	if len(identity) <= 16 {
		return identity
	}
	return identity[:16] + "..."
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func paginate(page, limit int, total int64) ports.Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return ports.Pagination{
		Page:    page,
		Limit:   limit,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1 && total > 0,
	}
}
