package ports

import (
	"context"
	"time"

	"github.com/ankit1439/mess-portal/internal/core/domain"
)

// Pagination describes one page of a listing.
type Pagination struct {
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// DashboardStats aggregates the admin dashboard counters.
type DashboardStats struct {
	Totals struct {
		Votes       int64 `json:"votes"`
		Feedback    int64 `json:"feedback"`
		Complaints  int64 `json:"complaints"`
		Suggestions int64 `json:"menu_suggestions"`
	} `json:"totals"`
	VotesToday     int64 `json:"votes_today"`
	RecentActivity struct {
		Votes      int64 `json:"votes_last_7_days"`
		Feedback   int64 `json:"feedback_last_7_days"`
		Complaints int64 `json:"complaints_last_7_days"`
	} `json:"recent_activity"`
	PopularDishes      []domain.DishCount `json:"popular_dishes"`
	RatingDistribution []RatingCount      `json:"rating_distribution"`
	ByUrgency          []UrgencyCount     `json:"complaints_by_urgency"`
}

// Dataset is a tabular view of one collection, ready for CSV or spreadsheet
// rendering.
type Dataset struct {
	Name    string     // sheet/file label, e.g. "Votes"
	Headers []string
	Rows    [][]string
}

// ExportFilter limits an export to a timestamp window.
type ExportFilter struct {
	From time.Time
	To   time.Time
}

// ReportService serves the admin read side: listings, dashboard aggregates,
// and tabular exports.
type ReportService interface {
	ListVotes(ctx context.Context, filter VoteFilter) ([]domain.Vote, Pagination, error)
	ListFeedback(ctx context.Context, filter FeedbackFilter) ([]domain.Feedback, Pagination, error)
	ListComplaints(ctx context.Context, filter ComplaintFilter) ([]domain.Complaint, Pagination, error)
	ListSuggestions(ctx context.Context, filter SuggestionFilter) ([]domain.Suggestion, Pagination, error)
	Dashboard(ctx context.Context) (*DashboardStats, error)
	// Export renders the named collections ("votes", "feedback", "complaints",
	// "suggestions", or "all") as datasets. Fails with domain.ErrNoData when
	// every requested dataset is empty.
	Export(ctx context.Context, kinds []string, filter ExportFilter) ([]Dataset, error)
}
