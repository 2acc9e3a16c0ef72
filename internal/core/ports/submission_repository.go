package ports

import (
	"context"
	"time"

	"github.com/ankit1439/mess-portal/internal/core/domain"
)

// FeedbackFilter carries query parameters for listing feedback.
type FeedbackFilter struct {
	Type   string // optional: filter by feedback_type
	Rating int    // optional: filter by rating (0 = no filter)
	From   time.Time
	To     time.Time
	Page   int
	Limit  int
}

// RatingCount is one bucket of the rating distribution.
type RatingCount struct {
	Rating int   `json:"rating" bson:"_id"`
	Count  int64 `json:"count" bson:"count"`
}

type FeedbackRepository interface {
	Insert(ctx context.Context, f *domain.Feedback) (string, error)
	List(ctx context.Context, filter FeedbackFilter) ([]domain.Feedback, int64, error)
	Count(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	// RatingDistribution counts feedback per rating value, ascending by rating.
	RatingDistribution(ctx context.Context) ([]RatingCount, error)
}

// ComplaintFilter carries query parameters for listing complaints.
type ComplaintFilter struct {
	Category string
	Urgency  domain.Urgency
	Status   domain.ComplaintStatus
	From     time.Time
	To       time.Time
	Page     int
	Limit    int
}

// UrgencyCount is one bucket of the complaints-by-urgency breakdown.
type UrgencyCount struct {
	Urgency domain.Urgency `json:"urgency" bson:"_id"`
	Count   int64          `json:"count" bson:"count"`
}

type ComplaintRepository interface {
	Insert(ctx context.Context, c *domain.Complaint) (string, error)
	// List orders by urgency (urgent first), then newest first.
	List(ctx context.Context, filter ComplaintFilter) ([]domain.Complaint, int64, error)
	// UpdateStatus sets the workflow status and returns the updated record,
	// or domain.ErrComplaintNotFound.
	UpdateStatus(ctx context.Context, id string, status domain.ComplaintStatus) (*domain.Complaint, error)
	Count(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	CountByUrgency(ctx context.Context) ([]UrgencyCount, error)
}

// SuggestionFilter carries query parameters for listing menu suggestions.
type SuggestionFilter struct {
	MealType domain.Meal
	From     time.Time
	To       time.Time
	Page     int
	Limit    int
}

type SuggestionRepository interface {
	Insert(ctx context.Context, s *domain.Suggestion) (string, error)
	List(ctx context.Context, filter SuggestionFilter) ([]domain.Suggestion, int64, error)
	Count(ctx context.Context) (int64, error)
}
