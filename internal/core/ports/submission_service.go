package ports

import (
	"context"

	"github.com/ankit1439/mess-portal/internal/core/domain"
)

// FeedbackInput carries an incoming feedback submission.
type FeedbackInput struct {
	Type      string
	Message   string
	Rating    *int // optional, 1–5 when present
	IP        string
	UserAgent string
}

// ComplaintInput carries an incoming complaint.
type ComplaintInput struct {
	Category  string
	Message   string
	Urgency   string
	Photos    []string
	IP        string
	UserAgent string
}

// SuggestionInput carries an incoming menu suggestion.
type SuggestionInput struct {
	DishName    string
	MealType    string
	Ingredients string
	Description string
	IP          string
	UserAgent   string
}

// SubmissionService handles the write side of feedback, complaints, and menu
// suggestions.
type SubmissionService interface {
	SubmitFeedback(ctx context.Context, in FeedbackInput) (string, error)
	SubmitComplaint(ctx context.Context, in ComplaintInput) (string, error)
	SubmitSuggestion(ctx context.Context, in SuggestionInput) (string, error)
	UpdateComplaintStatus(ctx context.Context, id, status string) (*domain.Complaint, error)
}
