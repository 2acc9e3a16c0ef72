package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ankit1439/mess-portal/internal/core/domain"
	"github.com/ankit1439/mess-portal/internal/core/ports"
	"github.com/rs/zerolog"
)

type SubmissionService struct {
	feedback    ports.FeedbackRepository
	complaints  ports.ComplaintRepository
	suggestions ports.SuggestionRepository
	logger      zerolog.Logger
	now         func() time.Time
}

func NewSubmissionService(
	feedback ports.FeedbackRepository,
	complaints ports.ComplaintRepository,
	suggestions ports.SuggestionRepository,
	logger zerolog.Logger,
) *SubmissionService {
	return &SubmissionService{
		feedback:    feedback,
		complaints:  complaints,
		suggestions: suggestions,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *SubmissionService) SubmitFeedback(ctx context.Context, in ports.FeedbackInput) (string, error) {
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return "", domain.ErrInvalidRating
	}

	now := s.now().UTC()
	fb := &domain.Feedback{
		Type:        strings.ToLower(strings.TrimSpace(in.Type)),
		Message:     in.Message,
		Rating:      in.Rating,
		IPAddress:   in.IP,
		SubmittedAt: now,
		SessionTag:  domain.DeriveIdentity(in.IP, in.UserAgent, now.Format(time.RFC3339Nano)),
	}
	if fb.Type == "" {
		fb.Type = "general"
	}

	id, err := s.feedback.Insert(ctx, fb)
	if err != nil {
		return "", fmt.Errorf("inserting feedback: %w", err)
	}

	s.logger.Info().Str("feedback_type", fb.Type).Msg("feedback received")
	return id, nil
}

func (s *SubmissionService) SubmitComplaint(ctx context.Context, in ports.ComplaintInput) (string, error) {
	urgency := domain.Urgency(strings.ToLower(strings.TrimSpace(in.Urgency)))
	if urgency == "" {
		urgency = domain.UrgencyMedium
	}
	if !urgency.Valid() {
		return "", domain.ErrInvalidUrgency
	}

	now := s.now().UTC()
	c := &domain.Complaint{
		Category:    strings.TrimSpace(in.Category),
		Message:     in.Message,
		Urgency:     urgency,
		Status:      domain.StatusPending,
		Photos:      in.Photos,
		IPAddress:   in.IP,
		SubmittedAt: now,
		SessionTag:  domain.DeriveIdentity(in.IP, in.UserAgent, now.Format(time.RFC3339Nano)),
	}

	id, err := s.complaints.Insert(ctx, c)
	if err != nil {
		return "", fmt.Errorf("inserting complaint: %w", err)
	}

	s.logger.Info().
		Str("category", c.Category).
		Str("urgency", string(urgency)).
		Msg("complaint received")
	return id, nil
}

func (s *SubmissionService) SubmitSuggestion(ctx context.Context, in ports.SuggestionInput) (string, error) {
	meal := domain.NormalizeMeal(in.MealType)
	if in.MealType != "" && !meal.Valid() {
		return "", domain.ErrInvalidMealSlot
	}

	now := s.now().UTC()
	sg := &domain.Suggestion{
		DishName:    strings.TrimSpace(in.DishName),
		MealType:    meal,
		Ingredients: in.Ingredients,
		Description: in.Description,
		IPAddress:   in.IP,
		SubmittedAt: now,
		SessionTag:  domain.DeriveIdentity(in.IP, in.UserAgent, now.Format(time.RFC3339Nano)),
	}

	id, err := s.suggestions.Insert(ctx, sg)
	if err != nil {
		return "", fmt.Errorf("inserting suggestion: %w", err)
	}

	s.logger.Info().Str("dish", sg.DishName).Msg("menu suggestion received")
	return id, nil
}

func (s *SubmissionService) UpdateComplaintStatus(ctx context.Context, id, status string) (*domain.Complaint, error) {
	st := domain.ComplaintStatus(strings.ToLower(strings.TrimSpace(status)))
	if !st.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	complaint, err := s.complaints.UpdateStatus(ctx, id, st)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("complaint_id", id).Str("status", string(st)).Msg("complaint status updated")
	return complaint, nil
}
