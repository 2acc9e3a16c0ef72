package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ankit1439/mess-portal/internal/core/domain"
	"github.com/ankit1439/mess-portal/internal/core/ports"
)

type stubFeedbackRepo struct {
	items []domain.Feedback
}

func (r *stubFeedbackRepo) Insert(_ context.Context, f *domain.Feedback) (string, error) {
	clone := *f
	clone.ID = "fb_" + string(rune('0'+len(r.items)+1))
	r.items = append(r.items, clone)
	return clone.ID, nil
}

func (r *stubFeedbackRepo) List(_ context.Context, _ ports.FeedbackFilter) ([]domain.Feedback, int64, error) {
	return append([]domain.Feedback(nil), r.items...), int64(len(r.items)), nil
}

func (r *stubFeedbackRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

func (r *stubFeedbackRepo) CountSince(_ context.Context, since time.Time) (int64, error) {
	var n int64
	for _, f := range r.items {
		if !f.SubmittedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *stubFeedbackRepo) RatingDistribution(_ context.Context) ([]ports.RatingCount, error) {
	counts := map[int]int64{}
	for _, f := range r.items {
		if f.Rating != nil {
			counts[*f.Rating]++
		}
	}
	out := make([]ports.RatingCount, 0, len(counts))
	for rating, n := range counts {
		out = append(out, ports.RatingCount{Rating: rating, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rating < out[j].Rating })
	return out, nil
}

type stubComplaintRepo struct {
	items []domain.Complaint
}

func (r *stubComplaintRepo) Insert(_ context.Context, c *domain.Complaint) (string, error) {
	clone := *c
	clone.ID = "cp_" + string(rune('0'+len(r.items)+1))
	r.items = append(r.items, clone)
	return clone.ID, nil
}

func (r *stubComplaintRepo) List(_ context.Context, _ ports.ComplaintFilter) ([]domain.Complaint, int64, error) {
	out := append([]domain.Complaint(nil), r.items...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Urgency.Rank() < out[j].Urgency.Rank()
	})
	return out, int64(len(out)), nil
}

func (r *stubComplaintRepo) UpdateStatus(_ context.Context, id string, status domain.ComplaintStatus) (*domain.Complaint, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Status = status
			clone := r.items[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrComplaintNotFound
}

func (r *stubComplaintRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

func (r *stubComplaintRepo) CountSince(_ context.Context, since time.Time) (int64, error) {
	var n int64
	for _, c := range r.items {
		if !c.SubmittedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *stubComplaintRepo) CountByUrgency(_ context.Context) ([]ports.UrgencyCount, error) {
	counts := map[domain.Urgency]int64{}
	for _, c := range r.items {
		counts[c.Urgency]++
	}
	out := make([]ports.UrgencyCount, 0, len(counts))
	for u, n := range counts {
		out = append(out, ports.UrgencyCount{Urgency: u, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Urgency.Rank() < out[j].Urgency.Rank() })
	return out, nil
}

type stubSuggestionRepo struct {
	items []domain.Suggestion
}

func (r *stubSuggestionRepo) Insert(_ context.Context, s *domain.Suggestion) (string, error) {
	clone := *s
	clone.ID = "sg_" + string(rune('0'+len(r.items)+1))
	r.items = append(r.items, clone)
	return clone.ID, nil
}

func (r *stubSuggestionRepo) List(_ context.Context, _ ports.SuggestionFilter) ([]domain.Suggestion, int64, error) {
	return append([]domain.Suggestion(nil), r.items...), int64(len(r.items)), nil
}

func (r *stubSuggestionRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

func newSubmissionService(fb *stubFeedbackRepo, cp *stubComplaintRepo, sg *stubSuggestionRepo) *SubmissionService {
	return NewSubmissionService(fb, cp, sg, zerolog.Nop())
}

func intPtr(v int) *int { return &v }

func TestSubmissionService_SubmitFeedback_Success(t *testing.T) {
	repo := &stubFeedbackRepo{}
	svc := newSubmissionService(repo, &stubComplaintRepo{}, &stubSuggestionRepo{})

	id, err := svc.SubmitFeedback(context.Background(), ports.FeedbackInput{
		Type: "Food Quality", Message: "Less oil please", Rating: intPtr(3),
		IP: "10.0.0.1", UserAgent: "ua",
	})
	if err != nil {
		t.Fatalf("SubmitFeedback returned error: %v", err)
	}
	if id == "" {
		t.Fatalf("expected an id")
	}
	if got := repo.items[0].Type; got != "food quality" {
		t.Fatalf("expected lowercased type, got %q", got)
	}
}

func TestSubmissionService_SubmitFeedback_DefaultsType(t *testing.T) {
	repo := &stubFeedbackRepo{}
	svc := newSubmissionService(repo, &stubComplaintRepo{}, &stubSuggestionRepo{})

	if _, err := svc.SubmitFeedback(context.Background(), ports.FeedbackInput{
		Message: "All good", IP: "10.0.0.1", UserAgent: "ua",
	}); err != nil {
		t.Fatalf("SubmitFeedback returned error: %v", err)
	}
	if got := repo.items[0].Type; got != "general" {
		t.Fatalf("expected default type general, got %q", got)
	}
}

func TestSubmissionService_SubmitFeedback_RatingBounds(t *testing.T) {
	svc := newSubmissionService(&stubFeedbackRepo{}, &stubComplaintRepo{}, &stubSuggestionRepo{})

	for _, rating := range []int{0, 6, -1} {
		if _, err := svc.SubmitFeedback(context.Background(), ports.FeedbackInput{
			Message: "x", Rating: intPtr(rating), IP: "10.0.0.1", UserAgent: "ua",
		}); !errors.Is(err, domain.ErrInvalidRating) {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
}

func TestSubmissionService_SubmitComplaint_DefaultUrgency(t *testing.T) {
	repo := &stubComplaintRepo{}
	svc := newSubmissionService(&stubFeedbackRepo{}, repo, &stubSuggestionRepo{})

	if _, err := svc.SubmitComplaint(context.Background(), ports.ComplaintInput{
		Category: "hygiene", Message: "Tables not cleaned",
		IP: "10.0.0.1", UserAgent: "ua",
	}); err != nil {
		t.Fatalf("SubmitComplaint returned error: %v", err)
	}
	c := repo.items[0]
	if c.Urgency != domain.UrgencyMedium {
		t.Fatalf("expected medium urgency by default, got %s", c.Urgency)
	}
	if c.Status != domain.StatusPending {
		t.Fatalf("new complaints must start pending, got %s", c.Status)
	}
}

func TestSubmissionService_SubmitComplaint_InvalidUrgency(t *testing.T) {
	svc := newSubmissionService(&stubFeedbackRepo{}, &stubComplaintRepo{}, &stubSuggestionRepo{})

	if _, err := svc.SubmitComplaint(context.Background(), ports.ComplaintInput{
		Category: "hygiene", Message: "x", Urgency: "catastrophic",
		IP: "10.0.0.1", UserAgent: "ua",
	}); !errors.Is(err, domain.ErrInvalidUrgency) {
		t.Fatalf("expected ErrInvalidUrgency, got %v", err)
	}
}

func TestSubmissionService_SubmitSuggestion(t *testing.T) {
	repo := &stubSuggestionRepo{}
	svc := newSubmissionService(&stubFeedbackRepo{}, &stubComplaintRepo{}, repo)

	if _, err := svc.SubmitSuggestion(context.Background(), ports.SuggestionInput{
		DishName: "Masala Dosa", MealType: "Breakfast",
		IP: "10.0.0.1", UserAgent: "ua",
	}); err != nil {
		t.Fatalf("SubmitSuggestion returned error: %v", err)
	}
	if got := repo.items[0].MealType; got != domain.Breakfast {
		t.Fatalf("expected normalized meal, got %s", got)
	}

	if _, err := svc.SubmitSuggestion(context.Background(), ports.SuggestionInput{
		DishName: "Pizza", MealType: "midnight",
		IP: "10.0.0.1", UserAgent: "ua",
	}); !errors.Is(err, domain.ErrInvalidMealSlot) {
		t.Fatalf("expected ErrInvalidMealSlot, got %v", err)
	}
}

func TestSubmissionService_UpdateComplaintStatus(t *testing.T) {
	repo := &stubComplaintRepo{}
	svc := newSubmissionService(&stubFeedbackRepo{}, repo, &stubSuggestionRepo{})

	id, err := svc.SubmitComplaint(context.Background(), ports.ComplaintInput{
		Category: "food", Message: "Cold dinner", Urgency: "high",
		IP: "10.0.0.1", UserAgent: "ua",
	})
	if err != nil {
		t.Fatalf("SubmitComplaint returned error: %v", err)
	}

	updated, err := svc.UpdateComplaintStatus(context.Background(), id, "Resolved")
	if err != nil {
		t.Fatalf("UpdateComplaintStatus returned error: %v", err)
	}
	if updated.Status != domain.StatusResolved {
		t.Fatalf("expected resolved, got %s", updated.Status)
	}

	if _, err := svc.UpdateComplaintStatus(context.Background(), id, "bogus"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := svc.UpdateComplaintStatus(context.Background(), "missing", "closed"); !errors.Is(err, domain.ErrComplaintNotFound) {
		t.Fatalf("expected ErrComplaintNotFound, got %v", err)
	}
}
