package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/ankit1439/mess-portal/internal/core/domain"
	"github.com/ankit1439/mess-portal/internal/core/ports"
)

type stubSubmissionService struct {
	id        string
	err       error
	complaint *domain.Complaint
	lastFB    ports.FeedbackInput
	lastCP    ports.ComplaintInput
}

func (s *stubSubmissionService) SubmitFeedback(_ context.Context, in ports.FeedbackInput) (string, error) {
	s.lastFB = in
	return s.id, s.err
}

func (s *stubSubmissionService) SubmitComplaint(_ context.Context, in ports.ComplaintInput) (string, error) {
	s.lastCP = in
	return s.id, s.err
}

func (s *stubSubmissionService) SubmitSuggestion(context.Context, ports.SuggestionInput) (string, error) {
	return s.id, s.err
}

func (s *stubSubmissionService) UpdateComplaintStatus(context.Context, string, string) (*domain.Complaint, error) {
	return s.complaint, s.err
}

func TestSubmissionHandler_Feedback_Success(t *testing.T) {
	e := newTestEcho()
	svc := &stubSubmissionService{id: "fb_1"}
	h := NewSubmissionHandler(svc)

	rec := doJSON(e, h.Feedback, http.MethodPost, "/api/feedback",
		`{"feedback_type":"food","message":"Too salty","rating":2}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastFB.Rating == nil || *svc.lastFB.Rating != 2 {
		t.Fatalf("rating not forwarded: %+v", svc.lastFB)
	}
}

func TestSubmissionHandler_Feedback_RatingOutOfRange(t *testing.T) {
	e := newTestEcho()
	h := NewSubmissionHandler(&stubSubmissionService{})

	rec := doJSON(e, h.Feedback, http.MethodPost, "/api/feedback",
		`{"message":"x","rating":9}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSubmissionHandler_Complaint_Success(t *testing.T) {
	e := newTestEcho()
	svc := &stubSubmissionService{id: "cp_1"}
	h := NewSubmissionHandler(svc)

	rec := doJSON(e, h.Complaint, http.MethodPost, "/api/complaint",
		`{"category":"hygiene","message":"Dirty tables","urgency":"high"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastCP.Urgency != "high" {
		t.Fatalf("urgency not forwarded: %+v", svc.lastCP)
	}
	if !strings.Contains(rec.Body.String(), `"id":"cp_1"`) {
		t.Fatalf("id missing from response: %s", rec.Body.String())
	}
}

func TestSubmissionHandler_Complaint_BadUrgency(t *testing.T) {
	e := newTestEcho()
	h := NewSubmissionHandler(&stubSubmissionService{})

	rec := doJSON(e, h.Complaint, http.MethodPost, "/api/complaint",
		`{"category":"hygiene","message":"x","urgency":"apocalyptic"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSubmissionHandler_Suggestion_MissingDish(t *testing.T) {
	e := newTestEcho()
	h := NewSubmissionHandler(&stubSubmissionService{})

	rec := doJSON(e, h.Suggestion, http.MethodPost, "/api/menu-suggestion",
		`{"meal_type":"lunch"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
