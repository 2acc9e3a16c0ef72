package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ankit1439/mess-portal/internal/core/ports"
)

// SubmissionHandler handles public feedback, complaint, and menu suggestion
// intake.
type SubmissionHandler struct {
	submissions ports.SubmissionService
}

func NewSubmissionHandler(submissions ports.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

// Feedback handles POST /api/feedback.
//
// @Summary      Submit feedback
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        body  body      feedbackRequest  true  "Feedback details"
// @Success      201   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/feedback [post]
func (h *SubmissionHandler) Feedback(c echo.Context) error {
	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.submissions.SubmitFeedback(c.Request().Context(), ports.FeedbackInput{
		Type:      req.Type,
		Message:   req.Message,
		Rating:    req.Rating,
		IP:        clientIP(c),
		UserAgent: userAgent(c),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, acceptedResponse{Message: "feedback submitted", ID: id})
}

// Complaint handles POST /api/complaint.
//
// @Summary      Submit a complaint
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        body  body      complaintRequest  true  "Complaint details"
// @Success      201   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/complaint [post]
func (h *SubmissionHandler) Complaint(c echo.Context) error {
	var req complaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.submissions.SubmitComplaint(c.Request().Context(), ports.ComplaintInput{
		Category:  req.Category,
		Message:   req.Message,
		Urgency:   req.Urgency,
		Photos:    req.Photos,
		IP:        clientIP(c),
		UserAgent: userAgent(c),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, acceptedResponse{Message: "complaint submitted", ID: id})
}

// Suggestion handles POST /api/menu-suggestion.
//
// @Summary      Suggest a dish for the menu
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        body  body      suggestionRequest  true  "Suggestion details"
// @Success      201   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/menu-suggestion [post]
func (h *SubmissionHandler) Suggestion(c echo.Context) error {
	var req suggestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.submissions.SubmitSuggestion(c.Request().Context(), ports.SuggestionInput{
		DishName:    req.DishName,
		MealType:    req.MealType,
		Ingredients: req.Ingredients,
		Description: req.Description,
		IP:          clientIP(c),
		UserAgent:   userAgent(c),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, acceptedResponse{Message: "suggestion submitted", ID: id})
}
