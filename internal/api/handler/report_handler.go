package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ankit1439/mess-portal/internal/core/domain"
	"github.com/ankit1439/mess-portal/internal/core/ports"
)

// ReportHandler serves the admin read side: listings, the dashboard, and
// complaint workflow updates.
type ReportHandler struct {
	reports     ports.ReportService
	submissions ports.SubmissionService
}

func NewReportHandler(reports ports.ReportService, submissions ports.SubmissionService) *ReportHandler {
	return &ReportHandler{reports: reports, submissions: submissions}
}

type listResponse struct {
	Items      any              `json:"items"`
	Pagination ports.Pagination `json:"pagination"`
}

// Votes handles GET /api/admin/votes.
//
// @Summary      List votes
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        day    query  string  false  "Filter by day"
// @Param        meal   query  string  false  "Filter by meal"
// @Param        page   query  int     false  "Page number"
// @Param        limit  query  int     false  "Rows per page"
// @Success      200    {object}  listResponse
// @Failure      401    {object}  errorResponse
// @Router       /api/admin/votes [get]
func (h *ReportHandler) Votes(c echo.Context) error {
	filter := ports.VoteFilter{
		Day:   domain.NormalizeDay(c.QueryParam("day")),
		Meal:  domain.NormalizeMeal(c.QueryParam("meal")),
		Page:  queryInt(c, "page"),
		Limit: queryInt(c, "limit"),
	}
	var err error
	filter.From, filter.To, err = queryWindow(c)
	if err != nil {
		return err
	}

	votes, page, err := h.reports.ListVotes(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Items: votes, Pagination: page})
}

// Feedback handles GET /api/admin/feedback.
//
// @Summary      List feedback
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/admin/feedback [get]
func (h *ReportHandler) Feedback(c echo.Context) error {
	filter := ports.FeedbackFilter{
		Type:   c.QueryParam("type"),
		Rating: queryInt(c, "rating"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}
	var err error
	filter.From, filter.To, err = queryWindow(c)
	if err != nil {
		return err
	}

	items, page, err := h.reports.ListFeedback(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Items: items, Pagination: page})
}

// Complaints handles GET /api/admin/complaints.
//
// @Summary      List complaints, most urgent first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/admin/complaints [get]
func (h *ReportHandler) Complaints(c echo.Context) error {
	filter := ports.ComplaintFilter{
		Category: c.QueryParam("category"),
		Urgency:  domain.Urgency(c.QueryParam("urgency")),
		Status:   domain.ComplaintStatus(c.QueryParam("status")),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	}
	var err error
	filter.From, filter.To, err = queryWindow(c)
	if err != nil {
		return err
	}

	items, page, err := h.reports.ListComplaints(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Items: items, Pagination: page})
}

// Suggestions handles GET /api/admin/menu-suggestions.
//
// @Summary      List menu suggestions
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/admin/menu-suggestions [get]
func (h *ReportHandler) Suggestions(c echo.Context) error {
	filter := ports.SuggestionFilter{
		MealType: domain.Meal(c.QueryParam("meal_type")),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	}
	var err error
	filter.From, filter.To, err = queryWindow(c)
	if err != nil {
		return err
	}

	items, page, err := h.reports.ListSuggestions(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Items: items, Pagination: page})
}

// Dashboard handles GET /api/admin/dashboard.
//
// @Summary      Dashboard aggregates
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Failure      401  {object}  errorResponse
// @Router       /api/admin/dashboard [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	stats, err := h.reports.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// UpdateComplaintStatus handles PUT /api/admin/complaints/:id/status.
//
// @Summary      Update complaint status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path   string                  true  "Complaint ID"
// @Param        body  body   complaintStatusRequest  true  "New status"
// @Success      200   {object}  domain.Complaint
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/complaints/{id}/status [put]
func (h *ReportHandler) UpdateComplaintStatus(c echo.Context) error {
	var req complaintStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	complaint, err := h.submissions.UpdateComplaintStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, complaint)
}

func queryInt(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return n
}

// queryWindow parses optional date bounds (YYYY-MM-DD). Both from/to and the
// start_date/end_date aliases are accepted. The upper bound is inclusive of
// the whole day. A malformed date fails with domain.ErrInvalidDate rather
// than silently widening the window to the full range.
func queryWindow(c echo.Context) (from, to time.Time, err error) {
	if v := queryFirst(c, "from", "start_date"); v != "" {
		t, perr := time.Parse("2006-01-02", v)
		if perr != nil {
			return from, to, domain.ErrInvalidDate
		}
		from = t
	}
	if v := queryFirst(c, "to", "end_date"); v != "" {
		t, perr := time.Parse("2006-01-02", v)
		if perr != nil {
			return from, to, domain.ErrInvalidDate
		}
		to = t.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}

func queryFirst(c echo.Context, names ...string) string {
	for _, name := range names {
		if v := c.QueryParam(name); v != "" {
			return v
		}
	}
	return ""
}
