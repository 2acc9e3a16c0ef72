package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ankit1439/mess-portal/internal/api/metrics"
	"github.com/ankit1439/mess-portal/internal/core/domain"
	"github.com/ankit1439/mess-portal/internal/core/ports"
)

// VoteHandler handles anonymous menu voting.
type VoteHandler struct {
	votes ports.VoteService
}

func NewVoteHandler(votes ports.VoteService) *VoteHandler {
	return &VoteHandler{votes: votes}
}

type voteResponse struct {
	Message string      `json:"message"`
	VoteID  string      `json:"vote_id"`
	Day     domain.Day  `json:"day"`
	Meal    domain.Meal `json:"meal"`
}

// Submit handles POST /api/vote. One vote per caller per meal slot.
//
// @Summary      Submit a menu vote
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        body  body      voteRequest  true  "Vote details"
// @Success      201   {object}  voteResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/vote [post]
func (h *VoteHandler) Submit(c echo.Context) error {
	var req voteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.votes.Submit(c.Request().Context(), ports.SubmitVoteInput{
		Day:       req.Day,
		Meal:      req.Meal,
		Dish:      req.Dish,
		IP:        clientIP(c),
		UserAgent: userAgent(c),
	})
	if err != nil {
		if err == domain.ErrDuplicateVote {
			metrics.VotesDuplicateTotal.Inc()
		}
		return err
	}

	metrics.VotesSubmittedTotal.WithLabelValues(string(res.Meal)).Inc()

	return c.JSON(http.StatusCreated, voteResponse{
		Message: "vote recorded",
		VoteID:  res.VoteID,
		Day:     res.Day,
		Meal:    res.Meal,
	})
}

type checkVoteResponse struct {
	HasVoted bool   `json:"has_voted"`
	Dish     string `json:"dish,omitempty"`
}

// Check handles POST /api/check-vote, reporting whether the caller has already
// voted for a slot, without mutating anything.
//
// @Summary      Check whether the caller has voted
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        body  body      checkVoteRequest  true  "Slot to check"
// @Success      200   {object}  checkVoteResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/check-vote [post]
func (h *VoteHandler) Check(c echo.Context) error {
	var req checkVoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	vote, err := h.votes.HasVoted(c.Request().Context(), ports.CheckVoteInput{
		Day:       req.Day,
		Meal:      req.Meal,
		IP:        clientIP(c),
		UserAgent: userAgent(c),
	})
	if err != nil {
		return err
	}

	resp := checkVoteResponse{HasVoted: vote != nil}
	if vote != nil {
		resp.Dish = vote.Dish
	}
	return c.JSON(http.StatusOK, resp)
}
