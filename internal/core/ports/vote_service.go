package ports

import (
	"context"

	"github.com/ankit1439/mess-portal/internal/core/domain"
)

// SubmitVoteInput carries an incoming vote. The HTTP layer supplies the
// already-parsed fields plus the caller's network identity; the service
// derives the anonymous voter identity itself.
type SubmitVoteInput struct {
	Day       string
	Meal      string
	Dish      string
	IP        string
	UserAgent string
}

// SubmitVoteResult is returned on a successful vote.
type SubmitVoteResult struct {
	VoteID string
	Day    domain.Day
	Meal   domain.Meal
}

// CheckVoteInput carries a has-voted lookup.
type CheckVoteInput struct {
	Day       string
	Meal      string
	IP        string
	UserAgent string
}

// VoteService is the vote ledger: at most one vote per (day, meal, identity).
type VoteService interface {
	// Submit persists a vote or fails with domain.ErrDuplicateVote.
	Submit(ctx context.Context, in SubmitVoteInput) (*SubmitVoteResult, error)
	// HasVoted returns the stored vote for the caller's identity, or nil when
	// none exists. Never mutates state.
	HasVoted(ctx context.Context, in CheckVoteInput) (*domain.Vote, error)
}
