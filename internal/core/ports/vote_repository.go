package ports

import (
	"context"
	"time"

	"github.com/ankit1439/mess-portal/internal/core/domain"
)

// VoteFilter carries all query parameters for listing votes.
type VoteFilter struct {
	Day   domain.Day  // optional: filter by day
	Meal  domain.Meal // optional: filter by meal slot
	From  time.Time   // optional: submitted_at >= From
	To    time.Time   // optional: submitted_at <= To
	Page  int         // 1-based
	Limit int         // rows per page
}

// VoteRepository defines persistence operations for votes.
//
// Insert MUST be backed by a storage-level unique constraint on
// (day, meal, identity): two concurrent inserts with the same key result in
// exactly one success and one domain.ErrDuplicateVote, regardless of
// interleaving.
type VoteRepository interface {
	Insert(ctx context.Context, v *domain.Vote) (string, error)
	// FindByKey returns the vote for (day, meal, identity), or (nil, nil)
	// when no vote exists. Pure lookup, no side effects.
	FindByKey(ctx context.Context, day domain.Day, meal domain.Meal, identity string) (*domain.Vote, error)
	// List returns a page of votes matching filter, newest first, and the
	// total count.
	List(ctx context.Context, filter VoteFilter) ([]domain.Vote, int64, error)
	Count(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	// PopularDishes returns the top dishes by vote count, descending.
	PopularDishes(ctx context.Context, limit int) ([]domain.DishCount, error)
}
