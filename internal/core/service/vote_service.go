package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ankit1439/mess-portal/internal/core/domain"
	"github.com/ankit1439/mess-portal/internal/core/ports"
	"github.com/rs/zerolog"
)

// VoteMarker is an advisory cache of (day, meal, identity) keys that have
// already voted. It is a fast path only: the unique index in the vote store
// remains the authority, so marker errors are tolerated.
type VoteMarker interface {
	IsMarked(ctx context.Context, day domain.Day, meal domain.Meal, identity string) (bool, error)
	Mark(ctx context.Context, day domain.Day, meal domain.Meal, identity string) error
}

type VoteService struct {
	votes  ports.VoteRepository
	marks  VoteMarker
	logger zerolog.Logger
	now    func() time.Time
}

func NewVoteService(votes ports.VoteRepository, marks VoteMarker, logger zerolog.Logger) *VoteService {
	return &VoteService{
		votes:  votes,
		marks:  marks,
		logger: logger,
		now:    time.Now,
	}
}

func (s *VoteService) Submit(ctx context.Context, in ports.SubmitVoteInput) (*ports.SubmitVoteResult, error) {
	day := domain.NormalizeDay(in.Day)
	meal := domain.NormalizeMeal(in.Meal)
	if !day.Valid() || !meal.Valid() {
		return nil, domain.ErrInvalidMealSlot
	}

	identity := domain.DeriveIdentity(in.IP, in.UserAgent)

	if s.marks != nil {
		marked, err := s.marks.IsMarked(ctx, day, meal, identity)
		if err != nil {
			s.logger.Warn().Err(err).Msg("vote marker unavailable, falling through to store")
		} else if marked {
			return nil, domain.ErrDuplicateVote
		}
	}

	now := s.now().UTC()
	vote := &domain.Vote{
		Day:         day,
		Meal:        meal,
		Dish:        in.Dish,
		Identity:    identity,
		IPAddress:   in.IP,
		SubmittedAt: now,
		SessionTag:  domain.DeriveIdentity(in.IP, in.UserAgent, now.Format(time.RFC3339Nano)),
	}

	id, err := s.votes.Insert(ctx, vote)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateVote) {
			return nil, domain.ErrDuplicateVote
		}
		return nil, fmt.Errorf("inserting vote: %w", err)
	}

	if s.marks != nil {
		if err := s.marks.Mark(ctx, day, meal, identity); err != nil {
			s.logger.Warn().Err(err).Msg("failed to mark vote in cache")
		}
	}

	s.logger.Info().
		Str("day", string(day)).
		Str("meal", string(meal)).
		Str("dish", in.Dish).
		Msg("vote recorded")

	return &ports.SubmitVoteResult{VoteID: id, Day: day, Meal: meal}, nil
}

func (s *VoteService) HasVoted(ctx context.Context, in ports.CheckVoteInput) (*domain.Vote, error) {
	day := domain.NormalizeDay(in.Day)
	meal := domain.NormalizeMeal(in.Meal)
	if !day.Valid() || !meal.Valid() {
		return nil, domain.ErrInvalidMealSlot
	}

	identity := domain.DeriveIdentity(in.IP, in.UserAgent)
	vote, err := s.votes.FindByKey(ctx, day, meal, identity)
	if err != nil {
		return nil, fmt.Errorf("looking up vote: %w", err)
	}
	return vote, nil
}
