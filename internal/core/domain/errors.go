package domain

import "errors"

var (
	// ErrDuplicateVote is returned when a (day, meal, identity) triple has
	// already been voted on. The storage layer's unique index is the final
	// arbiter; a racing insert surfaces as this error, never as two successes.
	ErrDuplicateVote = errors.New("already voted for this meal")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountDisabled    = errors.New("admin account is disabled")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidPassword    = errors.New("current password is incorrect")
	ErrWeakPassword       = errors.New("new password is too short")
	ErrAdminNotFound      = errors.New("admin user not found")

	ErrComplaintNotFound = errors.New("complaint not found")
	ErrInvalidStatus     = errors.New("invalid complaint status")
	ErrInvalidMealSlot   = errors.New("unknown day or meal")
	ErrInvalidUrgency    = errors.New("invalid urgency level")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrInvalidFile       = errors.New("only pdf files are allowed")
	ErrNoMenuPDF         = errors.New("no menu pdf uploaded")
	ErrNoData            = errors.New("no data for the given criteria")

	ErrInvalidDate       = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidExportType = errors.New("unknown export type")
)
