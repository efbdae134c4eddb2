package tracker

import (
	"errors"
	"fmt"

	"github.com/dukerupert/togethertracker/internal/ledger"
)

// Task, ledger and shopping operations that fail a precondition leave state
// untouched and return one of these. Callers may ignore them.
var (
	ErrNotSignedIn        = errors.New("not signed in")
	ErrTaskNotFound       = errors.New("task not found")
	ErrAlreadyCompleted   = errors.New("task already completed")
	ErrRewardNotFound     = errors.New("reward not found")
	ErrItemNotFound       = errors.New("shopping item not found")
	ErrNoActiveMember     = errors.New("no active member")
	ErrMissingField       = errors.New("missing required field")
	ErrMemberNotFound     = ledger.ErrMemberNotFound
	ErrInsufficientPoints = ledger.ErrInsufficientPoints
)

// ValidationError reports missing or malformed input to a registry operation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthError is returned when the email is unknown or the password does not
// match. It deliberately does not say which.
type AuthError struct {
	Email string
}

func (e *AuthError) Error() string {
	return "invalid email or password"
}

type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

func missing(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}
