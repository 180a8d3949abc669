package domain

import (
	"errors"
	"strings"
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUserCreationFailed = errors.New("user creation failed")
	ErrUserNotFound       = errors.New("user not found")
)

// UnauthorizedError carries the reason surfaced to the caller while still
// matching ErrUnauthorized through errors.Is.
type UnauthorizedError struct {
	Reason string
}

func (e *UnauthorizedError) Error() string { return e.Reason }

func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }

// Unauthorized builds an UnauthorizedError, falling back to a generic
// reason when the source failure had no usable message.
func Unauthorized(reason string) error {
	if strings.TrimSpace(reason) == "" {
		reason = "authentication failed"
	}
	return &UnauthorizedError{Reason: reason}
}

// ErrNoActiveSession is returned when a session lookup comes back empty.
var ErrNoActiveSession = &UnauthorizedError{Reason: "No active session"}
