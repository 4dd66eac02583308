package stores

import (
	"errors"
	"fmt"
)

// Sentinel errors for the contract failures of the mutating operations.
// Callers branch with errors.Is; the typed variants below carry the
// offending value for errors.As.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrGroupNotFound      = errors.New("group not found")
)

type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("email %q already registered", e.Email)
}

func (e *DuplicateEmailError) Unwrap() error { return ErrDuplicateEmail }

type UserNotFoundError struct {
	Email string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("no user with email %q", e.Email)
}

func (e *UserNotFoundError) Unwrap() error { return ErrUserNotFound }

type GroupNotFoundError struct {
	GroupID string
}

func (e *GroupNotFoundError) Error() string {
	return fmt.Sprintf("no group with id %q", e.GroupID)
}

func (e *GroupNotFoundError) Unwrap() error { return ErrGroupNotFound }
