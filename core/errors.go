package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an execution does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is returned for malformed or contradictory requests.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflict is returned when a create would overwrite an existing variable.
	ErrConflict = errors.New("conflict")
)

// NotFoundError reports an unknown execution.
type NotFoundError struct {
	ExecutionID string
}

// NewNotFoundError returns a *NotFoundError for the execution id.
func NewNotFoundError(executionID string) *NotFoundError {
	return &NotFoundError{ExecutionID: executionID}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find an execution with id '%s'", e.ExecutionID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InvalidArgumentError reports a validation failure.
type InvalidArgumentError struct {
	Message string
}

// NewInvalidArgumentError returns an *InvalidArgumentError with msg.
func NewInvalidArgumentError(msg string) *InvalidArgumentError {
	return &InvalidArgumentError{Message: msg}
}

func (e *InvalidArgumentError) Error() string { return e.Message }

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

// ConflictError reports a variable that already exists in the target scope.
type ConflictError struct {
	Name        string
	ExecutionID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("variable '%s' is already present on execution '%s'", e.Name, e.ExecutionID)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsInvalidArgument reports whether err is (or wraps) ErrInvalidArgument.
func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }

// IsConflict reports whether err is (or wraps) ErrConflict.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }
