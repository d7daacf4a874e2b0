package types

import (
	errs "errors"
	"fmt"
)

var (
	ErrNoteNotFound = errs.New("note not found")

	// ErrEmptyContent is returned when note content is empty after trimming.
	ErrEmptyContent = &ValidationError{Field: "content", Message: "Note content cannot be empty"}
)

// ValidationError reports user input that was rejected before reaching the store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// PersistenceError wraps a failed durable read or write. The prior stored
// state is unchanged when one is returned.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func IsValidationError(err error) bool {
	var v *ValidationError
	return errs.As(err, &v)
}

func IsPersistenceError(err error) bool {
	var p *PersistenceError
	return errs.As(err, &p)
}
