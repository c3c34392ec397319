package services

import "errors"

// ErrRegistrationClosed is returned by Submit while the status gate is closed.
var ErrRegistrationClosed = errors.New("registration is closed")

// ValidationError is a rejected admin input. Registration form failures use
// validation.FieldErrors instead.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// DuplicateError is a submission that collides with an existing
// registration. Field is empty when the store could not tell which index
// rejected the insert.
type DuplicateError struct {
	Field   string
	Message string
	Err     error
}

func (e *DuplicateError) Error() string { return e.Message }

func (e *DuplicateError) Unwrap() error { return e.Err }
