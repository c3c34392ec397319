// Package repository defines the store contracts shared by every driver
// (mongo, sqlite, memory) and the errors they report.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gdg-registration/internal/models"
)

var (
	// ErrNotFound is returned when a lookup or delete-by-id matches nothing.
	ErrNotFound = errors.New("record not found")

	// ErrUnavailable is returned when the store connection is not ready.
	ErrUnavailable = errors.New("store unavailable")
)

// Fields that carry a unique index on registrations.
const (
	FieldEmail      = "email"
	FieldEnrollment = "enrollment"
)

// DuplicateKeyError reports an insert rejected by a unique index. Field is
// the collided field name, or empty when the driver could not tell.
type DuplicateKeyError struct {
	Field string
	Err   error
}

func (e *DuplicateKeyError) Error() string {
	if e.Field == "" {
		return "duplicate key"
	}
	return fmt.Sprintf("duplicate key on %s", e.Field)
}

func (e *DuplicateKeyError) Unwrap() error { return e.Err }

// DuplicateField returns the collided field when err is a duplicate key error.
func DuplicateField(err error) (string, bool) {
	var dup *DuplicateKeyError
	if errors.As(err, &dup) {
		return dup.Field, true
	}
	return "", false
}

// RegistrationStore persists registrations. Insert is the authoritative
// uniqueness check: it must fail with *DuplicateKeyError when email or
// enrollment already exist, whatever any earlier lookup said.
type RegistrationStore interface {
	Insert(ctx context.Context, reg *models.Registration) error
	FindByEnrollment(ctx context.Context, enrollment string) (*models.Registration, error)
	List(ctx context.Context) ([]models.Registration, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}

// EventStore is a single-slot store. Replace swaps the current event in one
// step and leaves exactly one record behind.
type EventStore interface {
	Current(ctx context.Context) (*models.Event, error)
	Replace(ctx context.Context, ev models.Event) (*models.Event, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// StatusStore holds the registration open/closed singleton. Get creates it
// open when absent. Toggle reads the stored value (open when absent), inverts
// it and persists the result atomically.
type StatusStore interface {
	Get(ctx context.Context) (models.RegistrationStatus, error)
	Toggle(ctx context.Context) (models.RegistrationStatus, error)
}

// Stores groups the three stores a driver provides.
type Stores struct {
	Registrations RegistrationStore
	Events        EventStore
	Status        StatusStore

	// Close releases the driver's connection. May be nil.
	Close func(ctx context.Context) error
}
