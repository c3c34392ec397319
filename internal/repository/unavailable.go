package repository

import (
	"context"

	"gdg-registration/internal/models"
)

// Unavailable returns stores whose every call fails with ErrUnavailable.
// Used when the server starts without a usable store connection.
func Unavailable() Stores {
	s := unavailable{}
	return Stores{Registrations: s, Events: s, Status: s}
}

type unavailable struct{}

func (unavailable) Insert(context.Context, *models.Registration) error { return ErrUnavailable }

func (unavailable) FindByEnrollment(context.Context, string) (*models.Registration, error) {
	return nil, ErrUnavailable
}

func (unavailable) List(context.Context) ([]models.Registration, error) {
	return nil, ErrUnavailable
}

func (unavailable) Delete(context.Context, string) error { return ErrUnavailable }

func (unavailable) DeleteAll(context.Context) (int64, error) { return 0, ErrUnavailable }

func (unavailable) Current(context.Context) (*models.Event, error) { return nil, ErrUnavailable }

func (unavailable) Replace(context.Context, models.Event) (*models.Event, error) {
	return nil, ErrUnavailable
}

func (unavailable) Get(context.Context) (models.RegistrationStatus, error) {
	return models.RegistrationStatus{}, ErrUnavailable
}

func (unavailable) Toggle(context.Context) (models.RegistrationStatus, error) {
	return models.RegistrationStatus{}, ErrUnavailable
}
