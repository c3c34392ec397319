package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gdg-registration/dto"
	"gdg-registration/internal/models"
	"gdg-registration/internal/repository"
	"gdg-registration/internal/validation"
)

// DefaultEventName is stamped on registrations made while no event exists.
const DefaultEventName = "GDG Event"

type RegistrationService struct {
	regs      repository.RegistrationStore
	events    repository.EventStore
	status    *StatusService
	validator *validation.Engine
	eventName string
	log       *slog.Logger
}

type RegistrationOption func(*RegistrationService)

// WithDefaultEventName overrides DefaultEventName.
func WithDefaultEventName(name string) RegistrationOption {
	return func(s *RegistrationService) {
		if strings.TrimSpace(name) != "" {
			s.eventName = name
		}
	}
}

func WithLogger(log *slog.Logger) RegistrationOption {
	return func(s *RegistrationService) {
		if log != nil {
			s.log = log
		}
	}
}

func NewRegistrationService(stores repository.Stores, status *StatusService, engine *validation.Engine, opts ...RegistrationOption) *RegistrationService {
	s := &RegistrationService{
		regs:      stores.Registrations,
		events:    stores.Events,
		status:    status,
		validator: engine,
		eventName: DefaultEventName,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit runs the public registration pipeline: status gate, validation,
// enrollment pre-check, event stamp, insert. The insert's unique indexes
// have the last word on duplicates.
func (s *RegistrationService) Submit(ctx context.Context, req dto.RegistrationRequest) (*models.Registration, error) {
	open, err := s.status.IsOpen(ctx)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, ErrRegistrationClosed
	}

	reg, err := s.validator.Validate(req)
	if err != nil {
		return nil, err
	}

	_, err = s.regs.FindByEnrollment(ctx, reg.Enrollment)
	switch {
	case err == nil:
		return nil, duplicateError(repository.FieldEnrollment, nil)
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("check enrollment: %w", err)
	}

	reg.EventName, err = s.currentEventName(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.regs.Insert(ctx, &reg); err != nil {
		if field, ok := repository.DuplicateField(err); ok {
			return nil, duplicateError(field, err)
		}
		return nil, fmt.Errorf("insert registration: %w", err)
	}

	s.log.Info("registration created", "id", reg.ID, "enrollment", reg.Enrollment, "event", reg.EventName)
	return &reg, nil
}

func (s *RegistrationService) currentEventName(ctx context.Context) (string, error) {
	ev, err := s.events.Current(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return s.eventName, nil
	}
	if err != nil {
		return "", fmt.Errorf("get current event: %w", err)
	}
	if strings.TrimSpace(ev.Title) == "" {
		return s.eventName, nil
	}
	return ev.Title, nil
}

func duplicateError(field string, err error) *DuplicateError {
	msg := "Duplicate entry found"
	switch field {
	case repository.FieldEmail:
		msg = "Email already registered"
	case repository.FieldEnrollment:
		msg = "Enrollment number already registered"
	}
	return &DuplicateError{Field: field, Message: msg, Err: err}
}

// List returns every registration, newest first.
func (s *RegistrationService) List(ctx context.Context) ([]models.Registration, error) {
	regs, err := s.regs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}

func (s *RegistrationService) Delete(ctx context.Context, id string) error {
	if err := s.regs.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return fmt.Errorf("delete registration %q: %w", id, err)
	}
	s.log.Info("registration deleted", "id", id)
	return nil
}

// Clear removes every registration and reports how many were removed.
func (s *RegistrationService) Clear(ctx context.Context) (int64, error) {
	n, err := s.regs.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear registrations: %w", err)
	}
	s.log.Warn("registrations cleared", "count", n)
	return n, nil
}

// Export writes every registration to w as CSV.
func (s *RegistrationService) Export(ctx context.Context, w io.Writer) error {
	regs, err := s.List(ctx)
	if err != nil {
		return err
	}
	return WriteRegistrationsCSV(w, regs)
}
