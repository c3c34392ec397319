package services

import (
	"context"
	"fmt"
	"log/slog"

	"gdg-registration/internal/models"
	"gdg-registration/internal/repository"
)

// StatusService is the registration open/closed gate.
type StatusService struct {
	store repository.StatusStore
	log   *slog.Logger
}

func NewStatusService(store repository.StatusStore, log *slog.Logger) *StatusService {
	if log == nil {
		log = slog.Default()
	}
	return &StatusService{store: store, log: log}
}

// IsOpen reads the flag, creating it open when it does not exist yet.
func (s *StatusService) IsOpen(ctx context.Context) (bool, error) {
	st, err := s.store.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("read registration status: %w", err)
	}
	return st.IsOpen, nil
}

// Toggle flips the flag and returns the new state with a display message.
func (s *StatusService) Toggle(ctx context.Context) (models.RegistrationStatus, string, error) {
	st, err := s.store.Toggle(ctx)
	if err != nil {
		return models.RegistrationStatus{}, "", fmt.Errorf("toggle registration status: %w", err)
	}
	msg := "Registration closed"
	if st.IsOpen {
		msg = "Registration opened"
	}
	s.log.Info("registration status toggled", "isOpen", st.IsOpen)
	return st, msg, nil
}
