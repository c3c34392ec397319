package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gdg-registration/dto"
	"gdg-registration/internal/models"
	"gdg-registration/internal/repository"
)

type EventService struct {
	store repository.EventStore
	log   *slog.Logger
}

func NewEventService(store repository.EventStore, log *slog.Logger) *EventService {
	if log == nil {
		log = slog.Default()
	}
	return &EventService{store: store, log: log}
}

// Current returns the most recently updated event or repository.ErrNotFound.
func (s *EventService) Current(ctx context.Context) (*models.Event, error) {
	ev, err := s.store.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("get current event: %w", err)
	}
	return ev, nil
}

// Save replaces the current event wholesale. Every field is required.
func (s *EventService) Save(ctx context.Context, body dto.EventRequest) (*models.Event, error) {
	ev := models.Event{
		Title:       strings.TrimSpace(body.Title),
		Description: strings.TrimSpace(body.Description),
		Date:        strings.TrimSpace(body.Date),
		Location:    strings.TrimSpace(body.Location),
	}
	if ev.Title == "" || ev.Description == "" || ev.Date == "" || ev.Location == "" {
		return nil, &ValidationError{Message: "All fields are required"}
	}

	saved, err := s.store.Replace(ctx, ev)
	if err != nil {
		return nil, fmt.Errorf("save event: %w", err)
	}
	s.log.Info("event saved", "id", saved.ID, "title", saved.Title)
	return saved, nil
}

// Delete removes every event. Deleting nothing is not an error.
func (s *EventService) Delete(ctx context.Context) error {
	n, err := s.store.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	s.log.Info("event deleted", "count", n)
	return nil
}
