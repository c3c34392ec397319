package controllers

import (
	"log/slog"

	"gdg-registration/internal/middleware"
	"gdg-registration/internal/services"
)

// DefaultExportFilename is the attachment name of the CSV export.
const DefaultExportFilename = "gdg-aitr-registrations.csv"

// Handler holds the services every endpoint closes over.
type Handler struct {
	Registrations  *services.RegistrationService
	Events         *services.EventService
	Status         *services.StatusService
	Auth           middleware.Authenticator
	Log            *slog.Logger
	ExportFilename string
}

func (h *Handler) logger() *slog.Logger {
	if h.Log == nil {
		return slog.Default()
	}
	return h.Log
}
