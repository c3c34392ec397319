package controllers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"gdg-registration/dto"
	"gdg-registration/internal/repository"
	"gdg-registration/internal/services"
	"gdg-registration/internal/validation"
)

// writeError maps a service error onto a status code and {error} body.
// fallback is the message for unclassified failures.
func writeError(c *fiber.Ctx, log *slog.Logger, err error, fallback string) error {
	status, msg := classify(err, fallback)
	if status >= fiber.StatusInternalServerError {
		log.Error(fallback, "error", err, "path", c.Path())
	} else {
		log.Debug("request rejected", "status", status, "error", err, "path", c.Path())
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg})
}

func classify(err error, fallback string) (int, string) {
	var (
		fieldErrs validation.FieldErrors
		verr      *services.ValidationError
		dup       *services.DuplicateError
	)
	switch {
	case errors.As(err, &fieldErrs):
		return fiber.StatusBadRequest, fieldErrs.Error()
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, verr.Message
	case errors.As(err, &dup):
		return fiber.StatusBadRequest, dup.Message
	case errors.Is(err, services.ErrRegistrationClosed):
		return fiber.StatusForbidden, "Registration is currently closed"
	case errors.Is(err, repository.ErrNotFound):
		return fiber.StatusNotFound, "Registration not found"
	case errors.Is(err, repository.ErrUnavailable):
		return fiber.StatusInternalServerError, "Database not available"
	}
	return fiber.StatusInternalServerError, fallback
}

// ErrorHandler renders errors that escape handlers, including recovered
// panics, as {error} JSON.
func ErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "Internal server error"
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			msg = fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("unhandled error", "error", err, "path", c.Path())
		}
		return c.Status(code).JSON(dto.ErrorResponse{Error: msg})
	}
}
