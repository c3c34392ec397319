package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"gdg-registration/dto"
	"gdg-registration/internal/repository"
)

// CurrentEvent godoc
// @Summary Current event
// @Description The event shown on the landing page, or null
// @Tags events
// @Produce json
// @Success 200 {object} models.Event
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/current-event [get]
func (h *Handler) CurrentEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ev, err := h.Events.Current(c.UserContext())
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(nil)
		}
		if err != nil {
			return writeError(c, h.logger(), err, "Failed to fetch event")
		}
		return c.JSON(ev)
	}
}

// SaveEvent godoc
// @Summary Replace the current event
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminMarker
// @Param body body dto.EventRequest true "Event"
// @Success 200 {object} dto.EventSaveResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/save-event [post]
func (h *Handler) SaveEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.EventRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
		}
		ev, err := h.Events.Save(c.UserContext(), body)
		if err != nil {
			return writeError(c, h.logger(), err, "Failed to save event")
		}
		return c.JSON(dto.EventSaveResponse{Success: true, Message: "Event saved successfully", Event: ev})
	}
}

// DeleteEvent godoc
// @Summary Delete the current event
// @Tags admin
// @Produce json
// @Security AdminMarker
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/delete-event [delete]
func (h *Handler) DeleteEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := h.Events.Delete(c.UserContext()); err != nil {
			return writeError(c, h.logger(), err, "Failed to delete event")
		}
		return c.JSON(dto.MessageResponse{Success: true, Message: "Event deleted successfully"})
	}
}
