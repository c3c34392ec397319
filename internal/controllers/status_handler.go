package controllers

import (
	"github.com/gofiber/fiber/v2"

	"gdg-registration/dto"
)

// RegistrationStatus godoc
// @Summary Registration open/closed state
// @Tags status
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/registration-status [get]
func (h *Handler) RegistrationStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		open, err := h.Status.IsOpen(c.UserContext())
		if err != nil {
			return writeError(c, h.logger(), err, "Failed to get registration status")
		}
		return c.JSON(dto.StatusResponse{IsOpen: open})
	}
}

// ToggleRegistration godoc
// @Summary Open or close registration
// @Tags admin
// @Produce json
// @Security AdminMarker
// @Success 200 {object} dto.ToggleResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/toggle-registration [post]
func (h *Handler) ToggleRegistration() fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, msg, err := h.Status.Toggle(c.UserContext())
		if err != nil {
			return writeError(c, h.logger(), err, "Failed to toggle registration")
		}
		return c.JSON(dto.ToggleResponse{Message: msg, IsOpen: st.IsOpen})
	}
}
