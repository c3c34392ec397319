package controllers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"gdg-registration/dto"
)

// SubmitRegistration godoc
// @Summary Submit a registration
// @Description Public form submission. Accepts JSON or form bodies; interests may repeat.
// @Tags registrations
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param body body dto.RegistrationRequest true "Registration form"
// @Success 200 {object} dto.RegistrationResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failure or duplicate"
// @Failure 403 {object} dto.ErrorResponse "Registration is currently closed"
// @Failure 500 {object} dto.ErrorResponse
// @Router /register [post]
func (h *Handler) SubmitRegistration() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.RegistrationRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
		}

		if _, err := h.Registrations.Submit(c.UserContext(), body); err != nil {
			return writeError(c, h.logger(), err, "Registration failed")
		}
		return c.JSON(dto.RegistrationResponse{Success: true, Message: "Registration successful!"})
	}
}

// ListRegistrations godoc
// @Summary List registrations
// @Description Every registration, newest first
// @Tags admin
// @Produce json
// @Security AdminMarker
// @Success 200 {array} models.Registration
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/registrations [get]
func (h *Handler) ListRegistrations() fiber.Handler {
	return func(c *fiber.Ctx) error {
		regs, err := h.Registrations.List(c.UserContext())
		if err != nil {
			return writeError(c, h.logger(), err, "Failed to fetch registrations")
		}
		return c.JSON(regs)
	}
}

// ExportRegistrations godoc
// @Summary Export registrations as CSV
// @Tags admin
// @Produce text/csv
// @Security AdminMarker
// @Success 200 {file} file
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/export [get]
func (h *Handler) ExportRegistrations() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		if err := h.Registrations.Export(c.UserContext(), &buf); err != nil {
			return writeError(c, h.logger(), err, "Export failed")
		}

		filename := h.ExportFilename
		if filename == "" {
			filename = DefaultExportFilename
		}
		c.Attachment(filename)
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		return c.Send(buf.Bytes())
	}
}

// ClearRegistrations godoc
// @Summary Delete every registration
// @Tags admin
// @Produce json
// @Security AdminMarker
// @Success 200 {object} dto.ClearResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/clear-data [delete]
func (h *Handler) ClearRegistrations() fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := h.Registrations.Clear(c.UserContext())
		if err != nil {
			return writeError(c, h.logger(), err, "Failed to clear data")
		}
		return c.JSON(dto.ClearResponse{
			Success:      true,
			Message:      "All registrations cleared",
			DeletedCount: n,
		})
	}
}

// DeleteRegistration godoc
// @Summary Delete one registration
// @Tags admin
// @Produce json
// @Security AdminMarker
// @Param id path string true "Registration ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/delete-user/{id} [delete]
func (h *Handler) DeleteRegistration() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := h.Registrations.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeError(c, h.logger(), err, "Failed to delete registration")
		}
		return c.JSON(dto.MessageResponse{Success: true, Message: "Registration deleted successfully"})
	}
}
