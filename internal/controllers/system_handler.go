package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"gdg-registration/dto"
	"gdg-registration/internal/middleware"
)

// AdminLogin godoc
// @Summary Admin login
// @Description Checks the shared admin password and returns how to authenticate admin calls
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Password"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/admin/login [post]
func (h *Handler) AdminLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
		}
		res, err := h.Auth.Login(body.Password)
		if errors.Is(err, middleware.ErrInvalidPassword) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Invalid password"})
		}
		if err != nil {
			return writeError(c, h.logger(), err, "Login failed")
		}

		out := dto.LoginResponse{Success: true, Header: res.Header, Value: res.Value, Token: res.Token}
		if !res.ExpiresAt.IsZero() {
			exp := res.ExpiresAt.UTC()
			out.ExpiresAt = &exp
		}
		return c.JSON(out)
	}
}

// Ping godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} dto.PingResponse
// @Router /api/ping [get]
func Ping() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(dto.PingResponse{Status: "ok", Timestamp: time.Now().UTC()})
	}
}

// APINotFound answers unmatched /api routes.
func APINotFound() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "API endpoint not found"})
	}
}
