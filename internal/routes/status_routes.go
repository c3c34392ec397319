package routes

import (
	"github.com/gofiber/fiber/v2"

	"gdg-registration/internal/controllers"
	"gdg-registration/internal/middleware"
)

func SetupRoutesStatus(app *fiber.App, h *controllers.Handler) {
	app.Get("/api/registration-status", h.RegistrationStatus())
	app.Post("/api/toggle-registration", middleware.RequireAdmin(h.Auth), h.ToggleRegistration())
}
