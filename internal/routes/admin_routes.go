package routes

import (
	"github.com/gofiber/fiber/v2"

	"gdg-registration/internal/controllers"
)

func SetupRoutesAdmin(app *fiber.App, h *controllers.Handler) {
	app.Post("/api/admin/login", h.AdminLogin())
}
