package routes

import (
	"github.com/gofiber/fiber/v2"

	"gdg-registration/internal/controllers"
	"gdg-registration/internal/middleware"
)

func SetupRoutesRegistration(app *fiber.App, h *controllers.Handler) {
	app.Post("/register", h.SubmitRegistration())

	// guard per route: a guarded Group would also cover the public /api routes
	guard := middleware.RequireAdmin(h.Auth)
	app.Get("/api/registrations", guard, h.ListRegistrations())
	app.Get("/api/export", guard, h.ExportRegistrations())
	app.Delete("/api/clear-data", guard, h.ClearRegistrations())
	app.Delete("/api/delete-user/:id", guard, h.DeleteRegistration())
}
