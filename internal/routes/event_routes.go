package routes

import (
	"github.com/gofiber/fiber/v2"

	"gdg-registration/internal/controllers"
	"gdg-registration/internal/middleware"
)

func SetupRoutesEvent(app *fiber.App, h *controllers.Handler) {
	app.Get("/api/current-event", h.CurrentEvent())

	guard := middleware.RequireAdmin(h.Auth)
	app.Post("/api/save-event", guard, h.SaveEvent())
	app.Delete("/api/delete-event", guard, h.DeleteEvent())
}
