package routes

import (
	"log/slog"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"

	"gdg-registration/internal/controllers"
	"gdg-registration/internal/middleware"
)

// Options configures the HTTP surface.
type Options struct {
	PublicDir   string
	CORSOrigins string
	AdminHeader string
	Log         *slog.Logger
}

// NewApp builds the Fiber app with every route mounted.
func NewApp(h *controllers.Handler, opts Options) *fiber.App {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	if opts.CORSOrigins == "" {
		opts.CORSOrigins = "*"
	}
	if opts.AdminHeader == "" {
		opts.AdminHeader = "x-admin-auth"
	}

	app := fiber.New(fiber.Config{
		AppName:               "gdg-registration",
		DisableStartupMessage: true,
		ErrorHandler:          controllers.ErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + opts.AdminHeader,
	}))

	app.Get("/docs/*", swagger.HandlerDefault)

	SetupRoutesRegistration(app, h)
	SetupRoutesEvent(app, h)
	SetupRoutesStatus(app, h)
	SetupRoutesAdmin(app, h)

	api := app.Group("/api")
	api.Get("/ping", controllers.Ping())
	api.All("/*", controllers.APINotFound())

	SetupRoutesPages(app, opts.PublicDir)
	return app
}

// SetupRoutesPages serves the HTML pages and static assets. Anything else
// falls back to the landing page.
func SetupRoutesPages(app *fiber.App, publicDir string) {
	if publicDir == "" {
		publicDir = "public"
	}
	page := func(name string) fiber.Handler {
		path := filepath.Join(publicDir, name)
		return func(c *fiber.Ctx) error { return c.SendFile(path) }
	}

	app.Get("/admin", page("admin.html"))
	app.Get("/registered", page("registered.html"))
	app.Static("/", publicDir)
	app.Get("/*", page("index.html"))
}
