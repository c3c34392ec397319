// @title GDG Event Registration API
// @version 1.0
// @description Public registration form and admin endpoints for a single current event.
// @BasePath /
// @securityDefinitions.apikey AdminMarker
// @in header
// @name x-admin-auth

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	_ "gdg-registration/docs"

	"gdg-registration/config"
	"gdg-registration/database"
	"gdg-registration/internal/controllers"
	"gdg-registration/internal/logging"
	"gdg-registration/internal/middleware"
	"gdg-registration/internal/routes"
	"gdg-registration/internal/services"
	"gdg-registration/internal/validation"
)

var flags = []cli.Flag{
	&cli.StringSliceFlag{
		Name:  "env-file",
		Usage: "dotenv file(s) to load before reading the environment (default .env)",
	},
	&cli.StringFlag{
		Name:  "port",
		Usage: "port to listen on, overrides PORT",
	},
	&cli.StringFlag{
		Name:  "store",
		Usage: "store driver: mongo, sqlite or memory, overrides STORE_DRIVER",
	},
	&cli.BoolFlag{
		Name:  "log-json",
		Usage: "log in JSON format",
	},
	&cli.BoolFlag{
		Name:  "log-debug",
		Usage: "log debug messages",
	},
}

func main() {
	app := &cli.App{
		Name:   "gdg-registration",
		Usage:  "Serve the event registration form and admin API",
		Flags:  flags,
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(cCtx *cli.Context) error {
	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}

	logger := logging.Setup(logging.Options{JSON: cfg.LogJSON, Debug: cfg.LogDebug, Service: "gdg-registration"})

	ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, err := database.OpenStores(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open store", "driver", cfg.StoreDriver, "error", err)
		return err
	}
	defer func() {
		if stores.Close == nil {
			return
		}
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := stores.Close(closeCtx); err != nil {
			logger.Warn("store close failed", "error", err)
		}
	}()

	auth, err := newAuthenticator(cfg)
	if err != nil {
		return err
	}

	status := services.NewStatusService(stores.Status, logger)
	handler := &controllers.Handler{
		Registrations: services.NewRegistrationService(stores, status, validation.New(),
			services.WithDefaultEventName(cfg.DefaultEventName),
			services.WithLogger(logger),
		),
		Events:         services.NewEventService(stores.Events, logger),
		Status:         status,
		Auth:           auth,
		Log:            logger,
		ExportFilename: cfg.ExportFilename,
	}
	app := routes.NewApp(handler, routes.Options{
		PublicDir:   cfg.PublicDir,
		CORSOrigins: cfg.CORSOrigins,
		AdminHeader: cfg.AdminHeader,
		Log:         logger,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port, "store", cfg.StoreDriver, "auth", cfg.AdminAuthMode)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("shutdown failed", "error", err)
		return err
	}
	logger.Info("server shutdown complete")
	return nil
}

func newAuthenticator(cfg config.Config) (middleware.Authenticator, error) {
	switch cfg.AdminAuthMode {
	case config.AuthJWT:
		return middleware.NewJWTAuthenticator(cfg.JWTSecret, cfg.AdminPassword, cfg.JWTTTL)
	default:
		return middleware.NewMarkerAuthenticator(cfg.AdminHeader, cfg.AdminMarker, cfg.AdminPassword)
	}
}

// loadConfig reads the environment, applies flag overrides and validates
// the result once.
func loadConfig(cCtx *cli.Context) (config.Config, error) {
	cfg, err := config.LoadConfig(cCtx.StringSlice("env-file")...)
	if err != nil {
		return config.Config{}, err
	}
	if cCtx.IsSet("port") {
		cfg.Port = cCtx.String("port")
	}
	if cCtx.IsSet("store") {
		cfg.StoreDriver = cCtx.String("store")
	}
	if cCtx.IsSet("log-json") {
		cfg.LogJSON = cCtx.Bool("log-json")
	}
	if cCtx.IsSet("log-debug") {
		cfg.LogDebug = cCtx.Bool("log-debug")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
