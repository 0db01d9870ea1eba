package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"backpack-manager/core/loader"
	"backpack-manager/core/logger"
	"backpack-manager/core/middleware/auth"
	"backpack-manager/core/middleware/rayid"
	"backpack-manager/feature/duplicates"
	"backpack-manager/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveVerbose bool

// serveCmd starts the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long:  `Starts the HTTP server and loads every enabled feature.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(serveVerbose)
		if err != nil {
			return err
		}
		defer e.log.Sync()

		svc, err := e.services()
		if err != nil {
			return err
		}

		// Warm the catalog so the first request does not pay for the fetch.
		if _, err := svc.catalogs.Get(cmd.Context()); err != nil {
			e.log.Warn("Catalog warm-up failed", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(duplicates.NewFeature(svc.catalogs, svc.accounts, e.log.Named("duplicates")))
		mgr.Register(integrity.NewFeature(svc.store, svc.catalogs, e.cfg.Catalog.TTL(), e.log.Named("integrity")))

		// RayID first so every later log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(e.log, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		app.Use(auth.New(auth.Config{
			ApiKey: e.cfg.Server.ApiKey,
			Next:   func(c *fiber.Ctx) bool { return c.Path() == "/health" },
		}))

		timeout := e.cfg.Server.RequestTimeout()
		app.Use(func(c *fiber.Ctx) error {
			ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
			defer cancel()
			c.SetUserContext(ctx)
			return c.Next()
		})

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			return err
		}
		e.log.Info("Features loaded", zap.Strings("features", loaded))

		go func() {
			e.log.Info("Starting server", zap.String("address", e.cfg.Server.Address()))
			if err := app.Listen(e.cfg.Server.Address()); err != nil {
				e.log.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		e.log.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	serveCmd.Flags().BoolVarP(&serveVerbose, "log", "v", false, "Log debug output and Steam requests")
	RootCmd.AddCommand(serveCmd)
}
