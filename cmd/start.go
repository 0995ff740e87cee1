package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emoji-catalog/core/catalog"
	"emoji-catalog/core/loader"
	"emoji-catalog/core/logger"
	"emoji-catalog/core/middleware/rayid"
	"emoji-catalog/core/storage"
	"emoji-catalog/feature/emoji"
	"emoji-catalog/feature/snapshot"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "emoji-catalog/docs/swagger"
)

// @title Emoji Catalog API
// @version 1.0
// @description Read-only mirror of the emoji.gg catalog backed by an in-memory cache.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog mirror server",
	Long:  `Starts the HTTP mirror, optionally warms the caches and keeps them fresh on an interval.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Metrics
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		// 2. Configuration, logger and catalog client
		rt, err := newEnv(catalog.WithMetrics(catalog.NewMetrics(reg)))
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)
		cfg := rt.cfg

		// 3. Storage (optional, only snapshots need it)
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Warn("Snapshot storage unavailable", zap.Error(err))
			store = nil
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// RayID first so every log line carries it.
		app.Use(rayid.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
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

		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
		if cfg.Server.SwaggerEnabled {
			app.Get("/swagger/*", swagger.HandlerDefault)
		}

		// 4. Features
		emojiFeature := emoji.NewFeature(rt.client, logg)
		mgr := loader.NewManager()
		mgr.Register(emojiFeature)
		mgr.Register(snapshot.NewFeature(rt.client, store, cfg.Storage, logg))
		if err := mgr.LoadAll(app); err != nil {
			return err
		}
		logg.Info("Features loaded", zap.Strings("features", mgr.Names()))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// 5. Cache warm-up and periodic refresh
		if cfg.Server.RefreshOnStart {
			go func() {
				summary, err := rt.client.RefreshAll(ctx)
				if err != nil {
					logg.Warn("Initial refresh failed", zap.Error(err))
					return
				}
				logg.Info("Initial refresh completed",
					zap.Int("emojis", summary.Emojis),
					zap.Int("packs", summary.Packs),
					zap.Int("categories", summary.Categories))
			}()
		}
		if cfg.Server.RefreshIntervalSeconds > 0 {
			interval := time.Duration(cfg.Server.RefreshIntervalSeconds) * time.Second
			go emojiFeature.Service().RunRefreshLoop(ctx, interval)
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Error("Server failed", zap.Error(err))
				stop()
			}
		}()

		// 7. Graceful Shutdown
		<-ctx.Done()
		logg.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
