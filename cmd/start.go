package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"object-gateway/core/config"
	"object-gateway/core/database"
	corejournal "object-gateway/core/journal"
	"object-gateway/core/loader"
	"object-gateway/core/logger"
	"object-gateway/core/metrics"
	"object-gateway/core/middleware/auth"
	"object-gateway/core/middleware/rayid"
	"object-gateway/core/objectstore"

	"object-gateway/feature/health"
	"object-gateway/feature/journal"
	"object-gateway/feature/objects"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "object-gateway/docs/swagger"
)

// @title Object Gateway API
// @version 1.0
// @description Thin HTTP adapter over S3-compatible object storage.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the object gateway server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Metrics
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		collector, err := metrics.New(reg)
		if err != nil {
			logg.Fatal("Failed to register metrics", zap.Error(err))
		}
		opts := []objectstore.Option{objectstore.WithObserver(collector)}

		// 4. Journal (Optional)
		var jrnl *corejournal.Journal
		if cfg.Database.Enabled {
			if db, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed, journal disabled", zap.Error(err))
			} else if jrnl, err = corejournal.New(db, logg); err != nil {
				logg.Warn("Failed to initialize journal", zap.Error(err))
			} else {
				opts = append(opts, objectstore.WithObserver(jrnl))
				logg.Info("Operation journal enabled", zap.String("driver", cfg.Database.Driver))
			}
		}

		// 5. Object Store
		store, err := openStore(cfg, logg, opts...)
		if err != nil {
			logg.Fatal("Failed to create object store", zap.Error(err))
		}

		app, err := newServer(cfg, logg, store, jrnl, reg)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("driver", cfg.Storage.Driver),
				zap.String("bucket", cfg.Storage.Bucket),
				zap.String("prefix", cfg.Storage.PrefixPath))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	},
}

// newServer builds the Fiber app with middleware and every enabled feature.
// jrnl may be nil when no database is configured.
func newServer(cfg *config.Config, logg *zap.Logger, store *objectstore.Store, jrnl *corejournal.Journal, gatherer prometheus.Gatherer) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.Server.BodyLimit(),
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
	})

	mgr := loader.NewManager()
	mgr.Register(health.NewFeature(store, logg, time.Duration(cfg.Storage.TimeoutSeconds)*time.Second))
	mgr.Register(objects.NewFeature(store, logg, time.Duration(cfg.Server.PresignExpiry())*time.Second))
	if jrnl != nil {
		mgr.Register(journal.NewFeature(jrnl, logg, true))
	} else {
		mgr.Register(journal.NewFeature(nil, logg, false))
	}

	// 1. RayID (Must be first to trace everything)
	app.Use(rayid.New())

	// 2. Request logging
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		start := time.Now()
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.String("method", c.Method()), zap.String("path", c.Path()), zap.Error(err))
			return err
		}
		l.Info("Request completed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)
		return nil
	})

	// 3. Public endpoints
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// 4. Auth (Protect API)
	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/swagger", "/metrics"}}))

	// 5. Load Features
	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}

func init() {
	RootCmd.AddCommand(startCmd)
}
