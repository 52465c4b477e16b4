package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"update-reconciler/core/config"
	"update-reconciler/core/database"
	"update-reconciler/core/loader"
	"update-reconciler/core/logger"
	"update-reconciler/core/middleware/auth"
	"update-reconciler/core/middleware/rayid"
	"update-reconciler/core/reconcile"
	"update-reconciler/core/scenario"
	"update-reconciler/core/storage"

	"update-reconciler/feature/batches"
	"update-reconciler/feature/journal"
	"update-reconciler/feature/scenarios"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reconciler server",
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

		// 3. Connect to Database (Optional, backs the journal)
		var db *gorm.DB
		if cfg.Reconcile.Journal {
			if conn, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed, journal disabled", zap.Error(err))
			} else {
				db = conn
				logg.Info("Connected to journal database", zap.String("driver", cfg.Database.Driver))
			}
		}

		// 4. Initialize Storage (Optional, backs stored scenarios)
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		checkCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := scenario.NewObjectLoader(store, cfg.Storage.Bucket).Check(checkCtx); err != nil {
			logg.Warn("Scenario bucket unavailable", zap.Error(err))
		}
		cancel()

		// 5. Reconciliation driver, recording to the journal when available
		journalFeature := journal.NewFeature(db, logg)
		driver := reconcile.NewDriver(logg, cfg.Reconcile.Options())
		if repo := journalFeature.Repository(); repo != nil {
			driver = driver.WithRecorder(repo)
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		mgr := loader.NewManager(logg)
		mgr.Register(batches.NewFeature(driver, logg))
		mgr.Register(scenarios.NewFeature(store, cfg.Storage.Bucket, driver, logg))
		mgr.Register(journalFeature)

		// RayID must be first to trace everything
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

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
