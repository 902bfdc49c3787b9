package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"bucket-manager/core/config"
	"bucket-manager/core/loader"
	"bucket-manager/core/logger"
	"bucket-manager/core/middleware/auth"
	"bucket-manager/core/middleware/rayid"
	"bucket-manager/core/storage"
	"bucket-manager/feature/buckets"
	"bucket-manager/feature/objects"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "bucket-manager/docs/swagger"
)

// @title Bucket Manager API
// @version 1.0
// @description API for managing buckets and objects on an S3-compatible store.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the bucket manager server",
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

		// 3. Initialize Storage
		store, err := storage.NewClient(cmd.Context(), cfg.Storage, logg)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 4. Initialize Fiber App
		json := jsoniter.ConfigCompatibleWithStandardLibrary
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
			JSONEncoder:           json.Marshal,
			JSONDecoder:           json.Unmarshal,
		})

		// 5. Register Features
		mgr := loader.NewManager(logg)
		mgr.Register(buckets.NewFeature(store, logg))
		mgr.Register(objects.NewFeature(store, logg))

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

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			names := make([]string, 0, len(mgr.Features()))
			for _, f := range mgr.Features() {
				names = append(names, f.Name())
			}
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("endpoint", store.Endpoint()),
				zap.Strings("features", names),
			)
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
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
