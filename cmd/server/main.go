package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/content-studio-api/internal/api"
	"github.com/content-studio-api/internal/config"
	"github.com/content-studio-api/internal/database"
	"github.com/content-studio-api/internal/kvstore"
	"github.com/content-studio-api/internal/service"
	"github.com/content-studio-api/internal/state"
	"github.com/content-studio-api/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting Content Studio API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize the durable key-value store
	var kv kvstore.Store
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := database.New(&cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer db.Close()

		migrationsPath := os.Getenv("MIGRATIONS_PATH")
		if migrationsPath == "" {
			migrationsPath = "./migrations"
		}
		if err := db.RunMigrations(migrationsPath); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
		kv = kvstore.NewPostgres(db)
	case config.DriverFile:
		kv, err = kvstore.NewFile(cfg.Storage.DataDir)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize file storage")
		}
	default:
		kv = kvstore.NewMemory()
		log.Warn().Msg("Using in-memory storage, state will not survive a restart")
	}
	log.Info().Str("driver", cfg.Storage.Driver).Msg("Durable store ready")

	// Hydrate application state
	app := state.NewApp(kv, log)
	app.Load(context.Background())

	// Initialize services
	services := service.NewServices(app, cfg, log)

	// Initialize router
	router := api.NewRouter(app, services, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
