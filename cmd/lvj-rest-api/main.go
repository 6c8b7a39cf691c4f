// cmd/lvj-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/Khaledaun/LVJAPP/internal/api/rest/v1"
	"github.com/Khaledaun/LVJAPP/internal/app"
	"github.com/Khaledaun/LVJAPP/internal/infrastructure/bootstrap"
	"github.com/Khaledaun/LVJAPP/internal/pkg/config"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := deps.storage.Close(); err != nil {
			log.Warn("Failed to close storage: ", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	storage  *bootstrap.Storage
	services *app.Services
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	storage, err := bootstrap.OpenStorage(context.Background(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	notifier, err := bootstrap.OpenNotifier(cfg, log)
	if err != nil {
		_ = storage.Close()
		return nil, fmt.Errorf("failed to create notifier: %w", err)
	}

	services, err := app.NewServices(storage.Repos, notifier, cfg, log)
	if err != nil {
		_ = storage.Close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	if _, err := bootstrap.IssueDevSessions(context.Background(), cfg, services.Auth, log); err != nil {
		_ = storage.Close()
		return nil, fmt.Errorf("failed to issue dev sessions: %w", err)
	}

	log.Info("Application services initialized successfully (mode=", storage.Repos.Mode,
		", skip_auth=", cfg.Features.SkipAuthEnabled(),
		", status_notifications=", cfg.Features.StatusNotificationsEnabled(), ")")

	return &appDependencies{storage: storage, services: services}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AppURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", v1.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", v1.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, deps.services, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
