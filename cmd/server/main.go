// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "escpos-service/docs"
	"escpos-service/internal/config"
	"escpos-service/internal/database"
	"escpos-service/internal/dialect"
	"escpos-service/internal/repository"
	"escpos-service/internal/routes"
	"escpos-service/internal/service"
	"escpos-service/internal/utils"
	"escpos-service/pkg/codec"
)

// Application represents the main application
type Application struct {
	config   *config.Config
	logger   *zap.Logger
	server   *http.Server
	database *database.DB

	// Dialect registry
	registry *dialect.Registry

	// Services
	encodeService    *service.EncodeService
	operationService *service.OperationService
	dialectService   *service.DialectService

	// Repositories
	operationRepo repository.OperationRepository

	// Background cancellation
	backgroundCancel context.CancelFunc
}

// @title ESC/POS Encode Service API
// @version 1.0.0
// @description Command encoding service for ESC/POS thermal printers. Turns semantic requests into byte-exact command sequences.
// @termsOfService http://swagger.io/terms/

// @contact.name ESC/POS Encode Service Support
// @contact.email support@escpos-service.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8086
// @BasePath /api/v1
func main() {
	// Initialize application
	app, err := NewApplication()
	if err != nil {
		fmt.Printf("Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	// Start the application
	if err := app.Start(); err != nil {
		app.logger.Fatal("Failed to start application", zap.Error(err))
	}
}

// NewApplication creates a new application instance
func NewApplication() (*Application, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger, err := utils.NewLogger(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Create service logger
	serviceLogger := utils.NewServiceLogger(logger, "escpos-service")
	serviceLogger.LogServiceStart(cfg.App.Version, cfg)

	app := &Application{
		config: cfg,
		logger: logger,
	}

	// Initialize components
	if err := app.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := app.initializeRepositories(); err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	if err := app.initializeDialects(); err != nil {
		return nil, fmt.Errorf("failed to initialize dialects: %w", err)
	}

	if err := app.initializeServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	if err := app.initializeServer(); err != nil {
		return nil, fmt.Errorf("failed to initialize server: %w", err)
	}

	return app, nil
}

// initializeDatabase sets up database connection and runs migrations
func (app *Application) initializeDatabase() error {
	// Create database connection
	db, err := database.NewConnection(&app.config.Database, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create database connection: %w", err)
	}

	app.database = db

	// Run migrations
	migrator := database.NewMigrator(db, app.logger, &app.config.Database)
	if err := migrator.Up(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	app.logger.Info("Database initialized successfully")
	return nil
}

// initializeRepositories creates repository instances
func (app *Application) initializeRepositories() error {
	app.operationRepo = repository.NewOperationRepository(app.database, app.logger)

	app.logger.Info("Repositories initialized successfully")
	return nil
}

// initializeDialects seeds the dialect registry and loads dialect files
func (app *Application) initializeDialects() error {
	app.registry = dialect.NewRegistry(app.logger)

	loader := dialect.NewLoader(app.registry, app.logger)
	loaded, err := loader.LoadPaths(app.config.Encoder.DialectPaths)
	if err != nil {
		return fmt.Errorf("failed to load dialect files: %w", err)
	}

	app.logger.Info("Dialect registry initialized successfully",
		zap.Int("loaded_files", loaded),
		zap.Strings("dialects", app.registry.List()),
	)
	return nil
}

// initializeServices creates service instances
func (app *Application) initializeServices() error {
	// Create encode service
	app.encodeService = service.NewEncodeService(
		app.registry,
		codec.NewCharmapCodec(),
		app.operationRepo,
		app.config,
		app.logger,
	)

	// Create operation service
	app.operationService = service.NewOperationService(
		app.operationRepo,
		app.config,
		app.logger,
	)

	// Create dialect service
	app.dialectService = service.NewDialectService(app.registry, app.logger)

	app.logger.Info("Services initialized successfully")
	return nil
}

// initializeServer sets up HTTP server and routes
func (app *Application) initializeServer() error {
	// Create router
	routerManager := routes.NewRouter(
		app.config,
		app.logger,
		app.database,
		app.registry,
		app.encodeService,
		app.operationService,
		app.dialectService,
	)

	// Setup router with all routes
	router := routerManager.SetupRouter()

	// Create HTTP server
	app.server = &http.Server{
		Addr:         app.config.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  app.config.Server.ReadTimeout,
		WriteTimeout: app.config.Server.WriteTimeout,
		IdleTimeout:  app.config.Server.IdleTimeout,
	}

	app.logger.Info("HTTP server initialized",
		zap.String("address", app.config.GetServerAddr()),
		zap.Bool("tls_enabled", app.config.Server.TLS.Enabled),
	)

	return nil
}

// startBackgroundServices starts background services
func (app *Application) startBackgroundServices() {
	ctx, cancel := context.WithCancel(context.Background())
	app.backgroundCancel = cancel

	// Start audit retention loop
	app.operationService.StartCleanupLoop(ctx)

	app.logger.Info("Background services started")
}

// waitForShutdown waits for shutdown signal and performs graceful shutdown
func (app *Application) waitForShutdown() {
	// Create channel to receive OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for signal
	sig := <-quit
	app.logger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	// Perform graceful shutdown
	app.shutdown()
}

// shutdown performs graceful shutdown
func (app *Application) shutdown() {
	serviceLogger := utils.NewServiceLogger(app.logger, "escpos-service")
	serviceLogger.LogServiceStop("shutdown signal received")

	// Stop background services
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		app.logger.Info("HTTP server stopped")
	}

	// Close database connection
	if app.database != nil {
		if err := app.database.Close(); err != nil {
			app.logger.Error("Database close error", zap.Error(err))
		} else {
			app.logger.Info("Database connection closed")
		}
	}

	// Flush logger
	if err := utils.CloseLogger(app.logger); err != nil {
		fmt.Printf("Logger close error: %v\n", err)
	}

	app.logger.Info("Application shutdown completed")
}

func (app *Application) Start() error {
	// Start server in goroutine
	go func() {
		app.logger.Info("Starting HTTP server",
			zap.String("address", app.server.Addr),
		)

		var err error
		if app.config.Server.TLS.Enabled {
			err = app.server.ListenAndServeTLS(
				app.config.Server.TLS.CertFile,
				app.config.Server.TLS.KeyFile,
			)
		} else {
			err = app.server.ListenAndServe()
		}

		if err != nil && err != http.ErrServerClosed {
			app.logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// Start background services
	app.startBackgroundServices()

	// Wait for interrupt signal
	app.waitForShutdown()

	return nil
}
