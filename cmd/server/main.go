package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "pvmarket-backend/internal/api/http"
	"pvmarket-backend/internal/auth"
	"pvmarket-backend/internal/config"
	"pvmarket-backend/internal/logger"
	"pvmarket-backend/internal/oauth"
	"pvmarket-backend/internal/repository/postgres"
	"pvmarket-backend/internal/security"
	"pvmarket-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting PV Market backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Email configuration", "enabled", cfg.Email.APIKey != "", "from", cfg.Email.From)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	googleProvider := oauth.NewGoogleProvider(cfg.OAuth)
	authenticator := auth.NewAuthenticator(
		auth.NewBearerProvider(tokenManager),
		auth.NewSessionProvider(store.SessionRepository),
	)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)
	authSvc := service.NewAuthService(
		store.UserRepository,
		store.ProfileRepository,
		store.SessionRepository,
		tokenManager,
		googleProvider,
	)
	profileSvc := service.NewProfileService(store.ProfileRepository)
	poleSvc := service.NewPoleService(store.PoleRepository)
	requestSvc := service.NewRequestService(
		store.RequestRepository,
		store.InquiryRepository,
		store.PoleRepository,
		emailSvc,
	)

	// Set up HTTP server
	router := httpapi.NewRouter(authenticator, authSvc, profileSvc, poleSvc, requestSvc)
	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
