package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arjun/callpilot/internal/api"
	"github.com/arjun/callpilot/internal/config"
	"github.com/arjun/callpilot/internal/logger"
	"github.com/arjun/callpilot/internal/repository"
	"github.com/arjun/callpilot/internal/service"
	"github.com/arjun/callpilot/internal/vapi"
)

func main() {
	// Load configuration
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Initialize logger
	logger.SetDefaultLogger(logger.NewDefault())
	defer logger.Sync()

	// Initialize database
	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// Initialize repositories
	expertRepo := repository.NewExpertRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	scheduledCallRepo := repository.NewScheduledCallRepository(db)
	interviewLogRepo := repository.NewInterviewLogRepository(db)
	transcribedCallRepo := repository.NewTranscribedCallRepository(db)

	// Initialize provider client
	provider := vapi.NewClient(&vapi.Config{
		BaseURL: cfg.Vapi.BaseURL,
		APIKey:  cfg.Vapi.APIKey,
		Timeout: cfg.Vapi.Timeout,
	})

	// Initialize the call orchestrator
	orchestrator := service.NewOrchestrator(
		provider,
		scheduledCallRepo,
		interviewLogRepo,
		transcribedCallRepo,
		service.OrchestratorConfig{
			AssistantID:   cfg.Vapi.AssistantID,
			PhoneNumberID: cfg.Vapi.PhoneNumberID,
			PollInterval:  cfg.Poll.Interval,
			PollAttempts:  cfg.Poll.MaxAttempts,
		},
	)

	// Start the trigger sweep when enabled; the default deployment places
	// calls manually from the dashboard
	if cfg.Sweep.Enabled {
		sweep := service.NewSweep(scheduledCallRepo, orchestrator)
		runner, err := sweep.Start(cfg.Sweep.Schedule)
		if err != nil {
			logger.Fatal("Failed to start scheduled-call sweep: %v", err)
		}
		defer runner.Stop()
	}

	// Setup router
	router := api.SetupRouter(&api.Deps{
		DB:             db,
		Orchestrator:   orchestrator,
		Provider:       provider,
		Experts:        expertRepo,
		ScheduledCalls: scheduledCallRepo,
		Admins:         adminRepo,
	}, &cfg.Server)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting API server on port %d (mode=%s)", cfg.Server.Port, cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown: %v", err)
	}

	// Stop in-flight polling sequences before exit
	orchestrator.Shutdown()

	logger.Info("Server exited")
}
