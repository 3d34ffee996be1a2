package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"case_desk_app_go/apiclient"
	"case_desk_app_go/config"
	"case_desk_app_go/db"
	"case_desk_app_go/handlers"
	"case_desk_app_go/models"
	"case_desk_app_go/services"
	"case_desk_app_go/services/jobs"
	"case_desk_app_go/session"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Case{},
		&models.CourtDate{},
		&models.Document{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	services.InitializeStorage(cfg)

	// Reminder emails
	if cfg.RemindersEnabled {
		scheduler, err := jobs.StartScheduler(db.DB, cfg)
		if err != nil {
			log.Fatalf("Failed to start reminder scheduler: %v", err)
		}
		defer scheduler.Stop()
	}

	// The pages read through the REST API, never the database
	web := handlers.NewWeb(apiclient.New(cfg.BackendURL, cfg.APITimeout))
	e := handlers.NewRouter(cfg, session.FromConfig(cfg), web)

	go func() {
		log.Printf("Server starting on port %s (API at %s)", cfg.ServerPort, cfg.BackendURL)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
}
