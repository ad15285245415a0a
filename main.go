package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davidpincheira/coding-interview-backend-level-3/config"
	"github.com/davidpincheira/coding-interview-backend-level-3/internal/app"
	"github.com/davidpincheira/coding-interview-backend-level-3/internal/database"
	"github.com/davidpincheira/coding-interview-backend-level-3/internal/server"
	"github.com/davidpincheira/coding-interview-backend-level-3/internal/storage/postgres"
)

// @title           Items API
// @version         1.0
// @description     Small CRUD service exposing items backed by PostgreSQL.

// @host      localhost:3000
// @BasePath  /
// @schemes   http
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := database.Initialize(context.Background(), dbPool); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	application := &app.Application{
		Config:   cfg,
		DBPool:   dbPool,
		ItemRepo: postgres.NewItemRepo(dbPool),
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server...")

	// Drain in-flight requests before the deferred pool close runs
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Application gracefully stopped.")
}
