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

	"github.com/mstead/pantry/internal/catalog"
	"github.com/mstead/pantry/internal/database"
	"github.com/mstead/pantry/internal/logging"
	"github.com/mstead/pantry/internal/server"
)

func main() {
	port := os.Getenv("PANTRY_PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("PANTRY_DB_PATH")
	if dbPath == "" {
		dbPath = "pantry.db"
	}

	logger := logging.Setup(os.Getenv("PANTRY_LOG_LEVEL"))

	db, err := database.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	cat, err := catalog.Load(os.Getenv("PANTRY_CATEGORIES_PATH"))
	if err != nil {
		log.Fatalf("failed to load category catalog: %v", err)
	}

	srv := server.New(db, cat, logger)

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Background cleanup goroutine
	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	defer cleanupCancel()
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				srv.RateLimiter().Cleanup()
			case <-cleanupCtx.Done():
				return
			}
		}
	}()

	go func() {
		fmt.Printf("Pantry running at http://localhost:%s\n", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	cleanupCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
