package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/digimosa/exposure-scan/internal/analyzer"
	"github.com/digimosa/exposure-scan/internal/config"
	"github.com/digimosa/exposure-scan/internal/logging"
	"github.com/digimosa/exposure-scan/internal/server"
	"github.com/digimosa/exposure-scan/internal/storage"
)

func main() {
	cfg := config.Load()

	// CLI flags override environment configuration
	port := flag.Int("port", cfg.Port, "HTTP server port")
	backend := flag.String("backend", cfg.Backend, "Storage backend: file or sqlite")
	historyFile := flag.String("history-file", cfg.HistoryFile, "History JSON path (file backend)")
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path (sqlite backend)")
	historyLimit := flag.Int("history-limit", cfg.HistoryLimit, "Maximum retained scan records")
	flag.Parse()

	logger := logging.New()

	var store storage.Store
	var err error
	switch *backend {
	case config.BackendSQLite:
		store, err = storage.NewGormStore(*dbPath, *historyLimit)
	case config.BackendFile:
		store, err = storage.NewFileStore(*historyFile, *historyLimit)
	default:
		logger.Error("Unknown storage backend", "backend", *backend)
		os.Exit(1)
	}
	if err != nil {
		logger.Error("Failed to initialize storage", "backend", *backend, "error", err)
		os.Exit(1)
	}

	az := analyzer.New(rand.New(rand.NewSource(time.Now().UnixNano())))

	api := server.New(az, store, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: api.Handler(),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("Starting server", "port", *port, "backend", *backend, "historyLimit", *historyLimit)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
