package main

import (
	"log"

	"stocksync/internal/config"
	"stocksync/internal/database"
	"stocksync/internal/logger"
	"stocksync/internal/syncer"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	// Run history is optional for the one-shot CLI
	var store syncer.Store
	if cfg.DatabaseURL != "" {
		db, err := database.New(cfg.DatabaseURL)
		if err != nil {
			logger.Warn("Run history disabled, failed to connect to database: %v", err)
		} else {
			defer db.Close()
			store = db
		}
	}

	service := syncer.New(cfg, store, logger)

	logger.Info("Starting inventory sync...")
	if err := service.Run(""); err != nil {
		// Failures per target are already reported; only the feed download
		// can fail the whole run. The exit code stays zero either way.
		logger.Error("Sync aborted: %v", err)
		return
	}
	logger.Info("Inventory sync finished")
}
