package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/config"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/docintel"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/engine"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/service"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/cfo/cfo.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initAnalyzer builds the document analysis client from configuration.
func initAnalyzer() (engine.Analyzer, error) {
	endpoint := viper.GetString("docintel.endpoint")
	apiKey := viper.GetString("docintel.api_key")
	modelID := viper.GetString("docintel.model_id")

	retry := service.RetryOptions{
		MaxAttempts: viper.GetInt("docintel.poll_attempts"),
		Delay:       viper.GetDuration("docintel.poll_delay"),
	}
	if retry.Delay == 0 {
		retry.Delay = 2 * time.Second
	}

	client, err := docintel.NewClient(endpoint, apiKey, modelID, retry)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// requireOwner resolves the acting owner from flags or config.
func requireOwner() (string, error) {
	owner := viper.GetString("owner")
	if owner == "" {
		return "", fmt.Errorf("no owner specified: use --owner or set owner in config")
	}
	return owner, nil
}

// readCSVRows loads a spreadsheet export as raw rows.
func readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // statements are ragged

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return rows, nil
}
