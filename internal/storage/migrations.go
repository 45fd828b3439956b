package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS documents (
					id TEXT PRIMARY KEY,
					owner_id TEXT NOT NULL,
					file_name TEXT,
					statement_type TEXT NOT NULL,
					status TEXT NOT NULL,
					period_start DATETIME,
					period_end DATETIME,
					uploaded_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_documents_owner ON documents(owner_id)`,
				`CREATE INDEX idx_documents_period ON documents(period_start)`,

				`CREATE TABLE IF NOT EXISTS metrics (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					document_id TEXT NOT NULL,
					label TEXT,
					canonical_key TEXT NOT NULL,
					metric_type TEXT NOT NULL,
					category TEXT,
					subcategory TEXT,
					value REAL NOT NULL,
					confidence REAL DEFAULT 0,
					verified INTEGER DEFAULT 0,
					FOREIGN KEY (document_id) REFERENCES documents(id)
				)`,
				`CREATE INDEX idx_metrics_document ON metrics(document_id)`,
				`CREATE INDEX idx_metrics_key ON metrics(canonical_key)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Revenue plans and monthly entries",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS revenue_plans (
					owner_id TEXT NOT NULL,
					year INTEGER NOT NULL,
					target_revenue REAL DEFAULT 0,
					monthly_targets TEXT,
					locked INTEGER DEFAULT 0,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					PRIMARY KEY (owner_id, year)
				)`,

				`CREATE TABLE IF NOT EXISTS revenue_entries (
					owner_id TEXT NOT NULL,
					year INTEGER NOT NULL,
					month INTEGER NOT NULL CHECK (month BETWEEN 1 AND 12),
					amount REAL NOT NULL,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					PRIMARY KEY (owner_id, year, month)
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate applies any pending schema migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	return nil
}
