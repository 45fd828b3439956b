// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
)

// DocumentFilter defines filtering options for document queries.
type DocumentFilter struct {
	Type   model.StatementType
	Status model.DocumentStatus
	Limit  int
	Offset int
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Document operations. Saving a document writes the document and its
	// metrics atomically; deleting removes the metrics in the same
	// transaction.
	SaveDocument(ctx context.Context, doc *model.FinancialDocument) error
	GetDocument(ctx context.Context, ownerID, id string) (*model.FinancialDocument, error)
	ListDocuments(ctx context.Context, ownerID string, filter DocumentFilter) ([]model.FinancialDocument, error)
	UpdateDocumentStatus(ctx context.Context, ownerID, id string, status model.DocumentStatus) error
	DeleteDocument(ctx context.Context, ownerID, id string) error

	// Reviewer edits to a single metric of a document.
	UpdateMetric(ctx context.Context, ownerID, docID, canonicalKey string, value float64, verified bool) error

	// Revenue plan operations. Upserting a monthly entry is keyed on
	// (owner, year, month). Mutations against a locked plan fail with
	// common.ErrPlanLocked.
	GetPlan(ctx context.Context, ownerID string, year int) (*model.YearRevenuePlan, error)
	SavePlan(ctx context.Context, plan *model.YearRevenuePlan) error
	UpsertMonthlyEntry(ctx context.Context, ownerID string, year, month int, amount float64) error
	LockPlan(ctx context.Context, ownerID string, year int) error

	Close() error
}

// RetryOptions configures bounded fixed-delay retry for polling operations.
type RetryOptions struct {
	MaxAttempts int
	Delay       time.Duration
}

// Clock supplies the current time so period inference stays deterministic in
// tests.
type Clock func() time.Time
