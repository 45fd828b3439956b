// Package model defines the core domain models used throughout the application.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// StatementType identifies which kind of financial statement a document is.
type StatementType string

// Statement type constants.
const (
	StatementProfitLoss   StatementType = "profit_loss"
	StatementBalanceSheet StatementType = "balance_sheet"
	StatementCashFlow     StatementType = "cash_flow"
)

// DocumentStatus tracks a document through the review lifecycle.
type DocumentStatus string

// Document status constants.
const (
	StatusPending  DocumentStatus = "pending"
	StatusReviewed DocumentStatus = "reviewed"
	StatusApproved DocumentStatus = "approved"
	StatusRejected DocumentStatus = "rejected"
)

// Model validation errors.
var (
	ErrInvalidDocument = errors.New("invalid document")
	ErrInvalidMetric   = errors.New("invalid metric")
	ErrInvalidPlan     = errors.New("invalid revenue plan")
)

// FinancialDocument is a single ingested statement and its extracted metrics.
type FinancialDocument struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	UploadedAt  time.Time
	ID          string
	OwnerID     string
	FileName    string
	Type        StatementType
	Status      DocumentStatus
	Metrics     []CanonicalMetric
}

// Validate checks document invariants before persistence.
func (d *FinancialDocument) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidDocument)
	}
	if strings.TrimSpace(d.OwnerID) == "" {
		return fmt.Errorf("%w: missing owner ID", ErrInvalidDocument)
	}
	switch d.Type {
	case StatementProfitLoss, StatementBalanceSheet, StatementCashFlow:
	default:
		return fmt.Errorf("%w: unknown statement type %q", ErrInvalidDocument, d.Type)
	}
	switch d.Status {
	case StatusPending, StatusReviewed, StatusApproved, StatusRejected:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidDocument, d.Status)
	}
	if !d.PeriodStart.IsZero() && !d.PeriodEnd.IsZero() && d.PeriodEnd.Before(d.PeriodStart) {
		return fmt.Errorf("%w: period end before period start", ErrInvalidDocument)
	}
	for i := range d.Metrics {
		if err := d.Metrics[i].Validate(); err != nil {
			return fmt.Errorf("metric at index %d: %w", i, err)
		}
	}
	return nil
}
