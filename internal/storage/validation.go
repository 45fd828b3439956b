package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateDocument validates a document before persistence.
func validateDocument(doc *model.FinancialDocument) error {
	if doc == nil {
		return fmt.Errorf("%w: document", ErrNilParameter)
	}
	return doc.Validate()
}

// validatePlan validates a revenue plan before persistence.
func validatePlan(plan *model.YearRevenuePlan) error {
	if plan == nil {
		return fmt.Errorf("%w: plan", ErrNilParameter)
	}
	return plan.Validate()
}

// validateMonth ensures a month index is in range.
func validateMonth(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	return nil
}
