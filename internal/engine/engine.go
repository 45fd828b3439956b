package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/common"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/docintel"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/service"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/target"
)

// Analyzer is the slice of the document-understanding client the engine
// needs; satisfied by *docintel.Client.
type Analyzer interface {
	Analyze(ctx context.Context, document []byte) (*docintel.AnalyzeResult, error)
}

// Engine ties normalization to persistence and the external analysis
// service.
type Engine struct {
	storage  service.Storage
	analyzer Analyzer
	clock    service.Clock
}

// New creates an engine. analyzer may be nil when only file-based ingestion
// is used; clock defaults to time.Now.
func New(storage service.Storage, analyzer Analyzer, clock service.Clock) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		storage:  storage,
		analyzer: analyzer,
		clock:    clock,
	}
}

// ProcessRows normalizes tabular file data and persists the resulting
// document with status pending.
func (e *Engine) ProcessRows(ctx context.Context, ownerID, fileName string, rows [][]string) (*NormalizeResult, error) {
	result := Normalize(NormalizeInput{
		OwnerID:  ownerID,
		FileName: fileName,
		Rows:     rows,
		Now:      e.clock(),
	})

	if err := e.storage.SaveDocument(ctx, &result.Document); err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	common.LogInfo("Normalized document", common.Fields{
		"document_id": result.Document.ID,
		"type":        result.Document.Type,
		"metrics":     len(result.Document.Metrics),
		"raw_fields":  len(result.Raw),
	})
	return result, nil
}

// ProcessDocument submits raw document bytes to the analysis service, waits
// for the result and persists the normalized document.
func (e *Engine) ProcessDocument(ctx context.Context, ownerID, fileName string, document []byte) (*NormalizeResult, error) {
	if e.analyzer == nil {
		return nil, fmt.Errorf("%w: no analysis client configured", common.ErrMissingConfig)
	}

	analysis, err := e.analyzer.Analyze(ctx, document)
	if err != nil {
		return nil, fmt.Errorf("document analysis: %w", err)
	}

	result := Normalize(NormalizeInput{
		OwnerID:  ownerID,
		FileName: fileName,
		Analysis: analysis,
		Now:      e.clock(),
	})

	if err := e.storage.SaveDocument(ctx, &result.Document); err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}
	return result, nil
}

// DeleteDocument removes a document and its metrics. If the document had
// been approved, its period's monthly entry feeds the revenue plan, so the
// plan targets are recomputed afterwards.
func (e *Engine) DeleteDocument(ctx context.Context, ownerID, id string) error {
	doc, err := e.storage.GetDocument(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if err := e.storage.DeleteDocument(ctx, ownerID, id); err != nil {
		return err
	}

	if doc.Status == model.StatusApproved && !doc.PeriodStart.IsZero() {
		if err := e.RecomputeTargets(ctx, ownerID, doc.PeriodStart.Year()); err != nil {
			common.LogError(err, "Failed to recompute targets after delete", common.Fields{
				"document_id": id,
				"year":        doc.PeriodStart.Year(),
			})
		}
	}
	return nil
}

// RecomputeTargets refreshes a year's monthly targets from the annual target
// and whatever actuals exist, preferring the prior year's distribution. A
// locked plan is left untouched.
func (e *Engine) RecomputeTargets(ctx context.Context, ownerID string, year int) error {
	plan, err := e.storage.GetPlan(ctx, ownerID, year)
	if err != nil {
		return err
	}
	if plan.Locked {
		return fmt.Errorf("%w: %d", common.ErrPlanLocked, year)
	}

	var previous *target.YearActuals
	if prevPlan, err := e.storage.GetPlan(ctx, ownerID, year-1); err == nil {
		previous = &target.YearActuals{Monthly: prevPlan.MonthlyActuals}
	}
	current := &target.YearActuals{Monthly: plan.MonthlyActuals}

	plan.MonthlyTargets = target.Distribute(plan.TargetRevenue, previous, current)
	return e.storage.SavePlan(ctx, plan)
}
