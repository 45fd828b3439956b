package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/common"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/service"
)

// SaveDocument writes a document and its metrics atomically. An existing
// document with the same ID is replaced wholesale, so a document is never
// observably half-written.
func (s *SQLiteStorage) SaveDocument(ctx context.Context, doc *model.FinancialDocument) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDocument(doc); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO documents
				(id, owner_id, file_name, statement_type, status, period_start, period_end, uploaded_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			doc.ID, doc.OwnerID, doc.FileName, string(doc.Type), string(doc.Status),
			doc.PeriodStart, doc.PeriodEnd, doc.UploadedAt)
		if err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM metrics WHERE document_id = ?`, doc.ID); err != nil {
			return fmt.Errorf("failed to clear metrics: %w", err)
		}

		for _, m := range doc.Metrics {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO metrics
					(document_id, label, canonical_key, metric_type, category, subcategory, value, confidence, verified)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				doc.ID, m.Label, m.CanonicalKey, string(m.Type), m.Category, m.Subcategory,
				m.Value, m.Confidence, m.Verified)
			if err != nil {
				return fmt.Errorf("failed to save metric %s: %w", m.CanonicalKey, err)
			}
		}
		return nil
	})
}

// GetDocument loads one document with its metrics.
func (s *SQLiteStorage) GetDocument(ctx context.Context, ownerID, id string) (*model.FinancialDocument, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var doc model.FinancialDocument
	var docType, status string
	var periodStart, periodEnd, uploadedAt sql.NullTime

	err := s.db.QueryRowContext(ctx, `
		SELECT id, owner_id, file_name, statement_type, status, period_start, period_end, uploaded_at
		FROM documents WHERE id = ? AND owner_id = ?`, id, ownerID).
		Scan(&doc.ID, &doc.OwnerID, &doc.FileName, &docType, &status, &periodStart, &periodEnd, &uploadedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: document %s", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	doc.Type = model.StatementType(docType)
	doc.Status = model.DocumentStatus(status)
	doc.PeriodStart = nullableTime(periodStart)
	doc.PeriodEnd = nullableTime(periodEnd)
	doc.UploadedAt = nullableTime(uploadedAt)

	metrics, err := s.loadMetrics(ctx, id)
	if err != nil {
		return nil, err
	}
	doc.Metrics = metrics

	return &doc, nil
}

// ListDocuments returns an owner's documents, newest first.
func (s *SQLiteStorage) ListDocuments(ctx context.Context, ownerID string, filter service.DocumentFilter) ([]model.FinancialDocument, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(ownerID, "ownerID"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, owner_id, file_name, statement_type, status, period_start, period_end, uploaded_at
		FROM documents WHERE owner_id = ?`
	args := []any{ownerID}

	if filter.Type != "" {
		query += " AND statement_type = ?"
		args = append(args, string(filter.Type))
	}
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, string(filter.Status))
	}
	query += " ORDER BY uploaded_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var docs []model.FinancialDocument
	for rows.Next() {
		var doc model.FinancialDocument
		var docType, status string
		var periodStart, periodEnd, uploadedAt sql.NullTime

		if err := rows.Scan(&doc.ID, &doc.OwnerID, &doc.FileName, &docType, &status,
			&periodStart, &periodEnd, &uploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc.Type = model.StatementType(docType)
		doc.Status = model.DocumentStatus(status)
		doc.PeriodStart = nullableTime(periodStart)
		doc.PeriodEnd = nullableTime(periodEnd)
		doc.UploadedAt = nullableTime(uploadedAt)
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}

	for i := range docs {
		metrics, err := s.loadMetrics(ctx, docs[i].ID)
		if err != nil {
			return nil, err
		}
		docs[i].Metrics = metrics
	}

	return docs, nil
}

// UpdateDocumentStatus moves a document through the review lifecycle.
func (s *SQLiteStorage) UpdateDocumentStatus(ctx context.Context, ownerID, id string, status model.DocumentStatus) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE documents SET status = ? WHERE id = ? AND owner_id = ?`,
		string(status), id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	return requireRowAffected(result, id)
}

// DeleteDocument removes a document and its metrics in one transaction.
func (s *SQLiteStorage) DeleteDocument(ctx context.Context, ownerID, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM metrics WHERE document_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete metrics: %w", err)
		}

		result, err := tx.ExecContext(ctx,
			`DELETE FROM documents WHERE id = ? AND owner_id = ?`, id, ownerID)
		if err != nil {
			return fmt.Errorf("failed to delete document: %w", err)
		}
		return requireRowAffected(result, id)
	})
}

// UpdateMetric records a reviewer edit to one metric of a document.
func (s *SQLiteStorage) UpdateMetric(ctx context.Context, ownerID, docID, canonicalKey string, value float64, verified bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(canonicalKey, "canonicalKey"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE metrics SET value = ?, verified = ?
		WHERE document_id = ? AND canonical_key = ?
		AND document_id IN (SELECT id FROM documents WHERE owner_id = ?)`,
		value, verified, docID, canonicalKey, ownerID)
	if err != nil {
		return fmt.Errorf("failed to update metric: %w", err)
	}
	return requireRowAffected(result, canonicalKey)
}

// loadMetrics loads all metrics belonging to a document.
func (s *SQLiteStorage) loadMetrics(ctx context.Context, docID string) ([]model.CanonicalMetric, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT label, canonical_key, metric_type, category, subcategory, value, confidence, verified
		FROM metrics WHERE document_id = ? ORDER BY id`, docID)
	if err != nil {
		return nil, fmt.Errorf("failed to load metrics: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var metrics []model.CanonicalMetric
	for rows.Next() {
		var m model.CanonicalMetric
		var metricType string
		if err := rows.Scan(&m.Label, &m.CanonicalKey, &metricType, &m.Category,
			&m.Subcategory, &m.Value, &m.Confidence, &m.Verified); err != nil {
			return nil, fmt.Errorf("failed to scan metric: %w", err)
		}
		m.Type = model.MetricType(metricType)
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

// requireRowAffected converts a zero-row update into ErrNotFound.
func requireRowAffected(result sql.Result, subject string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", common.ErrNotFound, subject)
	}
	return nil
}

// nullableTime unwraps a nullable timestamp column.
func nullableTime(t sql.NullTime) time.Time {
	if t.Valid {
		return t.Time
	}
	return time.Time{}
}
