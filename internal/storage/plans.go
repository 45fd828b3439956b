package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/common"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
)

// GetPlan loads a revenue plan, assembling monthly actuals from the entry
// rows.
func (s *SQLiteStorage) GetPlan(ctx context.Context, ownerID string, year int) (*model.YearRevenuePlan, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(ownerID, "ownerID"); err != nil {
		return nil, err
	}

	plan := &model.YearRevenuePlan{OwnerID: ownerID, Year: year}
	var targetsJSON sql.NullString

	err := s.db.QueryRowContext(ctx, `
		SELECT target_revenue, monthly_targets, locked
		FROM revenue_plans WHERE owner_id = ? AND year = ?`, ownerID, year).
		Scan(&plan.TargetRevenue, &targetsJSON, &plan.Locked)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: revenue plan %d", common.ErrNotFound, year)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load revenue plan: %w", err)
	}

	if targetsJSON.Valid && targetsJSON.String != "" {
		var targets []float64
		if err := json.Unmarshal([]byte(targetsJSON.String), &targets); err != nil {
			return nil, fmt.Errorf("failed to decode monthly targets: %w", err)
		}
		for i := 0; i < len(targets) && i < model.MonthsPerYear; i++ {
			plan.MonthlyTargets[i] = targets[i]
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT month, amount FROM revenue_entries
		WHERE owner_id = ? AND year = ?`, ownerID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to load revenue entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var month int
		var amount float64
		if err := rows.Scan(&month, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan revenue entry: %w", err)
		}
		if month >= 1 && month <= model.MonthsPerYear {
			plan.MonthlyActuals[month-1] = amount
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate revenue entries: %w", err)
	}

	return plan, nil
}

// SavePlan upserts a plan's target and monthly targets. Saving over a locked
// plan fails with ErrPlanLocked; monthly actuals are only ever written
// through UpsertMonthlyEntry.
func (s *SQLiteStorage) SavePlan(ctx context.Context, plan *model.YearRevenuePlan) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validatePlan(plan); err != nil {
		return err
	}

	locked, err := s.planLocked(ctx, plan.OwnerID, plan.Year)
	if err != nil {
		return err
	}
	if locked {
		return fmt.Errorf("%w: %d", common.ErrPlanLocked, plan.Year)
	}

	targetsJSON, err := json.Marshal(plan.MonthlyTargets[:])
	if err != nil {
		return fmt.Errorf("failed to encode monthly targets: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO revenue_plans (owner_id, year, target_revenue, monthly_targets, locked, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(owner_id, year) DO UPDATE SET
			target_revenue = excluded.target_revenue,
			monthly_targets = excluded.monthly_targets,
			locked = excluded.locked,
			updated_at = CURRENT_TIMESTAMP`,
		plan.OwnerID, plan.Year, plan.TargetRevenue, string(targetsJSON), plan.Locked)
	if err != nil {
		return fmt.Errorf("failed to save revenue plan: %w", err)
	}
	return nil
}

// UpsertMonthlyEntry records one month's actual revenue, keyed on
// (owner, year, month). The plan row is created on first use.
func (s *SQLiteStorage) UpsertMonthlyEntry(ctx context.Context, ownerID string, year, month int, amount float64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(ownerID, "ownerID"); err != nil {
		return err
	}
	if err := validateMonth(month); err != nil {
		return err
	}

	locked, err := s.planLocked(ctx, ownerID, year)
	if err != nil {
		return err
	}
	if locked {
		return fmt.Errorf("%w: %d", common.ErrPlanLocked, year)
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO revenue_plans (owner_id, year) VALUES (?, ?)`,
			ownerID, year); err != nil {
			return fmt.Errorf("failed to ensure revenue plan: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO revenue_entries (owner_id, year, month, amount, updated_at)
			VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(owner_id, year, month) DO UPDATE SET
				amount = excluded.amount,
				updated_at = CURRENT_TIMESTAMP`,
			ownerID, year, month, amount); err != nil {
			return fmt.Errorf("failed to upsert revenue entry: %w", err)
		}
		return nil
	})
}

// LockPlan freezes a plan against any further mutation.
func (s *SQLiteStorage) LockPlan(ctx context.Context, ownerID string, year int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(ownerID, "ownerID"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE revenue_plans SET locked = 1, updated_at = CURRENT_TIMESTAMP
		WHERE owner_id = ? AND year = ?`, ownerID, year)
	if err != nil {
		return fmt.Errorf("failed to lock revenue plan: %w", err)
	}
	return requireRowAffected(result, fmt.Sprintf("revenue plan %d", year))
}

// planLocked reports whether a plan row exists and is locked.
func (s *SQLiteStorage) planLocked(ctx context.Context, ownerID string, year int) (bool, error) {
	var locked bool
	err := s.db.QueryRowContext(ctx, `
		SELECT locked FROM revenue_plans WHERE owner_id = ? AND year = ?`, ownerID, year).
		Scan(&locked)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check plan lock: %w", err)
	}
	return locked, nil
}
