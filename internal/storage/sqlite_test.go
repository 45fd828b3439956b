package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/common"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/service"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err, "failed to create storage")

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx), "failed to migrate")

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testDocument(owner string) *model.FinancialDocument {
	return &model.FinancialDocument{
		ID:          uuid.NewString(),
		OwnerID:     owner,
		FileName:    "2023_profit_loss.csv",
		Type:        model.StatementProfitLoss,
		Status:      model.StatusPending,
		PeriodStart: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
		UploadedAt:  time.Now().UTC(),
		Metrics: []model.CanonicalMetric{
			{
				Label:        "Total Revenue",
				CanonicalKey: "revenue_total",
				Type:         model.MetricKPI,
				Category:     "Revenue",
				Value:        1000000,
				Confidence:   0.95,
			},
			{
				Label:        "Cost of Goods Sold",
				CanonicalKey: "cogs_total",
				Type:         model.MetricExpense,
				Category:     "Cost of Goods Sold",
				Value:        400000,
				Confidence:   0.9,
			},
		},
	}
}

func TestSaveAndGetDocument(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	doc := testDocument("owner-1")
	require.NoError(t, store.SaveDocument(ctx, doc))

	loaded, err := store.GetDocument(ctx, "owner-1", doc.ID)
	require.NoError(t, err)

	assert.Equal(t, doc.ID, loaded.ID)
	assert.Equal(t, model.StatementProfitLoss, loaded.Type)
	assert.Equal(t, model.StatusPending, loaded.Status)
	require.Len(t, loaded.Metrics, 2)
	assert.Equal(t, "revenue_total", loaded.Metrics[0].CanonicalKey)
	assert.InDelta(t, 1000000.0, loaded.Metrics[0].Value, 1e-9)
	assert.False(t, loaded.Metrics[0].Verified)
}

func TestGetDocument_WrongOwner(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	doc := testDocument("owner-1")
	require.NoError(t, store.SaveDocument(ctx, doc))

	_, err := store.GetDocument(ctx, "owner-2", doc.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSaveDocument_ReplacesMetrics(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	doc := testDocument("owner-1")
	require.NoError(t, store.SaveDocument(ctx, doc))

	doc.Metrics = doc.Metrics[:1]
	require.NoError(t, store.SaveDocument(ctx, doc))

	loaded, err := store.GetDocument(ctx, "owner-1", doc.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Metrics, 1, "resaving must replace metrics, not append")
}

func TestListDocuments_Filter(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	pnl := testDocument("owner-1")
	require.NoError(t, store.SaveDocument(ctx, pnl))

	balance := testDocument("owner-1")
	balance.Type = model.StatementBalanceSheet
	require.NoError(t, store.SaveDocument(ctx, balance))

	other := testDocument("owner-2")
	require.NoError(t, store.SaveDocument(ctx, other))

	docs, err := store.ListDocuments(ctx, "owner-1", service.DocumentFilter{})
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	docs, err = store.ListDocuments(ctx, "owner-1", service.DocumentFilter{Type: model.StatementBalanceSheet})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, balance.ID, docs[0].ID)
}

func TestDeleteDocument_RemovesMetrics(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	doc := testDocument("owner-1")
	require.NoError(t, store.SaveDocument(ctx, doc))
	require.NoError(t, store.DeleteDocument(ctx, "owner-1", doc.ID))

	_, err := store.GetDocument(ctx, "owner-1", doc.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	var count int
	err = store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM metrics WHERE document_id = ?`, doc.ID).Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count, "metrics must be deleted with their document")
}

func TestUpdateDocumentStatus(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	doc := testDocument("owner-1")
	require.NoError(t, store.SaveDocument(ctx, doc))
	require.NoError(t, store.UpdateDocumentStatus(ctx, "owner-1", doc.ID, model.StatusApproved))

	loaded, err := store.GetDocument(ctx, "owner-1", doc.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, loaded.Status)

	err = store.UpdateDocumentStatus(ctx, "owner-1", "missing", model.StatusApproved)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdateMetric_ReviewerEdit(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	doc := testDocument("owner-1")
	require.NoError(t, store.SaveDocument(ctx, doc))
	require.NoError(t, store.UpdateMetric(ctx, "owner-1", doc.ID, "revenue_total", 1100000, true))

	loaded, err := store.GetDocument(ctx, "owner-1", doc.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1100000.0, loaded.Metrics[0].Value, 1e-9)
	assert.True(t, loaded.Metrics[0].Verified)

	// Another owner cannot edit the metric.
	err = store.UpdateMetric(ctx, "owner-2", doc.ID, "revenue_total", 1, true)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestPlans_RoundTrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	plan := &model.YearRevenuePlan{
		OwnerID:       "owner-1",
		Year:          2024,
		TargetRevenue: 120000,
	}
	plan.MonthlyTargets[0] = 10000
	require.NoError(t, store.SavePlan(ctx, plan))

	require.NoError(t, store.UpsertMonthlyEntry(ctx, "owner-1", 2024, 1, 9500))
	require.NoError(t, store.UpsertMonthlyEntry(ctx, "owner-1", 2024, 1, 9800))
	require.NoError(t, store.UpsertMonthlyEntry(ctx, "owner-1", 2024, 2, 10100))

	loaded, err := store.GetPlan(ctx, "owner-1", 2024)
	require.NoError(t, err)
	assert.InDelta(t, 120000.0, loaded.TargetRevenue, 1e-9)
	assert.InDelta(t, 10000.0, loaded.MonthlyTargets[0], 1e-9)
	assert.InDelta(t, 9800.0, loaded.MonthlyActuals[0], 1e-9, "upsert must replace, not add")
	assert.InDelta(t, 10100.0, loaded.MonthlyActuals[1], 1e-9)
}

func TestPlans_MissingYear(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.GetPlan(context.Background(), "owner-1", 1999)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestPlans_LockRejectsMutation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	plan := &model.YearRevenuePlan{OwnerID: "owner-1", Year: 2024, TargetRevenue: 100}
	require.NoError(t, store.SavePlan(ctx, plan))
	require.NoError(t, store.LockPlan(ctx, "owner-1", 2024))

	err := store.SavePlan(ctx, plan)
	assert.ErrorIs(t, err, common.ErrPlanLocked)

	err = store.UpsertMonthlyEntry(ctx, "owner-1", 2024, 3, 500)
	assert.ErrorIs(t, err, common.ErrPlanLocked)

	loaded, err := store.GetPlan(ctx, "owner-1", 2024)
	require.NoError(t, err)
	assert.True(t, loaded.Locked)
}

func TestUpsertMonthlyEntry_CreatesPlanRow(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertMonthlyEntry(ctx, "owner-1", 2025, 6, 4200))

	plan, err := store.GetPlan(ctx, "owner-1", 2025)
	require.NoError(t, err)
	assert.InDelta(t, 4200.0, plan.MonthlyActuals[5], 1e-9)
	assert.Zero(t, plan.TargetRevenue)
}

func TestUpsertMonthlyEntry_InvalidMonth(t *testing.T) {
	store := createTestStorage(t)

	err := store.UpsertMonthlyEntry(context.Background(), "owner-1", 2025, 13, 1)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}
