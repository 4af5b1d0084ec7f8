package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/osteria-purchase-ledger/internal/domain/metrics"
	"github.com/osteria-purchase-ledger/internal/domain/purchase"
	"github.com/osteria-purchase-ledger/internal/domain/query"
	"github.com/osteria-purchase-ledger/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockExporter struct {
	mock.Mock
}

func (m *MockExporter) Export(ctx context.Context, entries []purchase.Entry) ([]byte, error) {
	args := m.Called(ctx, entries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func raw(date, product, supplier string, quantity float64, unit string, total float64) purchase.RawEntry {
	d, _ := time.Parse(time.DateOnly, date)
	return purchase.RawEntry{Date: d, Product: product, Supplier: supplier, Quantity: quantity, Unit: unit, TotalPrice: total}
}

func setup(t *testing.T) (LedgerService, *MockExporter, uuid.UUID) {
	t.Helper()
	manager := session.NewManager(slog.Default(), session.Options{})
	sess, err := manager.Create()
	require.NoError(t, err)

	exporter := new(MockExporter)
	return NewLedgerService(slog.Default(), manager, exporter), exporter, sess.ID
}

func TestLedgerService_SubmitEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, _, id := setup(t)

		entry, err := svc.SubmitEntry(ctx, id, raw("2024-01-01", "cheese", "macro", 10, "kg", 100))
		require.NoError(t, err)
		assert.Equal(t, "Cheese", entry.Product())
		assert.InDelta(t, 10.0, entry.UnitPrice(), 1e-9)

		all, err := svc.GetAllEntries(ctx, id)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, entry.ID(), all[0].ID())
	})

	t.Run("ZeroQuantityLeavesLedgerUnchanged", func(t *testing.T) {
		svc, _, id := setup(t)
		_, err := svc.SubmitEntry(ctx, id, raw("2024-01-01", "Cheese", "A", 10, "kg", 100))
		require.NoError(t, err)

		_, err = svc.SubmitEntry(ctx, id, raw("2024-01-02", "Cheese", "A", 0, "kg", 100))
		assert.ErrorIs(t, err, purchase.ErrIncompleteForm)

		all, err := svc.GetAllEntries(ctx, id)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("OverflowingUnitPriceLeavesLedgerUnchanged", func(t *testing.T) {
		svc, _, id := setup(t)

		_, err := svc.SubmitEntry(ctx, id, raw("2024-01-02", "Saffron", "A", 1e-320, "g", 1))
		assert.ErrorIs(t, err, purchase.ErrDivideByZero)

		all, err := svc.GetAllEntries(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("UnknownSession", func(t *testing.T) {
		svc, _, _ := setup(t)
		_, err := svc.SubmitEntry(ctx, uuid.New(), raw("2024-01-01", "Cheese", "A", 10, "kg", 100))
		assert.ErrorIs(t, err, session.ErrSessionNotFound{})
	})
}

func TestLedgerService_Views(t *testing.T) {
	ctx := context.Background()
	svc, _, id := setup(t)

	for _, r := range []purchase.RawEntry{
		raw("2024-02-01", "Cheese", "A", 10, "kg", 120),
		raw("2024-01-01", "Cheese", "A", 10, "kg", 100),
		raw("2024-01-15", "Oil", "B", 5, "L", 40),
		raw("2024-01-20", "cheese", "B", 10, "kg", 80),
	} {
		_, err := svc.SubmitEntry(ctx, id, r)
		require.NoError(t, err)
	}

	recent, err := svc.GetRecent(ctx, id, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "Oil", recent[1].Product())

	filtered, err := svc.FilterEntries(ctx, id, query.Spec{Product: "Cheese", Supplier: "B"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.InDelta(t, 8.0, filtered[0].UnitPrice(), 1e-9)

	products, err := svc.ListProducts(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cheese", "Oil"}, products)

	bounds, err := svc.DateBounds(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, bounds.Min.Day())
	assert.Equal(t, time.February, bounds.Max.Month())

	totals, err := svc.ComputeTotals(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 4, totals.Count)
	assert.InDelta(t, 340.0, totals.TotalSpend, 1e-9)

	avg, err := svc.ComputeWeightedAverage(ctx, id, query.Spec{Product: "Cheese"})
	require.NoError(t, err)
	assert.InDelta(t, 300.0/30.0, avg, 1e-9)

	_, err = svc.ComputeWeightedAverage(ctx, id, query.Spec{Product: "Tomato"})
	assert.ErrorIs(t, err, metrics.ErrEmptyDataset)

	trend, err := svc.ComputeTrend(ctx, id, "cheese")
	require.NoError(t, err)
	assert.Equal(t, "Cheese", trend.Product)
	// Jan 20 (8/kg) -> Feb 1 (12/kg); Jan 1 is ignored
	assert.InDelta(t, 50.0, trend.Result.PercentChange, 1e-9)
	assert.True(t, trend.Result.PriceRise())
	assert.Len(t, trend.History, 3)

	trend, err = svc.ComputeTrend(ctx, id, "Oil")
	assert.ErrorIs(t, err, metrics.ErrInsufficientHistory)
	require.NotNil(t, trend)
	assert.Len(t, trend.History, 1)

	ranking, err := svc.ComputeSupplierRanking(ctx, id, "Cheese")
	require.NoError(t, err)
	assert.Equal(t, purchase.UnitKilogram, ranking.Unit)
	require.Len(t, ranking.Suppliers, 2)
	assert.Equal(t, "B", ranking.Suppliers[0].Supplier)
	assert.Equal(t, "A", ranking.Suppliers[1].Supplier)

	ranking, err = svc.ComputeSupplierRanking(ctx, id, "Tomato")
	require.NoError(t, err)
	assert.Empty(t, ranking.Suppliers)
	assert.Equal(t, purchase.Unit(""), ranking.Unit)
}

func TestLedgerService_DateBoundsEmpty(t *testing.T) {
	svc, _, id := setup(t)
	_, err := svc.DateBounds(context.Background(), id)
	assert.ErrorIs(t, err, metrics.ErrEmptyDataset)
}

func TestLedgerService_Export(t *testing.T) {
	ctx := context.Background()

	t.Run("ExportsFilteredEntries", func(t *testing.T) {
		svc, exporter, id := setup(t)
		_, err := svc.SubmitEntry(ctx, id, raw("2024-01-01", "Cheese", "A", 10, "kg", 100))
		require.NoError(t, err)
		_, err = svc.SubmitEntry(ctx, id, raw("2024-01-01", "Oil", "A", 1, "L", 5))
		require.NoError(t, err)

		exporter.On("Export", ctx, mock.MatchedBy(func(entries []purchase.Entry) bool {
			return len(entries) == 1 && entries[0].Product() == "Oil"
		})).Return([]byte("xlsx"), nil).Once()

		data, err := svc.Export(ctx, id, query.Spec{Product: "oil"})
		require.NoError(t, err)
		assert.Equal(t, []byte("xlsx"), data)
		exporter.AssertExpectations(t)
	})

	t.Run("ExporterError", func(t *testing.T) {
		svc, exporter, id := setup(t)
		exporterErr := errors.New("pool closed")
		exporter.On("Export", ctx, mock.Anything).Return(nil, exporterErr).Once()

		_, err := svc.Export(ctx, id, query.Spec{})
		assert.ErrorIs(t, err, exporterErr)
	})
}
