package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/osteria-purchase-ledger/internal/domain/ledger"
	"github.com/osteria-purchase-ledger/internal/domain/metrics"
	"github.com/osteria-purchase-ledger/internal/domain/purchase"
	"github.com/osteria-purchase-ledger/internal/domain/query"
	"github.com/osteria-purchase-ledger/internal/session"
)

// LedgerServiceImpl implements the LedgerService interface
type LedgerServiceImpl struct {
	sessions *session.Manager
	exporter Exporter
	logger   *slog.Logger
}

// NewLedgerService creates a new ledger service
func NewLedgerService(logger *slog.Logger, sessions *session.Manager, exporter Exporter) LedgerService {
	return &LedgerServiceImpl{
		sessions: sessions,
		exporter: exporter,
		logger:   logger,
	}
}

// ledger resolves the ledger bound to a session
func (s *LedgerServiceImpl) ledger(sessionID uuid.UUID) (*ledger.Ledger, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Ledger, nil
}

// SubmitEntry validates, derives and appends a purchase entry
func (s *LedgerServiceImpl) SubmitEntry(ctx context.Context, sessionID uuid.UUID, raw purchase.RawEntry) (purchase.Entry, error) {
	l, err := s.ledger(sessionID)
	if err != nil {
		return purchase.Entry{}, err
	}

	in, err := purchase.Validate(raw)
	if err != nil {
		s.logger.Info("Purchase entry rejected", "session_id", sessionID.String(), "error", err)
		return purchase.Entry{}, err
	}

	entry, err := purchase.NewEntry(in)
	if err != nil {
		// Positive but extreme inputs can still overflow the unit price
		s.logger.Error("Failed to derive unit cost", "session_id", sessionID.String(), "error", err)
		return purchase.Entry{}, fmt.Errorf("derive unit cost: %w", err)
	}

	size := l.Append(entry)

	s.logger.Info("Purchase entry recorded",
		"session_id", sessionID.String(),
		"entry_id", entry.ID().String(),
		"product", entry.Product(),
		"supplier", entry.Supplier(),
		"unit_price", entry.UnitPrice(),
		"ledger_size", size,
	)
	return entry, nil
}

// GetAllEntries returns a copy of the whole ledger
func (s *LedgerServiceImpl) GetAllEntries(_ context.Context, sessionID uuid.UUID) ([]purchase.Entry, error) {
	l, err := s.ledger(sessionID)
	if err != nil {
		return nil, err
	}
	return l.All(), nil
}

// GetRecent returns the last n entries
func (s *LedgerServiceImpl) GetRecent(_ context.Context, sessionID uuid.UUID, n int) ([]purchase.Entry, error) {
	l, err := s.ledger(sessionID)
	if err != nil {
		return nil, err
	}
	return l.Latest(n), nil
}

// FilterEntries applies spec to the ledger
func (s *LedgerServiceImpl) FilterEntries(_ context.Context, sessionID uuid.UUID, spec query.Spec) ([]purchase.Entry, error) {
	l, err := s.ledger(sessionID)
	if err != nil {
		return nil, err
	}
	return query.Filter(l.All(), spec), nil
}

// ListProducts returns the distinct products recorded so far
func (s *LedgerServiceImpl) ListProducts(_ context.Context, sessionID uuid.UUID) ([]string, error) {
	l, err := s.ledger(sessionID)
	if err != nil {
		return nil, err
	}
	return query.Products(l.All()), nil
}

// DateBounds returns the date-range selector bounds of the unfiltered ledger
func (s *LedgerServiceImpl) DateBounds(_ context.Context, sessionID uuid.UUID) (query.DateBounds, error) {
	l, err := s.ledger(sessionID)
	if err != nil {
		return query.DateBounds{}, err
	}
	bounds, ok := query.Bounds(l.All())
	if !ok {
		return query.DateBounds{}, metrics.ErrEmptyDataset
	}
	return bounds, nil
}

// ComputeTotals sums the whole ledger
func (s *LedgerServiceImpl) ComputeTotals(_ context.Context, sessionID uuid.UUID) (metrics.Totals, error) {
	l, err := s.ledger(sessionID)
	if err != nil {
		return metrics.Totals{}, err
	}
	return metrics.ComputeTotals(l.All()), nil
}

// ComputeWeightedAverage returns the weighted average unit price of the filtered entries
func (s *LedgerServiceImpl) ComputeWeightedAverage(_ context.Context, sessionID uuid.UUID, spec query.Spec) (float64, error) {
	l, err := s.ledger(sessionID)
	if err != nil {
		return 0, err
	}
	return metrics.WeightedAverage(query.Filter(l.All(), spec))
}

// ComputeTrend returns the price trend and price history of a product
func (s *LedgerServiceImpl) ComputeTrend(_ context.Context, sessionID uuid.UUID, product string) (*Trend, error) {
	l, err := s.ledger(sessionID)
	if err != nil {
		return nil, err
	}

	productEntries := query.ByProduct(l.All(), product)
	trend := &Trend{
		Product: purchase.NormalizeName(product),
		History: metrics.History(productEntries),
	}

	result, err := metrics.Trend(productEntries)
	if err != nil {
		if !errors.Is(err, metrics.ErrInsufficientHistory) {
			s.logger.Error("Failed to compute price trend", "session_id", sessionID.String(), "product", trend.Product, "error", err)
		}
		return trend, err
	}
	trend.Result = result

	if result.PriceRise() {
		s.logger.Info("Price rise detected",
			"session_id", sessionID.String(),
			"product", trend.Product,
			"percent_change", result.PercentChange,
			"supplier", result.Latest.Supplier(),
		)
	}
	return trend, nil
}

// ComputeSupplierRanking ranks the suppliers of a product, cheapest first
func (s *LedgerServiceImpl) ComputeSupplierRanking(_ context.Context, sessionID uuid.UUID, product string) (*Ranking, error) {
	l, err := s.ledger(sessionID)
	if err != nil {
		return nil, err
	}

	productEntries := query.ByProduct(l.All(), product)
	ranking := &Ranking{
		Product:   purchase.NormalizeName(product),
		Suppliers: metrics.SupplierRanking(productEntries),
	}
	if len(productEntries) > 0 {
		ranking.Unit = productEntries[0].Unit()
	}
	return ranking, nil
}

// Export renders the filtered entries through the exporter
func (s *LedgerServiceImpl) Export(ctx context.Context, sessionID uuid.UUID, spec query.Spec) ([]byte, error) {
	l, err := s.ledger(sessionID)
	if err != nil {
		return nil, err
	}

	entries := query.Filter(l.All(), spec)
	data, err := s.exporter.Export(ctx, entries)
	if err != nil {
		return nil, fmt.Errorf("export entries: %w", err)
	}
	return data, nil
}
