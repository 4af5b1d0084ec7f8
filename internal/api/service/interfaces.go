package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/osteria-purchase-ledger/internal/domain/metrics"
	"github.com/osteria-purchase-ledger/internal/domain/purchase"
	"github.com/osteria-purchase-ledger/internal/domain/query"
	"github.com/osteria-purchase-ledger/internal/session"
)

// SessionService defines the interface for session lifecycle operations
type SessionService interface {
	// CreateSession opens a session with an empty ledger
	// Returns session.ErrTooManySessions when the cap is reached
	CreateSession(ctx context.Context) (*session.Session, error)

	// CloseSession discards a session and its ledger
	// Returns session.ErrSessionNotFound if the session doesn't exist
	CloseSession(ctx context.Context, sessionID uuid.UUID) error
}

// LedgerService defines the operations the presentation layer runs against a session ledger.
// Every method returns session.ErrSessionNotFound for an unknown session.
type LedgerService interface {
	// SubmitEntry validates raw form input, derives the unit cost and appends the entry
	// Returns purchase.ErrIncompleteForm and leaves the ledger unchanged on rejection
	SubmitEntry(ctx context.Context, sessionID uuid.UUID, raw purchase.RawEntry) (purchase.Entry, error)

	// GetAllEntries returns the whole ledger in append order
	GetAllEntries(ctx context.Context, sessionID uuid.UUID) ([]purchase.Entry, error)

	// GetRecent returns the last n entries in append order
	GetRecent(ctx context.Context, sessionID uuid.UUID, n int) ([]purchase.Entry, error)

	// FilterEntries returns the entries matching every criterion of spec
	FilterEntries(ctx context.Context, sessionID uuid.UUID, spec query.Spec) ([]purchase.Entry, error)

	// ListProducts returns the distinct products in first-seen order
	ListProducts(ctx context.Context, sessionID uuid.UUID) ([]string, error)

	// DateBounds returns the span a date-range selector should offer
	// Returns metrics.ErrEmptyDataset for an empty ledger
	DateBounds(ctx context.Context, sessionID uuid.UUID) (query.DateBounds, error)

	// ComputeTotals sums spend and counts entries over the whole ledger
	ComputeTotals(ctx context.Context, sessionID uuid.UUID) (metrics.Totals, error)

	// ComputeWeightedAverage returns spend over quantity for the filtered entries
	// Returns metrics.ErrEmptyDataset when nothing matches
	ComputeWeightedAverage(ctx context.Context, sessionID uuid.UUID, spec query.Spec) (float64, error)

	// ComputeTrend compares the two most recent purchases of a product
	// Returns metrics.ErrInsufficientHistory below two purchases; the history is always filled
	ComputeTrend(ctx context.Context, sessionID uuid.UUID, product string) (*Trend, error)

	// ComputeSupplierRanking orders the suppliers of a product by mean unit price
	ComputeSupplierRanking(ctx context.Context, sessionID uuid.UUID, product string) (*Ranking, error)

	// Export renders the filtered entries as a workbook
	Export(ctx context.Context, sessionID uuid.UUID, spec query.Spec) ([]byte, error)
}

// Exporter renders entries into a downloadable document
type Exporter interface {
	Export(ctx context.Context, entries []purchase.Entry) ([]byte, error)
}

// Trend is a product's price trend together with the series it was computed from
type Trend struct {
	Product string
	Result  metrics.TrendResult
	History []metrics.PricePoint
}

// Ranking is a product's supplier ranking and the unit its prices are expressed in
type Ranking struct {
	Product   string
	Unit      purchase.Unit
	Suppliers []metrics.SupplierPrice
}
