package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/osteria-purchase-ledger/internal/api/service"
	"github.com/osteria-purchase-ledger/internal/domain/metrics"
	"github.com/osteria-purchase-ledger/internal/domain/purchase"
	"github.com/osteria-purchase-ledger/internal/domain/query"
	"github.com/osteria-purchase-ledger/internal/session"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context) (*session.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionService) CloseSession(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) SubmitEntry(ctx context.Context, sessionID uuid.UUID, raw purchase.RawEntry) (purchase.Entry, error) {
	args := m.Called(ctx, sessionID, raw)
	return args.Get(0).(purchase.Entry), args.Error(1)
}

func (m *MockLedgerService) GetAllEntries(ctx context.Context, sessionID uuid.UUID) ([]purchase.Entry, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]purchase.Entry), args.Error(1)
}

func (m *MockLedgerService) GetRecent(ctx context.Context, sessionID uuid.UUID, n int) ([]purchase.Entry, error) {
	args := m.Called(ctx, sessionID, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]purchase.Entry), args.Error(1)
}

func (m *MockLedgerService) FilterEntries(ctx context.Context, sessionID uuid.UUID, spec query.Spec) ([]purchase.Entry, error) {
	args := m.Called(ctx, sessionID, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]purchase.Entry), args.Error(1)
}

func (m *MockLedgerService) ListProducts(ctx context.Context, sessionID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLedgerService) DateBounds(ctx context.Context, sessionID uuid.UUID) (query.DateBounds, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(query.DateBounds), args.Error(1)
}

func (m *MockLedgerService) ComputeTotals(ctx context.Context, sessionID uuid.UUID) (metrics.Totals, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(metrics.Totals), args.Error(1)
}

func (m *MockLedgerService) ComputeWeightedAverage(ctx context.Context, sessionID uuid.UUID, spec query.Spec) (float64, error) {
	args := m.Called(ctx, sessionID, spec)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockLedgerService) ComputeTrend(ctx context.Context, sessionID uuid.UUID, product string) (*service.Trend, error) {
	args := m.Called(ctx, sessionID, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Trend), args.Error(1)
}

func (m *MockLedgerService) ComputeSupplierRanking(ctx context.Context, sessionID uuid.UUID, product string) (*service.Ranking, error) {
	args := m.Called(ctx, sessionID, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Ranking), args.Error(1)
}

func (m *MockLedgerService) Export(ctx context.Context, sessionID uuid.UUID, spec query.Spec) ([]byte, error) {
	args := m.Called(ctx, sessionID, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// envelope mirrors Response with the data left raw for typed decoding
type envelope struct {
	Data          json.RawMessage `json:"data"`
	Error         *ErrorInfo      `json:"error"`
	CorrelationID string          `json:"correlation_id"`
	Meta          *MetaInfo       `json:"meta"`
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func decodeEnvelope(t *testing.T, body []byte) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(body, &env), "Failed to unmarshal response envelope")
	return env
}

func decodeData(t *testing.T, body []byte, out interface{}) envelope {
	t.Helper()
	env := decodeEnvelope(t, body)
	require.NotEmpty(t, env.Data, "'data' field should not be empty")
	require.NoError(t, json.Unmarshal(env.Data, out), "Failed to unmarshal data field")
	return env
}

func day(value string) time.Time {
	d, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return d
}

func testEntry(t *testing.T, date, product, supplier string, quantity float64, unit purchase.Unit, total float64) purchase.Entry {
	t.Helper()
	entry, err := purchase.NewEntry(purchase.Input{
		Date:       day(date),
		Product:    product,
		Supplier:   supplier,
		Quantity:   quantity,
		Unit:       unit,
		TotalPrice: total,
	})
	require.NoError(t, err)
	return entry
}
