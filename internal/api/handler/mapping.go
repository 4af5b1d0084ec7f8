package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/gin-gonic/gin"
	"github.com/osteria-purchase-ledger/internal/domain/metrics"
	"github.com/osteria-purchase-ledger/internal/domain/purchase"
	"github.com/osteria-purchase-ledger/internal/domain/query"
	"github.com/osteria-purchase-ledger/internal/session"
)

const (
	StatusOK                  = "ok"
	StatusNoData              = "no_data"
	StatusInsufficientHistory = "insufficient_history"
)

// MoneyFormatter renders amounts for display in one currency
type MoneyFormatter struct {
	currency string
}

func NewMoneyFormatter(currency string) MoneyFormatter {
	return MoneyFormatter{currency: strings.ToUpper(currency)}
}

// Format renders amount with the currency symbol and two decimals
func (f MoneyFormatter) Format(amount float64) string {
	return money.NewFromFloat(amount, f.currency).Display()
}

// PerUnit renders a unit cost such as "€2.50/kg"
func (f MoneyFormatter) PerUnit(amount float64, unit purchase.Unit) string {
	return f.Format(amount) + "/" + string(unit)
}

// parseDate parses a YYYY-MM-DD date
func parseDate(value string) (time.Time, error) {
	return time.Parse(time.DateOnly, strings.TrimSpace(value))
}

// toSpec converts query-string criteria into a filter spec
func (p FilterParams) toSpec() (query.Spec, error) {
	spec := query.Spec{Product: p.Product, Supplier: p.Supplier}
	if p.From != "" {
		from, err := parseDate(p.From)
		if err != nil {
			return query.Spec{}, fmt.Errorf("invalid from date %q", p.From)
		}
		spec.From = &from
	}
	if p.To != "" {
		to, err := parseDate(p.To)
		if err != nil {
			return query.Spec{}, fmt.Errorf("invalid to date %q", p.To)
		}
		spec.To = &to
	}
	if spec.From != nil && spec.To != nil && spec.To.Before(*spec.From) {
		return query.Spec{}, errors.New("from date must not be after to date")
	}
	return spec, nil
}

// isSet reports whether any criterion was given
func (p FilterParams) isSet() bool {
	return p.Product != "" || p.Supplier != "" || p.From != "" || p.To != ""
}

func (f MoneyFormatter) mapEntry(e purchase.Entry) EntryResponse {
	return EntryResponse{
		ID:               e.ID().String(),
		Date:             e.Date().Format(time.DateOnly),
		Period:           e.PeriodKey(),
		Product:          e.Product(),
		Supplier:         e.Supplier(),
		Quantity:         e.Quantity(),
		Unit:             string(e.Unit()),
		TotalPrice:       e.TotalPrice(),
		UnitPrice:        e.UnitPrice(),
		UnitPriceDisplay: f.PerUnit(e.UnitPrice(), e.Unit()),
	}
}

func (f MoneyFormatter) mapEntries(entries []purchase.Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, f.mapEntry(e))
	}
	return out
}

func mapHistory(points []metrics.PricePoint) []PricePointResponse {
	out := make([]PricePointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, PricePointResponse{
			Date:      p.Entry.Date().Format(time.DateOnly),
			Supplier:  p.Entry.Supplier(),
			UnitPrice: p.UnitPrice,
		})
	}
	return out
}

// respondServiceError maps errors shared by every session-scoped operation
func respondServiceError(c *gin.Context, logger *slog.Logger, operation string, err error) {
	var notFound session.ErrSessionNotFound
	switch {
	case errors.As(err, &notFound):
		RespondNotFound(c, "Session not found")
	case errors.Is(err, session.ErrTooManySessions):
		logger.Warn("Session capacity exhausted", "operation", operation)
		RespondServiceUnavailable(c, "Too many active sessions, try again later")
	case errors.Is(err, purchase.ErrIncompleteForm):
		RespondValidationError(c, "Please fill in all fields correctly")
	default:
		logger.Error("Operation failed", "operation", operation, "error", err)
		RespondInternalError(c)
	}
}
