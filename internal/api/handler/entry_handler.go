package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/osteria-purchase-ledger/internal/api/service"
	"github.com/osteria-purchase-ledger/internal/domain/metrics"
	"github.com/osteria-purchase-ledger/internal/domain/purchase"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// EntryHandler handles HTTP requests that record and list purchase entries
type EntryHandler struct {
	ledgerService service.LedgerService
	money         MoneyFormatter
	recentLimit   int
	logger        *slog.Logger
}

// NewEntryHandler creates a new entry handler. recentLimit is the default size of the recent table.
func NewEntryHandler(logger *slog.Logger, ledgerService service.LedgerService, money MoneyFormatter, recentLimit int) *EntryHandler {
	return &EntryHandler{
		ledgerService: ledgerService,
		money:         money,
		recentLimit:   recentLimit,
		logger:        logger,
	}
}

// Submit records a purchase. Any missing or non-positive field yields the same validation error.
func (h *EntryHandler) Submit(c *gin.Context) {
	id, ok := sessionID(c, h.logger)
	if !ok {
		return
	}

	var req SubmitEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	raw := purchase.RawEntry{
		Product:    req.Product,
		Supplier:   req.Supplier,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		TotalPrice: req.TotalPrice,
	}
	// An unparseable date is left zero so the validator rejects it like a missing one
	if req.Date != "" {
		if date, err := parseDate(req.Date); err == nil {
			raw.Date = date
		}
	}

	entry, err := h.ledgerService.SubmitEntry(c.Request.Context(), id, raw)
	if err != nil {
		respondServiceError(c, h.logger, "submit_entry", err)
		return
	}

	RespondCreated(c, SubmitEntryResponse{
		Entry: h.money.mapEntry(entry),
		Message: fmt.Sprintf("%s recorded successfully! Cost: %s",
			entry.Product(), h.money.PerUnit(entry.UnitPrice(), entry.Unit())),
	})
}

// List returns the whole ledger, or the filtered view when any criterion is given
func (h *EntryHandler) List(c *gin.Context) {
	id, ok := sessionID(c, h.logger)
	if !ok {
		return
	}

	var params FilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		RespondBadRequest(c, "Invalid filter parameters")
		return
	}

	var entries []purchase.Entry
	if params.isSet() {
		spec, err := params.toSpec()
		if err != nil {
			RespondBadRequest(c, err.Error())
			return
		}
		entries, err = h.ledgerService.FilterEntries(c.Request.Context(), id, spec)
		if err != nil {
			respondServiceError(c, h.logger, "filter_entries", err)
			return
		}
	} else {
		var err error
		entries, err = h.ledgerService.GetAllEntries(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, h.logger, "get_all_entries", err)
			return
		}
	}

	RespondWithList(c, h.money.mapEntries(entries), len(entries))
}

// Recent returns the last n entries, n defaulting to the configured limit
func (h *EntryHandler) Recent(c *gin.Context) {
	id, ok := sessionID(c, h.logger)
	if !ok {
		return
	}

	var params RecentParams
	if err := c.ShouldBindQuery(&params); err != nil {
		RespondBadRequest(c, "Invalid parameter n")
		return
	}
	if params.N == 0 {
		params.N = h.recentLimit
	}

	entries, err := h.ledgerService.GetRecent(c.Request.Context(), id, params.N)
	if err != nil {
		respondServiceError(c, h.logger, "get_recent", err)
		return
	}
	RespondWithList(c, h.money.mapEntries(entries), len(entries))
}

// Products lists the distinct products recorded so far
func (h *EntryHandler) Products(c *gin.Context) {
	id, ok := sessionID(c, h.logger)
	if !ok {
		return
	}

	products, err := h.ledgerService.ListProducts(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, "list_products", err)
		return
	}
	RespondOK(c, ProductListResponse{Products: products})
}

// Bounds returns the date span a range selector should offer
func (h *EntryHandler) Bounds(c *gin.Context) {
	id, ok := sessionID(c, h.logger)
	if !ok {
		return
	}

	bounds, err := h.ledgerService.DateBounds(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, metrics.ErrEmptyDataset) {
			RespondOK(c, BoundsResponse{Status: StatusNoData})
			return
		}
		respondServiceError(c, h.logger, "date_bounds", err)
		return
	}

	RespondOK(c, BoundsResponse{
		Status: StatusOK,
		Min:    bounds.Min.Format(time.DateOnly),
		Max:    bounds.Max.Format(time.DateOnly),
	})
}

// Export downloads the (filtered) entries as a spreadsheet
func (h *EntryHandler) Export(c *gin.Context) {
	id, ok := sessionID(c, h.logger)
	if !ok {
		return
	}

	var params FilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		RespondBadRequest(c, "Invalid filter parameters")
		return
	}
	spec, err := params.toSpec()
	if err != nil {
		RespondBadRequest(c, err.Error())
		return
	}

	data, err := h.ledgerService.Export(c.Request.Context(), id, spec)
	if err != nil {
		respondServiceError(c, h.logger, "export", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="purchases.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
