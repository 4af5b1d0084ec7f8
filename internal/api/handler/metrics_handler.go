package handler

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/osteria-purchase-ledger/internal/api/service"
	"github.com/osteria-purchase-ledger/internal/domain/metrics"
)

// MetricsHandler handles HTTP requests for ledger analytics
type MetricsHandler struct {
	ledgerService service.LedgerService
	money         MoneyFormatter
	logger        *slog.Logger
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(logger *slog.Logger, ledgerService service.LedgerService, money MoneyFormatter) *MetricsHandler {
	return &MetricsHandler{
		ledgerService: ledgerService,
		money:         money,
		logger:        logger,
	}
}

// Totals returns total spend and entry count of the whole ledger
func (h *MetricsHandler) Totals(c *gin.Context) {
	id, ok := sessionID(c, h.logger)
	if !ok {
		return
	}

	totals, err := h.ledgerService.ComputeTotals(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, "compute_totals", err)
		return
	}

	RespondOK(c, TotalsResponse{
		TotalSpend:        totals.TotalSpend,
		TotalSpendDisplay: h.money.Format(totals.TotalSpend),
		Count:             totals.Count,
	})
}

// Average returns the weighted average unit price of the filtered entries
func (h *MetricsHandler) Average(c *gin.Context) {
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

	avg, err := h.ledgerService.ComputeWeightedAverage(c.Request.Context(), id, spec)
	if err != nil {
		if errors.Is(err, metrics.ErrEmptyDataset) {
			RespondOK(c, AverageResponse{Status: StatusNoData})
			return
		}
		respondServiceError(c, h.logger, "compute_weighted_average", err)
		return
	}

	RespondOK(c, AverageResponse{
		Status:                 StatusOK,
		WeightedAverage:        &avg,
		WeightedAverageDisplay: h.money.Format(avg),
	})
}

// Trend compares the two most recent purchases of a product and returns its price history
func (h *MetricsHandler) Trend(c *gin.Context) {
	id, ok := sessionID(c, h.logger)
	if !ok {
		return
	}

	var params ProductParams
	if err := c.ShouldBindQuery(&params); err != nil {
		RespondBadRequest(c, "Query parameter product is required")
		return
	}

	trend, err := h.ledgerService.ComputeTrend(c.Request.Context(), id, params.Product)
	if err != nil {
		if errors.Is(err, metrics.ErrInsufficientHistory) && trend != nil {
			RespondOK(c, TrendResponse{
				Status:  StatusInsufficientHistory,
				Product: trend.Product,
				Message: "At least two purchases are needed to compute a trend",
				History: mapHistory(trend.History),
			})
			return
		}
		respondServiceError(c, h.logger, "compute_trend", err)
		return
	}

	result := trend.Result
	previous := h.money.mapEntry(result.Previous)
	latest := h.money.mapEntry(result.Latest)
	change := result.PercentChange

	response := TrendResponse{
		Status:          StatusOK,
		Product:         trend.Product,
		PercentChange:   &change,
		Direction:       string(result.Direction),
		PriceRise:       result.PriceRise(),
		CurrentSupplier: result.Latest.Supplier(),
		CurrentPrice:    h.money.PerUnit(result.Latest.UnitPrice(), result.Latest.Unit()),
		Previous:        &previous,
		Latest:          &latest,
		History:         mapHistory(trend.History),
	}
	if response.PriceRise {
		response.Message = fmt.Sprintf("Price rise: %s is up %.1f%% since the previous purchase", trend.Product, change)
	}
	RespondOK(c, response)
}

// Ranking orders the suppliers of a product by mean unit price, cheapest first
func (h *MetricsHandler) Ranking(c *gin.Context) {
	id, ok := sessionID(c, h.logger)
	if !ok {
		return
	}

	var params ProductParams
	if err := c.ShouldBindQuery(&params); err != nil {
		RespondBadRequest(c, "Query parameter product is required")
		return
	}

	ranking, err := h.ledgerService.ComputeSupplierRanking(c.Request.Context(), id, params.Product)
	if err != nil {
		respondServiceError(c, h.logger, "compute_supplier_ranking", err)
		return
	}

	response := RankingResponse{
		Status:    StatusOK,
		Product:   ranking.Product,
		Unit:      string(ranking.Unit),
		Suppliers: make([]SupplierRankResponse, 0, len(ranking.Suppliers)),
	}
	if len(ranking.Suppliers) == 0 {
		response.Status = StatusNoData
	}
	for i, s := range ranking.Suppliers {
		response.Suppliers = append(response.Suppliers, SupplierRankResponse{
			Rank:                 i + 1,
			Supplier:             s.Supplier,
			MeanUnitPrice:        s.MeanUnitPrice,
			MeanUnitPriceDisplay: h.money.PerUnit(s.MeanUnitPrice, ranking.Unit),
			Purchases:            s.Purchases,
		})
	}
	RespondOK(c, response)
}
