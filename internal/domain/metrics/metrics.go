// Package metrics computes display figures over a sequence of purchase
// entries: session totals, weighted average unit price, the price trend of
// one product and the supplier ranking for one product. Every function is
// pure and never modifies its input.
package metrics

import (
	"errors"
	"sort"

	"github.com/osteria-purchase-ledger/internal/domain/purchase"
)

var (
	// ErrEmptyDataset reports an aggregation over no usable entries ("no data")
	ErrEmptyDataset = errors.New("no data")

	// ErrInsufficientHistory reports fewer than two entries for a trend
	ErrInsufficientHistory = errors.New("insufficient history")
)

// Totals holds the session-wide spend figures
type Totals struct {
	TotalSpend float64
	Count      int
}

// ComputeTotals sums the total price of every entry and counts them
func ComputeTotals(entries []purchase.Entry) Totals {
	totals := Totals{Count: len(entries)}
	for _, e := range entries {
		totals.TotalSpend += e.TotalPrice()
	}
	return totals
}

// WeightedAverage returns total spend divided by total quantity.
// It is not the mean of unit prices.
func WeightedAverage(entries []purchase.Entry) (float64, error) {
	var spend, quantity float64
	for _, e := range entries {
		spend += e.TotalPrice()
		quantity += e.Quantity()
	}
	if len(entries) == 0 || quantity == 0 {
		return 0, ErrEmptyDataset
	}
	return spend / quantity, nil
}

// ByDate returns a copy of entries sorted by date ascending.
// Entries on the same day keep their append order.
func ByDate(entries []purchase.Entry) []purchase.Entry {
	sorted := append([]purchase.Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date().Before(sorted[j].Date())
	})
	return sorted
}
