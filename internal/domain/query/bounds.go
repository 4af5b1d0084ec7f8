package query

import (
	"time"

	"github.com/osteria-purchase-ledger/internal/domain/purchase"
)

// DateBounds is the span a date-range selector should offer
type DateBounds struct {
	Min time.Time
	Max time.Time
}

// Bounds returns the earliest and latest entry dates. When every entry falls
// on the same day the upper bound is pushed out by one day so a range picker
// still has two distinct handles. ok is false for an empty slice.
func Bounds(entries []purchase.Entry) (bounds DateBounds, ok bool) {
	if len(entries) == 0 {
		return DateBounds{}, false
	}

	bounds.Min = entries[0].Date()
	bounds.Max = entries[0].Date()
	for _, e := range entries[1:] {
		if e.Date().Before(bounds.Min) {
			bounds.Min = e.Date()
		}
		if e.Date().After(bounds.Max) {
			bounds.Max = e.Date()
		}
	}
	if bounds.Min.Equal(bounds.Max) {
		bounds.Max = bounds.Max.AddDate(0, 0, 1)
	}
	return bounds, true
}
