package metrics

import (
	"github.com/osteria-purchase-ledger/internal/domain/purchase"
)

// Direction is the sign of a price change
type Direction string

const (
	DirectionIncrease  Direction = "increase"
	DirectionDecrease  Direction = "decrease"
	DirectionUnchanged Direction = "unchanged"
)

// TrendResult compares the two most recent purchases of a product
type TrendResult struct {
	Previous      purchase.Entry
	Latest        purchase.Entry
	PercentChange float64
	Direction     Direction
}

// PriceRise reports whether the latest purchase was more expensive per unit
func (r TrendResult) PriceRise() bool {
	return r.Direction == DirectionIncrease
}

// Trend sorts the entries of one product by date and compares the unit price
// of the last two. Entries before those two are ignored on purpose.
func Trend(productEntries []purchase.Entry) (TrendResult, error) {
	if len(productEntries) < 2 {
		return TrendResult{}, ErrInsufficientHistory
	}

	sorted := ByDate(productEntries)
	previous := sorted[len(sorted)-2]
	latest := sorted[len(sorted)-1]

	if previous.UnitPrice() == 0 {
		return TrendResult{}, purchase.ErrDivideByZero
	}

	change := (latest.UnitPrice() - previous.UnitPrice()) / previous.UnitPrice() * 100

	direction := DirectionUnchanged
	switch {
	case change > 0:
		direction = DirectionIncrease
	case change < 0:
		direction = DirectionDecrease
	}

	return TrendResult{
		Previous:      previous,
		Latest:        latest,
		PercentChange: change,
		Direction:     direction,
	}, nil
}

// PricePoint is one point of a product's unit price history
type PricePoint struct {
	Entry     purchase.Entry
	UnitPrice float64
}

// History returns the unit price series of a product ordered by date, as plotted on a price chart
func History(productEntries []purchase.Entry) []PricePoint {
	sorted := ByDate(productEntries)
	points := make([]PricePoint, 0, len(sorted))
	for _, e := range sorted {
		points = append(points, PricePoint{Entry: e, UnitPrice: e.UnitPrice()})
	}
	return points
}
