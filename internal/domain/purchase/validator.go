package purchase

import (
	"math"
	"strings"
	"time"
)

// RawEntry carries form fields exactly as the user typed them
type RawEntry struct {
	Date       time.Time
	Product    string
	Supplier   string
	Quantity   float64
	Unit       string
	TotalPrice float64
}

// Input is a RawEntry that passed Validate
type Input struct {
	Date       time.Time
	Product    string
	Supplier   string
	Quantity   float64
	Unit       Unit
	TotalPrice float64
}

// Validate accepts raw form input or rejects it with ErrIncompleteForm.
// The rejection never names the failing field.
func Validate(raw RawEntry) (Input, error) {
	unit := Unit(strings.TrimSpace(raw.Unit))

	switch {
	case strings.TrimSpace(raw.Product) == "",
		strings.TrimSpace(raw.Supplier) == "",
		!(raw.Quantity > 0),
		math.IsInf(raw.Quantity, 1),
		!(raw.TotalPrice > 0),
		math.IsInf(raw.TotalPrice, 1),
		raw.Date.IsZero(),
		!unit.Valid():
		return Input{}, ErrIncompleteForm
	}

	return Input{
		Date:       raw.Date,
		Product:    raw.Product,
		Supplier:   raw.Supplier,
		Quantity:   raw.Quantity,
		Unit:       unit,
		TotalPrice: raw.TotalPrice,
	}, nil
}
