// Package purchase holds the purchase entry aggregate: validation of raw
// invoice input and derivation of unit cost and period key.
package purchase

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PeriodKeyLayout formats a date as its year-month grouping key
const PeriodKeyLayout = "2006-01"

var (
	// ErrIncompleteForm is the single validation failure reported for any bad field
	ErrIncompleteForm = errors.New("incomplete form: please fill in all fields correctly")

	// ErrDivideByZero is raised when a unit price would be derived from a zero
	// quantity or would not be a finite number
	ErrDivideByZero = errors.New("arithmetic error: unit price is not a finite number")
)

// Entry is one recorded purchase. It can only be built by NewEntry, so the
// derived unit price always matches the stored total and quantity.
type Entry struct {
	id         uuid.UUID
	date       time.Time
	product    string
	supplier   string
	quantity   float64
	unit       Unit
	totalPrice float64
	unitPrice  float64
	periodKey  string
}

// NewEntry derives unit price, period key and normalized names from validated input
func NewEntry(in Input) (Entry, error) {
	if in.Quantity == 0 {
		return Entry{}, ErrDivideByZero
	}
	unitPrice := in.TotalPrice / in.Quantity
	if math.IsInf(unitPrice, 0) || math.IsNaN(unitPrice) {
		return Entry{}, ErrDivideByZero
	}

	date := DateOf(in.Date)
	return Entry{
		id:         uuid.New(),
		date:       date,
		product:    NormalizeName(in.Product),
		supplier:   NormalizeName(in.Supplier),
		quantity:   in.Quantity,
		unit:       in.Unit,
		totalPrice: in.TotalPrice,
		unitPrice:  unitPrice,
		periodKey:  date.Format(PeriodKeyLayout),
	}, nil
}

// ID identifies the entry within its session
func (e Entry) ID() uuid.UUID { return e.id }

// Date is the purchase day, UTC midnight
func (e Entry) Date() time.Time { return e.date }

// Product is the normalized product name
func (e Entry) Product() string { return e.product }

// Supplier is the normalized supplier name
func (e Entry) Supplier() string { return e.supplier }

// Quantity is the purchased amount in Unit
func (e Entry) Quantity() float64 { return e.quantity }

// Unit is the unit Quantity is expressed in
func (e Entry) Unit() Unit { return e.unit }

// TotalPrice is the invoice amount for the whole quantity
func (e Entry) TotalPrice() float64 { return e.totalPrice }

// UnitPrice is TotalPrice divided by Quantity, always finite
func (e Entry) UnitPrice() float64 { return e.unitPrice }

// PeriodKey is the YYYY-MM month of Date
func (e Entry) PeriodKey() string { return e.periodKey }

// NormalizeName trims the name and title-cases every word, so differently
// cased spellings of the same supplier or product share one key. Only word
// starts are capitalized: "o'neil" becomes "O'neil".
func NormalizeName(name string) string {
	// cases.Caser keeps state between calls and must not be shared
	return cases.Title(language.Und).String(strings.TrimSpace(name))
}

// DateOf truncates t to its calendar day in UTC
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
