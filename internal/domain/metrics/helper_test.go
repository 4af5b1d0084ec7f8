package metrics

import (
	"testing"
	"time"

	"github.com/osteria-purchase-ledger/internal/domain/purchase"
	"github.com/stretchr/testify/require"
)

func newEntry(t *testing.T, date, product, supplier string, quantity float64, unit purchase.Unit, total float64) purchase.Entry {
	t.Helper()
	d, err := time.Parse(time.DateOnly, date)
	require.NoError(t, err)
	e, err := purchase.NewEntry(purchase.Input{
		Date: d, Product: product, Supplier: supplier,
		Quantity: quantity, Unit: unit, TotalPrice: total,
	})
	require.NoError(t, err)
	return e
}
