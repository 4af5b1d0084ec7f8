package metrics

import (
	"testing"

	"github.com/osteria-purchase-ledger/internal/domain/purchase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suppliers(ranking []SupplierPrice) []string {
	out := make([]string, 0, len(ranking))
	for _, r := range ranking {
		out = append(out, r.Supplier)
	}
	return out
}

func TestSupplierRanking(t *testing.T) {
	t.Run("CheapestFirst", func(t *testing.T) {
		entries := []purchase.Entry{
			newEntry(t, "2024-01-01", "Cheese", "A", 10, purchase.UnitKilogram, 100),
			newEntry(t, "2024-01-02", "Cheese", "B", 10, purchase.UnitKilogram, 80),
		}

		ranking := SupplierRanking(entries)
		require.Len(t, ranking, 2)
		assert.Equal(t, []string{"B", "A"}, suppliers(ranking))
		assert.InDelta(t, 8.0, ranking[0].MeanUnitPrice, 1e-9)
		assert.InDelta(t, 10.0, ranking[1].MeanUnitPrice, 1e-9)
	})

	t.Run("MeanOfUnitPrices", func(t *testing.T) {
		entries := []purchase.Entry{
			newEntry(t, "2024-01-01", "Cheese", "A", 10, purchase.UnitKilogram, 100),
			newEntry(t, "2024-01-02", "Cheese", "A", 1, purchase.UnitKilogram, 20),
			newEntry(t, "2024-01-03", "Cheese", "B", 2, purchase.UnitKilogram, 28),
		}

		ranking := SupplierRanking(entries)
		require.Len(t, ranking, 2)
		// A: mean(10, 20) = 15, B: 14
		assert.Equal(t, []string{"B", "A"}, suppliers(ranking))
		assert.InDelta(t, 15.0, ranking[1].MeanUnitPrice, 1e-9)
		assert.Equal(t, 2, ranking[1].Purchases)
	})

	t.Run("TiesBrokenByName", func(t *testing.T) {
		entries := []purchase.Entry{
			newEntry(t, "2024-01-01", "Cheese", "Zeta", 1, purchase.UnitKilogram, 5),
			newEntry(t, "2024-01-01", "Cheese", "Alfa", 2, purchase.UnitKilogram, 10),
			newEntry(t, "2024-01-01", "Cheese", "Mezzo", 1, purchase.UnitKilogram, 4),
		}

		assert.Equal(t, []string{"Mezzo", "Alfa", "Zeta"}, suppliers(SupplierRanking(entries)))
	})

	t.Run("SortedAscending", func(t *testing.T) {
		entries := []purchase.Entry{
			newEntry(t, "2024-01-01", "Cheese", "C", 1, purchase.UnitKilogram, 30),
			newEntry(t, "2024-01-01", "Cheese", "A", 1, purchase.UnitKilogram, 7),
			newEntry(t, "2024-01-01", "Cheese", "D", 1, purchase.UnitKilogram, 12),
			newEntry(t, "2024-01-01", "Cheese", "B", 1, purchase.UnitKilogram, 7),
		}

		ranking := SupplierRanking(entries)
		for i := 1; i < len(ranking); i++ {
			assert.LessOrEqual(t, ranking[i-1].MeanUnitPrice, ranking[i].MeanUnitPrice)
		}
		assert.Equal(t, []string{"A", "B", "D", "C"}, suppliers(ranking))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, SupplierRanking(nil))
	})
}
