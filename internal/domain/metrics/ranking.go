package metrics

import (
	"sort"

	"github.com/osteria-purchase-ledger/internal/domain/purchase"
)

// SupplierPrice is one row of a supplier ranking
type SupplierPrice struct {
	Supplier      string
	MeanUnitPrice float64
	Purchases     int
}

// SupplierRanking groups the entries of one product by supplier and orders the
// suppliers by mean unit price, cheapest first, ties broken by supplier name
func SupplierRanking(productEntries []purchase.Entry) []SupplierPrice {
	type group struct {
		sum   float64
		count int
	}

	groups := make(map[string]*group)
	for _, e := range productEntries {
		g, ok := groups[e.Supplier()]
		if !ok {
			g = &group{}
			groups[e.Supplier()] = g
		}
		g.sum += e.UnitPrice()
		g.count++
	}

	ranking := make([]SupplierPrice, 0, len(groups))
	for supplier, g := range groups {
		ranking = append(ranking, SupplierPrice{
			Supplier:      supplier,
			MeanUnitPrice: g.sum / float64(g.count),
			Purchases:     g.count,
		})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].MeanUnitPrice != ranking[j].MeanUnitPrice {
			return ranking[i].MeanUnitPrice < ranking[j].MeanUnitPrice
		}
		return ranking[i].Supplier < ranking[j].Supplier
	})
	return ranking
}
