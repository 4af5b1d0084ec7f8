// Package query selects subsets of a ledger by product, supplier and date range.
package query

import (
	"strings"
	"time"

	"github.com/osteria-purchase-ledger/internal/domain/purchase"
)

// Any is the criterion value that matches every product or supplier
const Any = "any"

// Spec describes a conjunction of optional criteria.
// Empty or Any product/supplier and nil dates leave that criterion out.
type Spec struct {
	Product  string
	Supplier string
	From     *time.Time
	To       *time.Time
}

// Filter returns the entries matching every criterion of spec, in their original order
func Filter(entries []purchase.Entry, spec Spec) []purchase.Entry {
	product := criterion(spec.Product)
	supplier := criterion(spec.Supplier)

	var from, to time.Time
	if spec.From != nil {
		from = purchase.DateOf(*spec.From)
	}
	if spec.To != nil {
		to = purchase.DateOf(*spec.To)
	}

	out := make([]purchase.Entry, 0, len(entries))
	for _, e := range entries {
		if product != "" && e.Product() != product {
			continue
		}
		if supplier != "" && e.Supplier() != supplier {
			continue
		}
		if spec.From != nil && e.Date().Before(from) {
			continue
		}
		if spec.To != nil && e.Date().After(to) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ByProduct is shorthand for filtering on a single product
func ByProduct(entries []purchase.Entry, product string) []purchase.Entry {
	return Filter(entries, Spec{Product: product})
}

// Products lists distinct product names in the order they first appear
func Products(entries []purchase.Entry) []string {
	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0)
	for _, e := range entries {
		if _, ok := seen[e.Product()]; ok {
			continue
		}
		seen[e.Product()] = struct{}{}
		out = append(out, e.Product())
	}
	return out
}

// criterion normalizes a product or supplier criterion the way entries are
// normalized, returning "" when it should match anything
func criterion(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, Any) {
		return ""
	}
	return purchase.NormalizeName(value)
}
