package aggregation

import (
	"sort"

	v1 "github.com/aevon-lab/pos-analytics/internal/api/v1"
	"github.com/shopspring/decimal"
)

// ProductGroups is the result of one grouping pass over line items, in
// first-seen order. Rank it as many times as needed (top sellers and low
// rotation come from the same pass).
type ProductGroups []ProductRank

// ProductKey returns the canonical grouping identity of a line item:
// the product id, or the product name when the id is missing.
func ProductKey(item v1.LineItem) string {
	if item.ProductID != "" {
		return item.ProductID
	}
	return item.ProductName
}

// GroupProducts sums quantity and subtotal per product.
// The display name is the first one seen for the product.
func GroupProducts(sales []*v1.Sale) ProductGroups {
	idx := make(map[string]int)
	groups := ProductGroups{}
	for _, s := range sales {
		for _, item := range s.Items {
			key := ProductKey(item)
			i, ok := idx[key]
			if !ok {
				i = len(groups)
				idx[key] = i
				groups = append(groups, ProductRank{
					Key:         key,
					ProductID:   item.ProductID,
					ProductName: item.ProductName,
					Revenue:     decimal.Zero,
				})
			}
			groups[i].Quantity += item.Quantity
			groups[i].Revenue = groups[i].Revenue.Add(item.Subtotal)
		}
	}
	return groups
}

// Rank returns a sorted, truncated copy. Ties keep first-seen order, which
// makes the result sensitive to the order sales were fetched in.
func (g ProductGroups) Rank(opts RankOptions) []ProductRank {
	out := make([]ProductRank, len(g))
	copy(out, g)

	asc := opts.Order == OrderAsc
	byRevenue := opts.SortBy == SortByRevenue
	sort.SliceStable(out, func(i, j int) bool {
		var cmp int
		if byRevenue {
			cmp = out[i].Revenue.Cmp(out[j].Revenue)
		} else {
			cmp = compareInt(out[i].Quantity, out[j].Quantity)
		}
		if asc {
			return cmp < 0
		}
		return cmp > 0
	})

	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out
}

// RankProducts groups and ranks in one call.
func RankProducts(sales []*v1.Sale, opts RankOptions) []ProductRank {
	return GroupProducts(sales).Rank(opts)
}

// ValidSortKey reports whether k names a ranking metric.
func ValidSortKey(k SortKey) bool {
	return k == SortByQuantity || k == SortByRevenue
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
