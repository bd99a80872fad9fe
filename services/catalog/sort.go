package catalog

import (
	"sort"
)

// SortProducts returns a sorted copy; the input is left untouched. Ties keep their
// original order.
func SortProducts(products []Product, order SortOrder) []Product {
	sorted := append([]Product{}, products...)

	switch order {
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].EffectiveUnitPrice().LessThan(sorted[j].EffectiveUnitPrice())
		})
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].EffectiveUnitPrice().GreaterThan(sorted[j].EffectiveUnitPrice())
		})
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	}

	return sorted
}
