package catalog

import (
	"github.com/shopspring/decimal"
)

type Category struct {
	UID       string `json:"uid"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	ParentUID string `json:"parentUID,omitempty"`
}

type Product struct {
	UID           string           `json:"uid"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discountPrice,omitempty"`
	Images        []string         `json:"images"`
	Category      Category         `json:"category"`
	InStock       bool             `json:"inStock"`
	StockQuantity int              `json:"stockQuantity"`
	Unit          string           `json:"unit"`
	Rating        float64          `json:"rating"`
	Featured      bool             `json:"featured"`
	Tags          []string         `json:"tags"`
}

// EffectiveUnitPrice is the discount price when one is set and non-zero, the list price
// otherwise.
func (p Product) EffectiveUnitPrice() decimal.Decimal {
	if p.DiscountPrice != nil && !p.DiscountPrice.IsZero() {
		return *p.DiscountPrice
	}
	return p.Price
}

// Clone returns a copy that shares no slices or pointers with p.
func (p Product) Clone() Product {
	clone := p
	if p.DiscountPrice != nil {
		discount := *p.DiscountPrice
		clone.DiscountPrice = &discount
	}
	if p.Images != nil {
		clone.Images = append([]string{}, p.Images...)
	}
	if p.Tags != nil {
		clone.Tags = append([]string{}, p.Tags...)
	}
	return clone
}

type SortOrder string

const (
	SortDefault   SortOrder = "default"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortRating    SortOrder = "rating"
)

func ParseSortOrder(s string) (SortOrder, bool) {
	switch SortOrder(s) {
	case "", SortDefault:
		return SortDefault, true
	case SortPriceAsc, SortPriceDesc, SortRating:
		return SortOrder(s), true
	default:
		return "", false
	}
}
