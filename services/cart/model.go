package cart

import (
	"github.com/shopspring/decimal"

	"github.com/MarcGrol/grocerystore/services/catalog"
)

type LineItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

func (li LineItem) Amount() decimal.Decimal {
	return li.Product.EffectiveUnitPrice().Mul(decimal.NewFromInt(int64(li.Quantity)))
}

type Cart struct {
	Items       []LineItem      `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TotalItems  int             `json:"totalItems"`
}

func emptyCart() Cart {
	return Cart{
		Items:       []LineItem{},
		TotalAmount: decimal.Zero,
		TotalItems:  0,
	}
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) indexOf(productUID string) int {
	for i, item := range c.Items {
		if item.Product.UID == productUID {
			return i
		}
	}
	return -1
}

// Find returns the line item for productUID.
func (c Cart) Find(productUID string) (LineItem, bool) {
	idx := c.indexOf(productUID)
	if idx < 0 {
		return LineItem{}, false
	}
	return c.Items[idx], true
}

func (c Cart) clone() Cart {
	items := make([]LineItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, LineItem{
			Product:  item.Product.Clone(),
			Quantity: item.Quantity,
		})
	}
	return Cart{
		Items:       items,
		TotalAmount: c.TotalAmount,
		TotalItems:  c.TotalItems,
	}
}

// withTotals recomputes both totals from scratch over all line items.
func withTotals(items []LineItem) Cart {
	totalAmount := decimal.Zero
	totalItems := 0
	for _, item := range items {
		totalItems += item.Quantity
		totalAmount = totalAmount.Add(item.Amount())
	}
	return Cart{
		Items:       items,
		TotalAmount: totalAmount,
		TotalItems:  totalItems,
	}
}
