package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MarcGrol/grocerystore/lib/myerrors"
	"github.com/MarcGrol/grocerystore/lib/mylog"
	"github.com/MarcGrol/grocerystore/services/catalog"
)

var ErrInvalidQuantity = errors.New("quantity must be positive and within the line maximum")

// MaxLineQuantity bounds the quantity of a single line item.
const MaxLineQuantity = 10000

// Ledger owns the cart of the active shopping session. All mutations are serialized.
type Ledger struct {
	sync.Mutex
	cart      Cart
	observers []Observer
	logger    mylog.Logger
}

func NewLedger(initial Cart, logger mylog.Logger, observers ...Observer) *Ledger {
	return &Ledger{
		cart:      normalize(initial.clone()),
		observers: observers,
		logger:    logger,
	}
}

func (l *Ledger) Snapshot() Cart {
	l.Lock()
	defer l.Unlock()

	return l.cart.clone()
}

func (l *Ledger) AddItem(c context.Context, product catalog.Product, quantity int) (Cart, error) {
	if quantity <= 0 || quantity > MaxLineQuantity {
		return Cart{}, myerrors.NewInvalidInputError(fmt.Errorf("%w: got %d for product %s", ErrInvalidQuantity, quantity, product.UID))
	}

	l.Lock()
	defer l.Unlock()

	l.logger.Log(c, product.UID, mylog.SeverityInfo, "Add %d x %s to cart", quantity, product.UID)

	items := l.cart.clone().Items
	idx := l.cart.indexOf(product.UID)
	if idx >= 0 {
		if items[idx].Quantity > MaxLineQuantity-quantity {
			return Cart{}, myerrors.NewInvalidInputError(fmt.Errorf("%w: %d more of product %s exceeds %d", ErrInvalidQuantity, quantity, product.UID, MaxLineQuantity))
		}
		items[idx].Quantity += quantity
	} else {
		items = append(items, LineItem{
			Product:  product.Clone(),
			Quantity: quantity,
		})
	}

	return l.apply(c, MutationAdd, items), nil
}

func (l *Ledger) RemoveItem(c context.Context, productUID string) Cart {
	l.Lock()
	defer l.Unlock()

	l.logger.Log(c, productUID, mylog.SeverityInfo, "Remove %s from cart", productUID)

	return l.apply(c, MutationRemove, l.without(productUID))
}

// SetQuantity only adjusts products already in the cart. A non-positive quantity removes
// the line item, a quantity above MaxLineQuantity is capped.
func (l *Ledger) SetQuantity(c context.Context, productUID string, quantity int) Cart {
	l.Lock()
	defer l.Unlock()

	l.logger.Log(c, productUID, mylog.SeverityInfo, "Set quantity of %s to %d", productUID, quantity)

	if quantity <= 0 {
		return l.apply(c, MutationSetQuantity, l.without(productUID))
	}

	items := l.cart.clone().Items
	idx := l.cart.indexOf(productUID)
	if idx >= 0 {
		items[idx].Quantity = min(quantity, MaxLineQuantity)
	}

	return l.apply(c, MutationSetQuantity, items)
}

func (l *Ledger) Clear(c context.Context) Cart {
	l.Lock()
	defer l.Unlock()

	l.logger.Log(c, "", mylog.SeverityInfo, "Clear cart")

	return l.apply(c, MutationClear, []LineItem{})
}

// RemoveOrdered takes the quantities of an ordered snapshot out of the cart. Anything added
// after the snapshot was taken stays.
func (l *Ledger) RemoveOrdered(c context.Context, ordered Cart) Cart {
	l.Lock()
	defer l.Unlock()

	l.logger.Log(c, "", mylog.SeverityInfo, "Remove %d ordered items from cart", ordered.TotalItems)

	orderedQuantities := map[string]int{}
	for _, item := range ordered.Items {
		orderedQuantities[item.Product.UID] += item.Quantity
	}

	items := make([]LineItem, 0, len(l.cart.Items))
	for _, item := range l.cart.clone().Items {
		item.Quantity -= orderedQuantities[item.Product.UID]
		if item.Quantity > 0 {
			items = append(items, item)
		}
	}

	return l.apply(c, MutationCheckout, items)
}

func (l *Ledger) without(productUID string) []LineItem {
	items := make([]LineItem, 0, len(l.cart.Items))
	for _, item := range l.cart.clone().Items {
		if item.Product.UID != productUID {
			items = append(items, item)
		}
	}
	return items
}

// apply must be called with the lock held.
func (l *Ledger) apply(c context.Context, mutation Mutation, items []LineItem) Cart {
	l.cart = withTotals(items)

	for _, o := range l.observers {
		o.OnCartChanged(c, mutation, l.cart.clone())
	}

	return l.cart.clone()
}
