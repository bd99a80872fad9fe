package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MarcGrol/grocerystore/lib/mykv"
	"github.com/MarcGrol/grocerystore/lib/mylog"
)

const (
	StorageKey      = "cart-storage"
	snapshotVersion = 1
)

type storedCart struct {
	Version int  `json:"version"`
	Cart    Cart `json:"cart"`
}

func encodeCart(cart Cart) ([]byte, error) {
	data, err := json.Marshal(storedCart{
		Version: snapshotVersion,
		Cart:    cart,
	})
	if err != nil {
		return nil, fmt.Errorf("error encoding cart: %s", err)
	}
	return data, nil
}

func decodeCart(data []byte) (Cart, error) {
	stored := storedCart{}
	err := json.Unmarshal(data, &stored)
	if err != nil {
		return Cart{}, fmt.Errorf("error decoding cart: %s", err)
	}
	if stored.Version != snapshotVersion {
		return Cart{}, fmt.Errorf("unsupported cart snapshot version %d", stored.Version)
	}
	return normalize(stored.Cart), nil
}

// normalize repairs a restored cart: non-positive quantities are dropped, duplicate
// products are merged into the first occurrence, quantities are capped at MaxLineQuantity
// and totals are recomputed.
func normalize(cart Cart) Cart {
	items := []LineItem{}
	positions := map[string]int{}
	for _, item := range cart.Items {
		if item.Quantity <= 0 {
			continue
		}
		item.Quantity = min(item.Quantity, MaxLineQuantity)
		if idx, exists := positions[item.Product.UID]; exists {
			items[idx].Quantity = min(items[idx].Quantity+item.Quantity, MaxLineQuantity)
			continue
		}
		positions[item.Product.UID] = len(items)
		items = append(items, item)
	}
	return withTotals(items)
}

// LoadCart restores the last persisted cart. It never fails: a missing, unreadable or
// corrupt snapshot yields an empty cart.
func LoadCart(c context.Context, store mykv.Store, logger mylog.Logger) Cart {
	data, found, err := store.Get(c, StorageKey)
	if err != nil {
		logger.Log(c, StorageKey, mylog.SeverityError, "Error reading persisted cart, starting empty: %s", err)
		return emptyCart()
	}
	if !found {
		logger.Log(c, StorageKey, mylog.SeverityInfo, "No persisted cart found, starting empty")
		return emptyCart()
	}

	cart, err := decodeCart(data)
	if err != nil {
		logger.Log(c, StorageKey, mylog.SeverityWarn, "Persisted cart unusable, starting empty: %s", err)
		return emptyCart()
	}

	logger.Log(c, StorageKey, mylog.SeverityInfo, "Restored cart with %d line items", len(cart.Items))
	return cart
}
