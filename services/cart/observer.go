package cart

import (
	"context"
)

type Mutation string

const (
	MutationAdd         Mutation = "add"
	MutationRemove      Mutation = "remove"
	MutationSetQuantity Mutation = "set_quantity"
	MutationClear       Mutation = "clear"
	MutationCheckout    Mutation = "checkout"
)

// Observer is notified after every accepted mutation with a private copy of the new cart.
// Notifications arrive in mutation order while the ledger is locked, so implementations
// must return quickly.
type Observer interface {
	OnCartChanged(c context.Context, mutation Mutation, cart Cart)
}

type ObserverFunc func(c context.Context, mutation Mutation, cart Cart)

func (f ObserverFunc) OnCartChanged(c context.Context, mutation Mutation, cart Cart) {
	f(c, mutation, cart)
}
