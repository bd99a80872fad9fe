package order

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/MarcGrol/grocerystore/lib/mylog"
	"github.com/MarcGrol/grocerystore/lib/mypublisher"
	"github.com/MarcGrol/grocerystore/lib/mystore"
	"github.com/MarcGrol/grocerystore/lib/mytime"
	"github.com/MarcGrol/grocerystore/lib/myuuid"
	"github.com/MarcGrol/grocerystore/services/cart"
)

// CartLedger is the part of the cart ledger that checkout needs.
type CartLedger interface {
	Snapshot() cart.Cart
	RemoveOrdered(c context.Context, ordered cart.Cart) cart.Cart
}

type Pricing struct {
	Currency    string
	DeliveryFee decimal.Decimal
}

type service struct {
	orderStore mystore.Store[Order]
	ledger     CartLedger
	publisher  mypublisher.Publisher
	nower      mytime.Nower
	uuider     myuuid.UUIDer
	logger     mylog.Logger
	pricing    Pricing
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(store mystore.Store[Order], ledger CartLedger, pricing Pricing, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger, pub mypublisher.Publisher) *service {
	return &service{
		orderStore: store,
		ledger:     ledger,
		publisher:  pub,
		nower:      nower,
		uuider:     uuider,
		logger:     logger,
		pricing:    pricing,
	}
}
