package cart

import (
	"context"

	"github.com/MarcGrol/grocerystore/lib/mymetrics"
)

type metricsObserver struct{}

func NewMetricsObserver() Observer {
	return metricsObserver{}
}

func (metricsObserver) OnCartChanged(c context.Context, mutation Mutation, cart Cart) {
	mymetrics.CartMutationsTotal.WithLabelValues(string(mutation)).Inc()
	mymetrics.CartItems.Set(float64(cart.TotalItems))
	mymetrics.CartLineItems.Set(float64(len(cart.Items)))
}
