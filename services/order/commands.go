package order

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/MarcGrol/grocerystore/lib/myerrors"
	"github.com/MarcGrol/grocerystore/lib/mylog"
	"github.com/MarcGrol/grocerystore/lib/mymetrics"
	"github.com/MarcGrol/grocerystore/lib/mystore"
	"github.com/MarcGrol/grocerystore/services/cart"
	"github.com/MarcGrol/grocerystore/services/order/orderevents"
)

var ErrEmptyCart = errors.New("cart is empty")

func (s *service) placeOrder(c context.Context, form CheckoutForm) (Order, error) {
	paymentMethod, err := form.Validate()
	if err != nil {
		mymetrics.OrdersFailedTotal.WithLabelValues("validation").Inc()
		return Order{}, err
	}

	snapshot := s.ledger.Snapshot()
	if snapshot.IsEmpty() {
		mymetrics.OrdersFailedTotal.WithLabelValues("empty_cart").Inc()
		return Order{}, myerrors.NewInvalidInputError(ErrEmptyCart)
	}

	orderUID := "ORD-" + s.uuider.Create()
	now := s.nower.Now()
	order := createOrder(orderUID, snapshot, s.pricing, form.ShippingAddress, paymentMethod)
	order.CreatedAt = now
	order.UpdatedAt = now

	s.logger.Log(c, orderUID, mylog.SeverityInfo, "Placing order %s with %d items for %s %s", orderUID, order.ItemCount, order.TotalAmount, order.Currency)

	err = s.orderStore.RunInTransaction(c, func(c context.Context) error {
		err := s.orderStore.Put(c, orderUID, order)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, orderevents.TopicName, orderevents.OrderPlaced{
			OrderUID:      orderUID,
			ItemCount:     order.ItemCount,
			TotalAmount:   order.TotalAmount.String(),
			PaymentMethod: string(order.PaymentMethod),
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		mymetrics.OrdersFailedTotal.WithLabelValues("storage").Inc()
		s.logger.Log(c, orderUID, mylog.SeverityError, "Error placing order %s, cart left untouched: %s", orderUID, err)
		return Order{}, err
	}

	s.ledger.RemoveOrdered(c, snapshot)
	mymetrics.OrdersPlacedTotal.Inc()

	return order, nil
}

func createOrder(uid string, snapshot cart.Cart, pricing Pricing, address Address, paymentMethod PaymentMethod) Order {
	deliveryFee := decimal.Zero
	if !snapshot.IsEmpty() {
		deliveryFee = pricing.DeliveryFee
	}
	return Order{
		UID:             uid,
		Items:           snapshot.Items,
		Subtotal:        snapshot.TotalAmount,
		DeliveryFee:     deliveryFee,
		TotalAmount:     snapshot.TotalAmount.Add(deliveryFee),
		Currency:        pricing.Currency,
		ItemCount:       snapshot.TotalItems,
		Status:          StatusPending,
		ShippingAddress: address,
		PaymentMethod:   paymentMethod,
	}
}

func (s *service) listOrders(c context.Context, statusFilter string) ([]Order, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Fetch orders (status:'%s')", statusFilter)

	var orders []Order
	var err error
	if statusFilter == "" {
		orders, err = s.orderStore.List(c)
	} else {
		status, ok := ParseStatus(statusFilter)
		if !ok {
			return nil, myerrors.NewInvalidInputErrorf("unknown order status '%s'", statusFilter)
		}
		orders, err = s.orderStore.Query(c, []mystore.Filter{
			{Field: "Status", Compare: "=", Value: string(status)},
		}, "")
	}
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *service) getOrder(c context.Context, orderUID string) (Order, error) {
	s.logger.Log(c, orderUID, mylog.SeverityInfo, "Fetch details of order %s", orderUID)

	order, found, err := s.orderStore.Get(c, orderUID)
	if err != nil {
		return Order{}, myerrors.NewInternalError(err)
	}
	if !found {
		return Order{}, myerrors.NewNotFoundError(fmt.Errorf("order with uid %s not found", orderUID))
	}

	return order, nil
}
