package order

import (
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/datastore"
	"github.com/shopspring/decimal"

	"github.com/MarcGrol/grocerystore/services/cart"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return Status(s), true
	default:
		return "", false
	}
}

type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "credit_card"
	PaymentDebitCard      PaymentMethod = "debit_card"
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentOnline         PaymentMethod = "online_payment"
)

func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case PaymentCreditCard, PaymentDebitCard, PaymentCashOnDelivery, PaymentOnline:
		return PaymentMethod(s), true
	default:
		return "", false
	}
}

type Address struct {
	Street  string `json:"street" form:"street"`
	City    string `json:"city" form:"city"`
	State   string `json:"state" form:"state"`
	ZipCode string `json:"zipCode" form:"zipCode"`
	Country string `json:"country" form:"country"`
}

type Order struct {
	UID             string          `json:"uid"`
	Items           []cart.LineItem `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryFee     decimal.Decimal `json:"deliveryFee"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Currency        string          `json:"currency"`
	ItemCount       int             `json:"itemCount"`
	Status          Status          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	ShippingAddress Address         `json:"shippingAddress"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
}

// Datastore cannot hold decimals or nested products, so an order is stored as a JSON
// payload next to the fields that are queried on.
const payloadProperty = "Payload"

func (o *Order) Save() ([]datastore.Property, error) {
	payload, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("error encoding order %s: %s", o.UID, err)
	}
	return []datastore.Property{
		{Name: "UID", Value: o.UID},
		{Name: "Status", Value: string(o.Status)},
		{Name: "CreatedAt", Value: o.CreatedAt},
		{Name: payloadProperty, Value: string(payload), NoIndex: true},
	}, nil
}

func (o *Order) Load(props []datastore.Property) error {
	for _, p := range props {
		if p.Name != payloadProperty {
			continue
		}
		payload, ok := p.Value.(string)
		if !ok {
			return fmt.Errorf("unexpected payload type %T", p.Value)
		}
		return json.Unmarshal([]byte(payload), o)
	}
	return fmt.Errorf("order without payload")
}
