package order

import (
	"testing"

	"cloud.google.com/go/datastore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcGrol/grocerystore/lib/mytime"
	"github.com/MarcGrol/grocerystore/services/cart"
	"github.com/MarcGrol/grocerystore/services/catalog"
)

func TestOrderDatastoreProperties(t *testing.T) {
	original := Order{
		UID:         "ORD-001",
		Items:       []cart.LineItem{{Product: catalog.Product{UID: "prod1", Price: decimal.RequireFromString("2.99")}, Quantity: 2}},
		Subtotal:    decimal.RequireFromString("5.98"),
		DeliveryFee: decimal.RequireFromString("5.00"),
		TotalAmount: decimal.RequireFromString("10.98"),
		Status:      StatusProcessing,
		CreatedAt:   mytime.ExampleTime,
	}

	props, err := original.Save()
	require.NoError(t, err)

	indexed := map[string]datastore.Property{}
	for _, p := range props {
		indexed[p.Name] = p
	}
	assert.Equal(t, "processing", indexed["Status"].Value)
	assert.Equal(t, "ORD-001", indexed["UID"].Value)
	assert.True(t, indexed[payloadProperty].NoIndex)

	loaded := Order{}
	require.NoError(t, loaded.Load(props))
	assert.Equal(t, "10.98", loaded.TotalAmount.String())
	assert.Equal(t, 2, loaded.Items[0].Quantity)
	assert.True(t, mytime.ExampleTime.Equal(loaded.CreatedAt))

	assert.Error(t, (&Order{}).Load(nil))
}

func TestCheckoutFormValidate(t *testing.T) {
	complete := Address{Street: "Main 1", City: "Utrecht", Country: "NL"}

	testCases := []struct {
		name    string
		form    CheckoutForm
		wantErr bool
	}{
		{name: "complete", form: CheckoutForm{ShippingAddress: complete, PaymentMethod: "cash_on_delivery"}},
		{name: "blank street", form: CheckoutForm{ShippingAddress: Address{Street: "  ", City: "Utrecht", Country: "NL"}, PaymentMethod: "debit_card"}, wantErr: true},
		{name: "no payment method", form: CheckoutForm{ShippingAddress: complete}, wantErr: true},
		{name: "unknown payment method", form: CheckoutForm{ShippingAddress: complete, PaymentMethod: "iou"}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.form.Validate()
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}
