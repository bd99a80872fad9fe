package order

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	formcodec "github.com/go-playground/form/v4"

	"github.com/MarcGrol/grocerystore/lib/myerrors"
)

type CheckoutForm struct {
	ShippingAddress Address `form:"shippingAddress"`
	PaymentMethod   string  `form:"paymentMethod"`
}

func NewCheckoutFormFromRequest(r *http.Request) (CheckoutForm, error) {
	err := r.ParseForm()
	if err != nil {
		return CheckoutForm{}, myerrors.NewInvalidInputError(err)
	}
	return NewCheckoutFormFromValues(r.Form)
}

func NewCheckoutFormFromValues(values url.Values) (CheckoutForm, error) {
	form := CheckoutForm{}
	err := formcodec.NewDecoder().Decode(&form, values)
	if err != nil {
		return form, myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err))
	}
	return form, nil
}

func (f CheckoutForm) Validate() (PaymentMethod, error) {
	missing := []string{}
	if strings.TrimSpace(f.ShippingAddress.Street) == "" {
		missing = append(missing, "street")
	}
	if strings.TrimSpace(f.ShippingAddress.City) == "" {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(f.ShippingAddress.Country) == "" {
		missing = append(missing, "country")
	}
	if len(missing) > 0 {
		return "", myerrors.NewInvalidInputErrorf("shipping address incomplete, missing: %s", strings.Join(missing, ", "))
	}

	method, ok := ParsePaymentMethod(f.PaymentMethod)
	if !ok {
		return "", myerrors.NewInvalidInputErrorf("unsupported payment method '%s'", f.PaymentMethod)
	}
	return method, nil
}
