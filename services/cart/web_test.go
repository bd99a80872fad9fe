package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcGrol/grocerystore/lib/mylog"
	"github.com/MarcGrol/grocerystore/services/catalog"
)

func TestCartWebService(t *testing.T) {

	t.Run("Add item", func(t *testing.T) {
		// setup
		router, ledger := setup(t)

		// when
		response := serve(router, http.MethodPost, "/api/cart/item", `{"productUID":"prod1","quantity":2}`)

		// then
		assert.Equal(t, 200, response.Code)
		cart := decodeResponse(t, response)
		assert.Equal(t, map[string]int{"prod1": 2}, quantities(cart))
		assert.Equal(t, "4.98", cart.TotalAmount.String())
		assert.Equal(t, 2, ledger.Snapshot().TotalItems)
	})

	t.Run("Add unknown product", func(t *testing.T) {
		// setup
		router, ledger := setup(t)

		// when
		response := serve(router, http.MethodPost, "/api/cart/item", `{"productUID":"prod99","quantity":2}`)

		// then
		assert.Equal(t, 404, response.Code)
		assert.True(t, ledger.Snapshot().IsEmpty())
	})

	t.Run("Add with invalid quantity", func(t *testing.T) {
		// setup
		router, ledger := setup(t)

		// when
		response := serve(router, http.MethodPost, "/api/cart/item", `{"productUID":"prod1","quantity":0}`)

		// then
		assert.Equal(t, 400, response.Code)
		assert.True(t, ledger.Snapshot().IsEmpty())
	})

	t.Run("Add with overflowing quantity", func(t *testing.T) {
		// setup
		router, ledger := setup(t)

		// given
		addFixtureProduct(t, ledger, "prod1", 1)

		// when
		response := serve(router, http.MethodPost, "/api/cart/item", `{"productUID":"prod1","quantity":9223372036854775807}`)

		// then
		assert.Equal(t, 400, response.Code)
		assert.Equal(t, map[string]int{"prod1": 1}, quantities(ledger.Snapshot()))
	})

	t.Run("Add with malformed body", func(t *testing.T) {
		// setup
		router, _ := setup(t)

		// when
		response := serve(router, http.MethodPost, "/api/cart/item", `{"productUID":"prod1","quantity":"many"}`)

		// then
		assert.Equal(t, 400, response.Code)
	})

	t.Run("Set quantity", func(t *testing.T) {
		// setup
		router, ledger := setup(t)

		// given
		addFixtureProduct(t, ledger, "prod2", 1)

		// when
		response := serve(router, http.MethodPut, "/api/cart/item/prod2", `{"quantity":4}`)

		// then
		assert.Equal(t, 200, response.Code)
		cart := decodeResponse(t, response)
		assert.Equal(t, map[string]int{"prod2": 4}, quantities(cart))
		assert.Equal(t, "13.96", cart.TotalAmount.String())
	})

	t.Run("Set quantity above maximum", func(t *testing.T) {
		// setup
		router, ledger := setup(t)

		// given
		addFixtureProduct(t, ledger, "prod2", 1)

		// when
		response := serve(router, http.MethodPut, "/api/cart/item/prod2", `{"quantity":10001}`)

		// then
		assert.Equal(t, 400, response.Code)
		assert.Equal(t, map[string]int{"prod2": 1}, quantities(ledger.Snapshot()))
	})

	t.Run("Remove item", func(t *testing.T) {
		// setup
		router, ledger := setup(t)

		// given
		addFixtureProduct(t, ledger, "prod1", 1)
		addFixtureProduct(t, ledger, "prod2", 1)

		// when
		response := serve(router, http.MethodDelete, "/api/cart/item/prod1", "")

		// then
		assert.Equal(t, 200, response.Code)
		cart := decodeResponse(t, response)
		assert.Equal(t, map[string]int{"prod2": 1}, quantities(cart))
	})

	t.Run("Clear and get", func(t *testing.T) {
		// setup
		router, ledger := setup(t)

		// given
		addFixtureProduct(t, ledger, "prod1", 1)

		// when
		response := serve(router, http.MethodDelete, "/api/cart", "")
		assert.Equal(t, 200, response.Code)
		response = serve(router, http.MethodGet, "/api/cart", "")

		// then
		assert.Equal(t, 200, response.Code)
		cart := decodeResponse(t, response)
		assert.True(t, cart.IsEmpty())
		assert.Equal(t, 0, cart.TotalItems)
	})
}

func setup(t *testing.T) (*mux.Router, *Ledger) {
	ledger := NewLedger(Cart{}, mylog.New("cart-test"))
	sut := NewWebService(ledger, catalog.NewFixtureProvider())
	router := mux.NewRouter()
	err := sut.RegisterEndpoints(context.TODO(), router)
	assert.NoError(t, err)
	return router, ledger
}

func addFixtureProduct(t *testing.T, ledger *Ledger, productUID string, quantity int) {
	product, err := catalog.NewFixtureProvider().GetProduct(context.TODO(), productUID)
	require.NoError(t, err)
	_, err = ledger.AddItem(context.TODO(), product, quantity)
	require.NoError(t, err)
}

func serve(router *mux.Router, method string, url string, body string) *httptest.ResponseRecorder {
	request, _ := http.NewRequest(method, url, strings.NewReader(body))
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func decodeResponse(t *testing.T, response *httptest.ResponseRecorder) Cart {
	cart := Cart{}
	err := json.Unmarshal(response.Body.Bytes(), &cart)
	require.NoError(t, err)
	return cart
}
